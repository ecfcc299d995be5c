/*
Package maze provides the occupancy-grid maze model and its generator.

A maze is a rectangular grid of cells that are either walls or open
floor, with a designated start and goal cell. Generation uses seeded
randomized depth-first carving, so the same dimensions and seed always
reproduce the same maze. Utility methods cover bounds checks, defensive
copies of the wall matrix for untrusted consumers, and ASCII
visualization of the maze.
*/
package maze

import (
	"fmt"
	"strings"

	"github.com/spakin/disjoint"
)

// CellPosition addresses one grid cell by column (X) and row (Y).
type CellPosition struct {
	X int
	Y int
}

// Adjacent reports whether the other cell is exactly one 4-directional
// step away.
func (p CellPosition) Adjacent(o CellPosition) bool {
	dx, dy := p.X-o.X, p.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a rectangular wall/floor maze with fixed start and goal cells.
type Grid struct {
	width  int
	height int
	walls  [][]bool // walls[y][x], true is a wall
	start  CellPosition
	goal   CellPosition
}

// NewGrid builds a grid around an existing wall matrix. The matrix must
// be rectangular and non-empty, and start and goal must be distinct open
// in-bound cells.
func NewGrid(walls [][]bool, start, goal CellPosition) (*Grid, error) {
	height := len(walls)
	if height == 0 || len(walls[0]) == 0 {
		return nil, fmt.Errorf("%w: empty wall matrix", ErrInvalidDimensions)
	}
	width := len(walls[0])
	for y := range walls {
		if len(walls[y]) != width {
			return nil, fmt.Errorf("%w: ragged wall matrix at row %d", ErrInvalidDimensions, y)
		}
	}

	g := &Grid{width: width, height: height, walls: copyWalls(walls), start: start, goal: goal}
	if start == goal {
		return nil, fmt.Errorf("%w: start and goal coincide at %s", ErrInvalidDimensions, start)
	}
	for _, pos := range []CellPosition{start, goal} {
		if !g.InBound(pos) || g.IsWall(pos) {
			return nil, fmt.Errorf("%w: %s must be an open in-bound cell", ErrInvalidDimensions, pos)
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the designated start cell.
func (g *Grid) Start() CellPosition { return g.start }

// Goal returns the designated goal cell.
func (g *Grid) Goal() CellPosition { return g.goal }

// InBound reports whether the position lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// IsWall reports whether the cell is a wall. Out-of-bound cells count as
// walls.
func (g *Grid) IsWall(pos CellPosition) bool {
	if !g.InBound(pos) {
		return true
	}
	return g.walls[pos.Y][pos.X]
}

// Walls returns a deep copy of the wall matrix. Callers may mutate the
// copy freely; external solvers are handed this copy, never the live
// grid.
func (g *Grid) Walls() [][]bool {
	return copyWalls(g.walls)
}

// OpenCells lists every non-wall cell in row-major order.
func (g *Grid) OpenCells() []CellPosition {
	var cells []CellPosition
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.walls[y][x] {
				cells = append(cells, CellPosition{X: x, Y: y})
			}
		}
	}
	return cells
}

// Connected reports whether two open cells belong to the same open-floor
// component, using a union-find pass over the grid.
func (g *Grid) Connected(a, b CellPosition) bool {
	if g.IsWall(a) || g.IsWall(b) {
		return false
	}

	elems := make([][]*disjoint.Element, g.height)
	for y := range elems {
		elems[y] = make([]*disjoint.Element, g.width)
		for x := range elems[y] {
			elems[y][x] = disjoint.NewElement()
		}
	}

	// Because of symmetry, joining right and down covers all four
	// directions.
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.walls[y][x] {
				continue
			}
			if x+1 < g.width && !g.walls[y][x+1] {
				disjoint.Union(elems[y][x], elems[y][x+1])
			}
			if y+1 < g.height && !g.walls[y+1][x] {
				disjoint.Union(elems[y][x], elems[y+1][x])
			}
		}
	}

	return elems[a.Y][a.X].Find() == elems[b.Y][b.X].Find()
}

// String provides a textual representation of the maze. Walls render as
// blocks, the start as S and the goal as G.
func (g *Grid) String() string {
	var output strings.Builder

	output.WriteString("+" + strings.Repeat("-", g.width) + "+\n")
	for y := 0; y < g.height; y++ {
		output.WriteString("|")
		for x := 0; x < g.width; x++ {
			pos := CellPosition{X: x, Y: y}
			switch {
			case pos == g.start:
				output.WriteString("S")
			case pos == g.goal:
				output.WriteString("G")
			case g.walls[y][x]:
				output.WriteString("█")
			default:
				output.WriteString(" ")
			}
		}
		output.WriteString("|\n")
	}
	output.WriteString("+" + strings.Repeat("-", g.width) + "+\n")

	return output.String()
}

func copyWalls(walls [][]bool) [][]bool {
	dup := make([][]bool, len(walls))
	for y := range walls {
		dup[y] = make([]bool, len(walls[y]))
		copy(dup[y], walls[y])
	}
	return dup
}
