package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	minDimension = 2
	maxDimension = 64
)

// ErrInvalidDimensions reports maze dimensions the generator cannot work
// with.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Generate carves a random maze of the given dimensions. The start is
// the top-left cell and the goal the bottom-right one; both are always
// open and always connected. The same (width, height, seed) triple
// reproduces the same maze.
func Generate(width, height int, seed int64) (*Grid, error) {
	if min(width, height) < minDimension || max(width, height) > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		walls:  make([][]bool, height),
		start:  CellPosition{X: 0, Y: 0},
		goal:   CellPosition{X: width - 1, Y: height - 1},
	}
	for y := range g.walls {
		g.walls[y] = make([]bool, width)
		for x := range g.walls[y] {
			g.walls[y][x] = true
		}
	}

	rng := rand.New(rand.NewSource(seed))
	g.carve(rng)
	g.connectGoal()

	if !g.Connected(g.start, g.goal) {
		return nil, fmt.Errorf("generated maze does not connect %s to %s", g.start, g.goal)
	}
	return g, nil
}

// carve runs randomized depth-first carving from the start cell with an
// explicit stack, jumping two cells at a time and opening the wall
// between. Every opened cell ends up in one connected component.
func (g *Grid) carve(rng *rand.Rand) {
	deltas := []CellPosition{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

	g.walls[g.start.Y][g.start.X] = false
	stack := []CellPosition{g.start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var moves []CellPosition
		for _, d := range deltas {
			next := CellPosition{X: cur.X + d.X*2, Y: cur.Y + d.Y*2}
			if g.InBound(next) && g.walls[next.Y][next.X] {
				moves = append(moves, d)
			}
		}
		if len(moves) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := moves[rng.Intn(len(moves))]
		g.walls[cur.Y+d.Y][cur.X+d.X] = false
		g.walls[cur.Y+d.Y*2][cur.X+d.X*2] = false
		stack = append(stack, CellPosition{X: cur.X + d.X*2, Y: cur.Y + d.Y*2})
	}
}

// connectGoal opens the goal cell and, when even dimensions leave it
// sealed off the carved lattice, cuts a corridor back toward the start
// until it meets an already-open cell.
func (g *Grid) connectGoal() {
	g.walls[g.goal.Y][g.goal.X] = false

	cur := g.goal
	for cur != g.start {
		next := cur
		if next.X > 0 {
			next.X--
		} else {
			next.Y--
		}
		if !g.walls[next.Y][next.X] {
			return
		}
		g.walls[next.Y][next.X] = false
		cur = next
	}
}
