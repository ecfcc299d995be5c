/*
Package runner loads user-supplied maze solvers, executes them under a
time and output budget, validates the path they return against the
maze, and replays a validated path against the live game session.

External solvers run out of process: the source reference is a path to
an executable that receives the maze as JSON on stdin and answers with
a path on stdout. Process isolation keeps a runaway or malicious solver
from freezing the game loop; the timeout is enforced by killing the
process.
*/
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/darthkolli145/Mazegame/maze"
)

// Solver produces a candidate route from start to goal over a wall
// matrix (true = wall). The matrix is always a defensive copy; solvers
// may scribble on it.
type Solver interface {
	Solve(ctx context.Context, walls [][]bool, start, goal maze.CellPosition) ([]maze.CellPosition, error)
}

// ErrNoPath reports that a solver found no route from start to goal.
var ErrNoPath = errors.New("no path between start and goal")

// BFSSolver is the built-in breadth-first solver. It backs algorithm
// mode when no external solver is loaded and re-derives routes after
// the actor is displaced mid-replay.
type BFSSolver struct{}

// NewBFSSolver returns the built-in solver.
func NewBFSSolver() *BFSSolver { return &BFSSolver{} }

// Solve runs breadth-first search and reconstructs the shortest route.
func (b *BFSSolver) Solve(ctx context.Context, walls [][]bool, start, goal maze.CellPosition) ([]maze.CellPosition, error) {
	height := len(walls)
	if height == 0 {
		return nil, fmt.Errorf("%w: empty maze", ErrNoPath)
	}
	width := len(walls[0])

	inBound := func(p maze.CellPosition) bool {
		return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
	}
	if !inBound(start) || !inBound(goal) || walls[start.Y][start.X] || walls[goal.Y][goal.X] {
		return nil, fmt.Errorf("%w: start or goal blocked", ErrNoPath)
	}

	deltas := []maze.CellPosition{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	parent := map[maze.CellPosition]maze.CellPosition{start: start}
	queue := []maze.CellPosition{start}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return reconstruct(parent, start, goal), nil
		}

		for _, d := range deltas {
			next := maze.CellPosition{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !inBound(next) || walls[next.Y][next.X] {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	return nil, ErrNoPath
}

func reconstruct(parent map[maze.CellPosition]maze.CellPosition, start, goal maze.CellPosition) []maze.CellPosition {
	var path []maze.CellPosition
	for cur := goal; cur != start; cur = parent[cur] {
		path = append(path, cur)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
