package runner

import "github.com/darthkolli145/Mazegame/maze"

// ValidatePath checks a solver-returned path before replay: every cell
// in bounds and open, first cell exactly the start, last cell the goal,
// and consecutive cells 4-directionally adjacent. The first violation
// aborts validation with the offending cell and index.
func ValidatePath(grid *maze.Grid, path []maze.CellPosition, start, goal maze.CellPosition) error {
	if len(path) == 0 {
		return &ValidationError{Index: 0, Reason: "empty path"}
	}
	if path[0] != start {
		return &ValidationError{Index: 0, Cell: path[0], Reason: "does not begin at start"}
	}

	for i, cell := range path {
		if !grid.InBound(cell) {
			return &ValidationError{Index: i, Cell: cell, Reason: "out of bounds"}
		}
		if grid.IsWall(cell) {
			return &ValidationError{Index: i, Cell: cell, Reason: "wall cell"}
		}
		if i > 0 && !cell.Adjacent(path[i-1]) {
			return &ValidationError{Index: i, Cell: cell, Reason: "not adjacent to previous cell"}
		}
	}

	if last := path[len(path)-1]; last != goal {
		return &ValidationError{Index: len(path) - 1, Cell: last, Reason: "does not end at goal"}
	}
	return nil
}
