package runner

import (
	"testing"

	"github.com/darthkolli145/Mazegame/maze"
	"github.com/stretchr/testify/assert"
)

// corridorGrid is the 5x5 grid with a single open corridor down column
// 0, start (0,0) and goal (0,4).
func corridorGrid(t *testing.T) *maze.Grid {
	t.Helper()
	walls := make([][]bool, 5)
	for y := range walls {
		walls[y] = make([]bool, 5)
		for x := range walls[y] {
			walls[y][x] = x != 0
		}
	}
	g, err := maze.NewGrid(walls, maze.CellPosition{X: 0, Y: 0}, maze.CellPosition{X: 0, Y: 4})
	assert.NoError(t, err)
	return g
}

func corridorPath() []maze.CellPosition {
	return []maze.CellPosition{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}}
}

func TestValidatePath(t *testing.T) {
	g := corridorGrid(t)
	start, goal := g.Start(), g.Goal()

	t.Run("accepts the straight corridor path", func(t *testing.T) {
		assert.NoError(t, ValidatePath(g, corridorPath(), start, goal))
	})

	t.Run("rejects a wall cell citing its index", func(t *testing.T) {
		path := []maze.CellPosition{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 4}}
		err := ValidatePath(g, path, start, goal)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, 1, verr.Index)
		assert.Equal(t, maze.CellPosition{X: 1, Y: 0}, verr.Cell)
	})

	t.Run("rejects an empty path", func(t *testing.T) {
		var verr *ValidationError
		assert.ErrorAs(t, ValidatePath(g, nil, start, goal), &verr)
	})

	t.Run("rejects a path not beginning at start", func(t *testing.T) {
		path := corridorPath()[1:]
		var verr *ValidationError
		assert.ErrorAs(t, ValidatePath(g, path, start, goal), &verr)
		assert.Equal(t, 0, verr.Index)
	})

	t.Run("rejects a path not ending at goal", func(t *testing.T) {
		path := corridorPath()[:4]
		var verr *ValidationError
		assert.ErrorAs(t, ValidatePath(g, path, start, goal), &verr)
		assert.Equal(t, 3, verr.Index)
		assert.Equal(t, "does not end at goal", verr.Reason)
	})

	t.Run("rejects an out-of-bound cell", func(t *testing.T) {
		path := []maze.CellPosition{{X: 0, Y: 0}, {X: 0, Y: -1}}
		var verr *ValidationError
		assert.ErrorAs(t, ValidatePath(g, path, start, goal), &verr)
		assert.Equal(t, 1, verr.Index)
		assert.Equal(t, "out of bounds", verr.Reason)
	})

	t.Run("rejects a diagonal or skipping step", func(t *testing.T) {
		path := []maze.CellPosition{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}}
		var verr *ValidationError
		assert.ErrorAs(t, ValidatePath(g, path, start, goal), &verr)
		assert.Equal(t, 1, verr.Index)
		assert.Equal(t, "not adjacent to previous cell", verr.Reason)
	})

	t.Run("classifies as a validation failure", func(t *testing.T) {
		err := ValidatePath(g, nil, start, goal)
		assert.Equal(t, ReasonValidation, Classify(err))
	})
}
