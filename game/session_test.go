package game

import (
	"testing"

	"github.com/darthkolli145/Mazegame/maze"
	"github.com/stretchr/testify/assert"
)

func openGrid(t *testing.T, size int) *maze.Grid {
	t.Helper()
	walls := make([][]bool, size)
	for y := range walls {
		walls[y] = make([]bool, size)
	}
	g, err := maze.NewGrid(walls, maze.CellPosition{X: 0, Y: 0}, maze.CellPosition{X: size - 1, Y: size - 1})
	assert.NoError(t, err)
	return g
}

func testParams() Params {
	return Params{
		Difficulty:      "medium",
		TimeFactor:      10,
		MovePenalty:     5,
		ScoreMultiplier: 1.0,
	}
}

func TestSessionStep(t *testing.T) {
	t.Run("rejects walls, out of bounds and non-adjacent cells", func(t *testing.T) {
		walls := make([][]bool, 3)
		for y := range walls {
			walls[y] = make([]bool, 3)
		}
		walls[0][1] = true
		g, err := maze.NewGrid(walls, maze.CellPosition{X: 0, Y: 0}, maze.CellPosition{X: 2, Y: 2})
		assert.NoError(t, err)
		sess, err := NewSessionWith(g, nil, testParams())
		assert.NoError(t, err)

		_, err = sess.Step(maze.CellPosition{X: 1, Y: 0})
		assert.ErrorIs(t, err, ErrBlockedCell)

		_, err = sess.Step(maze.CellPosition{X: -1, Y: 0})
		assert.ErrorIs(t, err, ErrBlockedCell)

		_, err = sess.Step(maze.CellPosition{X: 2, Y: 0})
		assert.ErrorIs(t, err, ErrNotAdjacent)

		assert.Equal(t, 0, sess.Moves())
	})

	t.Run("walking to the goal completes the session", func(t *testing.T) {
		sess, err := NewSessionWith(openGrid(t, 3), nil, testParams())
		assert.NoError(t, err)

		route := []maze.CellPosition{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
		for _, cell := range route[:len(route)-1] {
			res, err := sess.Step(cell)
			assert.NoError(t, err)
			assert.False(t, res.ReachedGoal)
		}

		res, err := sess.Step(route[len(route)-1])
		assert.NoError(t, err)
		assert.True(t, res.ReachedGoal)
		assert.True(t, sess.Completed())
		assert.Equal(t, 4, sess.Moves())

		_, err = sess.Step(maze.CellPosition{X: 1, Y: 2})
		assert.ErrorIs(t, err, ErrSessionOver)
	})
}

func TestSessionPowerups(t *testing.T) {
	t.Run("speed powerup grants its bonus once", func(t *testing.T) {
		fs := &FeatureSet{Powerups: []*Powerup{{Pos: maze.CellPosition{X: 0, Y: 1}, Kind: PowerupSpeed}}}
		sess, err := NewSessionWith(openGrid(t, 3), fs, testParams())
		assert.NoError(t, err)

		res, err := sess.Step(maze.CellPosition{X: 0, Y: 1})
		assert.NoError(t, err)
		assert.NotNil(t, res.Collected)
		assert.Equal(t, 100, sess.Bonus())

		// Stepping onto the same cell again collects nothing.
		_, err = sess.Step(maze.CellPosition{X: 0, Y: 0})
		assert.NoError(t, err)
		res, err = sess.Step(maze.CellPosition{X: 0, Y: 1})
		assert.NoError(t, err)
		assert.Nil(t, res.Collected)
		assert.Equal(t, 100, sess.Bonus())
	})

	t.Run("reveal powerup flags the session", func(t *testing.T) {
		fs := &FeatureSet{Powerups: []*Powerup{{Pos: maze.CellPosition{X: 1, Y: 0}, Kind: PowerupReveal}}}
		sess, err := NewSessionWith(openGrid(t, 3), fs, testParams())
		assert.NoError(t, err)

		_, err = sess.Step(maze.CellPosition{X: 1, Y: 0})
		assert.NoError(t, err)
		assert.True(t, sess.Revealed())
		assert.Equal(t, 200, sess.Bonus())
	})

	t.Run("teleport powerup hops the actor toward the goal", func(t *testing.T) {
		fs := &FeatureSet{Powerups: []*Powerup{{Pos: maze.CellPosition{X: 1, Y: 0}, Kind: PowerupTeleport}}}
		sess, err := NewSessionWith(openGrid(t, 4), fs, testParams())
		assert.NoError(t, err)

		res, err := sess.Step(maze.CellPosition{X: 1, Y: 0})
		assert.NoError(t, err)
		assert.True(t, res.Displaced)
		assert.Equal(t, maze.CellPosition{X: 1, Y: 1}, res.Pos)
		assert.Equal(t, res.Pos, sess.Pos())
		assert.Equal(t, 150, sess.Bonus())
	})
}

func TestSessionPortals(t *testing.T) {
	t.Run("portal entry relocates the actor to the linked exit", func(t *testing.T) {
		fs := &FeatureSet{Portals: []*Portal{
			{Entry: maze.CellPosition{X: 0, Y: 1}, Exit: maze.CellPosition{X: 2, Y: 1}, Pair: 0},
			{Entry: maze.CellPosition{X: 2, Y: 1}, Exit: maze.CellPosition{X: 0, Y: 1}, Pair: 0},
		}}
		sess, err := NewSessionWith(openGrid(t, 4), fs, testParams())
		assert.NoError(t, err)

		res, err := sess.Step(maze.CellPosition{X: 0, Y: 1})
		assert.NoError(t, err)
		assert.True(t, res.Displaced)
		assert.NotNil(t, res.PortalUsed)
		assert.Equal(t, maze.CellPosition{X: 2, Y: 1}, sess.Pos())

		// The pair burned out; walking back over either end is a plain
		// move.
		_, err = sess.Step(maze.CellPosition{X: 2, Y: 0})
		assert.NoError(t, err)
		res, err = sess.Step(maze.CellPosition{X: 2, Y: 1})
		assert.NoError(t, err)
		assert.Nil(t, res.PortalUsed)
		assert.False(t, res.Displaced)
	})

	t.Run("portal exit on the goal completes the session", func(t *testing.T) {
		fs := &FeatureSet{Portals: []*Portal{
			{Entry: maze.CellPosition{X: 0, Y: 1}, Exit: maze.CellPosition{X: 2, Y: 2}, Pair: 0},
		}}
		sess, err := NewSessionWith(openGrid(t, 3), fs, testParams())
		assert.NoError(t, err)

		res, err := sess.Step(maze.CellPosition{X: 0, Y: 1})
		assert.NoError(t, err)
		assert.True(t, res.ReachedGoal)
		assert.True(t, sess.Completed())
	})
}

func TestSessionFinish(t *testing.T) {
	sess, err := NewSessionWith(openGrid(t, 3), &FeatureSet{
		Powerups: []*Powerup{{Pos: maze.CellPosition{X: 0, Y: 1}, Kind: PowerupSpeed}},
	}, testParams())
	assert.NoError(t, err)

	for _, cell := range []maze.CellPosition{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		_, err := sess.Step(cell)
		assert.NoError(t, err)
	}

	rec := sess.Finish("Tester")
	assert.Equal(t, "Tester", rec.Player)
	assert.Equal(t, "medium", rec.Difficulty)
	assert.Equal(t, 4, rec.Moves)
	assert.Equal(t, 1, rec.PowerupsCollected)
	// bonus 100 + time score 1000 + move score 1000-4*5, multiplier 1.0
	assert.Equal(t, 2080, rec.Score)
}

func TestNewSessionIsReproducible(t *testing.T) {
	p := Params{
		Difficulty:      "easy",
		Width:           10,
		Height:          10,
		PowerupCount:    2,
		PortalPairs:     1,
		TimeFactor:      5,
		MovePenalty:     2,
		ScoreMultiplier: 0.8,
		Seed:            77,
	}
	a, err := NewSession(p)
	assert.NoError(t, err)
	b, err := NewSession(p)
	assert.NoError(t, err)

	assert.Equal(t, a.Grid().Walls(), b.Grid().Walls())
	assert.Equal(t, a.Features(), b.Features())
}
