package game

import (
	"math/rand"
	"testing"

	"github.com/darthkolli145/Mazegame/maze"
	"github.com/stretchr/testify/assert"
)

func TestPlaceFeatures(t *testing.T) {
	t.Run("features avoid walls, start, goal and each other", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, err := maze.Generate(15, 15, seed)
			assert.NoError(t, err)

			fs := PlaceFeatures(g, 3, 2, rand.New(rand.NewSource(seed)))
			assert.Len(t, fs.Powerups, 3)
			assert.Len(t, fs.Portals, 4)

			seen := make(map[maze.CellPosition]bool)
			check := func(pos maze.CellPosition) {
				assert.False(t, g.IsWall(pos), "feature on wall at %s", pos)
				assert.NotEqual(t, g.Start(), pos)
				assert.NotEqual(t, g.Goal(), pos)
				assert.False(t, seen[pos], "two features on %s", pos)
				seen[pos] = true
			}
			for _, p := range fs.Powerups {
				check(p.Pos)
			}
			for _, p := range fs.Portals {
				if !seen[p.Entry] {
					check(p.Entry)
				}
				assert.NotEqual(t, p.Entry, p.Exit)
			}
		}
	})

	t.Run("portal pairs are linked both ways", func(t *testing.T) {
		g, err := maze.Generate(10, 10, 3)
		assert.NoError(t, err)

		fs := PlaceFeatures(g, 0, 2, rand.New(rand.NewSource(3)))
		assert.Len(t, fs.Portals, 4)
		for _, p := range fs.Portals {
			linked := fs.PortalAt(p.Exit)
			assert.NotNil(t, linked)
			assert.Equal(t, p.Entry, linked.Exit)
			assert.Equal(t, p.Pair, linked.Pair)
		}
	})

	t.Run("shortfall places as many as possible without failing", func(t *testing.T) {
		g, err := maze.Generate(2, 2, 1)
		assert.NoError(t, err)

		eligible := len(g.OpenCells()) - 2 // minus start and goal
		fs := PlaceFeatures(g, 10, 3, rand.New(rand.NewSource(1)))
		assert.LessOrEqual(t, len(fs.Powerups), eligible)
		assert.Empty(t, fs.Portals) // nothing left for a pair
	})

	t.Run("same rng seed reproduces the same layout", func(t *testing.T) {
		g, err := maze.Generate(15, 15, 9)
		assert.NoError(t, err)

		a := PlaceFeatures(g, 3, 1, rand.New(rand.NewSource(5)))
		b := PlaceFeatures(g, 3, 1, rand.New(rand.NewSource(5)))
		assert.Equal(t, a, b)
	})
}
