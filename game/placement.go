package game

import (
	"math/rand"

	"github.com/darthkolli145/Mazegame/maze"
)

// PlaceFeatures scatters powerups and linked portal pairs over the open
// cells of the grid. Candidate cells exclude the start, the goal and
// cells already holding a feature, so features never block the carved
// route. When fewer eligible cells remain than requested, it places as
// many as possible; callers can compare the returned set's sizes with
// the requested counts.
func PlaceFeatures(grid *maze.Grid, powerupCount, portalPairs int, rng *rand.Rand) *FeatureSet {
	eligible := make([]maze.CellPosition, 0)
	for _, cell := range grid.OpenCells() {
		if cell != grid.Start() && cell != grid.Goal() {
			eligible = append(eligible, cell)
		}
	}
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	fs := &FeatureSet{}
	next := 0

	for i := 0; i < powerupCount && next < len(eligible); i++ {
		fs.Powerups = append(fs.Powerups, &Powerup{
			Pos:  eligible[next],
			Kind: powerupKinds[rng.Intn(len(powerupKinds))],
		})
		next++
	}

	// A pair needs two distinct cells; an unpaired leftover cell stays
	// featureless.
	for i := 0; i < portalPairs && next+1 < len(eligible); i++ {
		entry, exit := eligible[next], eligible[next+1]
		next += 2
		fs.Portals = append(fs.Portals,
			&Portal{Entry: entry, Exit: exit, Pair: i},
			&Portal{Entry: exit, Exit: entry, Pair: i},
		)
	}

	return fs
}
