package game

import "github.com/darthkolli145/Mazegame/maze"

// PowerupKind names the effect a powerup applies when collected.
type PowerupKind string

const (
	PowerupSpeed    PowerupKind = "speed"
	PowerupReveal   PowerupKind = "reveal"
	PowerupTeleport PowerupKind = "teleport"
)

// powerupKinds is the pool placement draws from.
var powerupKinds = []PowerupKind{PowerupSpeed, PowerupReveal, PowerupTeleport}

// Powerup is a collectible sitting on one open maze cell.
type Powerup struct {
	Pos       maze.CellPosition
	Kind      PowerupKind
	Collected bool
}

// Portal is one directed end of a linked portal pair. Entering the
// entry cell relocates the actor to the exit cell. A pair burns out
// after one transit; a portal landing the actor behind a corridor it
// guards would otherwise bounce it back and forth forever.
type Portal struct {
	Entry maze.CellPosition
	Exit  maze.CellPosition
	Pair  int
	Used  bool
}

// FeatureSet holds the powerups and portals attached to one maze.
type FeatureSet struct {
	Powerups []*Powerup
	Portals  []*Portal
}

// PowerupAt returns the powerup on the cell, or nil.
func (f *FeatureSet) PowerupAt(pos maze.CellPosition) *Powerup {
	for _, p := range f.Powerups {
		if p.Pos == pos {
			return p
		}
	}
	return nil
}

// PortalAt returns the portal whose entry is the cell, or nil.
func (f *FeatureSet) PortalAt(pos maze.CellPosition) *Portal {
	for _, p := range f.Portals {
		if p.Entry == pos {
			return p
		}
	}
	return nil
}

// Occupied reports whether any feature sits on the cell.
func (f *FeatureSet) Occupied(pos maze.CellPosition) bool {
	return f.PowerupAt(pos) != nil || f.PortalAt(pos) != nil
}
