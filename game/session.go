/*
Package game holds the live state of one maze run: the generated grid,
the powerups and portals placed on it, and the actor walking it. A
Session owns all of that state exclusively; there is no concurrent
access, every read and write happens on the game-loop goroutine.
*/
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/darthkolli145/Mazegame/maze"
	"github.com/darthkolli145/Mazegame/scoreboard"
	"github.com/google/uuid"
)

// Session errors.
var (
	ErrSessionOver = errors.New("session already completed")
	ErrBlockedCell = errors.New("cell is a wall or out of bounds")
	ErrNotAdjacent = errors.New("cell is not adjacent to the actor")
)

// Score bonuses per powerup kind, from the scoring table of the game.
const (
	speedBonus    = 100
	teleportBonus = 150
	revealBonus   = 200

	baseTimeScore = 1000
	baseMoveScore = 1000
)

// Params carries everything needed to start one session. The service
// layer maps a difficulty tier onto these.
type Params struct {
	Difficulty      string
	Width           int
	Height          int
	PowerupCount    int
	PortalPairs     int
	TimeFactor      int
	MovePenalty     int
	ScoreMultiplier float64
	Seed            int64
}

// StepResult reports what one step did to the session.
type StepResult struct {
	Pos         maze.CellPosition // where the actor actually ended up
	Collected   *Powerup          // powerup collected on this step, if any
	PortalUsed  *Portal           // portal transited on this step, if any
	Displaced   bool              // final position differs from the stepped-to cell
	ReachedGoal bool
}

// Session is one run of the game over a single maze.
type Session struct {
	ID       uuid.UUID
	grid     *maze.Grid
	features *FeatureSet
	params   Params

	pos       maze.CellPosition
	moves     int
	bonus     int
	collected int
	revealed  bool
	startedAt time.Time
	completed bool
}

// NewSession generates a maze and its features for the given parameters
// and puts the actor on the start cell.
func NewSession(p Params) (*Session, error) {
	grid, err := maze.Generate(p.Width, p.Height, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	// Placement draws from its own stream so maze layout and feature
	// layout stay independently reproducible.
	rng := rand.New(rand.NewSource(p.Seed + 1))
	features := PlaceFeatures(grid, p.PowerupCount, p.PortalPairs, rng)
	return NewSessionWith(grid, features, p)
}

// NewSessionWith builds a session around an existing grid and feature
// set.
func NewSessionWith(grid *maze.Grid, features *FeatureSet, p Params) (*Session, error) {
	if grid == nil {
		return nil, errors.New("nil grid")
	}
	if features == nil {
		features = &FeatureSet{}
	}
	return &Session{
		ID:        uuid.New(),
		grid:      grid,
		features:  features,
		params:    p,
		pos:       grid.Start(),
		startedAt: time.Now(),
	}, nil
}

// Grid returns the maze the session runs on.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Features returns the powerups and portals attached to the maze.
func (s *Session) Features() *FeatureSet { return s.features }

// Pos returns the actor's live position.
func (s *Session) Pos() maze.CellPosition { return s.pos }

// Moves returns the number of steps taken so far.
func (s *Session) Moves() int { return s.moves }

// Bonus returns the score accrued from powerups so far.
func (s *Session) Bonus() int { return s.bonus }

// Revealed reports whether a reveal powerup has been collected, which
// flags the remaining route for display.
func (s *Session) Revealed() bool { return s.revealed }

// Completed reports whether the actor has reached the goal.
func (s *Session) Completed() bool { return s.completed }

// Step advances the actor to the given cell. The cell must be in
// bounds, open and adjacent to the actor's live position. Powerup and
// portal effects fire after the move, so the reported final position
// may differ from the requested cell; callers replaying a precomputed
// path must re-synchronize on StepResult.Pos when Displaced is set.
func (s *Session) Step(to maze.CellPosition) (StepResult, error) {
	if s.completed {
		return StepResult{}, ErrSessionOver
	}
	if s.grid.IsWall(to) {
		return StepResult{}, fmt.Errorf("%w: %s", ErrBlockedCell, to)
	}
	if !s.pos.Adjacent(to) {
		return StepResult{}, fmt.Errorf("%w: %s from %s", ErrNotAdjacent, to, s.pos)
	}

	s.pos = to
	s.moves++
	res := StepResult{Pos: to}

	if powerup := s.features.PowerupAt(s.pos); powerup != nil && !powerup.Collected {
		powerup.Collected = true
		s.collected++
		s.applyPowerup(powerup)
		res.Collected = powerup
	}

	if portal := s.features.PortalAt(s.pos); portal != nil && !portal.Used {
		s.pos = portal.Exit
		res.PortalUsed = portal
		for _, p := range s.features.Portals {
			if p.Pair == portal.Pair {
				p.Used = true
			}
		}
	}

	res.Pos = s.pos
	res.Displaced = res.Pos != to
	if s.pos == s.grid.Goal() {
		s.completed = true
		res.ReachedGoal = true
	}
	return res, nil
}

// applyPowerup applies the named effect of a collected powerup.
func (s *Session) applyPowerup(p *Powerup) {
	switch p.Kind {
	case PowerupSpeed:
		s.bonus += speedBonus
	case PowerupReveal:
		s.bonus += revealBonus
		s.revealed = true
	case PowerupTeleport:
		s.bonus += teleportBonus
		s.teleportTowardGoal()
	}
}

// teleportTowardGoal hops the actor one open cell toward the goal,
// preferring the axis with the larger remaining distance. The actor
// stays put when both candidate cells are blocked by walls.
func (s *Session) teleportTowardGoal() {
	goal := s.grid.Goal()
	dx, dy := goal.X-s.pos.X, goal.Y-s.pos.Y

	var candidates []maze.CellPosition
	stepX := maze.CellPosition{X: s.pos.X + sign(dx), Y: s.pos.Y}
	stepY := maze.CellPosition{X: s.pos.X, Y: s.pos.Y + sign(dy)}
	if abs(dx) >= abs(dy) {
		candidates = []maze.CellPosition{stepX, stepY}
	} else {
		candidates = []maze.CellPosition{stepY, stepX}
	}

	for _, c := range candidates {
		if c != s.pos && !s.grid.IsWall(c) {
			s.pos = c
			return
		}
	}
}

// Finish closes the session and produces its score record. Scoring
// combines the powerup bonus with a time score and a move score, then
// applies the difficulty multiplier.
func (s *Session) Finish(player string) scoreboard.Record {
	elapsed := time.Since(s.startedAt).Seconds()
	timeScore := max(baseTimeScore-int(elapsed)*s.params.TimeFactor, 0)
	moveScore := max(baseMoveScore-s.moves*s.params.MovePenalty, 0)
	final := int(float64(s.bonus+timeScore+moveScore) * s.params.ScoreMultiplier)

	return scoreboard.Record{
		Player:            player,
		Difficulty:        s.params.Difficulty,
		Score:             final,
		ElapsedSeconds:    elapsed,
		Moves:             s.moves,
		PowerupsCollected: s.collected,
		CreatedAt:         time.Now().UTC(),
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
