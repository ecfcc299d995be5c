package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/darthkolli145/Mazegame/config"
	"github.com/darthkolli145/Mazegame/game"
	"github.com/darthkolli145/Mazegame/runner"
	"github.com/darthkolli145/Mazegame/scoreboard"
	"github.com/darthkolli145/Mazegame/service/i"
	"github.com/google/uuid"
)

// ErrUnknownDifficulty reports a difficulty tier missing from the
// configuration table. It is fatal to session start, before anything
// renders.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// GameService starts maze matches, drives algorithm mode and records
// finished scores.
type GameService struct {
	store             i.ScoreStore
	logger            *log.Logger
	sessions          map[uuid.UUID]*game.Session
	solverTimeout     time.Duration
	solverOutputLimit int64
}

// Config holds the dependencies of a GameService.
type Config struct {
	Store             i.ScoreStore
	Logger            *log.Logger
	SolverTimeout     time.Duration
	SolverOutputLimit int64
}

// NewGameService wires a GameService from its dependencies.
func NewGameService(c *Config) (*GameService, error) {
	if c.Store == nil {
		return nil, errors.New("game service requires a score store")
	}
	if c.Logger == nil {
		return nil, errors.New("game service requires a logger")
	}
	return &GameService{
		store:             c.Store,
		logger:            c.Logger,
		sessions:          make(map[uuid.UUID]*game.Session),
		solverTimeout:     c.SolverTimeout,
		solverOutputLimit: c.SolverOutputLimit,
	}, nil
}

// StartMatch creates a session for the difficulty tier. The seed makes
// the maze and feature layout reproducible.
func (g *GameService) StartMatch(difficulty string, seed int64) (*game.Session, error) {
	settings, ok := config.Difficulties[difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}

	sess, err := game.NewSession(game.Params{
		Difficulty:      difficulty,
		Width:           settings.MazeWidth,
		Height:          settings.MazeHeight,
		PowerupCount:    settings.PowerupCount,
		PortalPairs:     settings.PortalPairCount,
		TimeFactor:      settings.TimeFactor,
		MovePenalty:     settings.MovePenalty,
		ScoreMultiplier: settings.ScoreMultiplier,
		Seed:            seed,
	})
	if err != nil {
		g.logger.Printf("%s[ERROR]%s creating session: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, err
	}

	g.sessions[sess.ID] = sess
	g.logger.Printf("%s[INFO]%s started %s match %s (%dx%d, seed %d)", config.LogInfoColor, config.LogColorReset,
		difficulty, sess.ID, settings.MazeWidth, settings.MazeHeight, seed)
	return sess, nil
}

// RunAlgorithm plays the session with a solver: the executable at
// solverRef, or the built-in BFS solver when solverRef is empty. A
// failed run is reported with its reason code and leaves the session in
// manual control; it never kills the process.
func (g *GameService) RunAlgorithm(ctx context.Context, sess *game.Session, solverRef string) (*runner.Result, error) {
	var solver runner.Solver
	if solverRef == "" {
		solver = runner.NewBFSSolver()
	} else {
		loaded, err := runner.Load(solverRef, g.solverTimeout, g.solverOutputLimit)
		if err != nil {
			return nil, g.reportFailure(err)
		}
		solver = loaded
	}

	r, err := runner.New(&runner.Config{Solver: solver, Logger: g.logger})
	if err != nil {
		return nil, err
	}

	res, err := r.Run(ctx, sess)
	if err != nil {
		return nil, g.reportFailure(err)
	}

	g.logger.Printf("%s[INFO]%s algorithm run finished in %d moves (%d replans)", config.LogInfoColor, config.LogColorReset,
		res.Moves, res.Replans)
	return res, nil
}

// FinishMatch closes a session, persists its score record and drops the
// session from the bookkeeping.
func (g *GameService) FinishMatch(ctx context.Context, sess *game.Session, player string) (scoreboard.Record, error) {
	rec := sess.Finish(player)
	delete(g.sessions, sess.ID)

	if err := g.store.Record(ctx, rec); err != nil {
		g.logger.Printf("%s[ERROR]%s recording score: %s", config.LogErrorColor, config.LogColorReset, err)
		return rec, err
	}

	g.logger.Printf("%s[INFO]%s recorded %d points for %s on %s", config.LogInfoColor, config.LogColorReset,
		rec.Score, rec.Player, rec.Difficulty)
	return rec, nil
}

// TopScores fetches the best scores for a difficulty tier.
func (g *GameService) TopScores(ctx context.Context, difficulty string, n int) ([]scoreboard.Record, error) {
	if _, ok := config.Difficulties[difficulty]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
	return g.store.TopScores(ctx, difficulty, n)
}

// reportFailure logs an algorithm-run failure with its reason code and
// hands the error back for the caller to fall back to manual control.
func (g *GameService) reportFailure(err error) error {
	reason := runner.Classify(err)
	g.logger.Printf("%s[ERROR]%s algorithm run failed (%s): %s; falling back to manual control",
		config.LogErrorColor, config.LogColorReset, reason, err)
	return err
}
