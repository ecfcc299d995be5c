package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/darthkolli145/Mazegame/config"
	"github.com/darthkolli145/Mazegame/game"
	"github.com/darthkolli145/Mazegame/maze"
)

// replayBudgetFactor bounds replay length relative to the maze area, so
// a portal cycle cannot spin the loop forever.
const replayBudgetFactor = 4

// Runner executes one solver against a live game session: compute,
// validate, replay.
type Runner struct {
	solver   Solver
	fallback Solver
	logger   *log.Logger
}

// Config holds the dependencies of a Runner.
type Config struct {
	Solver Solver      // solver under test; required
	Logger *log.Logger // defaults to stdout
}

// Result summarizes one algorithm run.
type Result struct {
	Path      []maze.CellPosition // the validated path the solver produced
	Moves     int                 // steps replayed against the session
	Replans   int                 // routes re-derived after displacement
	Completed bool                // actor reached the goal
}

// New creates a Runner. The built-in BFS solver backs route
// re-derivation after teleport or portal displacement.
func New(c *Config) (*Runner, error) {
	if c.Solver == nil {
		return nil, errors.New("runner requires a solver")
	}
	logger := c.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags)
	}
	return &Runner{solver: c.Solver, fallback: NewBFSSolver(), logger: logger}, nil
}

// Run invokes the solver with a defensive copy of the grid, validates
// the returned path and replays it step by step against the session.
// Any failure aborts the run and is reported to the caller with a
// reason code via Classify; the session stays usable for manual play.
func (r *Runner) Run(ctx context.Context, sess *game.Session) (*Result, error) {
	grid := sess.Grid()
	start, goal := sess.Pos(), grid.Goal()

	path, err := r.solver.Solve(ctx, grid.Walls(), start, goal)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, err
	}

	if err := ValidatePath(grid, path, start, goal); err != nil {
		return nil, err
	}

	return r.replay(ctx, sess, path)
}

// replay walks the session along the validated path. Powerup teleports
// and portal transits displace the actor off the precomputed route;
// continuing at the stale index would drift, so the remaining route is
// re-derived from the live position instead.
func (r *Runner) replay(ctx context.Context, sess *game.Session, path []maze.CellPosition) (*Result, error) {
	grid := sess.Grid()
	budget := grid.Width() * grid.Height() * replayBudgetFactor
	res := &Result{Path: path}

	i := 1
	for !sess.Completed() {
		if res.Moves >= budget {
			return res, fmt.Errorf("replay aborted after %d steps without reaching the goal", res.Moves)
		}

		if i >= len(path) || !sess.Pos().Adjacent(path[i]) {
			rederived, err := r.rederive(ctx, sess)
			if err != nil {
				return res, err
			}
			path, i = rederived, 1
			res.Replans++
			continue
		}

		stepRes, err := sess.Step(path[i])
		if err != nil {
			return res, fmt.Errorf("replay step %d: %w", i, err)
		}
		res.Moves++
		i++

		if stepRes.Displaced && !sess.Completed() {
			r.logger.Printf("%s[INFO]%s replay displaced to %s, re-deriving route", config.LogInfoColor, config.LogColorReset, stepRes.Pos)
			rederived, err := r.rederive(ctx, sess)
			if err != nil {
				return res, err
			}
			path, i = rederived, 1
			res.Replans++
		}
	}

	res.Completed = true
	return res, nil
}

func (r *Runner) rederive(ctx context.Context, sess *game.Session) ([]maze.CellPosition, error) {
	grid := sess.Grid()
	path, err := r.fallback.Solve(ctx, grid.Walls(), sess.Pos(), grid.Goal())
	if err != nil {
		return nil, fmt.Errorf("re-deriving route from %s: %w", sess.Pos(), err)
	}
	return path, nil
}
