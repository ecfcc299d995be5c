package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/darthkolli145/Mazegame/maze"
)

// Defaults for the solver execution budget.
const (
	DefaultTimeout     = 5 * time.Second
	DefaultOutputLimit = 1 << 20
)

// solveRequest is the wire form handed to a solver on stdin.
type solveRequest struct {
	Maze  [][]bool `json:"maze"`
	Start [2]int   `json:"start"`
	Goal  [2]int   `json:"goal"`
}

// solveResponse is the wire form a solver answers with on stdout.
type solveResponse struct {
	Path  [][2]int `json:"path"`
	Error string   `json:"error,omitempty"`
}

// SubprocessSolver runs a user-supplied solver executable out of
// process, speaking JSON over stdin/stdout.
type SubprocessSolver struct {
	source      string
	timeout     time.Duration
	outputLimit int64
}

// Load binds a solver executable. It fails with a LoadError when the
// source is missing, a directory, or not executable.
func Load(sourceRef string, timeout time.Duration, outputLimit int64) (*SubprocessSolver, error) {
	info, err := os.Stat(sourceRef)
	if err != nil {
		return nil, &LoadError{Source: sourceRef, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Source: sourceRef, Err: errors.New("source is a directory")}
	}
	if info.Mode()&0o111 == 0 {
		return nil, &LoadError{Source: sourceRef, Err: errors.New("source is not executable")}
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if outputLimit <= 0 {
		outputLimit = DefaultOutputLimit
	}
	return &SubprocessSolver{source: sourceRef, timeout: timeout, outputLimit: outputLimit}, nil
}

// Source returns the bound executable path.
func (s *SubprocessSolver) Source() string { return s.source }

// Solve spawns the solver process, feeds it the maze and reads the path
// back under the wall-clock timeout and the output-size ceiling. The
// timeout is enforced by killing the process.
func (s *SubprocessSolver) Solve(ctx context.Context, walls [][]bool, start, goal maze.CellPosition) ([]maze.CellPosition, error) {
	payload, err := json.Marshal(solveRequest{
		Maze:  walls,
		Start: [2]int{start.X, start.Y},
		Goal:  [2]int{goal.X, goal.Y},
	})
	if err != nil {
		return nil, &SolverError{Source: s.source, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.source)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.WaitDelay = time.Second

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SolverError{Source: s.source, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &SolverError{Source: s.source, Err: err}
	}

	// Read one byte past the ceiling so overruns are detectable, then
	// drain the rest so Wait cannot block on a full pipe.
	out, readErr := io.ReadAll(io.LimitReader(stdout, s.outputLimit+1))
	_, _ = io.Copy(io.Discard, stdout)
	waitErr := cmd.Wait()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("%w after %s", ErrTimeout, s.timeout)
	}
	if readErr != nil {
		return nil, &SolverError{Source: s.source, Err: readErr}
	}
	if int64(len(out)) > s.outputLimit {
		return nil, &SolverError{Source: s.source, Err: fmt.Errorf("output exceeded %d byte ceiling", s.outputLimit)}
	}
	if waitErr != nil {
		return nil, &SolverError{Source: s.source, Err: waitErr}
	}

	var resp solveResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, &SolverError{Source: s.source, Err: fmt.Errorf("unparseable output: %w", err)}
	}
	if resp.Error != "" {
		return nil, &SolverError{Source: s.source, Err: errors.New(resp.Error)}
	}

	path := make([]maze.CellPosition, len(resp.Path))
	for i, p := range resp.Path {
		path[i] = maze.CellPosition{X: p[0], Y: p[1]}
	}
	return path, nil
}
