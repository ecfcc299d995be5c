package runner

import (
	"errors"
	"fmt"

	"github.com/darthkolli145/Mazegame/maze"
)

// ErrTimeout reports a solver that did not return within the wall-clock
// budget.
var ErrTimeout = errors.New("solver exceeded time budget")

// FailReason is the reason code surfaced to the game loop when an
// algorithm run fails. None of these are fatal; the player falls back
// to manual control.
type FailReason string

const (
	ReasonLoad       FailReason = "load"
	ReasonTimeout    FailReason = "timeout"
	ReasonValidation FailReason = "validation"
	ReasonRuntime    FailReason = "runtime"
)

// LoadError reports a solver source that could not be bound.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading solver %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SolverError reports a solver that misbehaved while executing: crashed,
// produced unparseable or oversized output, or reported its own error.
type SolverError struct {
	Source string
	Err    error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver %q: %v", e.Source, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }

// ValidationError reports a malformed path, citing the offending cell
// and its index.
type ValidationError struct {
	Index  int
	Cell   maze.CellPosition
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid path at index %d, cell %s: %s", e.Index, e.Cell, e.Reason)
}

// Classify maps an algorithm-run error onto its reason code.
func Classify(err error) FailReason {
	var loadErr *LoadError
	var validationErr *ValidationError
	switch {
	case errors.As(err, &loadErr):
		return ReasonLoad
	case errors.Is(err, ErrTimeout):
		return ReasonTimeout
	case errors.As(err, &validationErr):
		return ReasonValidation
	default:
		return ReasonRuntime
	}
}
