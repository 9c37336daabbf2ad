// Package statemachine validates run status transitions. It is pure: no I/O,
// no clock, no database — callers hold the row lock and apply the change.
package statemachine

import (
	"fmt"

	"github.com/inquiro-ai/inquiro/ent/run"
)

// IllegalTransitionError reports a run status move outside the allowed table.
type IllegalTransitionError struct {
	From run.Status
	To   run.Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal run transition %s -> %s", e.From, e.To)
}

// allowed is the transition table. Terminal states (succeeded, canceled) have
// no outgoing edges; failed and blocked may be re-queued via retry. blocked is
// reserved for manual-hold workflows — nothing writes it today, but the
// transitions stay valid.
var allowed = map[run.Status][]run.Status{
	run.StatusCreated: {run.StatusQueued, run.StatusCanceled},
	run.StatusQueued:  {run.StatusRunning, run.StatusCanceled},
	run.StatusRunning: {run.StatusBlocked, run.StatusFailed, run.StatusSucceeded, run.StatusCanceled},
	run.StatusBlocked: {run.StatusRunning, run.StatusQueued, run.StatusFailed, run.StatusCanceled},
	run.StatusFailed:  {run.StatusQueued},
}

// ValidateTransition returns nil when moving from -> to is legal.
// Same-state transitions are always accepted (idempotent callers).
func ValidateTransition(from, to run.Status) error {
	if from == to {
		return nil
	}
	for _, next := range allowed[from] {
		if next == to {
			return nil
		}
	}
	return &IllegalTransitionError{From: from, To: to}
}

// IsTerminal reports whether a status has no outgoing transitions other than
// the explicit retry edge on failed.
func IsTerminal(s run.Status) bool {
	switch s {
	case run.StatusSucceeded, run.StatusCanceled, run.StatusFailed:
		return true
	}
	return false
}
