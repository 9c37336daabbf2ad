package statemachine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent/run"
)

func TestValidateTransition(t *testing.T) {
	legal := []struct{ from, to run.Status }{
		{run.StatusCreated, run.StatusQueued},
		{run.StatusCreated, run.StatusCanceled},
		{run.StatusQueued, run.StatusRunning},
		{run.StatusQueued, run.StatusCanceled},
		{run.StatusRunning, run.StatusBlocked},
		{run.StatusRunning, run.StatusFailed},
		{run.StatusRunning, run.StatusSucceeded},
		{run.StatusRunning, run.StatusCanceled},
		{run.StatusBlocked, run.StatusRunning},
		{run.StatusBlocked, run.StatusQueued},
		{run.StatusBlocked, run.StatusFailed},
		{run.StatusBlocked, run.StatusCanceled},
		{run.StatusFailed, run.StatusQueued},
	}
	for _, tc := range legal {
		assert.NoError(t, ValidateTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	illegal := []struct{ from, to run.Status }{
		{run.StatusCreated, run.StatusRunning},
		{run.StatusCreated, run.StatusSucceeded},
		{run.StatusQueued, run.StatusSucceeded},
		{run.StatusQueued, run.StatusFailed},
		{run.StatusSucceeded, run.StatusQueued},
		{run.StatusSucceeded, run.StatusRunning},
		{run.StatusCanceled, run.StatusQueued},
		{run.StatusCanceled, run.StatusRunning},
		{run.StatusFailed, run.StatusRunning},
		{run.StatusFailed, run.StatusSucceeded},
	}
	for _, tc := range illegal {
		err := ValidateTransition(tc.from, tc.to)
		require.Error(t, err, "%s -> %s", tc.from, tc.to)

		var ite *IllegalTransitionError
		require.True(t, errors.As(err, &ite))
		assert.Equal(t, tc.from, ite.From)
		assert.Equal(t, tc.to, ite.To)
	}
}

func TestValidateTransition_SameStateIdempotent(t *testing.T) {
	for _, s := range []run.Status{
		run.StatusCreated, run.StatusQueued, run.StatusRunning,
		run.StatusBlocked, run.StatusFailed, run.StatusSucceeded, run.StatusCanceled,
	} {
		assert.NoError(t, ValidateTransition(s, s), "same-state %s", s)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(run.StatusSucceeded))
	assert.True(t, IsTerminal(run.StatusCanceled))
	assert.True(t, IsTerminal(run.StatusFailed))
	assert.False(t, IsTerminal(run.StatusRunning))
	assert.False(t, IsTerminal(run.StatusQueued))
	assert.False(t, IsTerminal(run.StatusBlocked))
	assert.False(t, IsTerminal(run.StatusCreated))
}
