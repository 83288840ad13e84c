package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := ErrNotFound.Msg("task %d not found", 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)

	wrapped := errors.Wrap(ErrConflict.Msg("already running"), "start stopwatch")
	assert.ErrorIs(t, wrapped, ErrConflict)

	e, ok := From(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "already running", e.Message)
	assert.Equal(t, 400, e.StatusCode)
}

func TestInvalidViolationsDoesNotMutateBase(t *testing.T) {
	e := NewInvalidViolations([]string{"name"})
	assert.NotNil(t, e.Extras)
	assert.Nil(t, ErrInvalidReq.Extras)
}
