package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertAs(err error, target any) bool {
	return errors.As(err, target)
}

func TestPersistErrWrapsOnce(t *testing.T) {
	cause := errors.New("connection reset")

	err := persistErr("create venue", cause)
	again := persistErr("outer", fmt.Errorf("ctx: %w", err))

	var pe *PersistenceError
	assert.True(t, errors.As(again, &pe))
	assert.Equal(t, "create venue", pe.Op)
	assert.ErrorIs(t, again, cause)
	assert.EqualError(t, err, "create venue: connection reset")
	assert.Nil(t, persistErr("noop", nil))
}
