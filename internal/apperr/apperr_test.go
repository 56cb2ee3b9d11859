package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad", "name")))
	assert.Equal(t, KindConflict, KindOf(Conflict("dup", nil)))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindPersistence, KindOf(errors.New("boom")))

	wrapped := fmt.Errorf("service: %w", NotFound("missing"))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindConflict))
}

func TestError_Message(t *testing.T) {
	cause := errors.New("connection reset")

	assert.Equal(t, "dup", Conflict("dup", cause).Error())
	assert.Equal(t, "connection reset", Persistence(cause).Error())
	assert.ErrorIs(t, Persistence(cause), cause)
	assert.Equal(t, []string{"name", "email"}, Validation("empty", "name", "email").EmptyFields)
}
