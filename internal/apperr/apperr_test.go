package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/forge/internal/apperr"
)

var (
	errOverlap  = &apperr.Error{Message: "sessions overlap on %s"}
	errNotFound = &apperr.Error{Message: "not found"}
)

func TestErrorKinds(t *testing.T) {
	derived := errOverlap.Fmt("2024-03-15")

	assert.Equal(t, "sessions overlap on 2024-03-15", derived.Error())
	assert.ErrorIs(t, derived, errOverlap)
	assert.NotErrorIs(t, derived, errNotFound)

	twice := derived.Wrap(io.EOF)

	assert.ErrorIs(t, twice, errOverlap)
	assert.ErrorIs(t, twice, io.EOF)
	assert.Equal(t, "sessions overlap on 2024-03-15: EOF", twice.Error())
}

func TestErrorIsThroughFmtWrap(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), errNotFound.Wrap(io.ErrUnexpectedEOF))

	assert.True(t, errors.Is(wrapped, errNotFound))
	assert.False(t, errors.Is(wrapped, errOverlap))
}
