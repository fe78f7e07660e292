package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New("TEST", http.StatusTeapot, "something happened")
	assert.Equal(t, "something happened", err.Error())

	wrapped := Wrap(stderrors.New("cause"), "TEST", http.StatusTeapot, "something happened")
	assert.Equal(t, "something happened: cause", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "cause")
}

func TestIsMatchesByCode(t *testing.T) {
	clone := Clone(ErrCourseNotFound, "no such offering")
	assert.ErrorIs(t, clone, ErrCourseNotFound)
	assert.NotErrorIs(t, clone, ErrStudentNotFound)
	assert.Equal(t, "no such offering", clone.Message)
	assert.Equal(t, ErrCourseNotFound.Status, clone.Status)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	typed := FromError(ErrCapacityReached)
	assert.Equal(t, ErrCapacityReached.Code, typed.Code)

	plain := FromError(stderrors.New("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)
}
