package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("bad input")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("user")))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorized("nope")))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal("boom", errors.New("cause"))))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("unclassified")))
}

func TestMessage_DoesNotLeakInternalCause(t *testing.T) {
	err := Internal("failed to put item", errors.New("dynamodb: connection refused"))
	assert.Equal(t, "Internal server error", Message(err))
	assert.Contains(t, err.Error(), "connection refused") // available for logs
}

func TestMessage_ClientFaultsKeepTheirText(t *testing.T) {
	assert.Equal(t, "File size exceeds maximum limit of 500MB", Message(Validation("File size exceeds maximum limit of 500MB")))
	assert.Equal(t, "user not found", Message(NotFound("user")))
}

func TestErrorsIsOnWrappedKinds(t *testing.T) {
	assert.ErrorIs(t, Validation("x"), ErrValidation)
	assert.ErrorIs(t, NotFound("x"), ErrNotFound)
	assert.ErrorIs(t, Unauthorized("x"), ErrUnauthorized)
	assert.ErrorIs(t, Internal("x", nil), ErrInternal)
}
