package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{NotFound("payment", "abc"), http.StatusNotFound},
		{Validation("bad input"), http.StatusBadRequest},
		{InvalidTransition("payment", "abc", "completed", "pending"), http.StatusBadRequest},
		{ConflictingLinkage("abc"), http.StatusBadRequest},
		{DuplicateReference("transaction_ref", "TXN1"), http.StatusConflict},
		{Conflict("service type", "still referenced"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode(), tc.err.Message)
	}
}

func TestCodeOfWrappedError(t *testing.T) {
	err := fmt.Errorf("failed to get payment: %w", NotFound("payment", "abc"))

	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsInvalidTransition(err))
}

func TestCodeOfUnknownError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestInvalidTransitionCarriesContext(t *testing.T) {
	err := InvalidTransition("service request", "abc", "completed", "in_progress")

	assert.Equal(t, "service request", err.Entity)
	assert.Equal(t, "completed", err.CurrentStatus)
	assert.Equal(t, "in_progress", err.TargetStatus)
	assert.Contains(t, err.Error(), "cannot move from completed to in_progress")
}
