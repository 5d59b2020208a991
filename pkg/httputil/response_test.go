package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimaro/washpark-api/pkg/apperror"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondWithSuccess(t *testing.T) {
	c, w := testContext(t)

	RespondWithSuccess(c, gin.H{"name": "Jane"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestRespondWithCreated(t *testing.T) {
	c, w := testContext(t)

	RespondWithCreated(c, gin.H{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
}

func TestRespondWithErrorRendersAppError(t *testing.T) {
	c, w := testContext(t)

	RespondWithError(c, apperror.InvalidTransition("payment", "abc", "completed", "pending"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "payment", resp.Error.Entity)
	assert.Equal(t, "completed", resp.Error.CurrentStatus)
	assert.Equal(t, "pending", resp.Error.TargetStatus)
}

func TestRespondWithErrorUnwrapsChain(t *testing.T) {
	c, w := testContext(t)

	err := fmt.Errorf("failed to get payment: %w", apperror.NotFound("payment", "abc"))
	RespondWithError(c, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespondWithErrorHidesUnknownErrors(t *testing.T) {
	c, w := testContext(t)

	RespondWithError(c, fmt.Errorf("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Error.Message)
}

func TestRespondWithValidationError(t *testing.T) {
	c, w := testContext(t)

	RespondWithValidationError(c, fmt.Errorf("name is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "name is required", resp.Error.Message)
}
