package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkimaro/washpark-api/pkg/apperror"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	Entity        string `json:"entity,omitempty"`
	ID            string `json:"id,omitempty"`
	CurrentStatus string `json:"current_status,omitempty"`
	TargetStatus  string `json:"target_status,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithCreated sends a success response for newly created records
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), Response{
			Success: false,
			Error: &Error{
				Code:          int(appErr.Code),
				Message:       appErr.Message,
				Entity:        appErr.Entity,
				ID:            appErr.ID,
				CurrentStatus: appErr.CurrentStatus,
				TargetStatus:  appErr.TargetStatus,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error: &Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		},
	})
}

// RespondWithValidationError sends a 400 for malformed request payloads
func RespondWithValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error: &Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		},
	})
}
