package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the kind of application error.
type Code int

const (
	CodeNotFound Code = iota + 1000
	CodeValidation
	CodeInvalidTransition
	CodeConflictingLinkage
	CodeDuplicateReference
	CodeConflict
	CodeInternal
)

// Error is the application error type. Every error carries enough context
// (entity, id, current and attempted status) for the caller to render a
// precise message.
type Error struct {
	Code          Code   `json:"code"`
	Message       string `json:"message"`
	Entity        string `json:"entity,omitempty"`
	ID            string `json:"id,omitempty"`
	CurrentStatus string `json:"current_status,omitempty"`
	TargetStatus  string `json:"target_status,omitempty"`
	Err           error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeInvalidTransition, CodeConflictingLinkage:
		return http.StatusBadRequest
	case CodeDuplicateReference, CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(entity string, id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Entity:  entity,
		ID:      id,
	}
}

func Validation(message string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
	}
}

func InvalidTransition(entity string, id string, current, target string) *Error {
	return &Error{
		Code:          CodeInvalidTransition,
		Message:       fmt.Sprintf("%s cannot move from %s to %s", entity, current, target),
		Entity:        entity,
		ID:            id,
		CurrentStatus: current,
		TargetStatus:  target,
	}
}

func ConflictingLinkage(id string) *Error {
	return &Error{
		Code:    CodeConflictingLinkage,
		Message: "payment may reference a service request or a parking record, not both",
		Entity:  "payment",
		ID:      id,
	}
}

func DuplicateReference(field, value string) *Error {
	msg := fmt.Sprintf("duplicate value for %s", field)
	if value != "" {
		msg = fmt.Sprintf("duplicate value %q for %s", value, field)
	}
	return &Error{
		Code:    CodeDuplicateReference,
		Message: msg,
	}
}

// Conflict reports an operation blocked by existing references, such as
// deleting a service type that service requests still point at.
func Conflict(entity, message string) *Error {
	return &Error{
		Code:    CodeConflict,
		Message: message,
		Entity:  entity,
	}
}

func Internal(err error) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// CodeOf returns the application code of err, or CodeInternal for
// unrecognized errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

func IsInvalidTransition(err error) bool {
	return CodeOf(err) == CodeInvalidTransition
}
