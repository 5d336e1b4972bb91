package models

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError. Handlers translate them to HTTP statuses.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeBadRequest       = "BAD_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// AppError is a business error raised by the service layer.
type AppError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports that a referenced entity id does not exist.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewBadRequestError reports a failed business rule (duplicate identity,
// credential mismatch, deactivated account, unauthorized mutation).
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// NewValidationFailedError reports declarative field-constraint failures as a
// field name to message map.
func NewValidationFailedError(fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes the uniform error envelope with the given status.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	resp := ErrorResponse{
		Status:    status,
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
	if appErr, ok := err.(*AppError); ok {
		resp.Message = appErr.Message
		resp.Errors = appErr.Fields
	}
	return c.Status(status).JSON(resp)
}
