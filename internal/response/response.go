package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes used across the service layer
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// AppError is the error type returned by services. Code selects the HTTP
// status at the handler boundary; Message is safe to show to callers;
// Details is internal context for logs only.
type AppError struct {
	Code    string
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// ErrorBody is the JSON error envelope: {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
} // @name ErrorBody

// SendError writes the error envelope with the given status
func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}
