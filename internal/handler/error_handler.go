package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-service/internal/response"
)

// handleServiceError maps service layer errors to HTTP responses. Expected
// conditions (validation, not-found, unauthorized) pass their message through;
// anything else is logged with context and collapsed to a generic 500.
func handleServiceError(c *gin.Context, logger *zap.Logger, operation string, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)
		if status == http.StatusInternalServerError {
			logger.Error("Internal error",
				zap.String("operation", operation),
				zap.String("path", c.Request.URL.Path),
				zap.String("details", appErr.Details),
				zap.Error(err),
			)
			response.SendError(c, status, "Internal server error")
			return
		}
		response.SendError(c, status, appErr.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, "Resource not found")
		return
	}

	logger.Error("Unhandled error",
		zap.String("operation", operation),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	response.SendError(c, http.StatusInternalServerError, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
