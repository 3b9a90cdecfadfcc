package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/services"
)

// Stable machine-readable error codes. Clients branch on these, so values
// never change once released.
const (
	CodeMissingParameter     = "MISSING_PARAMETER"
	CodeInvalidParameter     = "INVALID_PARAMETER"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeStaleTimestamp       = "STALE_TIMESTAMP"
	CodeNotFound             = "NOT_FOUND"
	CodeDuplicateEntry       = "DUPLICATE_ENTRY"
	CodeRateLimited          = "RATE_LIMITED"
	CodeAgentTimeout         = "AGENT_TIMEOUT"
	CodeCircuitOpen          = "CIRCUIT_OPEN"
	CodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
	CodeUnsupportedMedia     = "UNSUPPORTED_MEDIA_TYPE"
	CodeInternalError        = "INTERNAL_ERROR"
)

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Status    string      `json:"status"` // always "error"
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// apiError writes the error envelope and ends the handler.
func apiError(c *echo.Context, httpStatus int, code, message string) error {
	return apiErrorDetails(c, httpStatus, code, message, nil)
}

// apiErrorDetails is apiError with a structured details payload.
func apiErrorDetails(c *echo.Context, httpStatus int, code, message string, details interface{}) error {
	return c.JSON(httpStatus, &ErrorResponse{
		Status:    "error",
		Code:      code,
		Message:   message,
		RequestID: c.Response().Header().Get(headerRequestID),
		Details:   details,
	})
}

// mapServiceError renders a service-layer error as the error envelope.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		return apiErrorDetails(c, http.StatusBadRequest, CodeValidationFailed, validErr.Error(),
			map[string]string{"field": validErr.Field})
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, http.StatusNotFound, CodeNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		return apiError(c, http.StatusConflict, CodeDuplicateEntry, "resource already exists")
	case errors.Is(err, services.ErrInvalidTransition):
		return apiError(c, http.StatusConflict, CodeInvalidParameter, err.Error())
	case errors.Is(err, resilience.ErrCircuitOpen):
		return apiError(c, http.StatusServiceUnavailable, CodeCircuitOpen, "agent circuit is open")
	case errors.Is(err, context.DeadlineExceeded):
		return apiError(c, http.StatusGatewayTimeout, CodeAgentTimeout, "downstream call timed out")
	case resilience.IsTransient(err):
		return apiError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, "downstream service unavailable")
	}

	// Unexpected error: log the detail, return a generic message.
	slog.Error("Unexpected service error", "error", err)
	return apiError(c, http.StatusInternalServerError, CodeInternalError, "internal server error")
}
