package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondDegraded answers with a 503 but still carries a usable payload
// (empty collection or compiled-in defaults) so the storefront can render.
func RespondDegraded(c *gin.Context, data interface{}) {
	c.JSON(http.StatusServiceUnavailable, APIResponse{
		Status:  "degraded",
		Code:    http.StatusServiceUnavailable,
		Message: "store temporarily unavailable",
		TraceID: traceID(c),
		Data:    data,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDuplicateSlug):
		RespondError(c, http.StatusConflict, "Slug already in use")
	case errors.Is(err, ErrDuplicateUsername):
		RespondError(c, http.StatusConflict, "Username already in use")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrDatabaseUnavailable):
		zap.L().Error("database unavailable", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
