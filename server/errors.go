package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is written to clients as {"error":{"code":...,"message":...}}.
type APIError struct {
	Details any    `json:"details,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func badRequest(code, message string) *APIError {
	return newAPIError(http.StatusBadRequest, code, message)
}

func unauthorized(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, "unauthorized", message)
}

func internalError() *APIError {
	return newAPIError(http.StatusInternalServerError, "internal_error", "internal server error")
}

func writeError(c *gin.Context, apiErr *APIError) {
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}
