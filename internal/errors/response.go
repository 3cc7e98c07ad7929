// Package errors holds the HTTP error response helpers. Every error body
// uses the same shape: {"error": <message>}.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respond(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	respond(c, http.StatusConflict, message)
}

// InternalError always responds with a generic message. The underlying
// cause belongs in the log, not in the response body.
func InternalError(c *gin.Context) {
	respond(c, http.StatusInternalServerError, "Internal server error")
}
