package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the only error body clients ever see. Messages stay generic:
// persistence detail is logged server-side, never returned.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Internal answers every persistence or unexpected failure the same way.
func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "internal_error", "Internal server error")
}
