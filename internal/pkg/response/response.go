package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the {message, error} envelope every failing endpoint uses.
// Internal error details are passed through on 5xx only outside release mode.
func Error(c *gin.Context, statusCode int, message string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	if statusCode >= http.StatusInternalServerError && gin.Mode() == gin.ReleaseMode {
		detail = "internal server error"
	}
	c.JSON(statusCode, gin.H{
		"message": message,
		"error":   detail,
	})
}

// ValidationError is Error with a field->tag map from DTO validation.
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"error":   "validation failed",
		"fields":  fields,
	})
}
