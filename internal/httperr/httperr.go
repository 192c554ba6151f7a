package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Write renders {"error": {"<title>": "<message>"}}.
func Write(c *gin.Context, status int, title, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{title: message},
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, "Bad Request", message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, "Not Found", message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, "Forbidden", message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, "Conflict", message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, "Internal Server Error", message)
}
