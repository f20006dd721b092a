// Package handlers contains HTTP request handlers for the todo service.
package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondError writes a JSON error body in the service's standard
// {"detail": "..."} shape.
func RespondError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// LogAndRespondError logs the underlying error and responds with a
// client-safe detail message. Internal errors are never echoed to clients.
func LogAndRespondError(c *gin.Context, status int, err error, detail string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, detail)
}
