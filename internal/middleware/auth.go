// Package middleware provides HTTP middleware for the todo service.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kasim110/todo-service/internal/service"
)

// RequireAuth returns middleware that gates protected routes behind a
// bearer token. The token is verified for signature and expiry only; no
// user identity is attached to the request context, so handlers cannot
// scope data to the caller.
func RequireAuth(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Not authenticated",
			})
			return
		}

		if _, err := jwtService.ValidateToken(token); err != nil {
			detail := "Invalid Token"
			if errors.Is(err, service.ErrTokenExpired) {
				detail = "Token is Expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": detail,
			})
			return
		}

		c.Next()
	}
}

// extractBearerToken pulls the token out of the Authorization header.
// Returns "" when the header is missing or not in "Bearer <token>" form.
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
