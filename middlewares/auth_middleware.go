// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier turns a bearer token into a verified email.
type TokenVerifier func(token string) (string, error)

// AuthMiddleware rejects requests without a valid bearer token and
// attaches the verified email to the context for ownership checks.
func AuthMiddleware(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := verify(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}

// RequireOwner compares the owner email claimed by the request against
// the verified identity. The stored record's owner is deliberately not
// consulted; only the claim in the request is checked.
func RequireOwner(c *gin.Context, claimed string, action string) bool {
	if claimed == "" || claimed != c.GetString("email") {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: you cannot " + action + " for another user"})
		return false
	}
	return true
}
