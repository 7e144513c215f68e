// Package middleware provides HTTP middleware for the content service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key the validated token claims are stored under.
const ClaimsKey = "claims"

// RequireAuth validates the bearer token and stores its claims in the
// request context. Requests without a valid token are rejected with 401.
func RequireAuth(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuth stores claims in the context when a valid bearer token is
// present but never rejects the request. Used on public routes that behave
// slightly differently for logged-in readers.
func OptionalAuth(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := ExtractBearerToken(c); token != "" {
			if claims, err := jwtService.ValidateToken(token); err == nil {
				c.Set(ClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireContentManager rejects requests whose claims carry neither the admin
// nor the editor role. Must run after RequireAuth.
func RequireContentManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		if claims.Role != models.RoleAdmin && claims.Role != models.RoleEditor {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}

		c.Next()
	}
}

// GetClaims returns the validated claims stored by RequireAuth.
func GetClaims(c *gin.Context) (*service.Claims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.Claims)
	return claims, ok
}

// ExtractBearerToken pulls the token out of the Authorization header.
// Returns "" when the header is absent or not in "Bearer <token>" form.
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
