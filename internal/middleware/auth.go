package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shrinkr/internal/jwt"
)

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header with a Bearer token is required",
			})
			return
		}

		if !authenticate(c, jwtService, token) {
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware identifies the user when a token is present and
// lets anonymous requests through. A present but invalid token is rejected.
func OptionalAuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		if !authenticate(c, jwtService, token) {
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, if any
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}

func authenticate(c *gin.Context, jwtService *jwt.JWTService, token string) bool {
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return false
	}

	c.Set(userIDKey, claims.UserID)
	c.Set(userEmailKey, claims.Email)
	return true
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
