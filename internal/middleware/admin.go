package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the shared admin secret
const AdminTokenHeader = "X-Admin-Token"

// AdminMiddleware admits requests carrying the configured admin token.
// With no token configured the admin routes answer 404.
func AdminMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		given := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(adminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin token required"})
			return
		}
		c.Next()
	}
}
