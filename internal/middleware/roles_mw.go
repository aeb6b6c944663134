package middleware

import (
	"net/http"

	"losmecanics_booking/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific session roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Session not found, ensure JWT middleware runs first"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if session.Role == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks if the session belongs to the administrator
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}

// UserMiddleware allows any authenticated session
func UserMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleUser, model.RoleAdmin)
}
