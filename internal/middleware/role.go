package middleware

import (
	"net/http"

	"hotelms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRoles ensures the authenticated user has one of the listed roles.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		for _, a := range allowed {
			if role.(string) == a {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// StaffOnly admits ADMIN, MANAGER and STAFF.
func StaffOnly() gin.HandlerFunc {
	return RequireRoles("ADMIN", "MANAGER", "STAFF")
}

// ManagementOnly admits ADMIN and MANAGER.
func ManagementOnly() gin.HandlerFunc {
	return RequireRoles("ADMIN", "MANAGER")
}
