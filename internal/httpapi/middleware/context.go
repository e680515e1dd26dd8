package middleware

import "github.com/gin-gonic/gin"

// UserID returns the authenticated user's id set by AuthMiddleware, or ""
// on an unauthenticated request.
func UserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// Role returns the authenticated user's role, or "".
func Role(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
