package middleware

import "github.com/gin-gonic/gin"

// GetUserID gets the authenticated account id from the request context.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// GetJTI gets the token id of the current session.
func GetJTI(c *gin.Context) (string, bool) {
	v, exists := c.Get("jti")
	if !exists {
		return "", false
	}
	jti, ok := v.(string)
	return jti, ok
}

// GetUsername gets the authenticated username, or "" when unauthenticated.
func GetUsername(c *gin.Context) string {
	v, exists := c.Get("username")
	if !exists {
		return ""
	}
	name, _ := v.(string)
	return name
}

// IsAdmin checks whether the current account has the admin role.
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get("role")
	return exists && role == "admin"
}
