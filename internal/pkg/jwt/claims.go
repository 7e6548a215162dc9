package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the console token claims.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token belongs to an admin account.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
