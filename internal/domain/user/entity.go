package user

const (
	RoleAdmin  = "admin"
	RoleSeller = "vendedor"
)

// User is a seller-console account. PasswordHash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
