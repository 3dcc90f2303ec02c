package model

// User roles.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the identity attached to a signed-in session. Sessions are held in
// memory only and die with the process; users are never persisted.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // student, admin
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
