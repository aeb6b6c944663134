package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Session is the identity operating the system for the lifetime of a token.
// There is no user table: the identity resolver synthesizes a Session on
// every login and it round-trips through the JWT.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
