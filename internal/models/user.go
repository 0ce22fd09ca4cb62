package models

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// User mirrors the auth payload returned by the backend. The same shape is
// persisted as the session blob under the "user" key.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// IsAdmin reports whether the user may access the admin dashboard.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

func (u User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
