package types

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// validRoles is the set of recognized user role values.
var validRoles = map[string]bool{
	RoleAdmin: true,
	RoleUser:  true,
}

// User represents an account. IDs are UUID v7 strings, generated on
// creation. The password is stored as given; it is persisted to the users
// document but stripped from API responses via Redacted.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// ValidRole reports whether r is a recognized user role.
func ValidRole(r string) bool {
	return validRoles[r]
}

// Redacted returns a copy of the user with the password cleared, suitable
// for serializing in a response.
func (u User) Redacted() User {
	u.Password = ""
	return u
}
