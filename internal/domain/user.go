package domain

// Role type to distinguish between user roles
type Role string

// Roles issued by the identity provider.
const (
	RoleTrainer Role = "TRAINER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleStudent
}

// Identity is the caller as reported by the identity provider. Its role is trusted as-is.
type Identity struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

func (i Identity) IsTrainer() bool {
	return i.Role == RoleTrainer
}

func (i Identity) IsStudent() bool {
	return i.Role == RoleStudent
}
