package entities

// Role is the sole authorization signal in the system. A user's role is
// mutable at runtime; role-switch is a supported scenario.

type Role string

const (
	RoleManager  Role = "manager"
	RoleSalesRep Role = "sales_rep"
	RoleViewer   Role = "viewer"
)

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleSalesRep, RoleViewer:
		return true
	}
	return false
}

// User is an authenticated account. No per-user ownership of quotations is
// modeled; authorization is role-only.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Actor identifies who performed a mutating operation, attributed in the
// quotation's status history.
type Actor struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}
