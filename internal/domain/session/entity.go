package session

// Role of the authenticated user.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// IsBackOffice reports whether the role carries HR/admin privileges.
func (r Role) IsBackOffice() bool {
	return r == RoleHR || r == RoleAdmin
}

// PlaceholderName is the display name used when no name could be resolved
// from any source. A persisted user carrying it is re-resolved on restore.
const PlaceholderName = "User"

// User is the authenticated identity held by the agent.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
}
