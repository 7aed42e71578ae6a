package employee

import (
	"strings"
	"time"

	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/jsonx"
)

// RawEmployee carries every field-name variant the Dayflow API has been
// observed to emit for an employee record. Normalization into the canonical
// Employee happens here, once, at the gateway boundary.
type RawEmployee struct {
	ID          jsonx.FlexString `json:"id"`
	MongoID     jsonx.FlexString `json:"_id"`
	EmployeeID  jsonx.FlexString `json:"employeeId"`
	EmployeeID2 jsonx.FlexString `json:"employee_id"`

	Name         string `json:"name"`
	EmployeeName string `json:"employeeName"`
	FullName     string `json:"fullName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`

	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`

	JoinDate      jsonx.FlexTime `json:"joinDate"`
	DateOfJoining jsonx.FlexTime `json:"dateOfJoining"`
	CreatedAt     jsonx.FlexTime `json:"createdAt"`
}

// ListEnvelope is the API response wrapper for employee collections.
type ListEnvelope struct {
	Success bool          `json:"success"`
	Data    []RawEmployee `json:"data"`
}

// Envelope is the API response wrapper for a single employee.
type Envelope struct {
	Success bool        `json:"success"`
	Data    RawEmployee `json:"data"`
}

// ResolveID returns the first populated identifier variant.
func (r RawEmployee) ResolveID() string {
	for _, candidate := range []string{
		r.EmployeeID.String(),
		r.EmployeeID2.String(),
		r.ID.String(),
		r.MongoID.String(),
	} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// DisplayName resolves a human-readable name from the record's name field
// variants: explicit name fields first, then assembled first/last parts.
func (r RawEmployee) DisplayName() string {
	for _, candidate := range []string{r.Name, r.EmployeeName, r.FullName} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	full := strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
	return full
}

// JoinedAt resolves the join date from its three field-name variants.
func (r RawEmployee) JoinedAt() time.Time {
	for _, candidate := range []time.Time{r.JoinDate.Time, r.DateOfJoining.Time, r.CreatedAt.Time} {
		if !candidate.IsZero() {
			return candidate
		}
	}
	return time.Time{}
}

// Normalize maps the raw record onto the canonical Employee.
func (r RawEmployee) Normalize() Employee {
	return Employee{
		EmployeeID: r.ResolveID(),
		Name:       r.DisplayName(),
		Email:      r.Email,
		Department: r.Department,
		Position:   r.Position,
		JoinedAt:   r.JoinedAt(),
	}
}
