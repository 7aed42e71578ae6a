package session

import (
	"strings"

	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/jsonx"
)

// LoginRequest is the credential payload sent to the Dayflow API.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// RawUser is the heterogeneous user object returned by the login endpoint.
// Different Dayflow deployments populate different subsets of these fields.
type RawUser struct {
	ID      jsonx.FlexString `json:"id"`
	MongoID jsonx.FlexString `json:"_id"`

	Email string `json:"email"`
	Role  string `json:"role"`

	Name         string `json:"name"`
	EmployeeName string `json:"employeeName"`
	FullName     string `json:"fullName"`
	UserName     string `json:"userName"`
	DisplayNameF string `json:"displayName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`

	EmployeeID  jsonx.FlexString `json:"employeeId"`
	EmployeeID2 jsonx.FlexString `json:"employee_id"`

	Department string `json:"department"`
	Position   string `json:"position"`
}

// LoginResponse is the login endpoint's envelope.
type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    *RawUser `json:"user"`
}

// ResolveEmployeeID returns the first populated employee identifier variant.
func (r RawUser) ResolveEmployeeID() string {
	if r.EmployeeID.String() != "" {
		return r.EmployeeID.String()
	}
	return r.EmployeeID2.String()
}

// DisplayName resolves a display name from the explicit name fields, then
// from assembled first/last parts. Returns "" when nothing is populated;
// the caller owns the remaining fallbacks (employee lookup, email local
// part, placeholder).
func (r RawUser) DisplayName() string {
	for _, candidate := range []string{
		r.Name, r.EmployeeName, r.FullName, r.UserName, r.DisplayNameF,
	} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	first := strings.TrimSpace(r.FirstName)
	last := strings.TrimSpace(r.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return ""
}

// Update is a partial-merge user update. Nil fields are left untouched.
type Update struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
}
