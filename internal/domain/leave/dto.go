package leave

import (
	"strings"
	"time"

	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/jsonx"
)

// RawRequest carries the field-name variants the Dayflow API emits for a
// leave record.
type RawRequest struct {
	ID      jsonx.FlexString `json:"id"`
	MongoID jsonx.FlexString `json:"_id"`

	EmployeeID   jsonx.FlexString `json:"employeeId"`
	EmployeeName string           `json:"employeeName"`

	LeaveType string `json:"leaveType"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Comments  string `json:"comments"`

	StartDate jsonx.FlexTime `json:"startDate"`
	EndDate   jsonx.FlexTime `json:"endDate"`
	Days      jsonx.FlexInt  `json:"days"`

	AppliedDate  jsonx.FlexTime `json:"appliedDate"`
	CreatedAt    jsonx.FlexTime `json:"createdAt"`
	ApprovedDate jsonx.FlexTime `json:"approvedDate"`
}

// ListEnvelope is the API response wrapper for leave collections.
type ListEnvelope struct {
	Success bool         `json:"success"`
	Data    []RawRequest `json:"data"`
}

// AppliedAt resolves the application timestamp from its variants.
func (r RawRequest) AppliedAt() time.Time {
	if !r.AppliedDate.IsZero() {
		return r.AppliedDate.Time
	}
	return r.CreatedAt.Time
}

// Normalize maps the raw record onto the canonical Request.
func (r RawRequest) Normalize() Request {
	id := r.ID.String()
	if id == "" {
		id = r.MongoID.String()
	}
	return Request{
		ID:           id,
		EmployeeID:   r.EmployeeID.String(),
		EmployeeName: strings.TrimSpace(r.EmployeeName),
		LeaveType:    r.LeaveType,
		Status:       Status(strings.ToLower(strings.TrimSpace(r.Status))),
		StartDate:    r.StartDate.Time,
		EndDate:      r.EndDate.Time,
		Days:         r.Days.Int(),
		Reason:       r.Reason,
		Comments:     r.Comments,
		AppliedAt:    r.AppliedAt(),
		ApprovedAt:   r.ApprovedDate.Time,
	}
}
