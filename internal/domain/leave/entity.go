package leave

import "time"

// Status of a leave request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is the canonical, normalized shape of an upstream leave record.
type Request struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	LeaveType    string
	Status       Status
	StartDate    time.Time
	EndDate      time.Time
	Days         int
	Reason       string
	Comments     string
	AppliedAt    time.Time
	ApprovedAt   time.Time
}
