package employee

import "time"

// Employee is the canonical, normalized shape of an upstream employee
// record. The upstream API is weakly typed; RawEmployee in dto.go adapts it.
type Employee struct {
	EmployeeID string
	Name       string
	Email      string
	Department string
	Position   string
	JoinedAt   time.Time
}
