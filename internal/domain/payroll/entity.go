package payroll

import "time"

// Record is the canonical, normalized shape of an upstream payroll record.
type Record struct {
	ID          string
	EmployeeID  string
	PayPeriod   string
	Month       int
	Year        int
	NetSalary   float64
	GeneratedAt time.Time
}
