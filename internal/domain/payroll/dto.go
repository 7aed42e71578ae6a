package payroll

import (
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/jsonx"
)

// RawRecord carries the field-name variants the Dayflow API emits for a
// payroll record.
type RawRecord struct {
	ID      jsonx.FlexString `json:"id"`
	MongoID jsonx.FlexString `json:"_id"`

	EmployeeID jsonx.FlexString `json:"employeeId"`

	PayPeriod string        `json:"payPeriod"`
	Month     jsonx.FlexInt `json:"month"`
	Year      jsonx.FlexInt `json:"year"`

	NetSalary jsonx.FlexFloat `json:"netSalary"`

	GeneratedAt jsonx.FlexTime `json:"generatedAt"`
	CreatedAt   jsonx.FlexTime `json:"createdAt"`
}

// ListEnvelope is the API response wrapper for payroll collections.
type ListEnvelope struct {
	Success bool        `json:"success"`
	Data    []RawRecord `json:"data"`
}

// Period resolves the pay period label, assembling it from month and year
// when the explicit field is absent.
func (r RawRecord) Period() string {
	if r.PayPeriod != "" {
		return r.PayPeriod
	}
	if r.Year.Int() > 0 && r.Month.Int() > 0 {
		return fmt.Sprintf("%04d-%02d", r.Year.Int(), r.Month.Int())
	}
	return ""
}

// GeneratedTime resolves the generation timestamp from its variants.
func (r RawRecord) GeneratedTime() time.Time {
	if !r.GeneratedAt.IsZero() {
		return r.GeneratedAt.Time
	}
	return r.CreatedAt.Time
}

// Normalize maps the raw record onto the canonical Record.
func (r RawRecord) Normalize() Record {
	id := r.ID.String()
	if id == "" {
		id = r.MongoID.String()
	}
	return Record{
		ID:          id,
		EmployeeID:  r.EmployeeID.String(),
		PayPeriod:   r.Period(),
		Month:       r.Month.Int(),
		Year:        r.Year.Int(),
		NetSalary:   r.NetSalary.Float64(),
		GeneratedAt: r.GeneratedTime(),
	}
}
