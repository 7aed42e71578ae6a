package notification

import (
	"encoding/json"
	"time"
)

// NotificationType represents the category a feed entry was derived from.
type NotificationType string

const (
	TypeLeaveRequest   NotificationType = "leave_request"
	TypeLeaveApproval  NotificationType = "leave_approval"
	TypeLeaveRejection NotificationType = "leave_rejection"
	TypePayroll        NotificationType = "payroll"
	TypeAttendance     NotificationType = "attendance"
	TypeEmployeeAdded  NotificationType = "employee_added"
	TypeAnnouncement   NotificationType = "announcement"
)

// RecencyWindow is the cutoff for event-derived notifications: events older
// than this are excluded from the feed even though the underlying record
// still exists upstream.
const RecencyWindow = 7 * 24 * time.Hour

// Notification is one feed entry. Entries are ephemeral: the feed is
// recomputed on every fetch and only the read-state ids are persisted.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
	Link      string

	// RefID is the source record's identifier, kept for downstream
	// action wiring.
	RefID string
}

// Preferences are the user-editable category toggles. Disabling a category
// suppresses generation of its notifications, not just their display.
type Preferences struct {
	LeaveRequests      bool `json:"leaveRequests"`
	AttendanceAlerts   bool `json:"attendanceAlerts"`
	PayrollReminders   bool `json:"payrollReminders"`
	EmailNotifications bool `json:"emailNotifications"`
}

// DefaultPreferences returns the defaults: every toggle on.
func DefaultPreferences() Preferences {
	return Preferences{
		LeaveRequests:      true,
		AttendanceAlerts:   true,
		PayrollReminders:   true,
		EmailNotifications: true,
	}
}

// rawPreferences distinguishes absent flags from explicit false so that
// unset flags default to true.
type rawPreferences struct {
	LeaveRequests      *bool `json:"leaveRequests"`
	AttendanceAlerts   *bool `json:"attendanceAlerts"`
	PayrollReminders   *bool `json:"payrollReminders"`
	EmailNotifications *bool `json:"emailNotifications"`
}

// ParsePreferences decodes a persisted preference document. Absent or
// malformed input yields the defaults.
func ParsePreferences(data string) Preferences {
	prefs := DefaultPreferences()
	if data == "" {
		return prefs
	}
	var raw rawPreferences
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return prefs
	}
	if raw.LeaveRequests != nil {
		prefs.LeaveRequests = *raw.LeaveRequests
	}
	if raw.AttendanceAlerts != nil {
		prefs.AttendanceAlerts = *raw.AttendanceAlerts
	}
	if raw.PayrollReminders != nil {
		prefs.PayrollReminders = *raw.PayrollReminders
	}
	if raw.EmailNotifications != nil {
		prefs.EmailNotifications = *raw.EmailNotifications
	}
	return prefs
}
