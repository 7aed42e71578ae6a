package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/session"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/gateway"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/store"
)

// DefaultPollInterval is how often the feed is recomputed when driven by
// the poller.
const DefaultPollInterval = 5 * time.Minute

type ServiceImpl struct {
	gateway *gateway.Client
	store   store.Store
	session session.Service

	// seq orders fetch cycles so that a slow, stale fetch cannot
	// overwrite the result of a newer one.
	seq atomic.Uint64

	mu   sync.RWMutex
	feed []notification.Notification
}

// NewNotificationService creates the aggregation service. The session
// service decides which upstream collections are queried and how records
// are scoped.
func NewNotificationService(gw *gateway.Client, st store.Store, sess session.Service) *ServiceImpl {
	return &ServiceImpl{
		gateway: gw,
		store:   st,
		session: sess,
	}
}

var _ notification.Service = (*ServiceImpl)(nil)

// Refresh implements notification.Service. Enabled categories for the
// current role are fetched concurrently; a failing category contributes
// zero entries and is logged, never surfaced.
func (s *ServiceImpl) Refresh(ctx context.Context) error {
	user := s.session.CurrentUser()
	if user == nil {
		return notification.ErrNoSession
	}

	seq := s.seq.Add(1)
	prefs := s.Preferences()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		items []notification.Notification
	)
	run := func(category string, fn func(ctx context.Context) ([]notification.Notification, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := fn(ctx)
			if err != nil {
				slog.Warn("Notification category fetch failed", "category", category, "error", err)
				return
			}
			mu.Lock()
			items = append(items, list...)
			mu.Unlock()
		}()
	}

	if user.Role.IsBackOffice() {
		if prefs.LeaveRequests {
			run("pending_leave", s.fetchPendingLeave)
		}
		run("new_employees", s.fetchNewEmployees)
	} else {
		employeeID := user.EmployeeID
		if prefs.LeaveRequests {
			run("leave_outcomes", func(ctx context.Context) ([]notification.Notification, error) {
				return s.fetchLeaveOutcomes(ctx, employeeID)
			})
		}
		if prefs.PayrollReminders {
			run("payroll", func(ctx context.Context) ([]notification.Notification, error) {
				return s.fetchLatestPayroll(ctx, employeeID)
			})
		}
	}

	wg.Wait()

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	// Read-state lives only client-side; reattach it after every fetch.
	readSet := s.readSet()
	for i := range items {
		items[i].Read = readSet[items[i].ID]
	}

	s.mu.Lock()
	if seq == s.seq.Load() {
		s.feed = items
	}
	s.mu.Unlock()

	return nil
}

// fetchPendingLeave turns every pending leave request into a feed entry.
// Pending requests are always current; no recency window applies.
func (s *ServiceImpl) fetchPendingLeave(ctx context.Context) ([]notification.Notification, error) {
	var resp leave.ListEnvelope
	if err := s.gateway.Get(ctx, "/api/leave", &resp); err != nil {
		return nil, err
	}

	var items []notification.Notification
	for _, raw := range resp.Data {
		req := raw.Normalize()
		if req.Status != leave.StatusPending || req.ID == "" {
			continue
		}

		name := req.EmployeeName
		if name == "" {
			name = "An employee"
		}
		leaveType := req.LeaveType
		if leaveType == "" {
			leaveType = "leave"
		}
		message := fmt.Sprintf("%s applied for %s", name, leaveType)
		if req.Days > 0 {
			message = fmt.Sprintf("%s (%d days)", message, req.Days)
		}

		timestamp := req.AppliedAt
		if timestamp.IsZero() {
			timestamp = time.Now()
		}

		items = append(items, notification.Notification{
			ID:        "leave-" + req.ID,
			Type:      notification.TypeLeaveRequest,
			Title:     "New Leave Request",
			Message:   message,
			Timestamp: timestamp,
			Link:      "/leave",
			RefID:     req.ID,
		})
	}
	return items, nil
}

// fetchLeaveOutcomes turns the employee's recently decided leave requests
// into feed entries. Outcomes older than the recency window are excluded
// even though the record still exists upstream.
func (s *ServiceImpl) fetchLeaveOutcomes(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	var resp leave.ListEnvelope
	if err := s.gateway.Get(ctx, "/api/leave", &resp); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-notification.RecencyWindow)

	var items []notification.Notification
	for _, raw := range resp.Data {
		req := raw.Normalize()
		if req.ID == "" || req.ApprovedAt.IsZero() || req.ApprovedAt.Before(cutoff) {
			continue
		}
		if employeeID != "" && req.EmployeeID != employeeID {
			continue
		}

		var (
			id    string
			typ   notification.NotificationType
			title string
			verb  string
		)
		switch req.Status {
		case leave.StatusApproved:
			id = "leave-approved-" + req.ID
			typ = notification.TypeLeaveApproval
			title = "Leave Approved"
			verb = "approved"
		case leave.StatusRejected:
			id = "leave-rejected-" + req.ID
			typ = notification.TypeLeaveRejection
			title = "Leave Rejected"
			verb = "rejected"
		default:
			continue
		}

		leaveType := req.LeaveType
		if leaveType == "" {
			leaveType = "leave"
		}
		message := fmt.Sprintf("Your %s request was %s", leaveType, verb)
		if req.Comments != "" {
			message = message + ": " + req.Comments
		}

		items = append(items, notification.Notification{
			ID:        id,
			Type:      typ,
			Title:     title,
			Message:   message,
			Timestamp: req.ApprovedAt,
			Link:      "/leave",
			RefID:     req.ID,
		})
	}
	return items, nil
}

// fetchLatestPayroll emits at most one entry: the employee's most recently
// generated payroll record, and only when it falls inside the recency
// window.
func (s *ServiceImpl) fetchLatestPayroll(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	var resp payroll.ListEnvelope
	if err := s.gateway.Get(ctx, "/api/payroll", &resp); err != nil {
		return nil, err
	}

	var latest *payroll.Record
	for _, raw := range resp.Data {
		record := raw.Normalize()
		if record.ID == "" || record.GeneratedAt.IsZero() {
			continue
		}
		if employeeID != "" && record.EmployeeID != employeeID {
			continue
		}
		if latest == nil || record.GeneratedAt.After(latest.GeneratedAt) {
			r := record
			latest = &r
		}
	}

	if latest == nil || time.Since(latest.GeneratedAt) > notification.RecencyWindow {
		return nil, nil
	}

	period := latest.PayPeriod
	if period == "" {
		period = "the latest period"
	}

	return []notification.Notification{{
		ID:        "payroll-" + latest.ID,
		Type:      notification.TypePayroll,
		Title:     "Payslip Ready",
		Message:   fmt.Sprintf("Your payslip for %s has been generated", period),
		Timestamp: latest.GeneratedAt,
		Link:      "/payroll",
		RefID:     latest.ID,
	}}, nil
}

// fetchNewEmployees turns employees who joined within the recency window
// into feed entries.
func (s *ServiceImpl) fetchNewEmployees(ctx context.Context) ([]notification.Notification, error) {
	var resp employee.ListEnvelope
	if err := s.gateway.Get(ctx, "/api/employees", &resp); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-notification.RecencyWindow)

	var items []notification.Notification
	for _, raw := range resp.Data {
		emp := raw.Normalize()
		if emp.EmployeeID == "" || emp.JoinedAt.IsZero() || emp.JoinedAt.Before(cutoff) {
			continue
		}

		name := emp.Name
		if name == "" {
			name = "A new employee"
		}
		message := name + " joined the team"
		if emp.Department != "" {
			message = fmt.Sprintf("%s joined %s", name, emp.Department)
		}

		items = append(items, notification.Notification{
			ID:        "employee-" + emp.EmployeeID,
			Type:      notification.TypeEmployeeAdded,
			Title:     "New Team Member",
			Message:   message,
			Timestamp: emp.JoinedAt,
			Link:      "/employees",
			RefID:     emp.EmployeeID,
		})
	}
	return items, nil
}

// Feed implements notification.Service.
func (s *ServiceImpl) Feed() []notification.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]notification.Notification, len(s.feed))
	copy(result, s.feed)
	return result
}

// UnreadCount implements notification.Service.
func (s *ServiceImpl) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.feed {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead implements notification.Service. The in-memory entry is
// flipped immediately; the persisted read set grows only if the id is new.
func (s *ServiceImpl) MarkAsRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.feed {
		if s.feed[i].ID == id {
			s.feed[i].Read = true
		}
	}

	readSet := s.readSet()
	if readSet[id] {
		return nil
	}
	readSet[id] = true
	return s.persistReadSet(readSet)
}

// MarkAllAsRead implements notification.Service. The visible ids are
// unioned into the persisted set so that ids which aged out of the feed
// stay remembered.
func (s *ServiceImpl) MarkAllAsRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	readSet := s.readSet()
	for i := range s.feed {
		s.feed[i].Read = true
		readSet[s.feed[i].ID] = true
	}
	return s.persistReadSet(readSet)
}

// Reset implements notification.Service. It also bumps the fetch
// sequence so an in-flight refresh for the old session cannot publish
// after the reset.
func (s *ServiceImpl) Reset() {
	s.seq.Add(1)

	s.mu.Lock()
	s.feed = nil
	s.mu.Unlock()
}

// Preferences implements notification.Service. Storage failures and
// malformed documents degrade to the defaults.
func (s *ServiceImpl) Preferences() notification.Preferences {
	data, ok, err := s.store.Get(store.KeyPreferences)
	if err != nil {
		slog.Warn("Failed to read notification preferences", "error", err)
		return notification.DefaultPreferences()
	}
	if !ok {
		return notification.DefaultPreferences()
	}
	return notification.ParsePreferences(data)
}

// UpdatePreferences implements notification.Service.
func (s *ServiceImpl) UpdatePreferences(prefs notification.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("serializing preferences: %w", err)
	}
	if err := s.store.Set(store.KeyPreferences, string(data)); err != nil {
		return fmt.Errorf("persisting preferences: %w", err)
	}
	return nil
}

// readSet loads the persisted read-id set. Failures degrade to an empty
// set: entries show as unread rather than aborting the operation.
func (s *ServiceImpl) readSet() map[string]bool {
	data, ok, err := s.store.Get(store.KeyReadNotifications)
	if err != nil {
		slog.Warn("Failed to read notification read-state", "error", err)
		return map[string]bool{}
	}
	if !ok {
		return map[string]bool{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		slog.Warn("Persisted read-state is corrupted, ignoring", "error", err)
		return map[string]bool{}
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (s *ServiceImpl) persistReadSet(set map[string]bool) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("serializing read-state: %w", err)
	}
	if err := s.store.Set(store.KeyReadNotifications, string(data)); err != nil {
		return fmt.Errorf("persisting read-state: %w", err)
	}
	return nil
}
