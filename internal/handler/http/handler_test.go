package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionService struct {
	user     *session.User
	loginErr error
}

func (f *fakeSessionService) Restore(ctx context.Context) error { return nil }

func (f *fakeSessionService) Login(ctx context.Context, req session.LoginRequest) (*session.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = &session.User{ID: "u1", Email: req.Email, Name: "Ada", Role: req.Role}
	return f.user, nil
}

func (f *fakeSessionService) Logout() { f.user = nil }

func (f *fakeSessionService) UpdateUser(update session.Update) (*session.User, error) {
	if f.user == nil {
		return nil, session.ErrNotAuthenticated
	}
	if update.Name != nil {
		f.user.Name = *update.Name
	}
	return f.user, nil
}

func (f *fakeSessionService) CurrentUser() *session.User { return f.user }
func (f *fakeSessionService) Token() string              { return "" }

type fakeNotificationService struct {
	feed       []notification.Notification
	refreshErr error
	markedRead []string
	markedAll  bool
	prefs      notification.Preferences
}

func (f *fakeNotificationService) Refresh(ctx context.Context) error { return f.refreshErr }

func (f *fakeNotificationService) Feed() []notification.Notification { return f.feed }

func (f *fakeNotificationService) UnreadCount() int {
	count := 0
	for _, n := range f.feed {
		if !n.Read {
			count++
		}
	}
	return count
}

func (f *fakeNotificationService) MarkAsRead(id string) error {
	f.markedRead = append(f.markedRead, id)
	for i := range f.feed {
		if f.feed[i].ID == id {
			f.feed[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotificationService) MarkAllAsRead() error {
	f.markedAll = true
	for i := range f.feed {
		f.feed[i].Read = true
	}
	return nil
}

func (f *fakeNotificationService) Reset() { f.feed = nil }

func (f *fakeNotificationService) Preferences() notification.Preferences { return f.prefs }

func (f *fakeNotificationService) UpdatePreferences(prefs notification.Preferences) error {
	f.prefs = prefs
	return nil
}

func newTestServer(t *testing.T, sess *fakeSessionService, notif *fakeNotificationService) *httptest.Server {
	t.Helper()

	router := NewRouter(NewAuthHandler(sess, notif), NewNotificationHandler(notif), "test")
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func decodeResponse(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestLoginEndpoint(t *testing.T) {
	sess := &fakeSessionService{}
	server := newTestServer(t, sess, &fakeNotificationService{prefs: notification.DefaultPreferences()})

	payload, _ := json.Marshal(map[string]string{
		"email": "ada@x.com", "password": "pw", "role": "employee",
	})
	resp, err := http.Post(server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)

	body := decodeResponse(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	require.NotNil(t, sess.user)
	assert.Equal(t, "ada@x.com", sess.user.Email)
}

func TestLoginEndpoint_MissingCredentials(t *testing.T) {
	server := newTestServer(t, &fakeSessionService{}, &fakeNotificationService{})

	resp, err := http.Post(server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutEndpoint_ResetsFeed(t *testing.T) {
	sess := &fakeSessionService{user: &session.User{ID: "u1", Role: session.RoleHR}}
	notif := &fakeNotificationService{
		feed: []notification.Notification{{ID: "leave-1", Type: notification.TypeLeaveRequest}},
	}
	server := newTestServer(t, sess, notif)

	resp, err := http.Post(server.URL+"/api/v1/auth/logout", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, sess.user)
	assert.Empty(t, notif.feed)
}

func TestSessionEndpoint_Unauthenticated(t *testing.T) {
	server := newTestServer(t, &fakeSessionService{}, &fakeNotificationService{})

	resp, err := http.Get(server.URL + "/api/v1/session")
	require.NoError(t, err)

	body := decodeResponse(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["authenticated"])
}

func TestNotificationList(t *testing.T) {
	notif := &fakeNotificationService{
		feed: []notification.Notification{
			{ID: "leave-1", Type: notification.TypeLeaveRequest, Title: "New Leave Request", Timestamp: time.Now().Add(-2 * time.Hour)},
			{ID: "payroll-1", Type: notification.TypePayroll, Title: "Payslip Ready", Timestamp: time.Now().Add(-26 * time.Hour), Read: true},
		},
	}
	server := newTestServer(t, &fakeSessionService{}, notif)

	resp, err := http.Get(server.URL + "/api/v1/notifications")
	require.NoError(t, err)

	body := decodeResponse(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["unread_count"])

	entries := data["notifications"].([]interface{})
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "leave-1", first["id"])
	assert.Contains(t, first["age"], "ago")
}

func TestMarkAsReadEndpoint(t *testing.T) {
	notif := &fakeNotificationService{
		feed: []notification.Notification{{ID: "leave-1", Type: notification.TypeLeaveRequest}},
	}
	server := newTestServer(t, &fakeSessionService{}, notif)

	resp, err := http.Post(server.URL+"/api/v1/notifications/leave-1/read", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"leave-1"}, notif.markedRead)
}

func TestMarkAllAsReadEndpoint(t *testing.T) {
	notif := &fakeNotificationService{
		feed: []notification.Notification{{ID: "a"}, {ID: "b"}},
	}
	server := newTestServer(t, &fakeSessionService{}, notif)

	resp, err := http.Post(server.URL+"/api/v1/notifications/read-all", "application/json", nil)
	require.NoError(t, err)

	body := decodeResponse(t, resp)
	assert.True(t, notif.markedAll)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["unread_count"])
}

func TestRefreshEndpoint_NoSession(t *testing.T) {
	notif := &fakeNotificationService{refreshErr: notification.ErrNoSession}
	server := newTestServer(t, &fakeSessionService{}, notif)

	resp, err := http.Post(server.URL+"/api/v1/notifications/refresh", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPreferencesRoundTrip(t *testing.T) {
	notif := &fakeNotificationService{prefs: notification.DefaultPreferences()}
	server := newTestServer(t, &fakeSessionService{}, notif)

	payload := []byte(`{"payrollReminders": false}`)
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/api/v1/preferences", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, notif.prefs.PayrollReminders)
	// Flags omitted from the update keep their previous state.
	assert.True(t, notif.prefs.LeaveRequests)
}
