package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/session"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/gateway"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/store"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/token"
)

type ServiceImpl struct {
	gateway *gateway.Client
	store   store.Store

	mu    sync.RWMutex
	user  *session.User
	token string
}

// NewSessionService creates a session service backed by the given gateway
// and persistent store. Call Restore once at startup before serving.
func NewSessionService(gw *gateway.Client, st store.Store) *ServiceImpl {
	return &ServiceImpl{
		gateway: gw,
		store:   st,
	}
}

var _ session.Service = (*ServiceImpl)(nil)

// Restore implements session.Service. It never fails to the caller: a
// corrupted persisted user clears the session, and the best-effort name
// backfill degrades to the persisted data.
func (s *ServiceImpl) Restore(ctx context.Context) error {
	rawUser, ok, err := s.store.Get(store.KeyUser)
	if err != nil {
		slog.Warn("Failed to read persisted user", "error", err)
		return nil
	}
	if !ok {
		// A leftover token without a user is not a session either.
		s.clearPersisted()
		return nil
	}

	var user session.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		slog.Warn("Persisted session is corrupted, clearing", "error", err)
		s.clearPersisted()
		return nil
	}

	bearer, ok, err := s.store.Get(store.KeyToken)
	if err != nil {
		slog.Warn("Failed to read persisted token", "error", err)
		return nil
	}
	if !ok || bearer == "" {
		// A user without a credential is not a session.
		s.clearPersisted()
		return nil
	}

	s.gateway.SetToken(bearer)

	// Backfill identity fields from the token claims when the persisted
	// record predates them.
	if claims, err := token.Inspect(bearer); err == nil {
		if user.EmployeeID == "" {
			user.EmployeeID = claims.EmployeeID
		}
		if user.Role == "" {
			user.Role = session.Role(claims.Role)
		}
	}

	if needsNameResolution(user.Name) && user.EmployeeID != "" {
		if name := s.resolveDisplayName(ctx, bearer, user.EmployeeID); name != "" {
			user.Name = name
			s.persistUser(&user)
		}
	}

	s.mu.Lock()
	s.user = &user
	s.token = bearer
	s.mu.Unlock()

	return nil
}

func needsNameResolution(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed == "" || trimmed == session.PlaceholderName
}

// Login implements session.Service. It fails closed: no session state is
// created or modified unless the whole operation succeeds.
func (s *ServiceImpl) Login(ctx context.Context, req session.LoginRequest) (*session.User, error) {
	var resp session.LoginResponse
	if err := s.gateway.Post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	if resp.User == nil || resp.Token == "" {
		return nil, session.ErrInvalidLoginResponse
	}
	raw := *resp.User

	user := session.User{
		ID:         raw.ID.String(),
		Email:      raw.Email,
		Role:       session.Role(raw.Role),
		EmployeeID: raw.ResolveEmployeeID(),
		Department: raw.Department,
		Position:   raw.Position,
	}
	if user.ID == "" {
		user.ID = raw.MongoID.String()
	}
	if user.Email == "" {
		user.Email = req.Email
	}
	if user.Role == "" {
		user.Role = req.Role
	}

	// Display name fallback chain: explicit name fields, assembled name
	// parts, employee lookup, email local part, placeholder.
	user.Name = raw.DisplayName()
	if user.Name == "" && user.EmployeeID != "" {
		s.gateway.SetToken(resp.Token)
		user.Name = s.resolveDisplayName(ctx, resp.Token, user.EmployeeID)
	}
	if user.Name == "" {
		user.Name = emailLocalPart(user.Email)
	}
	if user.Name == "" {
		user.Name = session.PlaceholderName
	}

	if err := s.store.Set(store.KeyToken, resp.Token); err != nil {
		return nil, fmt.Errorf("persisting token: %w", err)
	}
	s.persistUser(&user)

	s.gateway.SetToken(resp.Token)

	s.mu.Lock()
	s.user = &user
	s.token = resp.Token
	s.mu.Unlock()

	result := user
	return &result, nil
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return strings.TrimSpace(local)
}

// Logout implements session.Service.
func (s *ServiceImpl) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.gateway.ClearToken()
	s.clearPersisted()
}

// UpdateUser implements session.Service. Fields absent from the update are
// left untouched.
func (s *ServiceImpl) UpdateUser(update session.Update) (*session.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, session.ErrNotAuthenticated
	}

	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.Department != nil {
		s.user.Department = *update.Department
	}
	if update.Position != nil {
		s.user.Position = *update.Position
	}

	s.persistUser(s.user)

	result := *s.user
	return &result, nil
}

// CurrentUser implements session.Service.
func (s *ServiceImpl) CurrentUser() *session.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	result := *s.user
	return &result
}

// Token implements session.Service.
func (s *ServiceImpl) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// resolveDisplayName looks up the employee record for employeeID and
// extracts a name. Failures degrade to "": 403/404 responses are expected
// for ordinary users and not logged, anything else is logged and still
// swallowed.
func (s *ServiceImpl) resolveDisplayName(ctx context.Context, bearer, employeeID string) string {
	if bearer == "" || employeeID == "" {
		return ""
	}

	var resp employee.Envelope
	if err := s.gateway.Get(ctx, "/api/employees/"+employeeID, &resp); err != nil {
		if !gateway.IsStatus(err, http.StatusForbidden, http.StatusNotFound) {
			slog.Warn("Employee name lookup failed", "employee_id", employeeID, "error", err)
		}
		return ""
	}

	return resp.Data.DisplayName()
}

func (s *ServiceImpl) persistUser(user *session.User) {
	data, err := json.Marshal(user)
	if err != nil {
		slog.Warn("Failed to serialize session user", "error", err)
		return
	}
	if err := s.store.Set(store.KeyUser, string(data)); err != nil {
		slog.Warn("Failed to persist session user", "error", err)
	}
}

func (s *ServiceImpl) clearPersisted() {
	if err := s.store.Delete(store.KeyUser); err != nil {
		slog.Warn("Failed to clear persisted user", "error", err)
	}
	if err := s.store.Delete(store.KeyToken); err != nil {
		slog.Warn("Failed to clear persisted token", "error", err)
	}
}
