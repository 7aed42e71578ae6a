package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/session"
	"github.com/dayflow-hr/dayflow-agent-go/internal/handler/http/response"
)

// AuthHandler serves the session endpoints of the local agent API.
type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	UpdateSession(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	sessionService session.Service
	notifService   notification.Service
}

func NewAuthHandler(sessionService session.Service, notifService notification.Service) AuthHandler {
	return &authHandlerImpl{
		sessionService: sessionService,
		notifService:   notifService,
	}
}

// Login authenticates against the remote API and establishes the local
// session.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req session.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "email and password are required")
		return
	}

	user, err := h.sessionService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// First feed fetch for the new session; later ones come from the
	// poller. Detached from the request context so it outlives the reply.
	go func() {
		if err := h.notifService.Refresh(context.Background()); err != nil {
			slog.Warn("Initial notification refresh failed", "error", err)
		}
	}()

	response.SuccessWithMessage(w, "Signed in", user)
}

func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessionService.Logout()
	h.notifService.Reset()
	response.SuccessWithMessage(w, "Signed out", nil)
}

// GetSession returns the current session state, authenticated or not.
func (h *authHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	user := h.sessionService.CurrentUser()
	response.Success(w, map[string]interface{}{
		"authenticated": user != nil,
		"user":          user,
	})
}

// UpdateSession shallow-merges profile fields into the current user.
func (h *authHandlerImpl) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var update session.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	user, err := h.sessionService.UpdateUser(update)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user)
}
