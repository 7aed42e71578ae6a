package http

import (
	"encoding/json"
	"net/http"

	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-agent-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// NotificationHandler serves the feed endpoints of the local agent API.
type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
	GetPreferences(w http.ResponseWriter, r *http.Request)
	UpdatePreferences(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{notifService: notifService}
}

// List returns the current feed with live relative timestamps.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	feed := h.notifService.Feed()

	responses := make([]notification.NotificationResponse, len(feed))
	unread := 0
	for i, n := range feed {
		responses[i] = notification.ToResponse(n)
		if !n.Read {
			unread++
		}
	}

	response.Success(w, notification.FeedResponse{
		Notifications: responses,
		Total:         len(responses),
		UnreadCount:   unread,
	})
}

func (h *notificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	response.Success(w, notification.UnreadCountResponse{
		UnreadCount: h.notifService.UnreadCount(),
	})
}

// Refresh recomputes the feed on demand.
func (h *notificationHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.notifService.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	h.List(w, r)
}

func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "notification id is required")
		return
	}

	if err := h.notifService.MarkAsRead(id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked as read", notification.UnreadCountResponse{
		UnreadCount: h.notifService.UnreadCount(),
	})
}

func (h *notificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifService.MarkAllAsRead(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All marked as read", notification.UnreadCountResponse{
		UnreadCount: h.notifService.UnreadCount(),
	})
}

func (h *notificationHandlerImpl) GetPreferences(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.notifService.Preferences())
}

// UpdatePreferences replaces the persisted category toggles.
func (h *notificationHandlerImpl) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	// Start from current values so omitted flags keep their state.
	prefs := h.notifService.Preferences()
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.notifService.UpdatePreferences(prefs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prefs)
}
