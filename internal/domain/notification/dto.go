package notification

import (
	"time"

	"github.com/dustin/go-humanize"
)

// NotificationResponse represents a feed entry in API responses. Age is the
// human-readable relative time, computed when the response is built so it
// stays live rather than frozen at fetch time.
type NotificationResponse struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Age       string           `json:"age"`
	Read      bool             `json:"read"`
	Link      string           `json:"link,omitempty"`
	RefID     string           `json:"refId,omitempty"`
}

// ToResponse converts a feed entry, rendering the relative time against the
// current clock.
func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Age:       humanize.Time(n.Timestamp),
		Read:      n.Read,
		Link:      n.Link,
		RefID:     n.RefID,
	}
}

// FeedResponse is the full feed plus derived counts.
type FeedResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	UnreadCount   int                    `json:"unread_count"`
}

// UnreadCountResponse represents the unread count alone.
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
