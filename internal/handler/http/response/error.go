package response

import (
	"errors"
	"net/http"

	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-agent-go/internal/domain/session"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/gateway"
)

// HandleError maps domain and gateway errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	// Upstream API errors carry their own status; relay auth failures as
	// such and everything else as an upstream problem.
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			Unauthorized(w, apiErr.Message)
		case http.StatusNotFound:
			NotFound(w, apiErr.Message)
		default:
			BadGateway(w, apiErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, session.ErrInvalidLoginResponse):
		BadGateway(w, "Login response was incomplete")
	case errors.Is(err, session.ErrNotAuthenticated),
		errors.Is(err, notification.ErrNoSession):
		Unauthorized(w, "Not signed in")
	default:
		InternalServerError(w, err.Error())
	}
}
