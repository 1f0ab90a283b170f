package stream

import (
	"encoding/json"
	"fmt"

	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/models"
)

// ProfileEvent is one decoded event from the profile stream. The concrete
// types are [ProfileUpdated] and [ProfileDeleted].
type ProfileEvent interface {
	profileEvent()
}

// ProfileUpdated carries the full new state of the session user's profile.
type ProfileUpdated struct {
	User models.User
}

// ProfileDeleted signals that the session user's account was removed.
type ProfileDeleted struct {
	UserID string
}

func (ProfileUpdated) profileEvent() {}
func (ProfileDeleted) profileEvent() {}

// SessionSource exposes the session fields the profile stream needs: the
// bearer token and the role that selects the endpoint and payload shape.
type SessionSource interface {
	TokenValue() string
	RoleValue() string
}

// DecodeProfileFrame decodes one profile stream frame. The server shapes
// updated payloads by role, so the decoder accepts whichever user object is
// present; a frame with neither fails.
func DecodeProfileFrame(f Frame) (ProfileEvent, error) {
	var payload models.ProfileStreamPayload
	if err := json.Unmarshal(f.Data, &payload); err != nil {
		return nil, fmt.Errorf("decode profile frame: %w", err)
	}

	switch payload.Type {
	case models.EventProfileUpdated:
		switch {
		case payload.TalentUser != nil:
			return ProfileUpdated{User: payload.TalentUser.ToDomain()}, nil
		case payload.RecruiterUser != nil:
			return ProfileUpdated{User: payload.RecruiterUser.ToDomain()}, nil
		default:
			return nil, fmt.Errorf("profile frame %q: missing user object", payload.Type)
		}
	case models.EventProfileDeleted:
		if payload.UserID == "" {
			return nil, fmt.Errorf("profile frame %q: missing user id", payload.Type)
		}
		return ProfileDeleted{UserID: payload.UserID}, nil
	default:
		return nil, fmt.Errorf("profile frame: unknown event type %q", payload.Type)
	}
}

// ProfileEndpoint resolves the role-specific profile stream URL. Roles other
// than talent and recruiter have no profile stream and resolve to "".
func ProfileEndpoint(baseURL, role string) string {
	switch role {
	case models.RoleTalent:
		return baseURL + "/talent/profile/stream"
	case models.RoleRecruiter:
		return baseURL + "/recruiter/profile/stream"
	default:
		return ""
	}
}

// NewProfileClient builds the stream client for the session user's own
// profile feed. The endpoint is re-resolved from the session role on every
// Connect, so a client created before login still picks the right URL.
func NewProfileClient(transport Transport, session SessionSource, baseURL string, buffer int, log *logger.Logger) *Client[ProfileEvent] {
	endpoint := func() string { return ProfileEndpoint(baseURL, session.RoleValue()) }
	return NewClient("profile", transport, session, endpoint, DecodeProfileFrame, buffer, log)
}
