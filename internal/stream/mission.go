package stream

import (
	"encoding/json"
	"fmt"

	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/models"
)

// MissionEvent is one decoded event from the mission stream. The concrete
// types are [MissionCreated], [MissionUpdated] and [MissionDeleted].
type MissionEvent interface {
	missionEvent()
}

// MissionCreated carries a newly published mission.
type MissionCreated struct {
	Mission models.Mission
}

// MissionUpdated carries the full new state of a changed mission.
type MissionUpdated struct {
	Mission models.Mission
}

// MissionDeleted carries only the identifier of a removed mission.
type MissionDeleted struct {
	MissionID string
}

func (MissionCreated) missionEvent() {}
func (MissionUpdated) missionEvent() {}
func (MissionDeleted) missionEvent() {}

// DecodeMissionFrame decodes one mission stream frame into a typed event.
// Created and updated frames must carry the mission object, deleted frames
// the mission id; anything else fails the single frame.
func DecodeMissionFrame(f Frame) (MissionEvent, error) {
	var payload models.MissionStreamPayload
	if err := json.Unmarshal(f.Data, &payload); err != nil {
		return nil, fmt.Errorf("decode mission frame: %w", err)
	}

	switch payload.Type {
	case models.EventMissionCreated:
		if payload.Mission == nil {
			return nil, fmt.Errorf("mission frame %q: missing mission object", payload.Type)
		}
		return MissionCreated{Mission: payload.Mission.ToDomain()}, nil
	case models.EventMissionUpdated:
		if payload.Mission == nil {
			return nil, fmt.Errorf("mission frame %q: missing mission object", payload.Type)
		}
		return MissionUpdated{Mission: payload.Mission.ToDomain()}, nil
	case models.EventMissionDeleted:
		if payload.MissionID == "" {
			return nil, fmt.Errorf("mission frame %q: missing mission id", payload.Type)
		}
		return MissionDeleted{MissionID: payload.MissionID}, nil
	default:
		return nil, fmt.Errorf("mission frame: unknown event type %q", payload.Type)
	}
}

// NewMissionClient builds the stream client for the shared mission feed.
// The mission stream has a single endpoint regardless of session role.
func NewMissionClient(transport Transport, tokens TokenSource, baseURL string, buffer int, log *logger.Logger) *Client[MissionEvent] {
	endpoint := func() string { return baseURL + "/missions/stream" }
	return NewClient("missions", transport, tokens, endpoint, DecodeMissionFrame, buffer, log)
}
