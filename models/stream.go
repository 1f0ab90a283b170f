package models

// Event type discriminators carried in the "type" field of stream frame
// payloads. Unknown values are treated as a per-frame decode failure.
const (
	EventMissionCreated = "mission_created"
	EventMissionUpdated = "mission_updated"
	EventMissionDeleted = "mission_deleted"
	EventProfileUpdated = "profile_updated"
	EventProfileDeleted = "profile_deleted"
)

// MissionStreamPayload is the JSON payload of one mission stream frame.
// Exactly one of Mission or MissionID is set depending on Type.
type MissionStreamPayload struct {
	Type      string      `json:"type"`
	Mission   *MissionDTO `json:"mission,omitempty"`
	MissionID string      `json:"missionId,omitempty"`
}

// ProfileStreamPayload is the JSON payload of one profile stream frame.
// The server shapes the payload by role: a talent session receives
// TalentUser, a recruiter session receives RecruiterUser.
type ProfileStreamPayload struct {
	Type          string        `json:"type"`
	RecruiterUser *RecruiterDTO `json:"recruiterUser,omitempty"`
	TalentUser    *TalentDTO    `json:"talentUser,omitempty"`
	UserID        string        `json:"userId,omitempty"`
}
