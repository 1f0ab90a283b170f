package models

// Credentials is the request body for the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /auth/login. The access token
// also carries the user id and role as JWT claims; the embedded profile DTOs
// save the client an extra round-trip after login.
type LoginResponse struct {
	AccessToken   string        `json:"accessToken"`
	TalentUser    *TalentDTO    `json:"talentUser,omitempty"`
	RecruiterUser *RecruiterDTO `json:"recruiterUser,omitempty"`
}

// MissionListResponse is the body returned by GET /missions.
type MissionListResponse struct {
	Missions []MissionDTO `json:"missions"`
	Total    int          `json:"total"`
}
