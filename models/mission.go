package models

import "time"

// Mission represents a freelance mission published by a recruiter.
// It is the fully-mapped domain form used everywhere above the transport
// layer; wire-level representations live in [MissionDTO].
type Mission struct {
	// ID is the server-side unique identifier of the mission.
	ID string

	// Title is the short human-readable mission name shown in lists.
	Title string

	// Description is the full mission statement.
	Description string

	// Budget is the proposed mission budget in Currency units.
	Budget float64

	// Currency is the ISO 4217 code of the budget currency (e.g. "EUR").
	Currency string

	// Skills lists the skill tags the recruiter attached to the mission.
	Skills []string

	// Status is the lifecycle state reported by the server
	// (e.g. "open", "in_progress", "closed").
	Status string

	// RecruiterID identifies the recruiter who published the mission.
	RecruiterID string

	// CreatedAt is when the mission was published.
	CreatedAt time.Time

	// UpdatedAt is when the mission was last modified on the server.
	UpdatedAt time.Time
}

// MissionDTO is the wire representation of a mission as returned by the
// REST endpoints and carried inside stream frame payloads.
type MissionDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      float64  `json:"budget"`
	Currency    string   `json:"currency"`
	Skills      []string `json:"skills"`
	Status      string   `json:"status"`
	RecruiterID string   `json:"recruiterId"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ToDomain maps the DTO to the [Mission] domain form. Timestamps that fail
// to parse as RFC 3339 are left as zero values; the server is the source of
// truth and the client never writes them back.
func (d MissionDTO) ToDomain() Mission {
	createdAt, _ := time.Parse(time.RFC3339, d.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, d.UpdatedAt)

	return Mission{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Budget:      d.Budget,
		Currency:    d.Currency,
		Skills:      d.Skills,
		Status:      d.Status,
		RecruiterID: d.RecruiterID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
