package tui

import (
	"github.com/worklink-app/go-work-link/internal/stream"
	"github.com/worklink-app/go-work-link/models"
)

// NavigateTo switches the active pre-auth page.
type NavigateTo struct {
	Page string
}

// LoginResult is emitted by the async login command.
type LoginResult struct {
	Err  error
	User models.User
}

type missionsLoadedMsg struct {
	missions []models.Mission
	err      error
}

type missionEventMsg struct {
	event stream.MissionEvent
}

type profileEventMsg struct {
	event stream.ProfileEvent
}

type missionStreamClosedMsg struct{}

type profileStreamClosedMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
