package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/internal/service"
	"github.com/worklink-app/go-work-link/internal/stream"
	"github.com/worklink-app/go-work-link/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	adapter  adapter.ServerAdapter
	streams  *stream.Registry
	sessions service.SessionStore
}

func New(services *service.ClientServices, serverAdapter adapter.ServerAdapter, streams *stream.Registry, sessions service.SessionStore, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, adapter: serverAdapter, streams: streams, sessions: sessions}, nil
}

// LoginFlow runs the pre-auth screens (first-run welcome, then the login
// form) and returns the logged-in user. Returns [ErrUserQuit] if the user
// quits instead of logging in.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"welcome": NewWelcomeModel(ctx, t.sessions),
		"login":   NewLoginModel(ctx, t.services.AuthService),
	}

	startPage := "login"
	if !t.sessions.Current().OnboardingDone {
		startPage = "welcome"
	}

	root := NewRootModel(pages, startPage)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the mission board until the user quits or logs out.
// Returns logout=true when the user chose logout rather than quit.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.adapter, t.streams, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
