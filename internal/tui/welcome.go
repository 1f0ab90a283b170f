package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/worklink-app/go-work-link/internal/service"
)

// WelcomeModel is the first-run onboarding screen. Once the user confirms it
// the onboarding flag is persisted and the screen is never shown again.
type WelcomeModel struct {
	ctx      context.Context
	sessions service.SessionStore
}

func NewWelcomeModel(ctx context.Context, sessions service.SessionStore) *WelcomeModel {
	return &WelcomeModel{ctx: ctx, sessions: sessions}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "enter" {
		// флаг пишем до перехода, ошибку записи не показываем
		_ = m.sessions.SetOnboardingDone(m.ctx, true)
		return m, func() tea.Msg { return NavigateTo{Page: "login"} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	data := "Добро пожаловать в WorkLink!\n" +
		"\n" +
		"Здесь рекрутеры публикуют миссии, а специалисты их находят.\n" +
		"Доска миссий обновляется в реальном времени без перезагрузки."

	return renderPage("WORKLINK", data, "enter: продолжить")
}
