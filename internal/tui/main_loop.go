// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/service"
	"github.com/worklink-app/go-work-link/internal/stream"
	"github.com/worklink-app/go-work-link/models"
)

type logoutDoneMsg struct{}

// mainLoopModel is the mission board. The list is seeded by a REST call and
// then kept current by the mission stream; the profile stream keeps the
// header in sync with the user's own account.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	adapter  adapter.ServerAdapter
	streams  *stream.Registry
	user     models.User

	missions []models.Mission
	idx      int
	loading  bool
	status   string
	errMsg   string
	detail   bool

	missionEvents <-chan stream.MissionEvent
	profileEvents <-chan stream.ProfileEvent
	cancelMission func()
	cancelProfile func()

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, serverAdapter adapter.ServerAdapter, streams *stream.Registry, user models.User) mainLoopModel {
	missionEvents, cancelMission := streams.Mission().Subscribe()
	profileEvents, cancelProfile := streams.Profile().Subscribe()

	return mainLoopModel{
		ctx:           ctx,
		services:      services,
		adapter:       serverAdapter,
		streams:       streams,
		user:          user,
		loading:       true,
		missionEvents: missionEvents,
		profileEvents: profileEvents,
		cancelMission: cancelMission,
		cancelProfile: cancelProfile,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoadMissions(),
		m.cmdWaitMissionEvent(),
		m.cmdWaitProfileEvent(),
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case missionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.missions = msg.missions
		m.clampCursor()
		return m, nil

	case missionEventMsg:
		m.applyMissionEvent(msg.event)
		return m, m.cmdWaitMissionEvent()

	case profileEventMsg:
		switch event := msg.event.(type) {
		case stream.ProfileUpdated:
			m.user = event.User
			m.status = "Профиль обновлён"
			return m, tea.Batch(m.cmdWaitProfileEvent(), m.cmdClearStatus())
		case stream.ProfileDeleted:
			// аккаунт удалён на сервере — локальная сессия больше не валидна
			return m, m.cmdLogout()
		}
		return m, m.cmdWaitProfileEvent()

	case missionStreamClosedMsg, profileStreamClosedMsg:
		// подписка снята при выходе, «дожидаться» больше нечего
		return m, nil

	case copiedMsg:
		m.status = "ID миссии скопирован"
		return m, m.cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case logoutDoneMsg:
		m.logout = true
		m.unsubscribe()
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.unsubscribe()
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.missions)-1 {
			m.idx++
		}
	case "enter":
		if len(m.missions) > 0 {
			m.detail = true
		}
	case "esc":
		m.detail = false
	case "r":
		m.loading = true
		return m, m.cmdLoadMissions()
	case "s":
		// повторное подключение закрытых стримов; открытые не трогаются
		m.streams.ConnectAll()
		m.status = "Стримы переподключены"
		return m, m.cmdClearStatus()
	case "c":
		if len(m.missions) > 0 {
			return m, m.cmdCopyMissionID(m.missions[m.idx].ID)
		}
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

// applyMissionEvent merges one stream event into the list. Created and
// updated both upsert: the stream may deliver an update for a mission the
// initial load never saw.
func (m *mainLoopModel) applyMissionEvent(event stream.MissionEvent) {
	switch event := event.(type) {
	case stream.MissionCreated:
		m.upsertMission(event.Mission)
		m.status = "Новая миссия: " + fitText(event.Mission.Title, 30)
	case stream.MissionUpdated:
		m.upsertMission(event.Mission)
	case stream.MissionDeleted:
		for i := range m.missions {
			if m.missions[i].ID == event.MissionID {
				m.missions = append(m.missions[:i], m.missions[i+1:]...)
				break
			}
		}
		m.clampCursor()
	}
}

func (m *mainLoopModel) upsertMission(mission models.Mission) {
	for i := range m.missions {
		if m.missions[i].ID == mission.ID {
			m.missions[i] = mission
			return
		}
	}
	m.missions = append(m.missions, mission)
}

func (m *mainLoopModel) clampCursor() {
	if m.idx >= len(m.missions) {
		m.idx = len(m.missions) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	if len(m.missions) == 0 {
		m.detail = false
	}
}

func (m *mainLoopModel) unsubscribe() {
	m.cancelMission()
	m.cancelProfile()
}

func (m mainLoopModel) View() string {
	if m.detail && m.idx < len(m.missions) {
		return m.viewDetail(m.missions[m.idx])
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Пользователь: %s %s (%s)\n", m.user.FirstName, m.user.LastName, m.user.Role))
	b.WriteString(fmt.Sprintf("Стримы: миссии %s │ профиль %s\n\n", m.streams.Mission().State(), m.streams.Profile().State()))

	switch {
	case m.loading:
		b.WriteString("Загрузка миссий...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	case len(m.missions) == 0:
		b.WriteString("Миссий пока нет\n")
	default:
		b.WriteString(fmt.Sprintf("%-2s│ %-34s│ %-12s│ %s\n", "", "Миссия", "Бюджет", "Статус"))
		b.WriteString("──┼───────────────────────────────────┼─────────────┼───────────\n")
		for i, mission := range m.missions {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s │ %-34s│ %-12s│ %s\n",
				cursor,
				fitText(mission.Title, 33),
				formatBudget(mission.Budget, mission.Currency),
				mission.Status,
			))
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	return renderPage("МИССИИ",
		strings.TrimRight(b.String(), "\n"),
		"enter: детали │ r: обновить │ s: стримы │ c: копировать ID │ l: выйти из аккаунта │ q: выход")
}

func (m mainLoopModel) viewDetail(mission models.Mission) string {
	var b strings.Builder

	b.WriteString("ID:        " + mission.ID + "\n")
	b.WriteString("Название:  " + mission.Title + "\n")
	b.WriteString("Бюджет:    " + formatBudget(mission.Budget, mission.Currency) + "\n")
	b.WriteString("Статус:    " + mission.Status + "\n")
	b.WriteString("Навыки:    " + strings.Join(mission.Skills, ", ") + "\n")
	if !mission.CreatedAt.IsZero() {
		b.WriteString("Создана:   " + mission.CreatedAt.Format("2006-01-02 15:04") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(mission.Description)

	return renderPage("МИССИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ c: копировать ID")
}

func (m mainLoopModel) cmdLoadMissions() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		missions, err := serverAdapter.GetMissions(ctx)
		return missionsLoadedMsg{missions: missions, err: err}
	}
}

func (m mainLoopModel) cmdWaitMissionEvent() tea.Cmd {
	events := m.missionEvents
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return missionStreamClosedMsg{}
		}
		return missionEventMsg{event: event}
	}
}

func (m mainLoopModel) cmdWaitProfileEvent() tea.Cmd {
	events := m.profileEvents
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return profileStreamClosedMsg{}
		}
		return profileEventMsg{event: event}
	}
}

func (m mainLoopModel) cmdCopyMissionID(id string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(id); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	lifecycle := m.services.LifecycleService

	return func() tea.Msg {
		lifecycle.Logout(ctx)
		return logoutDoneMsg{}
	}
}
