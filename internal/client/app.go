package client

import (
	"context"
	"errors"
	"time"

	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/config"
	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/internal/service"
	"github.com/worklink-app/go-work-link/internal/session"
	"github.com/worklink-app/go-work-link/internal/stream"
	"github.com/worklink-app/go-work-link/internal/tui"
	"github.com/worklink-app/go-work-link/internal/workers"
	"github.com/worklink-app/go-work-link/models"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	sessions session.Store
	adapter  adapter.ServerAdapter
	streams  *stream.Registry
	ui       *tui.TUI
	jobs     *workers.Workers
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, services *service.ClientServices, sessions session.Store, serverAdapter adapter.ServerAdapter, streams *stream.Registry, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || services == nil || sessions == nil || serverAdapter == nil || streams == nil || ui == nil {
		return nil, errors.New("client app: missing dependency")
	}

	app := &App{
		cfg:      cfg,
		services: services,
		sessions: sessions,
		adapter:  serverAdapter,
		streams:  streams,
		ui:       ui,
		logger:   log,
	}

	var background []workers.Worker
	if cfg.Workers.KeepAliveEnabled {
		background = append(background, newKeepAliveWorker(services.KeepAliveJob, cfg.Workers.KeepAliveInterval))
	}
	app.jobs = workers.New(background...)

	return app, nil
}

// Run starts the client: restores a persisted session or runs the login
// flow, opens the realtime streams, and hands control to the mission board.
// A logout from the board starts the cycle over; a quit ends it.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.restoreOrLogin(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.jobs.Run()
	defer a.jobs.Stop()

	logout, err := a.ui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	a.streams.DisconnectAll()
	return nil
}

// restoreOrLogin arms the adapter and streams from a persisted session, or
// falls back to the interactive login flow when none exists.
func (a *App) restoreOrLogin(ctx context.Context) (models.User, error) {
	persisted := a.sessions.Current()
	if !persisted.Authenticated() {
		return a.ui.LoginFlow(ctx)
	}

	a.adapter.SetToken(persisted.AccessToken)
	a.streams.ConnectAll()
	a.logger.Info().Str("user_id", persisted.UserID).Msg("session restored")

	user := models.User{
		ID:       persisted.UserID,
		Role:     persisted.Role,
		Language: persisted.Language,
	}

	// профиль освежаем по REST; при ошибке работаем с данными из сессии
	if profile, err := a.adapter.GetProfile(ctx, persisted.Role); err == nil {
		user = profile
	} else if !errors.Is(err, adapter.ErrUnknownRole) {
		a.logger.Warn().Err(err).Msg("profile refresh failed")
	}

	return user, nil
}

// keepAliveWorker adapts the keep-alive job to the workers contract.
type keepAliveWorker struct {
	job      service.KeepAliveJob
	interval time.Duration
}

func newKeepAliveWorker(job service.KeepAliveJob, interval time.Duration) *keepAliveWorker {
	return &keepAliveWorker{job: job, interval: interval}
}

func (w *keepAliveWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}

func (w *keepAliveWorker) Stop() {
	w.job.Stop()
}
