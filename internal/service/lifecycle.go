// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/logger"
)

type clientLifecycleService struct {
	adapter  adapter.ServerAdapter
	sessions SessionStore
	streams  StreamRegistry
	logger   *logger.Logger
}

func NewClientLifecycleService(serverAdapter adapter.ServerAdapter, sessions SessionStore, streams StreamRegistry, log *logger.Logger) ClientLifecycleService {
	return &clientLifecycleService{adapter: serverAdapter, sessions: sessions, streams: streams, logger: log}
}

// Logout implements ClientLifecycleService. The order matters: the server
// session is revoked while the token is still locally known, then the stream
// connections are closed, then the local state is wiped. A failure in any
// step is logged and the remaining steps still run, so the local state never
// stays armed because the network was down.
func (l *clientLifecycleService) Logout(ctx context.Context) {
	if err := l.adapter.RevokeSession(ctx); err != nil {
		l.logger.Warn().Err(err).Msg("session revoke failed, continuing logout")
	}

	l.streams.DisconnectAll()
	l.adapter.SetToken("")

	if err := l.sessions.Clear(ctx); err != nil {
		l.logger.Error().Err(err).Msg("failed to clear local session")
	}

	l.logger.Info().Msg("logout completed")
}
