// SPDX-License-Identifier: Apache-2.0

// Package service implements the client-side use cases on top of the server
// adapter, the session store, and the stream registry: authentication, the
// session lifecycle, and the background keep-alive worker.
package service

import (
	"context"
	"time"

	"github.com/worklink-app/go-work-link/models"
)

// StreamRegistry is the narrow view of the stream layer the service package
// needs: bulk connect and disconnect. Connect of every underlying client is
// idempotent, so ConnectAll may be called repeatedly.
type StreamRegistry interface {
	ConnectAll()
	DisconnectAll()
}

// SessionStore is the subset of the session store used by the services.
type SessionStore interface {
	Current() models.Session
	TokenValue() string
	Save(ctx context.Context, s models.Session) error
	SetOnboardingDone(ctx context.Context, done bool) error
	Clear(ctx context.Context) error
}

// ClientAuthService authenticates the user and establishes the local session.
type ClientAuthService interface {
	// Login exchanges credentials for a bearer token, persists the session
	// locally, arms the adapter with the token, and opens the realtime
	// streams. Returns the logged-in user's profile.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// ClientLifecycleService owns session teardown.
type ClientLifecycleService interface {
	// Logout revokes the server session, closes all stream connections, and
	// clears the local session. Every step is best-effort: a failure is
	// logged and the remaining steps still run. Logout never fails.
	Logout(ctx context.Context)
}

// KeepAliveJob is a background worker that periodically re-asserts the
// stream connections while a user is logged in. Because per-stream Connect
// is idempotent, an already-open stream is untouched and a dropped one is
// re-established on the next tick.
type KeepAliveJob interface {
	// Start launches the background goroutine. It ticks every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
