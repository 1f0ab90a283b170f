// Package session owns the locally persisted authentication state of the
// client: access token, user id, role, language, and the onboarding flag.
//
// The store keeps the current session in memory for synchronous reads and
// mirrors every change into a local SQLite database so the session survives
// restarts. Interested components receive change notifications through
// [Store.Changes]; the realtime layer only ever reads session values, it
// never writes them.
package session

import (
	"context"

	"github.com/worklink-app/go-work-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Store defines the contract for session persistence with observable current
// values.
type Store interface {
	// Current returns a copy of the persisted session state.
	Current() models.Session

	// TokenValue returns the current access token, or an empty string when
	// no user is logged in. Synchronous, never blocks.
	TokenValue() string

	// RoleValue returns the current user role, or an empty string when no
	// user is logged in. Synchronous, never blocks.
	RoleValue() string

	// Save replaces the token, user id, role, and language of the stored
	// session and notifies watchers. The onboarding flag is preserved.
	Save(ctx context.Context, s models.Session) error

	// SetOnboardingDone persists the onboarding flag without touching the
	// authentication fields.
	SetOnboardingDone(ctx context.Context, done bool) error

	// Clear wipes the token, user id, and role, preserving the language and
	// the onboarding flag, and notifies watchers. Called on logout.
	Clear(ctx context.Context) error

	// Changes returns a channel that receives the new session state after
	// every Save or Clear. The channel is conflated: a slow reader observes
	// only the latest state, never a backlog. The channel is never closed.
	Changes() <-chan models.Session

	// Close releases the underlying database handle.
	Close() error
}
