// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the WorkLink marketplace server over REST.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The realtime stream connections are a
// separate concern and live in the stream package; this adapter covers only
// request/response calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/worklink-app/go-work-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the WorkLink
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called after a successful
	// Login and at startup when a persisted session exists.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates the user with the server. On success it stores
	// the returned bearer token via SetToken and returns the full login
	// response, including the role-shaped profile DTO the server embeds.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// RevokeSession asks the server to invalidate the current session
	// token. Returns an error if the request fails; callers that must
	// complete logout regardless treat the error as advisory.
	RevokeSession(ctx context.Context) error

	// GetMissions fetches the current mission list, already mapped to the
	// domain form. Used for the initial load; live updates arrive over the
	// mission stream.
	GetMissions(ctx context.Context) ([]models.Mission, error)

	// GetProfile fetches the logged-in user's profile for the given role.
	// The endpoint path and response shape are role-dependent.
	GetProfile(ctx context.Context, role string) (models.User, error)
}
