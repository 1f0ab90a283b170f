package stream

import (
	"sync"

	"github.com/worklink-app/go-work-link/internal/logger"
)

// Registry owns the per-resource stream clients and exposes them for
// subscription, plus bulk connect/disconnect used by the session lifecycle.
// Clients are created lazily on first access so startup order never matters.
type Registry struct {
	transport Transport
	session   SessionSource
	baseURL   string
	buffer    int
	logger    *logger.Logger

	mu      sync.Mutex
	mission *Client[MissionEvent]
	profile *Client[ProfileEvent]
}

// NewRegistry builds the registry. All dependencies are required.
func NewRegistry(transport Transport, session SessionSource, baseURL string, buffer int, log *logger.Logger) *Registry {
	if transport == nil || session == nil || log == nil {
		panic("stream: registry used before initialization")
	}
	return &Registry{
		transport: transport,
		session:   session,
		baseURL:   baseURL,
		buffer:    buffer,
		logger:    log,
	}
}

// Mission returns the mission stream client, creating it on first use.
func (r *Registry) Mission() *Client[MissionEvent] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mission == nil {
		r.mission = NewMissionClient(r.transport, r.session, r.baseURL, r.buffer, r.logger)
	}
	return r.mission
}

// Profile returns the profile stream client, creating it on first use.
func (r *Registry) Profile() *Client[ProfileEvent] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profile == nil {
		r.profile = NewProfileClient(r.transport, r.session, r.baseURL, r.buffer, r.logger)
	}
	return r.profile
}

// ConnectAll asks every stream client to connect. Connect is idempotent per
// client, so calling this repeatedly (e.g. from a keep-alive worker) is safe.
func (r *Registry) ConnectAll() {
	r.Mission().Connect()
	r.Profile().Connect()
}

// DisconnectAll tears down every stream client that was ever created. Clients
// never instantiated have nothing to close and are left alone.
func (r *Registry) DisconnectAll() {
	r.mu.Lock()
	mission, profile := r.mission, r.profile
	r.mu.Unlock()

	if mission != nil {
		mission.Disconnect()
	}
	if profile != nil {
		profile.Disconnect()
	}
}
