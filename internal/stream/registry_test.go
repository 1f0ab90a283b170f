package stream

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/models"
)

func newTestRegistry(transport Transport, session SessionSource) *Registry {
	return NewRegistry(transport, session, "http://srv", DefaultEventBuffer, logger.Nop())
}

func TestNewRegistry_PanicsOnNilDeps(t *testing.T) {
	session := &fakeSession{}
	transport := newFakeTransport()

	assert.Panics(t, func() { NewRegistry(nil, session, "http://srv", 8, logger.Nop()) })
	assert.Panics(t, func() { NewRegistry(transport, nil, "http://srv", 8, logger.Nop()) })
	assert.Panics(t, func() { NewRegistry(transport, session, "http://srv", 8, nil) })
}

func TestRegistry_ClientsAreSingletons(t *testing.T) {
	registry := newTestRegistry(newFakeTransport(), &fakeSession{})

	assert.Same(t, registry.Mission(), registry.Mission())
	assert.Same(t, registry.Profile(), registry.Profile())
}

func TestRegistry_ConnectAllOpensBothStreams(t *testing.T) {
	transport := newFakeTransport()
	session := &fakeSession{token: "tok", role: models.RoleTalent}
	registry := newTestRegistry(transport, session)

	registry.ConnectAll()

	require.Eventually(t, func() bool {
		return registry.Mission().State() == StateOpen
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return registry.Profile().State() == StateOpen
	}, time.Second, 5*time.Millisecond)

	// повторный вызов идемпотентен на уровне клиентов
	registry.ConnectAll()
	assert.Equal(t, 2, transport.openCount())

	registry.DisconnectAll()
}

func TestRegistry_ConnectAllSkipsProfileForUnknownRole(t *testing.T) {
	transport := newFakeTransport()
	session := &fakeSession{token: "tok", role: "admin"}
	registry := newTestRegistry(transport, session)

	registry.ConnectAll()

	require.Eventually(t, func() bool {
		return registry.Mission().State() == StateOpen
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, StateIdle, registry.Profile().State())
	assert.NotEmpty(t, registry.Profile().LastSkip())

	registry.DisconnectAll()
}

// perURLTransport hands out a dedicated frame channel per endpoint so tests
// can drive the mission and profile connections independently.
type perURLTransport struct {
	mu     sync.Mutex
	frames map[string]chan Frame
}

func newPerURLTransport() *perURLTransport {
	return &perURLTransport{frames: make(map[string]chan Frame)}
}

func (p *perURLTransport) channel(url string) chan Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.frames[url]; !ok {
		p.frames[url] = make(chan Frame, 16)
	}
	return p.frames[url]
}

func (p *perURLTransport) Open(ctx context.Context, url, bearerToken string) (<-chan Frame, <-chan error, error) {
	return p.channel(url), make(chan error, 1), nil
}

func TestRegistry_NoCrossFamilyCrossTalk(t *testing.T) {
	transport := newPerURLTransport()
	session := &fakeSession{token: "tok", role: models.RoleTalent}
	registry := NewRegistry(transport, session, "http://srv", DefaultEventBuffer, logger.Nop())

	missionEvents, cancelMission := registry.Mission().Subscribe()
	defer cancelMission()
	profileEvents, cancelProfile := registry.Profile().Subscribe()
	defer cancelProfile()

	registry.ConnectAll()
	require.Eventually(t, func() bool {
		return registry.Mission().State() == StateOpen && registry.Profile().State() == StateOpen
	}, time.Second, 5*time.Millisecond)

	transport.channel("http://srv/missions/stream") <- Frame{
		Data: []byte(`{"type":"mission_deleted","missionId":"m1"}`),
	}

	select {
	case event := <-missionEvents:
		deleted, ok := event.(MissionDeleted)
		require.True(t, ok, "expected MissionDeleted, got %T", event)
		assert.Equal(t, "m1", deleted.MissionID)
	case <-time.After(time.Second):
		t.Fatal("mission event not delivered")
	}

	// событие миссии не «протекает» в поток профиля
	select {
	case event := <-profileEvents:
		t.Fatalf("unexpected profile event %T", event)
	default:
	}

	registry.DisconnectAll()
}

func TestRegistry_DisconnectAllBeforeAnyUseIsNoop(t *testing.T) {
	registry := newTestRegistry(newFakeTransport(), &fakeSession{})

	// ни один клиент ещё не создан
	assert.NotPanics(t, func() { registry.DisconnectAll() })
}

func TestRegistry_DisconnectAllReturnsClientsToIdle(t *testing.T) {
	transport := newFakeTransport()
	session := &fakeSession{token: "tok", role: models.RoleRecruiter}
	registry := newTestRegistry(transport, session)

	registry.ConnectAll()
	require.Eventually(t, func() bool {
		return registry.Mission().State() == StateOpen && registry.Profile().State() == StateOpen
	}, time.Second, 5*time.Millisecond)

	registry.DisconnectAll()

	assert.Equal(t, StateIdle, registry.Mission().State())
	assert.Equal(t, StateIdle, registry.Profile().State())
}
