package stream

import (
	"context"
	"sync"

	"github.com/worklink-app/go-work-link/internal/logger"
)

// State is the lifecycle state of a stream client's connection.
type State int32

const (
	// StateIdle means no transport handle exists; Connect is permitted.
	StateIdle State = iota
	// StateConnecting means the handshake is in flight.
	StateConnecting
	// StateOpen means frames are flowing and being decoded.
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// TokenSource provides the current bearer token at connect time.
type TokenSource interface {
	TokenValue() string
}

// DecodeFunc turns one raw frame into a typed domain event.
type DecodeFunc[E any] func(f Frame) (E, error)

// EndpointFunc resolves the stream URL at connect time. An empty string
// means the stream is not available right now (e.g. the session role has no
// profile endpoint) and Connect silently skips.
type EndpointFunc func() string

// Client maintains exactly one stream connection for a resource family and
// republishes decoded events on its hub.
//
// The state machine is Idle → Connecting → Open. Connect while Connecting or
// Open is a no-op, so at most one transport handle is ever live. Any
// transport failure or clean server close returns the client to Idle without
// retrying; re-entry requires an explicit Connect.
type Client[E any] struct {
	family    string
	transport Transport
	tokens    TokenSource
	endpoint  EndpointFunc
	decode    DecodeFunc[E]
	hub       *Hub[E]
	logger    *logger.Logger

	mu       sync.Mutex
	state    State
	gen      uint64
	cancel   context.CancelFunc
	lastErr  error
	lastSkip string
}

// NewClient builds a typed stream client for one resource family. buffer
// sizes the per-subscriber event backlog (see [NewHub]).
func NewClient[E any](family string, transport Transport, tokens TokenSource, endpoint EndpointFunc, decode DecodeFunc[E], buffer int, log *logger.Logger) *Client[E] {
	return &Client[E]{
		family:    family,
		transport: transport,
		tokens:    tokens,
		endpoint:  endpoint,
		decode:    decode,
		hub:       NewHub[E](buffer),
		logger:    log,
	}
}

// Family returns the resource family label of the client.
func (c *Client[E]) Family() string {
	return c.family
}

// State returns the current connection state.
func (c *Client[E]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastErr returns the most recent connect or transport failure, if any.
// Kept for logs and tests; the contract towards subscribers stays silent.
func (c *Client[E]) LastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// LastSkip returns the reason the most recent Connect was silently skipped,
// or an empty string.
func (c *Client[E]) LastSkip() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSkip
}

// Subscribe attaches a consumer to the client's event hub. The returned
// channel only carries events published after this call.
func (c *Client[E]) Subscribe() (<-chan E, func()) {
	return c.hub.Subscribe()
}

// Connect opens the stream connection unless one is already live. It
// resolves the endpoint and token at call time, issues the handshake in the
// background, and returns immediately. A client whose endpoint resolves to
// an empty string stays Idle without error.
func (c *Client[E]) Connect() {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return
	}

	url := c.endpoint()
	if url == "" {
		c.lastSkip = "no stream endpoint for current session"
		c.mu.Unlock()
		c.logger.Debug().Str("family", c.family).Msg("stream connect skipped: no endpoint")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.gen++
	gen := c.gen
	c.cancel = cancel
	c.state = StateConnecting
	c.lastSkip = ""
	c.mu.Unlock()

	go c.run(ctx, gen, url, c.tokens.TokenValue())
}

// Disconnect cancels the live transport handle, if any, and returns the
// client to Idle. It does not wait for the underlying socket teardown; a
// frame mid-decode at that moment is dropped. Disconnect on an Idle client
// is a no-op.
func (c *Client[E]) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	// invalidate the running goroutine's settle
	c.gen++
	c.state = StateIdle
}

func (c *Client[E]) run(ctx context.Context, gen uint64, url, token string) {
	defer c.settle(gen)

	frames, errs, err := c.transport.Open(ctx, url, token)
	if err != nil {
		c.recordErr(err)
		c.logger.Warn().Err(err).Str("family", c.family).Msg("stream connect failed")
		return
	}

	if !c.markOpen(gen) {
		// disconnected while the handshake was in flight
		return
	}
	c.logger.Info().Str("family", c.family).Str("url", url).Msg("stream open")

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errs:
			if err != nil {
				c.recordErr(err)
				c.logger.Warn().Err(err).Str("family", c.family).Msg("stream failed")
			}
		case f, ok := <-frames:
			if !ok {
				c.logger.Info().Str("family", c.family).Msg("stream closed by server")
				return
			}
			event, decodeErr := c.decode(f)
			if decodeErr != nil {
				// a single bad frame never takes the stream down
				c.logger.Warn().Err(decodeErr).Str("family", c.family).Str("frame_id", f.ID).Msg("dropping undecodable frame")
				continue
			}
			c.hub.Publish(event)
		}
	}
}

// settle returns the client to Idle unless a Disconnect or a newer Connect
// already took over (generation mismatch).
func (c *Client[E]) settle(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = StateIdle
}

func (c *Client[E]) markOpen(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen || c.state != StateConnecting {
		return false
	}
	c.state = StateOpen
	return true
}

func (c *Client[E]) recordErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}
