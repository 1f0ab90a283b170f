package service

import (
	"context"
	"sync"
	"time"
)

// TokenSource reports whether a bearer token currently exists. Satisfied by
// the session store.
type TokenSource interface {
	TokenValue() string
}

type keepAliveJob struct {
	streams StreamRegistry
	tokens  TokenSource

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewKeepAliveJob creates a keepAliveJob that re-asserts the stream
// connections on a ticker while a token exists. The job is idle until Start
// is called.
func NewKeepAliveJob(streams StreamRegistry, tokens TokenSource) KeepAliveJob {
	return &keepAliveJob{streams: streams, tokens: tokens}
}

// Start implements KeepAliveJob. It stops any previously running job, then
// launches a background goroutine that calls ConnectAll every interval while
// the session carries a token. If interval is zero or negative it defaults
// to 30 seconds. The goroutine exits when ctx is cancelled or Stop is called.
func (j *keepAliveJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.tokens.TokenValue() != "" {
					j.streams.ConnectAll()
				}
			}
		}
	}()
}

// Stop implements KeepAliveJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *keepAliveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
