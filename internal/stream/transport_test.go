package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklink-app/go-work-link/internal/logger"
)

// sseHandler writes the given raw SSE body and keeps the connection open
// until the client goes away.
func sseHandler(t *testing.T, body string, hold bool) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, body)
		flusher.Flush()

		if hold {
			<-r.Context().Done()
		}
	}
}

func collectFrames(t *testing.T, frames <-chan Frame, want int) []Frame {
	t.Helper()
	var got []Frame
	for len(got) < want {
		select {
		case f, ok := <-frames:
			if !ok {
				t.Fatalf("stream closed after %d of %d frames", len(got), want)
			}
			got = append(got, f)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d frames", len(got), want)
		}
	}
	return got
}

func TestSSETransport_SendsHandshakeHeaders(t *testing.T) {
	headers := make(chan http.Header, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewSSETransport(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames, errs, err := transport.Open(ctx, server.URL, "secret-token")
	require.NoError(t, err)

	got := <-headers
	assert.Equal(t, "text/event-stream", got.Get("Accept"))
	assert.Equal(t, "Bearer secret-token", got.Get("Authorization"))

	drainStream(t, frames, errs)
}

func TestSSETransport_NoAuthHeaderWithoutToken(t *testing.T) {
	authPresent := make(chan bool, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Header["Authorization"]
		authPresent <- ok
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewSSETransport(logger.Nop())
	frames, errs, err := transport.Open(context.Background(), server.URL, "")
	require.NoError(t, err)

	assert.False(t, <-authPresent)
	drainStream(t, frames, errs)
}

func TestSSETransport_ParsesFrames(t *testing.T) {
	body := "id: 1\nevent: mission_created\ndata: {\"type\":\"mission_created\"}\n\n" +
		": keep-alive comment\n" +
		"event: mission_deleted\ndata: {\"type\":\"mission_deleted\"}\n\n"

	server := httptest.NewServer(sseHandler(t, body, true))
	defer server.Close()

	transport := NewSSETransport(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames, _, err := transport.Open(ctx, server.URL, "tok")
	require.NoError(t, err)

	got := collectFrames(t, frames, 2)

	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "mission_created", got[0].Event)
	assert.JSONEq(t, `{"type":"mission_created"}`, string(got[0].Data))

	// комментарий не стал кадром, id не «протёк» из предыдущего кадра
	assert.Equal(t, "", got[1].ID)
	assert.Equal(t, "mission_deleted", got[1].Event)
}

func TestSSETransport_MultilineData(t *testing.T) {
	body := "data: first line\ndata: second line\n\n"

	server := httptest.NewServer(sseHandler(t, body, true))
	defer server.Close()

	transport := NewSSETransport(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames, _, err := transport.Open(ctx, server.URL, "")
	require.NoError(t, err)

	got := collectFrames(t, frames, 1)
	assert.Equal(t, "first line\nsecond line", string(got[0].Data))
}

func TestSSETransport_CleanServerClose(t *testing.T) {
	body := "data: only\n\n"
	server := httptest.NewServer(sseHandler(t, body, false))
	defer server.Close()

	transport := NewSSETransport(logger.Nop())
	frames, errs, err := transport.Open(context.Background(), server.URL, "")
	require.NoError(t, err)

	got := collectFrames(t, frames, 1)
	assert.Equal(t, "only", string(got[0].Data))

	select {
	case _, ok := <-frames:
		assert.False(t, ok, "frame channel must close on clean server close")
	case <-time.After(2 * time.Second):
		t.Fatal("frame channel not closed")
	}
	select {
	case err := <-errs:
		t.Fatalf("unexpected terminal error on clean close: %v", err)
	default:
	}
}

func TestSSETransport_HandshakeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	transport := NewSSETransport(logger.Nop())
	frames, errs, err := transport.Open(context.Background(), server.URL, "expired")

	require.Error(t, err)
	assert.ErrorContains(t, err, "401")
	assert.Nil(t, frames)
	assert.Nil(t, errs)
}

func TestSSETransport_ContextCancelIsCleanClose(t *testing.T) {
	server := httptest.NewServer(sseHandler(t, "data: hello\n\n", true))
	defer server.Close()

	transport := NewSSETransport(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	frames, errs, err := transport.Open(ctx, server.URL, "")
	require.NoError(t, err)

	collectFrames(t, frames, 1)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-frames:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond, "frame channel must close after cancel")

	select {
	case err := <-errs:
		t.Fatalf("cancel must not surface an error, got %v", err)
	default:
	}
}

// drainStream waits for the frame channel to close and asserts no terminal
// error was reported.
func drainStream(t *testing.T, frames <-chan Frame, errs <-chan error) {
	t.Helper()
	for {
		select {
		case _, ok := <-frames:
			if !ok {
				select {
				case err := <-errs:
					t.Fatalf("unexpected stream error: %v", err)
				default:
				}
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatal("stream did not close")
		}
	}
}
