package stream

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/internal/utils"
)

// maxFrameSize bounds a single server-sent line. Mission and profile
// payloads are small; anything past this is a protocol violation.
const maxFrameSize = 1 << 20

// Frame is one discrete server-sent unit: an optional id, an optional event
// name, and the data payload.
type Frame struct {
	ID    string
	Event string
	Data  []byte
}

// Transport opens long-lived server-push connections and delivers raw
// frames. Implementations hold one OS-level network connection per Open call
// for as long as the stream lives; the caller releases it by cancelling ctx.
type Transport interface {
	// Open establishes the stream. It blocks until the server accepts or
	// rejects the handshake and returns an error if the handshake fails.
	//
	// On success it returns a frame channel and an error channel. Frames
	// arrive in network order until the server closes the connection
	// cleanly (frame channel closed, nothing on the error channel) or the
	// link drops (one terminal error is sent, then the frame channel is
	// closed). Cancelling ctx tears the connection down and is reported as
	// a clean close.
	Open(ctx context.Context, url, bearerToken string) (<-chan Frame, <-chan error, error)
}

type sseTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewSSETransport returns a [Transport] speaking the text/event-stream
// protocol. If bearerToken is empty at Open time the connection is still
// attempted unauthenticated; the server is expected to reject it.
func NewSSETransport(log *logger.Logger) Transport {
	client := utils.NewHTTPClient()
	// stream connections are long-lived; the REST request timeout must not
	// apply here
	client.SetTimeout(0)

	return &sseTransport{client: client, logger: log}
}

// Open implements [Transport].
func (t *sseTransport) Open(ctx context.Context, url, bearerToken string) (<-chan Frame, <-chan error, error) {
	req := t.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache")
	if bearerToken != "" {
		req.SetHeader("Authorization", "Bearer "+bearerToken)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, nil, fmt.Errorf("open stream: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		_ = body.Close()
		return nil, nil, fmt.Errorf("stream handshake rejected: http %d", resp.StatusCode())
	}

	frames := make(chan Frame)
	errs := make(chan error, 1)
	done := make(chan struct{})

	go t.readLoop(ctx, body, frames, errs, done)
	go func() {
		// unblock the reader when the caller cancels
		select {
		case <-ctx.Done():
			_ = body.Close()
		case <-done:
		}
	}()

	return frames, errs, nil
}

func (t *sseTransport) readLoop(ctx context.Context, body io.ReadCloser, frames chan<- Frame, errs chan<- error, done chan<- struct{}) {
	defer close(done)
	defer close(frames)
	defer body.Close()

	var (
		frame Frame
		data  bytes.Buffer
	)
	dispatch := func() {
		if data.Len() == 0 {
			// frame without a payload carries nothing to deliver
			frame = Frame{}
			return
		}
		frame.Data = append([]byte(nil), bytes.TrimSuffix(data.Bytes(), []byte{'\n'})...)
		select {
		case frames <- frame:
		case <-ctx.Done():
		}
		frame = Frame{}
		data.Reset()
	}

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 4096), maxFrameSize)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			dispatch()
		case strings.HasPrefix(line, ":"):
			// comment line, used by servers as keep-alive
		case strings.HasPrefix(line, "id:"):
			frame.ID = strings.TrimSpace(line[len("id:"):])
		case strings.HasPrefix(line, "event:"):
			frame.Event = strings.TrimSpace(line[len("event:"):])
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimPrefix(line[len("data:"):], " "))
			data.WriteByte('\n')
		default:
			// unknown field (e.g. retry:) — ignored, not an error
		}
	}
	dispatch()

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		errs <- fmt.Errorf("stream read: %w", err)
	}
}
