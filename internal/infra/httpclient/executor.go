package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultMaxBodyBytes = 256 << 10

// Response is what callers need from a lookup: status, a bounded body and
// how long it took.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
	Truncated   bool
	Duration    time.Duration
}

// OK reports a 2xx status.
func (r Response) OK() bool { return r.Status >= 200 && r.Status <= 299 }

// Executor runs one request at a time with a per-request deadline.
type Executor struct {
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
}

type ExecutorOption func(*Executor)

// WithTimeout sets the deadline applied to each request.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBodyBytes bounds how much of a response body is kept.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBodyBytes = n }
}

func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:       New(cfg),
		timeout:      cfg.Timeout,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do sends req under ctx plus the executor deadline. A deadline hit is
// reported as "timed out after <d>".
func (e *Executor) Do(ctx context.Context, req *http.Request) (Response, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := e.client.Do(req.WithContext(ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", e.timeout, err)
		}
		return Response{Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	body, truncated, err := readBounded(resp.Body, e.maxBodyBytes)
	out := Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		Truncated:   truncated,
		Duration:    time.Since(start),
	}
	return out, err
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
