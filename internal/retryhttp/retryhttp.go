// Package retryhttp is a small HTTP client wrapper that retries transient
// failures with exponential backoff and jitter. Callers treat any error it
// returns as terminal.
package retryhttp

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
	defaultMaxDelay    = 8 * time.Second
	defaultTimeout     = 60 * time.Second
)

// Client wraps an http.Client with bounded retries. Retry applies to network
// errors and to 429/503/504 responses; every other status is returned to the
// caller as-is.
type Client struct {
	inner       *http.Client
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithMaxAttempts bounds the total number of tries, first attempt included.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithBaseDelay sets the first backoff interval; each retry doubles it.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

// WithInnerClient replaces the underlying http.Client.
func WithInnerClient(h *http.Client) Option {
	return func(c *Client) { c.inner = h }
}

// New creates a retrying client with default bounds.
func New(opts ...Option) *Client {
	c := &Client{
		inner:       &http.Client{Timeout: defaultTimeout},
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		maxDelay:    defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do issues the request, retrying transient failures until the attempt
// budget runs out. The request body must be replayable (GetBody set), which
// holds for requests built from a bytes.Reader.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("failed to rewind request body: %w", err)
				}
				req.Body = body
			}
			delay := c.backoff(attempt - 1)
			log.Debug().
				Int("attempt", attempt).
				Dur("delay", delay).
				Str("url", req.URL.String()).
				Msg("Retrying request")
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}
		}

		resp, err := c.inner.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}
		lastErr = fmt.Errorf("status %d from %s", resp.StatusCode, req.URL.Host)
		// Drain so the connection can be reused before the next attempt.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxAttempts, lastErr)
}

// backoff computes the delay before the given retry (1-based), doubling the
// base each time and adding up to 50% jitter.
func (c *Client) backoff(retry int) time.Duration {
	delay := c.baseDelay << (retry - 1)
	if delay > c.maxDelay {
		delay = c.maxDelay
	}
	return delay + time.Duration(rand.Int63n(int64(delay)/2+1))
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
