package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// retryPolicy is the backoff schedule taken from config.RetryConfig.
type retryPolicy struct {
	attempts int
	initial  time.Duration
	ceiling  time.Duration
	factor   float64
}

// jitter spreads each delay over ±25% of its nominal value.
const jitter = 0.25

// delay returns the wait before retry n, where n=1 is the first retry.
func (p retryPolicy) delay(n int) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.factor, float64(n-1)), float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1) //nolint:gosec // backoff jitter
	return time.Duration(max(d, 0))
}

// send runs the attempts. The body is buffered once and replayed on every
// attempt. The response is returned through out so the last retryable
// response can reach the caller alongside the error.
func (c *Client) send(ctx context.Context, req *http.Request, out **http.Response) error {
	if c.policy.attempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.policy.attempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := range c.policy.attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return err
			}
			lastErr = err
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			*out = resp
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.name)
		if attempt == c.policy.attempts-1 {
			*out = resp
			return lastErr
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return lastErr
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, cause error) error {
	wait := c.policy.delay(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryableErr treats every transport failure as transient except the
// caller giving up.
func retryableErr(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
