package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

const defaultRetryBackoff = 500 * time.Millisecond

// retryPolicy bounds how often a catalog GET is repeated after a 429, a 5xx
// or a transport failure. One attempt means no retries.
type retryPolicy struct {
	attempts int
	backoff  time.Duration
}

func newRetryPolicy(attempts int, backoff time.Duration) retryPolicy {
	if attempts < 1 {
		attempts = 1
	}
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	return retryPolicy{attempts: attempts, backoff: backoff}
}

// wait returns the pause before attempt n+1. Retry-After wins over the
// exponential schedule.
func (p retryPolicy) wait(n int, resp *http.Response) time.Duration {
	if resp != nil {
		if d := parseRetryAfter(resp); d > 0 {
			return d
		}
	}
	return p.backoff << n
}

// get issues a GET against rawURL under the client's retry policy. The final
// attempt's response is returned as is, so callers see the upstream status
// and body. Token failures and cancellation end the loop immediately.
func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	for n := 0; ; n++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("spotify adapter: failed to create request: %w", err)
		}

		// #nosec G107 -- URL built from the configured API base
		resp, err := c.httpClient.Do(req)
		last := n == c.retry.attempts-1
		if last || !retryable(resp, err) {
			return resp, err
		}

		attrs := []any{"attempt", n + 1, "max_attempts", c.retry.attempts, "url", rawURL}
		if err != nil {
			c.logger.Warn("retrying catalog request", append(attrs, "error", err)...)
		} else {
			c.logger.Warn("retrying catalog request", append(attrs, "status", resp.StatusCode)...)
			_ = resp.Body.Close()
		}

		if err := sleepWithContext(ctx, c.retry.wait(n, resp)); err != nil {
			return nil, err
		}
	}
}

func retryable(resp *http.Response, err error) bool {
	if err != nil {
		var re *oauth2.RetrieveError
		return !errors.As(err, &re) && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return resp != nil && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError)
}

// parseRetryAfter reads Retry-After as seconds or an HTTP date.
func parseRetryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if when, err := http.ParseTime(v); err == nil {
		if until := time.Until(when); until > 0 {
			return until
		}
	}
	return 0
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("spotify adapter: request canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
