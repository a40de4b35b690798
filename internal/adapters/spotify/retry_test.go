package spotify

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientGet_Retry(t *testing.T) {
	tests := []struct {
		name             string
		statuses         []int
		attempts         int
		expectedStatus   int
		expectedAttempts int
	}{
		{
			name:             "single attempt by default",
			statuses:         []int{http.StatusServiceUnavailable, http.StatusOK},
			attempts:         0,
			expectedStatus:   http.StatusServiceUnavailable,
			expectedAttempts: 1,
		},
		{
			name:             "retries on 503 then succeeds",
			statuses:         []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusOK},
			attempts:         3,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 3,
		},
		{
			name:             "returns the last 429 once attempts run out",
			statuses:         []int{http.StatusTooManyRequests},
			attempts:         2,
			expectedStatus:   http.StatusTooManyRequests,
			expectedAttempts: 2,
		},
		{
			name:             "client errors are not retried",
			statuses:         []int{http.StatusNotFound, http.StatusOK},
			attempts:         3,
			expectedStatus:   http.StatusNotFound,
			expectedAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				status := tt.statuses[len(tt.statuses)-1]
				if calls <= len(tt.statuses) {
					status = tt.statuses[calls-1]
				}
				w.WriteHeader(status)
			}))
			defer ts.Close()

			client := &Client{
				httpClient: http.DefaultClient,
				baseURL:    ts.URL,
				retry:      newRetryPolicy(tt.attempts, time.Millisecond),
				logger:     slog.Default(),
			}

			resp, err := client.get(context.Background(), ts.URL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.expectedStatus {
				t.Fatalf("status: got %d, want %d", resp.StatusCode, tt.expectedStatus)
			}
			if calls != tt.expectedAttempts {
				t.Fatalf("attempts: got %d, want %d", calls, tt.expectedAttempts)
			}
		})
	}
}

func TestClientGet_CanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := &Client{httpClient: http.DefaultClient, retry: newRetryPolicy(3, time.Millisecond), logger: slog.Default()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.get(ctx, ts.URL); err == nil {
		t.Fatalf("expected an error for a canceled context")
	}
}

func TestRetryPolicy_Wait(t *testing.T) {
	p := newRetryPolicy(3, 100*time.Millisecond)
	if got := p.wait(0, nil); got != 100*time.Millisecond {
		t.Fatalf("first wait: got %v", got)
	}
	if got := p.wait(2, nil); got != 400*time.Millisecond {
		t.Fatalf("third wait: got %v", got)
	}

	resp := &http.Response{Header: http.Header{"Retry-After": []string{"2"}}}
	if got := p.wait(0, resp); got != 2*time.Second {
		t.Fatalf("retry-after wait: got %v", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"2"}}}
	if got := parseRetryAfter(resp); got != 2*time.Second {
		t.Fatalf("retry after: got %v, want 2s", got)
	}

	resp.Header.Set("Retry-After", "soon")
	if got := parseRetryAfter(resp); got != 0 {
		t.Fatalf("retry after: got %v, want 0", got)
	}
}
