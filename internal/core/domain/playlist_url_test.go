package domain

import (
	"errors"
	"testing"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "plain url", url: "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", want: "37i9dQZF1DXcBWIGoYBM5M"},
		{name: "query string dropped", url: "https://open.spotify.com/playlist/abc123?si=xyz", want: "abc123"},
		{name: "empty", url: "  ", wantErr: true},
		{name: "album url", url: "https://open.spotify.com/album/abc123", wantErr: true},
		{name: "not a url", url: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPlaylistID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("id: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Classification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "auth", err: &UpstreamAuthError{Status: 400, Body: "invalid_client"}, target: ErrUpstreamAuth},
		{name: "fetch", err: &UpstreamFetchError{Status: 404, Body: "not found"}, target: ErrUpstreamFetch},
		{name: "generator", err: &GenerativeServiceError{Provider: "openai", Status: 500}, target: ErrGenerativeService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := errors.Join(errors.New("context"), tt.err)
			if !errors.Is(wrapped, tt.target) {
				t.Fatalf("expected %v to match %v", wrapped, tt.target)
			}
		})
	}
}

func TestErrors_MessageKeepsUpstreamDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "status and body", err: &UpstreamFetchError{Status: 404, Body: "Not found."}, want: "failed to fetch playlist: status 404: Not found."},
		{name: "status and cause", err: &GenerativeServiceError{Provider: "openai", Status: 200, Err: errors.New("no choices returned")}, want: "openai: status 200: no choices returned"},
		{name: "status only", err: &GenerativeServiceError{Provider: "ollama", Status: 503}, want: "ollama: status 503"},
		{name: "cause only", err: &UpstreamAuthError{Err: errors.New("dial tcp: refused")}, want: "catalog auth failed: dial tcp: refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
