package spotify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
)

const (
	// DefaultBaseURL is the public Web API root.
	DefaultBaseURL = "https://api.spotify.com/v1"
	// DefaultTokenURL is the accounts service token endpoint.
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	defaultPageLimit = 10
)

var errMissingCredentials = errors.New("client id and secret are required")

// Config configures a catalog client.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	BaseURL      string
	// PageLimit caps how many playlist pages are followed.
	PageLimit int
	// MaxAttempts of 1 disables retries.
	MaxAttempts  int
	RetryBackoff time.Duration
	Logger       *slog.Logger
}

// Client is an HTTP client for the Spotify Web API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageLimit  int
	retry      retryPolicy
	logger     *slog.Logger
	initErr    error
}

// compile-time interface assertions
var (
	_ ports.CatalogProvider = (*Client)(nil)
	_ ports.TrackMatcher    = (*Client)(nil)
)

// NewClient builds a client that authenticates with the client-credentials
// grant. Tokens are fetched lazily and refreshed by the oauth2 transport.
func NewClient(cfg Config) *Client {
	var httpClient *http.Client
	var initErr error
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		initErr = &domain.UpstreamAuthError{Err: errMissingCredentials}
	} else {
		tokenURL := cfg.TokenURL
		if tokenURL == "" {
			tokenURL = DefaultTokenURL
		}
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		httpClient = cc.Client(context.Background())
	}

	c := newClient(httpClient, cfg)
	c.initErr = initErr
	return c
}

// NewClientWithBaseURL builds an unauthenticated client against baseURL.
// It is used by tests and by deployments that front the API with a proxy.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	return newClient(httpClient, Config{BaseURL: baseURL})
}

func newClient(httpClient *http.Client, cfg Config) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageLimit := cfg.PageLimit
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageLimit:  pageLimit,
		retry:      newRetryPolicy(cfg.MaxAttempts, cfg.RetryBackoff),
		logger:     logger.With("component", "spotify"),
	}
}

// classifyTransportError turns token-exchange failures into UpstreamAuthError.
func classifyTransportError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		return &domain.UpstreamAuthError{Status: status, Body: string(re.Body), Err: err}
	}
	return &domain.UpstreamFetchError{Err: fmt.Errorf("spotify adapter: %w", err)}
}
