// Package gemini provides a generator backed by the Gemini API through the
// official genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	genai "google.golang.org/genai"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
)

const (
	// Provider names this adapter in errors and metrics.
	Provider = "gemini"

	DefaultModel = "gemini-2.5-flash"

	temperature     float32 = 0.7
	maxOutputTokens int32   = 1500
)

var errEmptyCandidates = errors.New("no candidates returned")

// Config configures the client. BaseURL and HTTPClient are optional.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Client is a thin wrapper around the genai client.
type Client struct {
	cli   *genai.Client
	model string
}

var _ ports.Generator = (*Client)(nil)

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{cli: cli, model: model}, nil
}

// Generate sends prompt as a single user turn and returns the concatenated
// text of the first candidate.
func (g *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(temperature),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &domain.GenerativeServiceError{Provider: Provider, Err: errEmptyCandidates}
	}
	return resp.Text(), nil
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &domain.GenerativeServiceError{Provider: Provider, Status: apiErr.Code, Body: apiErr.Message, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &domain.GenerativeServiceError{Provider: Provider, Status: apiErrPtr.Code, Body: apiErrPtr.Message, Err: err}
	}
	return &domain.GenerativeServiceError{Provider: Provider, Err: err}
}
