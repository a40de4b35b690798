package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ewilliams-labs/deepcuts/internal/core/curator"
	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
	"github.com/ewilliams-labs/deepcuts/internal/metrics"
)

// ErrStorageUnavailable is returned by history operations when no repository is configured.
var ErrStorageUnavailable = errors.New("service: history storage is not configured")

// Verifier attaches catalog matches to suggestions without reordering them.
type Verifier interface {
	Verify(ctx context.Context, suggestions []domain.Suggestion) []domain.Suggestion
}

// SuggestInput gathers every source of input tracks for one request.
// Tracks are combined in the order playlist, stored history, inline.
type SuggestInput struct {
	Request     domain.SuggestionRequest
	Tracks      []domain.Track
	HistoryID   string
	PlaylistURL string
}

// Orchestrator runs the suggestion pipeline and the history use cases.
type Orchestrator struct {
	catalog   ports.CatalogProvider
	generator ports.Generator
	repo      ports.HistoryRepository
	verifier  Verifier
	provider  string
	pickName  curator.NamePicker
	newID     func() string
	logger    *slog.Logger
}

type Option func(*Orchestrator)

func WithVerifier(v Verifier) Option {
	return func(o *Orchestrator) { o.verifier = v }
}

func WithNamePicker(pick curator.NamePicker) Option {
	return func(o *Orchestrator) { o.pickName = pick }
}

func WithIDGenerator(newID func() string) Option {
	return func(o *Orchestrator) { o.newID = newID }
}

// WithProvider labels generator metrics.
func WithProvider(name string) Option {
	return func(o *Orchestrator) { o.provider = name }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// NewOrchestrator constructs an Orchestrator. catalog and repo may be nil;
// operations that need them then fail.
func NewOrchestrator(catalog ports.CatalogProvider, generator ports.Generator, repo ports.HistoryRepository, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:   catalog,
		generator: generator,
		repo:      repo,
		provider:  "unknown",
		pickName:  curator.RandomName,
		newID:     func() string { return uuid.New().String() },
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.With("component", "service")
	return o
}

// ResolvePlaylist turns a catalog playlist URL into normalized tracks.
func (o *Orchestrator) ResolvePlaylist(ctx context.Context, playlistURL string) ([]domain.Track, error) {
	id, err := domain.ExtractPlaylistID(playlistURL)
	if err != nil {
		return nil, err
	}
	if o.catalog == nil {
		return nil, &domain.UpstreamAuthError{Err: errors.New("catalog is not configured")}
	}
	tracks, err := o.catalog.GetPlaylistTracks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve playlist: %w", err)
	}
	return tracks, nil
}

// Suggest runs analyze, compose, generate, parse, verify and assemble for one request.
func (o *Orchestrator) Suggest(ctx context.Context, in SuggestInput) (domain.SuggestionResult, error) {
	tracks, err := o.gatherTracks(ctx, in)
	if err != nil {
		return domain.SuggestionResult{}, err
	}
	if len(tracks) == 0 {
		return domain.SuggestionResult{}, &domain.ValidationError{Field: "tracks", Reason: "no input tracks"}
	}
	if o.generator == nil {
		return domain.SuggestionResult{}, &domain.GenerativeServiceError{Provider: o.provider, Err: errors.New("generator is not configured")}
	}

	req := in.Request.Normalized()
	stats := domain.Analyze(tracks)
	prompt := curator.Compose(stats, req, tracks)

	raw, err := o.generate(ctx, prompt)
	if err != nil {
		return domain.SuggestionResult{}, fmt.Errorf("service: generation failed: %w", err)
	}

	parsed, ps := curator.ParseWithStats(raw, req.SongCount)
	metrics.SongLinesTotal.WithLabelValues("kept").Add(float64(ps.Kept))
	metrics.SongLinesTotal.WithLabelValues("dropped").Add(float64(ps.Dropped))
	metrics.SongLinesTotal.WithLabelValues("truncated").Add(float64(ps.Truncated))
	if ps.Dropped > 0 {
		o.logger.Info("dropped malformed song lines", "dropped", ps.Dropped, "kept", ps.Kept)
	}

	if req.Verify && o.verifier != nil && len(parsed.Suggestions) > 0 {
		parsed.Suggestions = o.verifier.Verify(ctx, parsed.Suggestions)
	}

	result := curator.Assemble(parsed, stats, o.pickName)
	o.logger.Info("suggestions generated", "tracks", len(tracks), "suggestions", len(result.Suggestions), "requested", req.SongCount)
	return result, nil
}

// Prompt returns the instruction Suggest would send, without calling the
// generator. An empty track list is allowed.
func (o *Orchestrator) Prompt(ctx context.Context, in SuggestInput) (string, error) {
	tracks, err := o.gatherTracks(ctx, in)
	if err != nil {
		return "", err
	}
	return curator.Compose(domain.Analyze(tracks), in.Request, tracks), nil
}

func (o *Orchestrator) generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	raw, err := o.generator.Generate(ctx, prompt)
	metrics.GeneratorCallDuration.WithLabelValues(o.provider).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.GeneratorCallsTotal.WithLabelValues(o.provider, outcome).Inc()
	return raw, err
}

func (o *Orchestrator) gatherTracks(ctx context.Context, in SuggestInput) ([]domain.Track, error) {
	var tracks []domain.Track

	if strings.TrimSpace(in.PlaylistURL) != "" {
		fromPlaylist, err := o.ResolvePlaylist(ctx, in.PlaylistURL)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, fromPlaylist...)
	}

	if strings.TrimSpace(in.HistoryID) != "" {
		h, err := o.GetHistory(ctx, in.HistoryID)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, h.Tracks...)
	}

	return append(tracks, in.Tracks...), nil
}

// ImportHistory stores tracks under a new id.
func (o *Orchestrator) ImportHistory(ctx context.Context, name, source string, tracks []domain.Track) (domain.ListeningHistory, error) {
	if o.repo == nil {
		return domain.ListeningHistory{}, ErrStorageUnavailable
	}
	h, err := domain.NewListeningHistory(o.newID(), name, source, tracks)
	if err != nil {
		return domain.ListeningHistory{}, err
	}
	if err := o.repo.Save(ctx, *h); err != nil {
		return domain.ListeningHistory{}, fmt.Errorf("service: failed to save history: %w", err)
	}
	o.logger.Info("history imported", "id", h.ID, "tracks", len(h.Tracks), "source", source)
	return *h, nil
}

// GetHistory loads a stored history.
func (o *Orchestrator) GetHistory(ctx context.Context, id string) (domain.ListeningHistory, error) {
	if o.repo == nil {
		return domain.ListeningHistory{}, ErrStorageUnavailable
	}
	h, err := o.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ListeningHistory{}, fmt.Errorf("service: failed to load history: %w", err)
	}
	return h, nil
}

// ListHistories lists stored histories, newest first.
func (o *Orchestrator) ListHistories(ctx context.Context) ([]domain.HistorySummary, error) {
	if o.repo == nil {
		return nil, ErrStorageUnavailable
	}
	rows, err := o.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list histories: %w", err)
	}
	return rows, nil
}
