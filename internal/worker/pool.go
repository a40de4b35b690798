// Package worker runs catalog verification lookups on a bounded pool.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
	"github.com/ewilliams-labs/deepcuts/internal/metrics"
)

// Job asks a worker to look up one suggestion in the catalog.
type Job struct {
	ctx        context.Context
	index      int
	suggestion domain.Suggestion
	results    chan<- result
}

type result struct {
	index int
	match *domain.CatalogMatch
}

// Pool manages background workers for verification jobs.
type Pool struct {
	matcher ports.TrackMatcher
	workers int
	jobs    chan Job
	wg      sync.WaitGroup
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewPool creates a worker pool with the given worker count and queue size.
func NewPool(matcher ports.TrackMatcher, workers int, queueSize int, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		matcher: matcher,
		workers: workers,
		jobs:    make(chan Job, queueSize),
		logger:  logger.With("component", "worker"),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// submit queues a job, waiting for room until ctx ends. It reports false
// when the pool is stopped or ctx is done.
func (p *Pool) submit(ctx context.Context, job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	case <-ctx.Done():
		return false
	}
}

// Verify looks every suggestion up and attaches confident matches. The
// returned slice has the same length and order as the input. A full queue
// delays submission rather than skipping lookups, so concurrent callers only
// share throughput. Lookups that fail, or are still pending when ctx ends or
// the pool stops, leave Match nil.
func (p *Pool) Verify(ctx context.Context, suggestions []domain.Suggestion) []domain.Suggestion {
	out := append([]domain.Suggestion(nil), suggestions...)
	if len(out) == 0 {
		return out
	}

	results := make(chan result, len(out))
	pending := 0
	for i, s := range out {
		job := Job{ctx: ctx, index: i, suggestion: s, results: results}
		if !p.submit(ctx, job) {
			skipped := len(out) - i
			metrics.VerificationsTotal.WithLabelValues("skipped").Add(float64(skipped))
			p.logger.Warn("verification not submitted", "skipped", skipped, "error", ctx.Err())
			break
		}
		pending++
	}

	for ; pending > 0; pending-- {
		select {
		case r := <-results:
			out[r.index].Match = r.match
		case <-ctx.Done():
			p.logger.Warn("verification cut short", "pending", pending, "error", ctx.Err())
			return out
		}
	}
	return out
}

func (p *Pool) processJob(job Job) {
	res := result{index: job.index}
	defer func() { job.results <- res }()

	if err := job.ctx.Err(); err != nil {
		metrics.VerificationsTotal.WithLabelValues("canceled").Inc()
		return
	}

	match, err := p.matcher.MatchTrack(job.ctx, job.suggestion.Title, job.suggestion.Artist)
	switch {
	case errors.Is(err, ports.ErrNoConfidentMatch):
		metrics.VerificationsTotal.WithLabelValues("unmatched").Inc()
		p.logger.Debug("no confident match", "artist", job.suggestion.Artist, "title", job.suggestion.Title)
	case err != nil:
		metrics.VerificationsTotal.WithLabelValues("error").Inc()
		p.logger.Warn("verification failed", "artist", job.suggestion.Artist, "title", job.suggestion.Title, "error", err)
	default:
		metrics.VerificationsTotal.WithLabelValues("matched").Inc()
		res.match = &match
	}
}
