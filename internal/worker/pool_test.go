package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
)

type fakeMatcher struct {
	calls atomic.Int32
	delay time.Duration
	fn    func(title, artist string) (domain.CatalogMatch, error)
}

func (f *fakeMatcher) MatchTrack(ctx context.Context, title, artist string) (domain.CatalogMatch, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return domain.CatalogMatch{}, ctx.Err()
		}
	}
	return f.fn(title, artist)
}

func suggestions(n int) []domain.Suggestion {
	out := make([]domain.Suggestion, n)
	for i := range out {
		out[i] = domain.Suggestion{Artist: fmt.Sprintf("Artist %d", i), Title: fmt.Sprintf("Title %d", i)}
	}
	return out
}

func TestPool_VerifyPreservesOrderAndCount(t *testing.T) {
	m := &fakeMatcher{fn: func(title, artist string) (domain.CatalogMatch, error) {
		switch title {
		case "Title 1":
			return domain.CatalogMatch{}, ports.NoConfidentMatchError{Title: title, Artist: artist}
		case "Title 3":
			return domain.CatalogMatch{}, errors.New("catalog down")
		}
		return domain.CatalogMatch{ID: "id-" + title, Score: 0.9}, nil
	}}
	p := NewPool(m, 3, 16, nil)
	p.Start()
	defer p.Stop()

	in := suggestions(5)
	got := p.Verify(context.Background(), in)

	require.Len(t, got, 5)
	for i := range in {
		assert.Equal(t, in[i].Artist, got[i].Artist)
		assert.Equal(t, in[i].Title, got[i].Title)
	}
	assert.Equal(t, "id-Title 0", got[0].Match.ID)
	assert.Nil(t, got[1].Match)
	assert.Equal(t, "id-Title 2", got[2].Match.ID)
	assert.Nil(t, got[3].Match)
	assert.Equal(t, "id-Title 4", got[4].Match.ID)
	assert.Nil(t, in[0].Match, "input must not be mutated")
}

func TestPool_VerifyWaitsWhenQueueFull(t *testing.T) {
	m := &fakeMatcher{delay: 2 * time.Millisecond, fn: func(title, _ string) (domain.CatalogMatch, error) {
		return domain.CatalogMatch{ID: title}, nil
	}}
	p := NewPool(m, 1, 2, nil)
	p.Start()
	defer p.Stop()

	got := p.Verify(context.Background(), suggestions(6))

	require.Len(t, got, 6)
	for i, s := range got {
		require.NotNil(t, s.Match, "suggestion %d", i)
		assert.Equal(t, s.Title, s.Match.ID)
	}
	assert.Equal(t, int32(6), m.calls.Load())
}

func TestPool_ConcurrentVerifyCallsAreIndependent(t *testing.T) {
	m := &fakeMatcher{delay: time.Millisecond, fn: func(title, _ string) (domain.CatalogMatch, error) {
		return domain.CatalogMatch{ID: title}, nil
	}}
	p := NewPool(m, 2, 2, nil)
	p.Start()
	defer p.Stop()

	const callers = 4
	results := make(chan []domain.Suggestion, callers)
	for i := 0; i < callers; i++ {
		go func() { results <- p.Verify(context.Background(), suggestions(5)) }()
	}

	for i := 0; i < callers; i++ {
		got := <-results
		require.Len(t, got, 5)
		for _, s := range got {
			assert.NotNil(t, s.Match)
		}
	}
}

func TestPool_VerifyStopsSubmittingWhenContextEnds(t *testing.T) {
	m := &fakeMatcher{fn: func(title, _ string) (domain.CatalogMatch, error) {
		return domain.CatalogMatch{ID: title}, nil
	}}
	// not started: the queue fills and submission waits on ctx
	p := NewPool(m, 1, 1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	got := p.Verify(ctx, suggestions(3))

	require.Len(t, got, 3)
	for _, s := range got {
		assert.Nil(t, s.Match)
	}
	p.Start()
	p.Stop()
}

func TestPool_VerifyHonoursContext(t *testing.T) {
	m := &fakeMatcher{delay: time.Second, fn: func(string, string) (domain.CatalogMatch, error) {
		return domain.CatalogMatch{ID: "late"}, nil
	}}
	p := NewPool(m, 2, 8, nil)
	p.Start()
	defer p.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	got := p.Verify(ctx, suggestions(2))

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Match)
	assert.Nil(t, got[1].Match)
}

func TestPool_VerifyAfterStop(t *testing.T) {
	m := &fakeMatcher{fn: func(string, string) (domain.CatalogMatch, error) {
		return domain.CatalogMatch{ID: "x"}, nil
	}}
	p := NewPool(m, 1, 4, nil)
	p.Start()
	p.Stop()

	got := p.Verify(context.Background(), suggestions(2))

	require.Len(t, got, 2)
	assert.Nil(t, got[0].Match)
	assert.Equal(t, int32(0), m.calls.Load())
}
