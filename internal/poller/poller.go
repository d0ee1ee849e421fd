// Package poller runs a fetch on a fixed interval and applies results with
// newest-wins semantics: every fetch is stamped with a monotonically
// increasing sequence number, and a completion that resolves after a newer
// fetch was issued is dropped instead of clobbering fresher state.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

type Poller[T any] struct {
	name     string
	interval time.Duration
	fetch    func(ctx context.Context) (T, error)
	apply    func(value T)
	logger   *slog.Logger

	issued  atomic.Uint64
	mu      sync.Mutex
	applied uint64
}

func New[T any](name string, interval time.Duration, fetch func(ctx context.Context) (T, error), apply func(value T), logger *slog.Logger) *Poller[T] {
	return &Poller[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
		apply:    apply,
		logger:   logger,
	}
}

// Run polls until the context is cancelled. The first poll fires immediately.
// Each tick issues its fetch in its own goroutine so a slow response cannot
// stall the schedule; stale completions are discarded at apply time.
func (p *Poller[T]) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go p.poll(ctx)
		}
	}
}

// Trigger runs an immediate out-of-schedule poll and returns once its result
// has been applied or discarded.
func (p *Poller[T]) Trigger(ctx context.Context) {
	p.poll(ctx)
}

func (p *Poller[T]) poll(ctx context.Context) {
	seq := p.issued.Add(1)
	value, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Debug("poll failed", "poller", p.name, "error", err)
		}
		return
	}
	p.applyResult(ctx, seq, value)
}

func (p *Poller[T]) applyResult(ctx context.Context, seq uint64, value T) {
	if ctx.Err() != nil {
		// Torn-down consumers must not receive late results.
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq < p.applied {
		p.logger.Debug("dropping stale poll result", "poller", p.name, "seq", seq)
		return
	}
	p.applied = seq
	p.apply(value)
}
