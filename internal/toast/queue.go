// Package toast is the in-memory queue of ephemeral user-facing messages.
// Rendering the countdown is the view's problem; this package only owns the
// enqueue/dismiss/expiry contract.
package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/pkg/clock"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

const DefaultTTL = 2500 * time.Millisecond

type Toast struct {
	ID        int64
	Message   string
	Severity  Severity
	TTL       time.Duration
	ExpiresAt time.Time // zero when the toast never auto-expires
	UndoLabel string

	undo func()
}

func (t Toast) CanUndo() bool {
	return t.undo != nil
}

type Option func(*Toast)

func WithTTL(ttl time.Duration) Option {
	return func(t *Toast) { t.TTL = ttl }
}

func WithSeverity(s Severity) Option {
	return func(t *Toast) { t.Severity = s }
}

func WithUndo(label string, fn func()) Option {
	return func(t *Toast) {
		t.UndoLabel = label
		t.undo = fn
	}
}

// Queue hands out monotonically increasing ids that are never reused within
// the process lifetime.
type Queue struct {
	mu     sync.Mutex
	nextID int64
	toasts []Toast

	clock         clock.Clock
	sweepInterval time.Duration
	logger        *slog.Logger
}

func NewQueue(clk clock.Clock, sweepInterval time.Duration, logger *slog.Logger) *Queue {
	if sweepInterval <= 0 {
		sweepInterval = 100 * time.Millisecond
	}
	return &Queue{
		nextID:        1,
		clock:         clk,
		sweepInterval: sweepInterval,
		logger:        logger,
	}
}

// Enqueue returns the new toast's id immediately. A TTL of 0 or less means
// the toast stays until dismissed.
func (q *Queue) Enqueue(message string, opts ...Option) int64 {
	t := Toast{
		Message:  message,
		Severity: SeveritySuccess,
		TTL:      DefaultTTL,
	}
	for _, opt := range opts {
		opt(&t)
	}
	if t.TTL > 0 {
		t.ExpiresAt = q.clock.Now().Add(t.TTL)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	t.ID = q.nextID
	q.nextID++
	q.toasts = append(q.toasts, t)
	return t.ID
}

// Dismiss removes the toast regardless of expiry. Dismissing an unknown or
// already-removed id is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removeLocked(id)
}

// Undo runs the toast's undo action, then removes it. The action runs outside
// the queue lock and is panic-safe.
func (q *Queue) Undo(id int64) {
	q.mu.Lock()
	var fn func()
	for _, t := range q.toasts {
		if t.ID == id {
			fn = t.undo
			break
		}
	}
	q.removeLocked(id)
	q.mu.Unlock()

	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			q.logger.Warn("toast undo action panicked", "id", id, "panic", r)
		}
	}()
	fn()
}

// Active returns the live toasts in enqueue order.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Sweep removes every toast whose expiry has passed and reports how many were
// removed. The background sweeper calls this on a fixed short interval.
func (q *Queue) Sweep() int {
	now := q.clock.Now()
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.toasts[:0]
	removed := 0
	for _, t := range q.toasts {
		if !t.ExpiresAt.IsZero() && !t.ExpiresAt.After(now) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	q.toasts = kept
	return removed
}

// Run sweeps until the context is cancelled.
func (q *Queue) Run(ctx context.Context) {
	ticker := time.NewTicker(q.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.Sweep()
		}
	}
}

func (q *Queue) removeLocked(id int64) {
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}
