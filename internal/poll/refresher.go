// Package poll drives the periodic re-fetch cycle. Each served view owns
// one Refresher with its own interval; refreshers never coordinate, so
// the same source may be fetched by several views in the same tick. That
// redundancy is accepted — the sources are read-only and every cycle is a
// full recompute.
package poll

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one immutable refresh result. The ID ties log lines and the
// status endpoint to a specific cycle.
type Snapshot[T any] struct {
	ID          uuid.UUID
	Data        T
	RefreshedAt time.Time
}

// Refresher recomputes a view on a fixed interval and publishes the
// newest snapshot. Publication is last-write-wins: a slow cycle that
// finishes after a newer one simply overwrites it, and in-flight cycles
// are never cancelled.
type Refresher[T any] struct {
	name     string
	interval time.Duration
	refresh  func(context.Context) T
	logger   *slog.Logger
	snap     atomic.Pointer[Snapshot[T]]
}

func NewRefresher[T any](name string, interval time.Duration, refresh func(context.Context) T, logger *slog.Logger) *Refresher[T] {
	return &Refresher[T]{
		name:     name,
		interval: interval,
		refresh:  refresh,
		logger:   logger,
	}
}

func (r *Refresher[T]) Name() string { return r.name }

// Run refreshes once immediately, then on every tick until ctx is done.
func (r *Refresher[T]) Run(ctx context.Context) {
	r.RefreshNow(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshNow(ctx)
		}
	}
}

// RefreshNow runs a single refresh cycle and publishes the result.
func (r *Refresher[T]) RefreshNow(ctx context.Context) {
	started := time.Now()
	snap := &Snapshot[T]{
		ID:          uuid.New(),
		Data:        r.refresh(ctx),
		RefreshedAt: time.Now().UTC(),
	}
	r.snap.Store(snap)
	r.logger.Debug("view refreshed",
		"view", r.name,
		"snapshot", snap.ID,
		"took", time.Since(started),
	)
}

// Latest returns the most recent snapshot, or false before the first
// cycle completes.
func (r *Refresher[T]) Latest() (Snapshot[T], bool) {
	snap := r.snap.Load()
	if snap == nil {
		var zero Snapshot[T]
		return zero, false
	}
	return *snap, true
}
