package poll

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestRefresher_LatestBeforeFirstCycle(t *testing.T) {
	r := NewRefresher("leads", time.Minute, func(context.Context) []string {
		return []string{"a"}
	}, slog.Default())

	if _, ok := r.Latest(); ok {
		t.Error("expected no snapshot before the first refresh")
	}
}

func TestRefresher_RefreshNowPublishes(t *testing.T) {
	calls := 0
	r := NewRefresher("leads", time.Minute, func(context.Context) []string {
		calls++
		return []string{"a", "b"}
	}, slog.Default())

	r.RefreshNow(context.Background())

	snap, ok := r.Latest()
	if !ok {
		t.Fatal("expected a snapshot after refresh")
	}
	if len(snap.Data) != 2 {
		t.Errorf("snapshot data = %v", snap.Data)
	}
	if snap.RefreshedAt.IsZero() {
		t.Error("refresh time not set")
	}
	if calls != 1 {
		t.Errorf("refresh fn called %d times, want 1", calls)
	}
}

func TestRefresher_EachCycleIsFresh(t *testing.T) {
	n := 0
	r := NewRefresher("counter", time.Minute, func(context.Context) int {
		n++
		return n
	}, slog.Default())

	r.RefreshNow(context.Background())
	first, _ := r.Latest()
	r.RefreshNow(context.Background())
	second, _ := r.Latest()

	if second.Data != 2 {
		t.Errorf("second snapshot data = %d, want recomputed value", second.Data)
	}
	if first.ID == second.ID {
		t.Error("each cycle must get its own snapshot id")
	}
}

func TestRefresher_RunStopsOnCancel(t *testing.T) {
	r := NewRefresher("leads", time.Millisecond, func(context.Context) int { return 1 }, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancel")
	}

	if _, ok := r.Latest(); !ok {
		t.Error("Run must refresh once immediately before ticking")
	}
}
