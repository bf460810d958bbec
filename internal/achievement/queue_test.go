package achievement

import (
	"testing"
	"time"

	"github.com/verte-zerg/typesprint/internal/clock"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/timer"
)

func newTestQueue() (*Queue, *clock.Mock, *clock.Recorder) {
	clk := clock.NewMock(time.Unix(0, 0))
	rec := &clock.Recorder{}
	return NewQueue(timer.WithClock(clk), timer.WithScheduler(rec)), clk, rec
}

// drain delivers every pending tick once, in order, and returns how many applied.
func drain(q *Queue, clk *clock.Mock, rec *clock.Recorder) int {
	pending := rec.Pending
	rec.Pending = nil
	applied := 0
	clk.Advance(time.Second)
	for _, s := range pending {
		if q.HandleTick(s.Tick) {
			applied++
		}
	}
	return applied
}

func TestQueueShowsBadgesInTurn(t *testing.T) {
	q, clk, rec := newTestQueue()
	ids := q.Celebrate(model.TestResult{Performance: model.Performance{WPM: 85, Accuracy: 100}}, 0)
	if len(ids) != 4 {
		t.Fatalf("expected 4 achievements, got %v", ids)
	}
	cur, ok := q.Current()
	if !ok || cur != SpeedDemon {
		t.Fatalf("expected speed demon first, got %s ok=%v", cur, ok)
	}
	if _, _, _, bursting := q.Confetti(); !bursting {
		t.Fatalf("expected confetti for a perfect run")
	}
	for i := 0; i < 3; i++ {
		drain(q, clk, rec)
	}
	if _, _, _, bursting := q.Confetti(); bursting {
		t.Fatalf("expected confetti to stop after 3s")
	}
	if cur, _ := q.Current(); cur != SpeedDemon {
		t.Fatalf("expected first badge to last 4s, got %s", cur)
	}
	drain(q, clk, rec)
	if cur, _ := q.Current(); cur != Perfectionist {
		t.Fatalf("expected second badge after 4s, got %s", cur)
	}
	for i := 0; i < 12; i++ {
		drain(q, clk, rec)
	}
	if q.Active() {
		t.Fatalf("expected queue to empty after every badge ran")
	}
}

func TestQueuePauseHoldsBadge(t *testing.T) {
	q, clk, rec := newTestQueue()
	q.Celebrate(model.TestResult{Performance: model.Performance{WPM: 20, Accuracy: 50}}, 0)
	if cur, ok := q.Current(); !ok || cur != FirstTest {
		t.Fatalf("expected first test badge, got %s", cur)
	}
	q.Pause()
	for i := 0; i < 10; i++ {
		if drain(q, clk, rec) != 0 {
			t.Fatalf("expected no ticks to apply while paused")
		}
	}
	if !q.Active() {
		t.Fatalf("expected badge to stay up while paused")
	}
	q.Resume()
	if q.Badge().Remaining() != 4 {
		t.Fatalf("expected full badge time after resume, got %d", q.Badge().Remaining())
	}
	for i := 0; i < 4; i++ {
		drain(q, clk, rec)
	}
	if q.Active() {
		t.Fatalf("expected badge gone after 4 running seconds")
	}
}

func TestQueueSkipAndForeignTicks(t *testing.T) {
	q, _, _ := newTestQueue()
	q.Celebrate(model.TestResult{Performance: model.Performance{WPM: 120, Accuracy: 99}}, 100)
	first, _ := q.Current()
	q.Skip()
	second, _ := q.Current()
	if first == second {
		t.Fatalf("expected skip to advance past %s", first)
	}
	if q.HandleTick(clock.Tick{ID: -1}) || q.Owns(clock.Tick{ID: -1}) {
		t.Fatalf("expected foreign tick to be rejected")
	}
	q.Clear()
	if q.Active() || q.Pending() != 0 {
		t.Fatalf("expected clear to stop everything")
	}
}
