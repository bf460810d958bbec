package clock

import "time"

// Scheduled is a tick captured by Recorder.
type Scheduled struct {
	Tick  Tick
	After time.Duration
}

// Recorder is a Scheduler that queues ticks for manual delivery.
type Recorder struct {
	Pending []Scheduled
}

// Schedule implements Scheduler.
func (r *Recorder) Schedule(t Tick, after time.Duration) {
	r.Pending = append(r.Pending, Scheduled{Tick: t, After: after})
}

// Take removes and returns the oldest pending tick of the given kind.
func (r *Recorder) Take(kind TickKind) (Scheduled, bool) {
	for i, s := range r.Pending {
		if s.Tick.Kind != kind {
			continue
		}
		r.Pending = append(r.Pending[:i], r.Pending[i+1:]...)
		return s, true
	}
	return Scheduled{}, false
}

// Count returns the number of pending ticks of the given kind.
func (r *Recorder) Count(kind TickKind) int {
	n := 0
	for _, s := range r.Pending {
		if s.Tick.Kind == kind {
			n++
		}
	}
	return n
}
