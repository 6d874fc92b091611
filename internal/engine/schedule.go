// Package engine implements the real-time game-state core: the tick-driven
// companion simulation, the timed-prompt subsystem, and the minigame
// interruption protocol. It is pure logic with no external dependencies
// beyond the content and tuning packages; the platform drives it with
// fixed-rate ticks and consumes read-only snapshots.
package engine

import "sort"

// TimerKind tags a scheduled deadline so the session knows how to act on it.
type TimerKind uint8

const (
	// TimerIntro ends the intro overlay.
	TimerIntro TimerKind = iota
	// TimerPromptSpawn creates the next prompt.
	TimerPromptSpawn
	// TimerPromptFail ends the session when a prompt goes unanswered.
	TimerPromptFail
)

// String returns a human-readable name for the timer kind.
func (k TimerKind) String() string {
	switch k {
	case TimerIntro:
		return "intro"
	case TimerPromptSpawn:
		return "prompt_spawn"
	case TimerPromptFail:
		return "prompt_fail"
	default:
		return "unknown"
	}
}

// Deadline is one pending one-shot timer, due at an absolute simulation tick.
// Ref carries the id of the object the timer belongs to (e.g. a prompt id).
type Deadline struct {
	ID   int64
	Kind TimerKind
	Ref  int64
	Due  uint64
}

// Scheduler owns the set of pending one-shot deadlines.
// It replaces a web of chained callback timers with a single sorted set
// polled once per simulation tick; cancellation is removal from the set,
// so a canceled timer can never fire into a later session.
type Scheduler struct {
	nextID  int64
	pending []Deadline // sorted by Due, then by ID for stable order
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules a deadline at the given absolute simulation tick and
// returns its id for later cancellation.
func (s *Scheduler) After(due uint64, kind TimerKind, ref int64) int64 {
	s.nextID++
	d := Deadline{ID: s.nextID, Kind: kind, Ref: ref, Due: due}

	i := sort.Search(len(s.pending), func(i int) bool {
		if s.pending[i].Due != d.Due {
			return s.pending[i].Due > d.Due
		}
		return s.pending[i].ID > d.ID
	})
	s.pending = append(s.pending, Deadline{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = d
	return d.ID
}

// Cancel removes a pending deadline by id.
// Returns false if the deadline already fired or was never scheduled.
func (s *Scheduler) Cancel(id int64) bool {
	for i := range s.pending {
		if s.pending[i].ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelKind removes all pending deadlines of the given kind.
func (s *Scheduler) CancelKind(kind TimerKind) {
	kept := s.pending[:0]
	for _, d := range s.pending {
		if d.Kind != kind {
			kept = append(kept, d)
		}
	}
	s.pending = kept
}

// Due removes and returns all deadlines due at or before the given tick,
// in firing order.
func (s *Scheduler) Due(now uint64) []Deadline {
	n := 0
	for n < len(s.pending) && s.pending[n].Due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	fired := make([]Deadline, n)
	copy(fired, s.pending[:n])
	s.pending = s.pending[n:]
	return fired
}

// Reset drops every pending deadline.
// Called on session reset and game over so no stale timer survives.
func (s *Scheduler) Reset() {
	s.pending = s.pending[:0]
}

// Len returns the number of pending deadlines.
func (s *Scheduler) Len() int {
	return len(s.pending)
}
