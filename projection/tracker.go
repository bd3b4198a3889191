// Package projection rebuilds a consumer's view of the event stream.
// It checks ordering per user and keeps a short local timeline.
// It never emits events.
package projection

import (
	"sync"

	"irc-bridge/domain"
	"irc-bridge/domain/event"
)

type Verdict int

const (
	// First is the first record seen for a user: it becomes the baseline.
	First Verdict = iota
	InOrder
	// Gap means records were skipped, Missing tells how many.
	Gap
	// Duplicate means the sequence was already seen or went backwards.
	Duplicate
)

func (v Verdict) String() string {
	switch v {
	case First:
		return "first"
	case InOrder:
		return "in-order"
	case Gap:
		return "gap"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

type Observation struct {
	Verdict Verdict
	Missing uint64
}

type Stats struct {
	Records    int
	Gaps       int
	Missing    uint64
	Duplicates int
}

// Tracker follows the sequence of every user seen on the event bus.
// A consumer joining late starts from whatever it sees first, earlier records
// are not reported missing.
type Tracker struct {
	mu       sync.Mutex
	last     map[domain.UserID]uint64
	timeline map[domain.UserID][]event.Record
	keep     int
	stats    Stats
}

// NewTracker keeps the last keep message records per user.
func NewTracker(keep int) *Tracker {
	return &Tracker{
		last:     make(map[domain.UserID]uint64),
		timeline: make(map[domain.UserID][]event.Record),
		keep:     keep,
	}
}

func (t *Tracker) Observe(r event.Record) Observation {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.Records++

	last, seen := t.last[r.User]
	var obs Observation
	switch {
	case !seen:
		obs.Verdict = First
	case r.Sequence <= last:
		t.stats.Duplicates++
		return Observation{Verdict: Duplicate}
	case r.Sequence == last+1:
		obs.Verdict = InOrder
	default:
		obs = Observation{Verdict: Gap, Missing: r.Sequence - last - 1}
		t.stats.Gaps++
		t.stats.Missing += obs.Missing
	}
	t.last[r.User] = r.Sequence

	if r.IsMessage() && t.keep > 0 {
		line := append(t.timeline[r.User], r)
		if len(line) > t.keep {
			line = line[len(line)-t.keep:]
		}
		t.timeline[r.User] = line
	}
	return obs
}

// Timeline returns a copy of the recent messages of a user, oldest first.
func (t *Tracker) Timeline(user domain.UserID) []event.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]event.Record(nil), t.timeline[user]...)
}

func (t *Tracker) Last(user domain.UserID) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	seq, ok := t.last[user]
	return seq, ok
}

func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
