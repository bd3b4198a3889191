package runtime

import (
	"log/slog"
	"sync"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/domain/event"
)

var _ contract.IPublisher = (*Publisher)(nil)

// userSequence is the counter shared by every session of one user.
type userSequence struct {
	mu      sync.Mutex
	ready   bool
	last    uint64
	pending []event.Record
}

// Publisher stamps protocol events with a per-user sequence and hands them to
// the outbound queue. It never blocks on the transport: a full queue drops the record.
type Publisher struct {
	log   *slog.Logger
	store contract.SequenceStore
	out   chan<- event.Record
	now   func() time.Time

	mu    sync.Mutex
	users map[domain.UserID]*userSequence
}

// NewPublisher builds a publisher writing to out. store may be nil, every user then starts at 0.
func NewPublisher(log *slog.Logger, store contract.SequenceStore, out chan<- event.Record) *Publisher {
	return &Publisher{
		log:   log,
		store: store,
		out:   out,
		now:   func() time.Time { return time.Now().UTC() },
		users: make(map[domain.UserID]*userSequence),
	}
}

// Publish assigns the next sequence of the user and enqueues the record.
// While the durable baseline of the user is still loading the record is buffered
// and returned with Sequence 0; it gets its number when the baseline arrives.
func (p *Publisher) Publish(user domain.UserID, network domain.NetworkID, actor string, kind event.Kind, args ...string) event.Record {
	r := event.Record{
		User:    user,
		Network: network,
		Actor:   actor,
		Kind:    kind,
		At:      p.now(),
		Args:    args,
	}

	seq := p.sequenceOf(user)
	seq.mu.Lock()
	defer seq.mu.Unlock()

	if !seq.ready {
		seq.pending = append(seq.pending, r)
		return r
	}
	seq.last++
	r.Sequence = seq.last
	p.enqueue(r)
	return r
}

// Last returns the last sequence handed out for the user.
func (p *Publisher) Last(user domain.UserID) (uint64, bool) {
	p.mu.Lock()
	seq, ok := p.users[user]
	p.mu.Unlock()
	if !ok {
		return 0, false
	}
	seq.mu.Lock()
	defer seq.mu.Unlock()
	return seq.last, seq.ready
}

func (p *Publisher) sequenceOf(user domain.UserID) *userSequence {
	p.mu.Lock()
	defer p.mu.Unlock()

	seq, ok := p.users[user]
	if ok {
		return seq
	}
	seq = &userSequence{}
	p.users[user] = seq
	if p.store == nil {
		seq.ready = true
		return seq
	}
	go p.loadBaseline(user, seq)
	return seq
}

// loadBaseline reads the durable last sequence then flushes, in arrival order,
// what was published meanwhile.
func (p *Publisher) loadBaseline(user domain.UserID, seq *userSequence) {
	last, err := p.store.LastSequence(user)
	if err != nil {
		p.log.Error("Unable to load sequence baseline, starting from zero", "user", user, "error", err)
		last = 0
	}

	seq.mu.Lock()
	defer seq.mu.Unlock()

	seq.last = last
	seq.ready = true
	for _, r := range seq.pending {
		seq.last++
		r.Sequence = seq.last
		p.enqueue(r)
	}
	if n := len(seq.pending); n > 0 {
		p.log.Debug("Flushed records buffered during baseline load", "user", user, "count", n, "baseline", last)
	}
	seq.pending = nil
}

func (p *Publisher) enqueue(r event.Record) {
	select {
	case p.out <- r:
	default:
		p.log.Warn("Outbound queue full, dropping event",
			"user", r.User, "network", r.Network, "kind", r.Kind, "seq", r.Sequence)
	}
}
