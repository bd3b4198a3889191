package sink

import (
	"context"
	"fmt"
	"log/slog"

	"irc-bridge/contract"
	"irc-bridge/domain/event"
)

// SequenceSink checkpoints the last published sequence of each user,
// so numbering resumes after a restart.
type SequenceSink struct {
	store contract.SequenceStore
	log   *slog.Logger
}

func NewSequenceSink(store contract.SequenceStore, log *slog.Logger) SequenceSink {
	return SequenceSink{store: store, log: log}
}

func (s SequenceSink) Consume(_ context.Context, r event.Record) error {
	if r.Sequence == 0 {
		return nil
	}
	if err := s.store.SaveSequence(r.User, r.Sequence); err != nil {
		return fmt.Errorf("checkpointing %s #%d: %w", r.User, r.Sequence, err)
	}
	return nil
}
