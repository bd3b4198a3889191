package sink

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain/event"
)

// ArchiveSink buffers message-like records and hands them to the archive in batches.
// A batch is flushed when it reaches maxBatch records or bufferTimeout after its first record.
type ArchiveSink struct {
	mu            sync.Mutex
	timer         *time.Timer
	archive       contract.MessageArchive
	log           *slog.Logger
	records       []event.Record
	maxBatch      int
	bufferTimeout time.Duration
}

func NewArchiveSink(archive contract.MessageArchive, log *slog.Logger, maxBatch int, bufferTimeout time.Duration) *ArchiveSink {
	return &ArchiveSink{
		archive:       archive,
		log:           log,
		maxBatch:      maxBatch,
		bufferTimeout: bufferTimeout,
	}
}

func (a *ArchiveSink) Consume(_ context.Context, r event.Record) error {
	if !r.IsMessage() {
		return nil
	}

	a.mu.Lock()
	a.records = append(a.records, r)
	if len(a.records) == 1 && a.timer == nil {
		a.timer = time.AfterFunc(a.bufferTimeout, func() {
			if err := a.Flush(); err != nil {
				a.log.Error("Timeout flush of archive failed", "error", err)
			}
		})
	}
	isFull := len(a.records) >= a.maxBatch
	a.mu.Unlock()

	if isFull {
		return a.Flush()
	}
	return nil
}

// Flush stores whatever is buffered. The buffer is swapped out under the lock
// so new records can be appended while the batch is written.
func (a *ArchiveSink) Flush() error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if len(a.records) == 0 {
		a.mu.Unlock()
		return nil
	}
	batch := a.records
	a.records = make([]event.Record, 0, a.maxBatch)
	a.mu.Unlock()

	if err := a.archive.StoreBatch(batch); err != nil {
		return fmt.Errorf("archiving %d records: %w", len(batch), err)
	}
	return nil
}
