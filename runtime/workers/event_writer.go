package workers

import (
	"context"
	"log/slog"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain/event"
)

var _ contract.Worker = (*EventWriter)(nil)

// EventWriter drains the outbound queue and hands every record to each sink in turn.
//
// It is the single writer of the queue, so per-user ordering set by the publisher
// is kept on the bus. Delivery is best effort: a failing or slow sink is logged
// and skipped, the record is never retried.
type EventWriter struct {
	log         *slog.Logger
	events      <-chan event.Record
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventWriter(log *slog.Logger, events <-chan event.Record, sinkTimeout time.Duration, sinks ...contract.EventSink) *EventWriter {
	return &EventWriter{log: log, events: events, sinks: sinks, sinkTimeout: sinkTimeout}
}

func (w *EventWriter) Run(ctx context.Context) error {
	for {
		select {
		case r := <-w.events:
			w.Fanout(ctx, r)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event writer", "pending", len(w.events))
			return nil
		}
	}
}

// Fanout One sink after the other for each record
func (w *EventWriter) Fanout(ctx context.Context, r event.Record) {
	for _, sink := range w.sinks {
		w.consume(ctx, sink, r)
	}
}

func (w *EventWriter) consume(ctx context.Context, sink contract.EventSink, r event.Record) {
	if w.sinkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.sinkTimeout)
		defer cancel()
	}
	if err := sink.Consume(ctx, r); err != nil {
		w.log.Warn("Sink failed, event skipped",
			"sink", sinkName(sink), "user", r.User, "seq", r.Sequence, "kind", r.Kind, "error", err)
	}
}

func sinkName(sink contract.EventSink) string {
	if w, ok := sink.(contract.Worker); ok {
		return contract.GetWorkerName(w)
	}
	return "sink"
}
