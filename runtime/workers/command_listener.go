package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"irc-bridge/contract"
	"irc-bridge/errors"
)

var _ contract.Worker = (*CommandListener)(nil)

// CommandListener feeds the command bus into the controller.
// A bad command is logged and dropped, the stream keeps going.
type CommandListener struct {
	log       *slog.Logger
	source    contract.CommandSource
	handler   contract.CommandHandler
	threshold int64
	received  atomic.Int64
	malformed atomic.Int64
}

// NewCommandListener escalates to error level every threshold malformed commands. 0 disables it.
func NewCommandListener(log *slog.Logger, source contract.CommandSource, handler contract.CommandHandler, threshold int) *CommandListener {
	return &CommandListener{log: log, source: source, handler: handler, threshold: int64(threshold)}
}

func (w *CommandListener) Run(ctx context.Context) error {
	w.log.Info("Listening for commands")
	for {
		frames, err := w.source.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%w: receive command: %v", errors.ErrTransport, err)
		}
		w.received.Add(1)
		if err := w.handler.HandleMessage(ctx, frames); err != nil {
			w.report(frames, err)
		}
	}
}

func (w *CommandListener) report(frames [][]byte, err error) {
	user := ""
	if len(frames) > 0 {
		user = string(frames[0])
	}
	switch {
	case errors.Is(err, errors.ErrMalformedCommand), errors.Is(err, errors.ErrUnknownCommand):
		n := w.malformed.Add(1)
		w.log.Warn("Dropping malformed command", "user", user, "frames", len(frames), "error", err)
		if w.threshold > 0 && n%w.threshold == 0 {
			w.log.Error("Malformed commands keep arriving", "count", n)
		}
	case errors.Is(err, errors.ErrRouting):
		w.log.Warn("Dropping unroutable command", "user", user, "error", err)
	default:
		w.log.Warn("Command failed", "user", user, "error", err)
	}
}

// Stats returns received and malformed command counts.
func (w *CommandListener) Stats() (received, malformed int64) {
	return w.received.Load(), w.malformed.Load()
}
