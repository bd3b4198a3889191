package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// badgerLogger routes badger's own logs to slog, tagged with the component.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(line(format, args))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(line(format, args))
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.Info(line(format, args))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(line(format, args))
}

// line drops the trailing newline badger puts on most messages.
func line(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

// OpenBadger opens the key/value store with badger's logs going through log.
func OpenBadger(path string, log *slog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(badgerLogger{log: log.With("component", "badger")}).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %s: %w", path, err)
	}
	return db, nil
}
