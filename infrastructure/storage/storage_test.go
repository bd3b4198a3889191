package storage

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_OpenBadger_Routes_Logs_Through_Slog(t *testing.T) {
	req := require.New(t)
	db, err := OpenBadger(t.TempDir(), slog.Default())
	req.NoError(err)
	req.NoError(db.Close())
}

func Test_Badger_Logger_Trims_Newline(t *testing.T) {
	req := require.New(t)
	req.Equal("compaction 3 done", line("compaction %d done\n", []any{3}))
}
