package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"irc-bridge/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key     string
	Type    string
	User    string
	Network string
	Detail  string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// NewDebugServer serves an HTML view of the badger keys under ?prefix=.
// It is only started at debug log level.
func NewDebugServer(log *slog.Logger, db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) *http.Server {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = DefaultMapper
	}

	mux := http.NewServeMux()
	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = storage.ServerPrefix
		}
		data := PageData{Prefix: prefix, Stats: make(map[string]any)}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Warn("Rendering inspector page failed", "error", err)
		}
	})

	return &http.Server{Addr: fmt.Sprintf("0.0.0.0:%d", port), Handler: mux}
}

func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{Key: key, Type: "RAW", Detail: "Size: " + strconv.Itoa(len(val)) + " bytes"}
	if i := strings.IndexByte(key, ':'); i > 0 {
		row.Type = strings.ToUpper(key[:i])
	}
	return row
}

// BridgeMapper decodes the values written by the storage repositories.
func BridgeMapper(key string, val []byte) InspectRow {
	row := DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, storage.SequencePrefix):
		seq, err := storage.DecodeSequence(val)
		if err != nil {
			row.Detail = "Error: " + err.Error()
			return row
		}
		row.User = strings.TrimPrefix(key, storage.SequencePrefix)
		row.Detail = "last seq " + strconv.FormatUint(seq, 10)
	case strings.HasPrefix(key, storage.ServerPrefix):
		var v structpb.Struct
		if err := proto.Unmarshal(val, &v); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		s := storage.DecodeServer(&v)
		row.User, row.Network = string(s.User), string(s.Network())
		row.Detail = fmt.Sprintf("%s as %s tls=%t enabled=%t", s.Address(), s.Nickname, s.TLS, s.Enabled)
	case strings.HasPrefix(key, storage.ChannelPrefix):
		var v structpb.Struct
		if err := proto.Unmarshal(val, &v); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		c := storage.DecodeChannel(&v)
		row.User, row.Network = string(c.User), string(c.Network)
		row.Detail = c.Name
		if c.Key != "" {
			row.Detail += " (keyed)"
		}
	}
	return row
}
