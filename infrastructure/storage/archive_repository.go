package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/domain/event"

	"github.com/abadojack/whatlanggo"
	"github.com/blugelabs/bluge"
)

const (
	DefaultSearchLimit = 20
	// UndeterminedLang is stored when the detector is not confident.
	UndeterminedLang = "und"
)

// ArchivedMessage is one message-like record as found in the archive.
type ArchivedMessage struct {
	User     domain.UserID
	Network  domain.NetworkID
	Sequence uint64
	Kind     event.Kind
	Actor    string
	Target   string
	Text     string
	Lang     string
	At       time.Time
}

type SearchQuery struct {
	User    domain.UserID
	Network domain.NetworkID
	// Text is analyzed and matched against the message body. Empty matches everything.
	Text  string
	Lang  string
	Limit int
}

// ArchiveRepository indexes message text in bluge so the history can be searched.
type ArchiveRepository struct {
	writer *bluge.Writer
	open   func() (*bluge.Reader, error)
	log    *slog.Logger
}

func NewArchiveRepository(writer *bluge.Writer, log *slog.Logger) ArchiveRepository {
	return ArchiveRepository{writer: writer, open: writer.Reader, log: log}
}

// NewArchiveReader searches an index written by another process. It cannot store.
func NewArchiveReader(cfg bluge.Config, log *slog.Logger) ArchiveRepository {
	return ArchiveRepository{
		open: func() (*bluge.Reader, error) { return bluge.OpenReader(cfg) },
		log:  log,
	}
}

var _ contract.MessageArchive = ArchiveRepository{}

// Store indexes r. Records without text are ignored.
// The document id is user and sequence, so storing the same record twice overwrites it.
func (a ArchiveRepository) Store(r event.Record) error {
	return a.StoreBatch([]event.Record{r})
}

// StoreBatch indexes the message-like records in one bluge batch.
func (a ArchiveRepository) StoreBatch(records []event.Record) error {
	batch := bluge.NewBatch()
	count := 0
	for _, r := range records {
		if !r.IsMessage() {
			continue
		}
		doc := document(r)
		batch.Update(doc.ID(), doc)
		count++
	}
	if count == 0 {
		return nil
	}
	if a.writer == nil {
		return fmt.Errorf("archive opened read-only")
	}
	if err := a.writer.Batch(batch); err != nil {
		return fmt.Errorf("indexing %d records: %w", count, err)
	}
	a.log.Debug("Archived messages", "count", count)
	return nil
}

func document(r event.Record) *bluge.Document {
	text := r.Text()
	return bluge.NewDocument(fmt.Sprintf("%s:%020d", r.User, r.Sequence)).
		AddField(bluge.NewKeywordField("user", string(r.User)).StoreValue()).
		AddField(bluge.NewKeywordField("network", string(r.Network)).StoreValue()).
		AddField(bluge.NewKeywordField("kind", string(r.Kind)).StoreValue()).
		AddField(bluge.NewKeywordField("actor", r.Actor).StoreValue()).
		AddField(bluge.NewKeywordField("target", target(r)).StoreValue()).
		AddField(bluge.NewKeywordField("lang", DetectLang(text)).StoreValue()).
		AddField(bluge.NewKeywordField("seq", fmt.Sprintf("%020d", r.Sequence)).StoreValue().Sortable()).
		AddField(bluge.NewTextField("text", text).StoreValue()).
		AddField(bluge.NewDateTimeField("at", r.At).StoreValue())
}

// Search returns the newest matching messages first.
func (a ArchiveRepository) Search(ctx context.Context, q SearchQuery) ([]ArchivedMessage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	query := bluge.NewBooleanQuery()
	clauses := 0
	must := func(field, value string) {
		if value == "" {
			return
		}
		query.AddMust(bluge.NewTermQuery(value).SetField(field))
		clauses++
	}
	must("user", string(q.User))
	must("network", string(q.Network))
	must("lang", q.Lang)
	if q.Text != "" {
		query.AddMust(bluge.NewMatchQuery(q.Text).SetField("text"))
		clauses++
	}
	var root bluge.Query = query
	if clauses == 0 {
		root = bluge.NewMatchAllQuery()
	}

	reader, err := a.open()
	if err != nil {
		return nil, fmt.Errorf("opening archive reader: %w", err)
	}
	defer reader.Close()

	request := bluge.NewTopNSearch(limit, root).SortBy([]string{"-seq"})
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching archive: %w", err)
	}

	var res []ArchivedMessage
	match, err := matches.Next()
	for err == nil && match != nil {
		var m ArchivedMessage
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "user":
				m.User = domain.UserID(value)
			case "network":
				m.Network = domain.NetworkID(value)
			case "kind":
				m.Kind = event.Kind(value)
			case "actor":
				m.Actor = string(value)
			case "target":
				m.Target = string(value)
			case "lang":
				m.Lang = string(value)
			case "text":
				m.Text = string(value)
			case "seq":
				m.Sequence, visitErr = strconv.ParseUint(string(value), 10, 64)
			case "at":
				m.At, visitErr = bluge.DecodeDateTime(value)
			}
			return visitErr == nil
		})
		if err == nil {
			err = visitErr
		}
		if err != nil {
			break
		}
		res = append(res, m)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("reading archive hits: %w", err)
	}
	return res, nil
}

// DetectLang returns the ISO 639-1 code of text, or UndeterminedLang.
func DetectLang(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return UndeterminedLang
	}
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return UndeterminedLang
}

// target is the channel or nick a message was addressed to.
func target(r event.Record) string {
	if len(r.Args) == 0 {
		return ""
	}
	if r.Kind == event.Topic {
		return r.Args[0]
	}
	if len(r.Args) < 2 {
		return ""
	}
	return r.Args[len(r.Args)-2]
}
