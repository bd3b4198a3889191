package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"irc-bridge/domain"
	"irc-bridge/domain/event"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

const (
	english = "the quick brown fox jumps over the lazy dog while the bridge keeps relaying every message"
	french  = "le renard brun rapide saute par dessus le chien paresseux pendant que la passerelle relaie les messages"
)

func openArchive(t *testing.T) ArchiveRepository {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewArchiveRepository(writer, slog.Default())
}

func privmsg(seq uint64, network, target, text string) event.Record {
	return event.Record{
		User:     "alice",
		Sequence: seq,
		Network:  domain.NetworkID(network),
		Actor:    "bob!b@host",
		Kind:     event.Privmsg,
		At:       time.Date(2026, 3, 1, 12, 0, int(seq), 0, time.UTC),
		Args:     []string{"bob!b@host", target, text},
	}
}

func Test_Search_Returns_Newest_First(t *testing.T) {
	req := require.New(t)
	archive := openArchive(t)

	// Given three messages
	req.NoError(archive.Store(privmsg(1, "irc.libera.chat", "#go-nuts", english)))
	req.NoError(archive.Store(privmsg(2, "irc.libera.chat", "#go-nuts", "another fox sighting near the channel")))
	req.NoError(archive.Store(privmsg(3, "irc.libera.chat", "#go-nuts", "nothing to see here")))

	// When searching for a word
	hits, err := archive.Search(context.Background(), SearchQuery{User: "alice", Text: "fox"})

	// Then matches come back by descending sequence
	req.NoError(err)
	req.Len(hits, 2)
	req.Equal(uint64(2), hits[0].Sequence)
	req.Equal(uint64(1), hits[1].Sequence)
	req.Equal("#go-nuts", hits[1].Target)
	req.Equal("bob!b@host", hits[1].Actor)
	req.Equal(english, hits[1].Text)
	req.Equal(event.Privmsg, hits[1].Kind)
	req.True(hits[1].At.Equal(time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC)))
}

func Test_Search_Filters_By_Network_And_Limit(t *testing.T) {
	req := require.New(t)
	archive := openArchive(t)

	for i := uint64(1); i <= 5; i++ {
		req.NoError(archive.Store(privmsg(i, "irc.libera.chat", "#go-nuts", "hello")))
	}
	req.NoError(archive.Store(privmsg(6, "irc.oftc.net", "#debian", "hello")))

	hits, err := archive.Search(context.Background(), SearchQuery{User: "alice", Network: "irc.oftc.net"})
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(uint64(6), hits[0].Sequence)

	hits, err = archive.Search(context.Background(), SearchQuery{User: "alice", Network: "irc.libera.chat", Limit: 2})
	req.NoError(err)
	req.Len(hits, 2)
	req.Equal(uint64(5), hits[0].Sequence)
}

func Test_Store_Ignores_Records_Without_Text(t *testing.T) {
	req := require.New(t)
	archive := openArchive(t)

	req.NoError(archive.Store(event.Record{User: "alice", Sequence: 1, Network: "irc.libera.chat", Kind: event.Joined, Args: []string{"#go-nuts"}}))

	hits, err := archive.Search(context.Background(), SearchQuery{})
	req.NoError(err)
	req.Empty(hits)
}

func Test_Store_Same_Record_Twice_Keeps_One_Document(t *testing.T) {
	req := require.New(t)
	archive := openArchive(t)

	req.NoError(archive.Store(privmsg(1, "irc.libera.chat", "#go-nuts", "hello")))
	req.NoError(archive.Store(privmsg(1, "irc.libera.chat", "#go-nuts", "hello")))

	hits, err := archive.Search(context.Background(), SearchQuery{User: "alice"})
	req.NoError(err)
	req.Len(hits, 1)
}

func Test_Search_By_Language(t *testing.T) {
	req := require.New(t)
	archive := openArchive(t)

	req.NoError(archive.Store(privmsg(1, "irc.libera.chat", "#go-nuts", english)))
	req.NoError(archive.Store(privmsg(2, "irc.libera.chat", "#go-fr", french)))

	hits, err := archive.Search(context.Background(), SearchQuery{User: "alice", Lang: "fr"})
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("#go-fr", hits[0].Target)
	req.Equal("fr", hits[0].Lang)
}

func Test_DetectLang(t *testing.T) {
	req := require.New(t)
	req.Equal("en", DetectLang(english))
	req.Equal("fr", DetectLang(french))
	req.Equal(UndeterminedLang, DetectLang(""))
}

func Test_ArchiveReader_Searches_Closed_Index(t *testing.T) {
	req := require.New(t)
	cfg := bluge.DefaultConfig(t.TempDir())

	// Given an index written then closed by the bridge
	writer, err := bluge.OpenWriter(cfg)
	req.NoError(err)
	req.NoError(NewArchiveRepository(writer, slog.Default()).Store(privmsg(1, "irc.libera.chat", "#go-nuts", "hello gophers")))
	req.NoError(writer.Close())

	// When searching it from another process
	reader := NewArchiveReader(cfg, slog.Default())
	hits, err := reader.Search(context.Background(), SearchQuery{Text: "gophers"})

	// Then the message is found, but nothing can be stored
	req.NoError(err)
	req.Len(hits, 1)
	req.Error(reader.Store(privmsg(2, "irc.libera.chat", "#go-nuts", "nope")))
}
