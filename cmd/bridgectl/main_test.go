package main

import (
	"bytes"
	"testing"
	"time"

	"irc-bridge/domain"
	"irc-bridge/domain/event"
	"irc-bridge/errors"
	"irc-bridge/infrastructure/storage"

	"github.com/stretchr/testify/require"
)

func TestParseServer(t *testing.T) {
	req := require.New(t)

	cfg, err := parseServer([]string{"-user", "alice", "-host", "irc.libera.chat", "-port", "6697", "-tls"})

	req.NoError(err)
	req.Equal(domain.ServerConfig{
		User: "alice", Hostname: "irc.libera.chat", Port: 6697, TLS: true,
		Nickname: domain.DefaultNickname, Enabled: true,
	}, cfg)
}

func TestParseServer_Requires_Host(t *testing.T) {
	req := require.New(t)
	_, err := parseServer([]string{"-user", "alice"})
	req.Error(err)
}

func TestParseChannel_Folds_Network(t *testing.T) {
	req := require.New(t)

	ch, err := parseChannel([]string{"-user", "alice", "-network", "IRC.Libera.Chat", "-channel", "#go-nuts"})

	req.NoError(err)
	req.Equal(domain.NetworkID("irc.libera.chat"), ch.Network)
}

func TestSend_Rejects_Malformed_Command_Before_Dialing(t *testing.T) {
	req := require.New(t)

	err := send(Config{CommandBusAddr: "tcp://127.0.0.1:1"}, []string{"alice", "irc.libera.chat", "msg", "#go-nuts"})
	req.ErrorIs(err, errors.ErrMalformedCommand)

	err = send(Config{CommandBusAddr: "tcp://127.0.0.1:1"}, []string{"alice", "irc.libera.chat", "shout", "hi"})
	req.ErrorIs(err, errors.ErrUnknownCommand)
}

func TestRun_Without_Arguments_Prints_Usage(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	code, err := run(nil, &out)

	req.NoError(err)
	req.Equal(exitUsage, code)
	req.Contains(out.String(), "usage: bridgectl")
}

func TestRender(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	renderServers(&out, []serverRow{{
		Server:   domain.ServerConfig{User: "alice", Hostname: "irc.libera.chat", Port: 6697, TLS: true, Nickname: "alice_", Enabled: true},
		Channels: []domain.ChannelConfig{{Name: "#bridge"}, {Name: "#go-nuts"}},
		LastSeq:  42,
	}})
	req.Contains(out.String(), "irc.libera.chat:6697")
	req.Contains(out.String(), "#bridge #go-nuts")
	req.Contains(out.String(), "42")

	out.Reset()
	renderHits(&out, nil)
	req.Equal("no match\n", out.String())

	out.Reset()
	renderHits(&out, []storage.ArchivedMessage{{
		User: "alice", Network: "irc.libera.chat", Sequence: 7, Kind: event.Privmsg,
		Actor: "bob!b@host", Target: "#go-nuts", Text: "hello", Lang: "und",
		At: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}})
	req.Contains(out.String(), "2026-03-01 12:00:00")
	req.Contains(out.String(), "hello")
}
