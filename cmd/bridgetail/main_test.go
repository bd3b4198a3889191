package main

import (
	"bytes"
	"testing"
	"time"

	"irc-bridge/domain/event"
	"irc-bridge/projection"

	"github.com/stretchr/testify/require"
)

func TestPrinter_Flags_Gaps(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	p := newPrinter(&out, false)
	r := event.Record{
		User: "alice", Sequence: 9, Network: "irc.libera.chat", Actor: "zmq_irc_bridge",
		Kind: event.Privmsg, At: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Args: []string{"bob", "#go-nuts", "hi"},
	}

	p.print(r, projection.Observation{Verdict: projection.Gap, Missing: 3})

	req.Equal("!! alice: 3 records missing before #9\n"+
		"12:00:00.000 alice #9 irc.libera.chat privmsg zmq_irc_bridge bob | #go-nuts | hi\n", out.String())
}

func TestPrinter_Flags_Duplicates(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	p := newPrinter(&out, false)

	p.print(event.Record{User: "alice", Sequence: 2, Kind: event.Joined}, projection.Observation{Verdict: projection.Duplicate})

	req.Contains(out.String(), "!! alice: #2 already seen")
}
