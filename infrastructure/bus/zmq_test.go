package bus

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"irc-bridge/domain/event"

	"irc-bridge/errors"

	"github.com/stretchr/testify/require"
)

func tcpAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return "tcp://" + addr
}

func waitConnected(t *testing.T, sink *PushSink) {
	t.Helper()
	select {
	case <-sink.Connected():
	case <-time.After(5 * time.Second):
		t.Fatal("event bus never connected")
	}
}

func record(seq uint64) event.Record {
	return event.Record{
		User: "alice", Sequence: seq, Network: "irc.libera.chat", Actor: "alice",
		Kind: event.Privmsg, At: time.Unix(1700000000, 0).UTC(), Args: []string{"alice", "#go", fmt.Sprintf("line %d", seq)},
	}
}

// receiveAll forwards every record the consumer reads until ctx is done.
func receiveAll(ctx context.Context, consumer *EventConsumer) <-chan event.Record {
	out := make(chan event.Record, 64)
	go func() {
		for {
			r, err := consumer.Next(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, errors.ErrTransport) {
					return
				}
				continue
			}
			out <- r
		}
	}()
	return out
}

func TestEventBus_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Given a consumer bound before the bridge dials
	consumer, err := NewEventConsumer(ctx, slog.Default(), "inproc://events-roundtrip")
	req.NoError(err)
	defer consumer.Close()
	sink, err := NewPushSink(ctx, slog.Default(), "inproc://events-roundtrip")
	req.NoError(err)
	defer sink.Close()
	waitConnected(t, sink)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sent := event.Record{User: "alice", Sequence: 3, Network: "irc.libera.chat", Actor: "alice", Kind: event.Topic, At: at, Args: []string{"#go", "Go programming"}}

	// When the bridge publishes a record
	req.NoError(sink.Consume(ctx, sent))

	// Then the consumer decodes the same record
	got, err := consumer.Next(ctx)
	req.NoError(err)
	req.Equal(sent, got)
}

func TestCommandBus_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	source, err := NewPullSource(ctx, slog.Default(), "inproc://commands-roundtrip")
	req.NoError(err)
	defer source.Close()
	producer, err := NewCommandProducer(ctx, slog.Default(), "inproc://commands-roundtrip")
	req.NoError(err)
	defer producer.Close()

	req.NoError(producer.Send("alice", "global", "msg", "#go", "hello"))

	frames, err := source.Receive(ctx)
	req.NoError(err)
	req.Len(frames, 5)
	req.Equal("global", string(frames[1]))
	req.Equal("hello", string(frames[4]))
}

func TestPullSource_Receive_After_Cancel(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	source, err := NewPullSource(ctx, slog.Default(), "inproc://commands-cancel")
	req.NoError(err)
	defer source.Close()

	cancel()

	_, err = source.Receive(ctx)
	req.ErrorIs(err, context.Canceled)
}

func TestPullSource_Receive_Honours_Its_Deadline(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	source, err := NewPullSource(ctx, slog.Default(), "inproc://commands-deadline")
	req.NoError(err)
	defer source.Close()

	// Given nothing on the bus, a receive bounded by a short deadline
	readCtx, done := context.WithTimeout(ctx, 100*time.Millisecond)
	defer done()
	start := time.Now()
	_, err = source.Receive(readCtx)

	// Then it gives up on time
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Less(time.Since(start), time.Second)

	// And a message arriving later is still delivered
	producer, err := NewCommandProducer(ctx, slog.Default(), "inproc://commands-deadline")
	req.NoError(err)
	defer producer.Close()
	req.NoError(producer.Send("alice", "global", "names", "#go"))

	readCtx, done = context.WithTimeout(ctx, 5*time.Second)
	defer done()
	frames, err := source.Receive(readCtx)
	req.NoError(err)
	req.Equal("names", string(frames[2]))
}

func TestPullSource_Receive_After_Close(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	source, err := NewPullSource(ctx, slog.Default(), "inproc://commands-closed")
	req.NoError(err)

	received := make(chan error, 1)
	go func() {
		_, err := source.Receive(ctx)
		received <- err
	}()
	time.Sleep(20 * time.Millisecond)
	req.NoError(source.Close())

	select {
	case err := <-received:
		req.ErrorIs(err, errors.ErrTransport)
	case <-time.After(2 * time.Second):
		req.Fail("Receive should return once the source is closed")
	}
}

func TestPushSink_Starts_Without_Consumer(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	addr := tcpAddress(t)

	// Given no consumer bound yet, the sink is created at once
	start := time.Now()
	sink, err := NewPushSink(ctx, slog.Default(), addr)
	req.NoError(err)
	defer sink.Close()
	req.Less(time.Since(start), time.Second)

	// And a record published meanwhile fails as a transport error
	req.ErrorIs(sink.Consume(ctx, record(1)), errors.ErrTransport)

	// When the consumer comes up
	consumer, err := NewEventConsumer(ctx, slog.Default(), addr)
	req.NoError(err)
	defer consumer.Close()
	waitConnected(t, sink)

	// Then later records reach it
	req.NoError(sink.Consume(ctx, record(2)))
	got, err := consumer.Next(ctx)
	req.NoError(err)
	req.Equal(uint64(2), got.Sequence)
}

func TestPushSink_Reaches_A_Restarted_Consumer(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	addr := tcpAddress(t)

	first, err := NewEventConsumer(ctx, slog.Default(), addr)
	req.NoError(err)
	sink, err := NewPushSink(ctx, slog.Default(), addr)
	req.NoError(err)
	defer sink.Close()
	waitConnected(t, sink)

	req.NoError(sink.Consume(ctx, record(1)))
	got, err := first.Next(ctx)
	req.NoError(err)
	req.Equal(uint64(1), got.Sequence)

	// Given the consumer restarts on the same address
	req.NoError(first.Close())
	second, err := NewEventConsumer(ctx, slog.Default(), addr)
	req.NoError(err)
	defer second.Close()
	received := receiveAll(ctx, second)

	// When the bridge keeps publishing
	seq := uint64(1)
	var last event.Record
	req.Eventually(func() bool {
		seq++
		sendCtx, done := context.WithTimeout(ctx, 200*time.Millisecond)
		defer done()
		_ = sink.Consume(sendCtx, record(seq))
		select {
		case last = <-received:
			return true
		default:
			return false
		}
	}, 10*time.Second, 50*time.Millisecond)

	// Then records flow to the new consumer
	req.Greater(last.Sequence, uint64(1))
}
