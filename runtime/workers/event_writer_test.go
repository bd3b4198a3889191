package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"irc-bridge/domain/event"
	"irc-bridge/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventWriter_Fanout_To_Every_Sink_In_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	bus := mocks.NewMockEventSink(ctrl)
	checkpoint := mocks.NewMockEventSink(ctrl)
	events := make(chan event.Record, 4)

	first := event.Record{User: "alice", Sequence: 1, Kind: event.SignedOn}
	second := event.Record{User: "alice", Sequence: 2, Kind: event.Joined}

	// Then each sink sees both records, in order, even when one of them fails
	gomock.InOrder(
		bus.EXPECT().Consume(gomock.Any(), first).Return(fmt.Errorf("socket closed")),
		bus.EXPECT().Consume(gomock.Any(), second).Return(nil),
	)
	done := make(chan struct{})
	gomock.InOrder(
		checkpoint.EXPECT().Consume(gomock.Any(), first).Return(nil),
		checkpoint.EXPECT().Consume(gomock.Any(), second).DoAndReturn(func(context.Context, event.Record) error {
			close(done)
			return nil
		}),
	)

	writer := NewEventWriter(slog.Default(), events, 50*time.Millisecond, bus, checkpoint)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopped := make(chan error, 1)
	go func() { stopped <- writer.Run(ctx) }()

	// When two records are queued
	events <- first
	events <- second

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("records were not delivered")
	}
	cancel()
	req.NoError(<-stopped)
}

func TestEventWriter_Sink_Gets_A_Deadline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	slow := mocks.NewMockEventSink(ctrl)

	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ event.Record) error {
		_, ok := ctx.Deadline()
		req.True(ok)
		<-ctx.Done()
		return ctx.Err()
	})

	writer := NewEventWriter(slog.Default(), nil, 10*time.Millisecond, slow)
	writer.Fanout(context.Background(), event.Record{User: "alice", Sequence: 1})
}
