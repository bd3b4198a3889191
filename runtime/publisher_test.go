package runtime

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"irc-bridge/domain"
	"irc-bridge/domain/event"
	"irc-bridge/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func drain(out chan event.Record, n int, timeout time.Duration) []event.Record {
	var got []event.Record
	deadline := time.After(timeout)
	for len(got) < n {
		select {
		case r := <-out:
			got = append(got, r)
		case <-deadline:
			return got
		}
	}
	return got
}

func TestPublisher_Sequences_Start_At_One_Without_Store(t *testing.T) {
	req := require.New(t)
	out := make(chan event.Record, 10)
	publisher := NewPublisher(slog.Default(), nil, out)

	first := publisher.Publish("alice", "irc.libera.chat", "alice", event.SignedOn, "alice")
	second := publisher.Publish("alice", "irc.libera.chat", "alice", event.Joined, "#go")

	req.Equal(uint64(1), first.Sequence)
	req.Equal(uint64(2), second.Sequence)
	req.Len(drain(out, 2, time.Second), 2)
}

func TestPublisher_Sequences_Are_Per_User(t *testing.T) {
	req := require.New(t)
	out := make(chan event.Record, 10)
	publisher := NewPublisher(slog.Default(), nil, out)

	publisher.Publish("alice", "n", "a", event.SignedOn, "a")
	publisher.Publish("alice", "n", "a", event.Joined, "#go")
	bob := publisher.Publish("bob", "n", "b", event.SignedOn, "b")

	req.Equal(uint64(1), bob.Sequence)
}

func TestPublisher_Concurrent_Networks_Share_A_GapFree_Sequence(t *testing.T) {
	req := require.New(t)
	const perNetwork = 200
	out := make(chan event.Record, 2*perNetwork)
	publisher := NewPublisher(slog.Default(), nil, out)

	// Given two sessions of the same user publishing concurrently
	var wg sync.WaitGroup
	for _, network := range []domain.NetworkID{"irc.libera.chat", "irc.oftc.net"} {
		wg.Add(1)
		go func(network domain.NetworkID) {
			defer wg.Done()
			for i := 0; i < perNetwork; i++ {
				publisher.Publish("alice", network, "alice", event.Privmsg, "alice", "#go", fmt.Sprint(i))
			}
		}(network)
	}
	wg.Wait()

	// Then the bus sees 1..N in order, without gaps or duplicates
	got := drain(out, 2*perNetwork, time.Second)
	req.Len(got, 2*perNetwork)
	for i, r := range got {
		req.Equal(uint64(i+1), r.Sequence)
	}
}

func TestPublisher_Buffers_Until_Baseline_Is_Loaded(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSequenceStore(ctrl)
	out := make(chan event.Record, 10)

	// Given a durable baseline of 41 that takes a while to read
	release := make(chan struct{})
	store.EXPECT().LastSequence(domain.UserID("alice")).DoAndReturn(func(domain.UserID) (uint64, error) {
		<-release
		return 41, nil
	}).Times(1)
	publisher := NewPublisher(slog.Default(), store, out)

	// When publishing before the baseline is known
	early := publisher.Publish("alice", "n", "alice", event.SignedOn, "alice")
	publisher.Publish("alice", "n", "alice", event.Joined, "#go")

	// Then nothing leaves and the record has no sequence yet
	req.Equal(uint64(0), early.Sequence)
	req.Empty(drain(out, 1, 50*time.Millisecond))

	// When the baseline arrives
	close(release)

	// Then buffered records are flushed in order after the baseline
	got := drain(out, 2, time.Second)
	req.Len(got, 2)
	req.Equal(uint64(42), got[0].Sequence)
	req.Equal(event.SignedOn, got[0].Kind)
	req.Equal(uint64(43), got[1].Sequence)

	// And later records continue the same sequence
	req.Eventually(func() bool {
		_, ready := publisher.Last("alice")
		return ready
	}, time.Second, 10*time.Millisecond)
	req.Equal(uint64(44), publisher.Publish("alice", "n", "alice", event.Joined, "#rust").Sequence)
}

func TestPublisher_Baseline_Error_Starts_From_Zero(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSequenceStore(ctrl)
	out := make(chan event.Record, 10)
	store.EXPECT().LastSequence(gomock.Any()).Return(uint64(0), fmt.Errorf("disk gone")).Times(1)
	publisher := NewPublisher(slog.Default(), store, out)

	publisher.Publish("alice", "n", "alice", event.SignedOn, "alice")

	got := drain(out, 1, time.Second)
	req.Len(got, 1)
	req.Equal(uint64(1), got[0].Sequence)
}

func TestPublisher_Full_Queue_Drops_Without_Blocking(t *testing.T) {
	req := require.New(t)
	out := make(chan event.Record, 1)
	publisher := NewPublisher(slog.Default(), nil, out)

	publisher.Publish("alice", "n", "alice", event.SignedOn, "alice")
	dropped := publisher.Publish("alice", "n", "alice", event.Joined, "#go")

	// The sequence was consumed even though the record never left
	req.Equal(uint64(2), dropped.Sequence)
	req.Len(out, 1)
}
