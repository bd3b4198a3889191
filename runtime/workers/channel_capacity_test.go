package workers

import (
	"testing"

	"irc-bridge/domain/event"

	"github.com/stretchr/testify/require"
)

func TestChannelCapacity_Fill(t *testing.T) {
	req := require.New(t)
	queue := make(chan event.Record, 10)
	for i := 0; i < 9; i++ {
		queue <- event.Record{}
	}

	length, capacity, ok := fill(queue)
	req.True(ok)
	req.Equal(9, length)
	req.Equal(10, capacity)

	_, _, ok = fill("not a channel")
	req.False(ok)
}

func TestChannelCapacity_LowCapacity(t *testing.T) {
	req := require.New(t)

	req.True(lowCapacity(9, 10, 20))
	req.False(lowCapacity(5, 10, 20))
	req.False(lowCapacity(0, 0, 20))
}
