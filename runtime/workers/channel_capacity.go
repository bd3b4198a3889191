package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"irc-bridge/contract"
)

var _ contract.Worker = (*ChannelCapacityWorker)(nil)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker samples the fill level of internal queues and warns when
// the free room drops under the threshold, in percent. A queue running full means
// the publisher is about to drop events.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	threshold      int
	metricInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel, threshold int, metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{log: log, channels: channels, threshold: threshold, metricInterval: metricInterval}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, nc := range w.channels {
				length, capacity, ok := fill(nc.Channel)
				if !ok {
					w.log.Error("Provided object is not a channel", "name", nc.Name)
					continue
				}
				if lowCapacity(length, capacity, w.threshold) {
					w.log.Warn("Queue nearly full", "name", nc.Name, "length", length, "capacity", capacity)
				} else {
					w.log.Debug("Queue fill", "name", nc.Name, "length", length, "capacity", capacity)
				}
			}
		}
	}
}

// fill reads len and cap without blocking the channel owners.
func fill(ch any) (int, int, bool) {
	v := reflect.ValueOf(ch)
	if v.Kind() != reflect.Chan {
		return 0, 0, false
	}
	return v.Len(), v.Cap(), true
}

func lowCapacity(length, capacity, thresholdPercent int) bool {
	if capacity == 0 {
		return false
	}
	free := (capacity - length) * 100 / capacity
	return free < thresholdPercent
}
