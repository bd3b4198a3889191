package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// Heartbeat is one sample of process and session health.
type Heartbeat struct {
	RSS        uint64
	CPUPercent float64
	Status     string
	Goroutines int
	Sessions   map[domain.SessionState]int
}

// HeartbeatWorker periodically logs process resources and how many sessions
// sit in each state.
type HeartbeatWorker struct {
	log      *slog.Logger
	registry contract.IRegistry
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, registry contract.IRegistry, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, registry: registry, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			hb, err := w.Sample(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "error", err)
				continue
			}
			w.log.Info("Heartbeat",
				"rss", hb.RSS,
				"cpu", hb.CPUPercent,
				"status", hb.Status,
				"goroutines", hb.Goroutines,
				"online", hb.Sessions[domain.Online],
				"reconnecting", hb.Sessions[domain.Reconnecting],
				"connecting", hb.Sessions[domain.Connecting],
				"disconnected", hb.Sessions[domain.Disconnected],
			)
		}
	}
}

func (w *HeartbeatWorker) Sample(p *process.Process) (Heartbeat, error) {
	rss, cpu, status, err := getSelfStats(p)
	if err != nil {
		return Heartbeat{}, err
	}
	return Heartbeat{
		RSS:        rss,
		CPUPercent: cpu,
		Status:     status,
		Goroutines: runtime.NumGoroutine(),
		Sessions:   countStates(w.registry.Sessions()),
	}, nil
}

func countStates(sessions []contract.Session) map[domain.SessionState]int {
	counts := make(map[domain.SessionState]int)
	for _, s := range sessions {
		counts[s.State()]++
	}
	return counts
}

// getSelfStats retrieves memory, CPU and OS status of the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
