package workers

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"irc-bridge/contract"
	"irc-bridge/errors"
)

// Short enough for a session to come back quickly, long enough to keep a
// worker failing on every call from spinning the CPU.
const defaultRestartDelay = 200 * time.Millisecond

var _ contract.ISupervisor = (*Supervisor)(nil)

// Supervisor Own a context and a cancel function
// Run each worker in a goroutine
// Check panics and errors
// Restart workers automatically
// Accept workers after Run: sessions are started as they connect
// Wait until no supervised goroutine is left
type Supervisor struct {
	mu           sync.Mutex
	idle         *sync.Cond         // Signaled when active drops to zero
	cancel       context.CancelFunc // To stop the supervised context
	stopped      bool               // Stop was called, possibly before Run
	active       int                // Supervised goroutines still running
	log          *slog.Logger
	workers      []contract.Worker
	restartDelay time.Duration
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	s := &Supervisor{log: log, restartDelay: defaultRestartDelay}
	s.idle = sync.NewCond(&s.mu)
	return s
}

func (s *Supervisor) WithRestartDelay(delay time.Duration) *Supervisor {
	if delay > 0 {
		s.restartDelay = delay
	}
	return s
}

// Run Create a local cancellation trigger tied to the parent ctx
//
//	// If the parent (main) cancels, we cancel.
//	// If WE call Stop, only our children cancel.
func (s *Supervisor) Run(ctx context.Context) {
	// 1. Local cancellation trigger tied to the parent ctx
	supervisedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 2. Publish it under the lock: Stop may run from another goroutine
	s.mu.Lock()
	s.cancel = cancel
	if s.stopped {
		cancel()
	}
	workers := slices.Clone(s.workers)
	s.mu.Unlock()

	// 3. Start what was registered so far
	for _, worker := range workers {
		s.Start(supervisedCtx, worker)
	}

	// 4. Wait for every supervised goroutine, late ones included
	s.mu.Lock()
	for s.active > 0 {
		s.idle.Wait()
	}
	s.mu.Unlock()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs a worker under supervision.
// The worker is executed in a dedicated goroutine. If its Run method panics,
// the supervisor recovers and turns the panic into errors.ErrWorkerPanic,
// then restarts the worker after the restart delay unless ctx is over.
// A failure in one worker never stops the supervisor itself.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.mu.Lock()
	s.active++
	s.mu.Unlock()
	name := contract.GetWorkerName(worker)

	go func() {
		defer s.release()

		for {
			if ctx.Err() != nil {
				s.log.Info("Stopping worker", "name", name)
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						s.log.Error("Worker panicked", "name", name, "panic", r)
						err = errors.ErrWorkerPanic
					}
				}()
				// Restarted after a crash, the goroutine itself is kept
				return worker.Run(ctx)
			}()

			if err == nil {
				// Terminated properly, never restart
				s.log.Info("Worker finished", "name", name)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", name)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", name, "error", err)
			select {
			case <-ctx.Done():
				// Priority stop, no need to wait for the delay
				return
			case <-time.After(s.restartDelay):
				// Context still active, restart
			}
		}
	}()
}

func (s *Supervisor) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active--
	if s.active == 0 {
		s.idle.Broadcast()
	}
}

// Stop cancels the supervised context. Run returns once every goroutine
// listening on it has finished. A Stop before Run makes Run exit at once.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}
