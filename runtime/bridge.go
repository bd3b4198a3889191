// Package runtime keeps the live chat sessions of every user and moves events
// and commands between them and the buses. It holds no wire format knowledge.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/errors"

	"github.com/samber/lo"
)

var _ contract.Connector = (*Bridge)(nil)

// BridgeOptions gathers the optional collaborators of the bridge.
type BridgeOptions struct {
	Servers  contract.ServerSource
	Channels contract.ChannelSource
	Listener contract.StateListener
	Filter   contract.TextFilter
	Session  SessionOptions
}

// Bridge owns the registry, the publisher and the command controller, and runs
// sessions and workers under the supervisor.
type Bridge struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   *Registry
	publisher  *Publisher
	controller *Controller
	dialer     contract.Dialer
	options    BridgeOptions
	workers    []contract.Worker
	ctx        context.Context
}

func NewBridge(log *slog.Logger, supervisor contract.ISupervisor, registry *Registry,
	publisher *Publisher, dialer contract.Dialer, options BridgeOptions) *Bridge {
	b := &Bridge{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		publisher:  publisher,
		dialer:     dialer,
		options:    options,
	}
	b.controller = NewController(log.With("component", "controller"), registry, b)
	if options.Filter != nil {
		b.controller.WithFilter(options.Filter)
	}
	return b
}

func (b *Bridge) Controller() *Controller { return b.controller }

func (b *Bridge) Registry() *Registry { return b.registry }

func (b *Bridge) Publisher() *Publisher { return b.publisher }

// Add registers long-running workers started with the bridge.
func (b *Bridge) Add(workers ...contract.Worker) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.workers = append(b.workers, workers...)
}

// Start connects the configured servers in the background then runs the
// supervisor. It returns once ctx is done, sessions may outlive every worker.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.Lock()
	b.ctx = ctx
	if len(b.workers) > 0 {
		b.supervisor.Add(b.workers...)
	}
	b.mu.Unlock()

	servers, err := b.configuredServers()
	if err != nil {
		return err
	}
	for _, cfg := range servers {
		go func(cfg domain.ServerConfig) {
			if err := b.Connect(ctx, cfg); err != nil {
				b.log.Warn("Configured server unreachable", "user", cfg.User, "address", cfg.Address(), "error", err)
			}
		}(cfg)
	}

	b.log.Info("Starting bridge and all supervised workers", "servers", len(servers))
	b.supervisor.Run(ctx)
	<-ctx.Done()
	return nil
}

func (b *Bridge) configuredServers() ([]domain.ServerConfig, error) {
	if b.options.Servers == nil {
		return nil, nil
	}
	servers, err := b.options.Servers.ListServers()
	if err != nil {
		return nil, fmt.Errorf("loading servers: %w", err)
	}
	return lo.Filter(servers, func(s domain.ServerConfig, _ int) bool { return s.Enabled }), nil
}

// Connect dials a server for a user. On success the session replaces any
// previous one of the same (user, network) and starts serving; on failure
// nothing is registered.
func (b *Bridge) Connect(ctx context.Context, cfg domain.ServerConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidServer, err)
	}

	b.mu.Lock()
	runCtx := b.ctx
	b.mu.Unlock()
	if runCtx == nil {
		return fmt.Errorf("%w: bridge not started", errors.ErrConnection)
	}

	session := NewSession(b.log.With("component", "session"), cfg, b.dialer, b.publisher,
		b.options.Channels, b.options.Listener, b.options.Session)
	if err := session.Dial(ctx); err != nil {
		return err
	}

	b.registry.Register(session)
	b.log.Info("Session registered", "user", cfg.User, "network", cfg.Network())
	b.supervisor.Start(runCtx, session)
	return nil
}

// Stop closes every session then stops the workers.
func (b *Bridge) Stop() {
	for _, session := range b.registry.Sessions() {
		if err := session.Close(); err != nil {
			b.log.Debug("Session close error", "user", session.User(), "network", session.Network(), "error", err)
		}
	}
	b.supervisor.Stop()
	b.controller.Wait()
	b.log.Info("Bridge stopped")
}
