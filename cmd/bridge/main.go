package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain/event"
	"irc-bridge/errors"
	"irc-bridge/infrastructure/bus"
	"irc-bridge/infrastructure/grpc/server"
	"irc-bridge/infrastructure/irc"
	"irc-bridge/infrastructure/storage"
	"irc-bridge/internal"
	"irc-bridge/moderation"
	"irc-bridge/runtime"
	"irc-bridge/runtime/workers"
	"irc-bridge/sink"

	"github.com/blugelabs/bluge"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"google.golang.org/grpc"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bridge terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Returning instead of exiting lets the deferred closes run.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage
	db, err := storage.OpenBadger(config.BadgerFilepath, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	sequences := storage.NewSequenceRepository(db, logger)
	servers := storage.NewServerRepository(db, logger)
	archive := storage.NewArchiveRepository(blugeWriter, logger)

	// 3. Buses
	pushSink, err := bus.NewPushSink(ctx, logger.With("component", "event-bus"), config.EventBusAddr)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = pushSink.Close() }()

	pullSource, err := bus.NewPullSource(ctx, logger.With("component", "command-bus"), config.CommandBusAddr)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = pullSource.Close() }()

	// 4. Runtime
	events := make(chan event.Record, config.BufferSize)
	health := server.NewHealthReporter(logger)
	registry := runtime.NewRegistry(logger)
	publisher := runtime.NewPublisher(logger.With("component", "publisher"), sequences, events)
	dialer := irc.NewDialer(logger.With("component", "irc"), irc.Options{
		Username:  config.IRCUsername,
		Realname:  config.IRCRealname,
		SendLimit: config.IRCSendLimit,
		SendBurst: config.IRCSendBurst,
	})
	moderator, err := moderation.NewModerator(config.Words(), config.Mask())
	if err != nil {
		return exitConfig, fmt.Errorf("building censor: %w", err)
	}
	supervisor := workers.NewSupervisor(logger).WithRestartDelay(config.RestartInterval)

	bridge := runtime.NewBridge(logger, supervisor, registry, publisher, dialer, runtime.BridgeOptions{
		Servers:  servers,
		Channels: servers,
		Listener: health,
		Filter:   moderator,
		Session: runtime.SessionOptions{
			Backoff: runtime.Backoff{
				Base:        config.ReconnectBaseDelay,
				Max:         config.ReconnectMaxDelay,
				MaxAttempts: config.ReconnectMaxAttempts,
			},
			DialTimeout: config.DialTimeout,
		},
	})

	archiveSink := sink.NewArchiveSink(archive, logger.With("component", "archive"), config.ArchiveBatchSize, config.ArchiveBufferTimeout)
	bridge.Add(
		workers.NewCommandListener(logger.With("component", "command-listener"), pullSource, bridge.Controller(), config.MalformedWarnThreshold),
		workers.NewEventWriter(logger.With("component", "event-writer"), events, config.SinkTimeout,
			pushSink,
			sink.NewSequenceSink(sequences, logger),
			archiveSink,
		),
		workers.NewHeartbeatWorker(logger.With("component", "heartbeat"), registry, config.HeartbeatInterval),
		workers.NewChannelCapacityWorker(logger.With("component", "capacity"), []workers.NamedChannel{
			{Name: "events", Channel: events},
		}, config.LowCapacityThreshold, config.MetricInterval),
	)

	if logger.Enabled(ctx, slog.LevelDebug) {
		debug := internal.NewDebugServer(logger, db, config.DebugPort, "/inspect", internal.BridgeMapper, sessionStats(registry))
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
		go func() {
			if err := debug.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("Debug server stopped", "error", err)
			}
		}()
		defer func() { _ = debug.Close() }()
	}

	errChan := make(chan error, 2)

	// 5. Start the bridge
	go func() {
		logger.Info("Starting bridge...")
		if err := bridge.Start(ctx); err != nil {
			errChan <- fmt.Errorf("bridge error: %w", err)
		}
	}()

	// 6. gRPC health server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := server.NewServer(logger, health)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Graceful shutdown
	logger.Info("Shutting down gracefully...")
	health.Shutdown()
	s.GracefulStop()
	bridge.Stop()
	if err := archiveSink.Flush(); err != nil {
		logger.Warn("Last archive flush failed", "error", err)
	}
	logger.Info("Program stopped cleanly")
	return code, runErr
}

// sessionStats counts sessions per state for the inspector page.
func sessionStats(registry contract.IRegistry) internal.StatsProvider {
	return func() map[string]any {
		counts := lo.CountValuesBy(registry.Sessions(), func(s contract.Session) string {
			return s.State().String()
		})
		stats := make(map[string]any, len(counts))
		for state, n := range counts {
			stats[state] = n
		}
		return stats
	}
}
