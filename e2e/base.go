package e2e

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"irc-bridge/domain/event"
	"irc-bridge/infrastructure/bus"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// BaseBridgeSuite drives a running bridge through its buses and checks it
// through its health endpoint.
type BaseBridgeSuite struct {
	suite.Suite
	Config   Config
	events   *bus.EventConsumer
	commands *bus.CommandProducer
	cancel   context.CancelFunc
}

func (s *BaseBridgeSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BridgeAddr == "" {
		s.T().Skip("BRIDGE_ADDR not set, no bridge to test")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.events, err = bus.NewEventConsumer(ctx, log, s.Config.EventBusAddr)
	s.Require().NoError(err)
	s.commands, err = bus.NewCommandProducer(ctx, log, s.Config.CommandBusAddr)
	s.Require().NoError(err)
}

func (s *BaseBridgeSuite) TearDownSuite() {
	if s.events != nil {
		_ = s.events.Close()
	}
	if s.commands != nil {
		_ = s.commands.Close()
	}
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *BaseBridgeSuite) header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Send pushes one control command.
func (s *BaseBridgeSuite) Send(frames ...string) {
	s.header(s.T(), "command "+strings.Join(frames, " "))
	s.Require().NoError(s.commands.Send(frames...))
}

// Expect reads events until one matches, or fails after timeout.
func (s *BaseBridgeSuite) Expect(timeout time.Duration, match func(event.Record) bool) event.Record {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for {
		r, err := s.events.Next(ctx)
		s.Require().NoError(err, "no matching event before timeout")
		s.T().Logf("event #%d %s %s %v", r.Sequence, r.Network, r.Kind, r.Args)
		if match(r) {
			return r
		}
	}
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging.
func (s *BaseBridgeSuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	s.header(t, name)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithHealth provides a health client of the bridge within a contextual test step.
func (s *BaseBridgeSuite) WithHealth(name string, fn func(ctx context.Context, client healthpb.HealthClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.BridgeAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	fn(ctx, healthpb.NewHealthClient(conn))
}
