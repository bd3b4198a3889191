package e2e

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"irc-bridge/domain"
	"irc-bridge/domain/event"
	"irc-bridge/infrastructure/grpc/server"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type testSessionSuite struct {
	BaseBridgeSuite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, &testSessionSuite{})
}

func (s *testSessionSuite) TestConnectJoinSpeakDisconnect() {
	user := "e2e-" + uuid.NewString()[:8]
	nick := "e2e_" + uuid.NewString()[:6]
	network := domain.NetworkID(strings.ToLower(s.Config.IRCHost))
	ours := func(r event.Record) bool { return string(r.User) == user && r.Network == network }

	s.Run("Step 1: connect and sign on", func() {
		s.Send(user, string(domain.Global), "connect", s.Config.IRCHost, nick, strconv.Itoa(s.Config.IRCPort))
		r := s.Expect(30*time.Second, func(r event.Record) bool { return ours(r) && r.Kind == event.SignedOn })
		s.Require().Equal(uint64(1), r.Sequence)
	})

	s.Run("Step 2: session reported healthy", func() {
		s.WithHealth("health of the new session", func(ctx context.Context, client healthpb.HealthClient) {
			resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: server.ServiceName(domain.UserID(user), network)})
			s.Require().NoError(err)
			s.Require().Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		})
	})

	s.Run("Step 3: join then receive the roster", func() {
		s.Send(user, string(network), "join", s.Config.Channel)
		s.Expect(10*time.Second, func(r event.Record) bool { return ours(r) && r.Kind == event.Joined })
		names := s.Expect(10*time.Second, func(r event.Record) bool { return ours(r) && r.Kind == event.Names })
		// The creator of a fresh channel is listed as an operator
		s.Require().True(lo.ContainsBy(names.Args[1:], func(n string) bool {
			return strings.TrimLeft(n, "@+") == nick
		}), "own nick missing from %v", names.Args)
	})

	s.Run("Step 4: messages are echoed", func() {
		s.Send(user, string(network), "msg", s.Config.Channel, "hello from e2e")
		echo := s.Expect(10*time.Second, func(r event.Record) bool { return ours(r) && r.Kind == event.Privmsg })
		s.Require().Equal([]string{nick, s.Config.Channel, "hello from e2e"}, echo.Args)
	})

	s.Run("Step 5: disconnect", func() {
		s.Send(user, string(network), "disconnect")
		s.WithHealth("health after disconnect", func(ctx context.Context, client healthpb.HealthClient) {
			s.Require().Eventually(func() bool {
				resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: server.ServiceName(domain.UserID(user), network)})
				return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_NOT_SERVING
			}, 5*time.Second, 100*time.Millisecond)
		})
	})
}

