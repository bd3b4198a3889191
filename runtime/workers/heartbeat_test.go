package workers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/mocks"

	"github.com/shirou/gopsutil/process"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHeartbeat_Sample_Counts_Sessions_By_State(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)

	var sessions []contract.Session
	for _, state := range []domain.SessionState{domain.Online, domain.Online, domain.Reconnecting} {
		s := mocks.NewMockSession(ctrl)
		s.EXPECT().State().Return(state)
		sessions = append(sessions, s)
	}
	registry.EXPECT().Sessions().Return(sessions)

	p, err := process.NewProcess(int32(os.Getpid()))
	req.NoError(err)

	hb, err := NewHeartbeatWorker(slog.Default(), registry, time.Second).Sample(p)

	req.NoError(err)
	req.Positive(hb.RSS)
	req.Positive(hb.Goroutines)
	req.Equal(2, hb.Sessions[domain.Online])
	req.Equal(1, hb.Sessions[domain.Reconnecting])
	req.Zero(hb.Sessions[domain.Disconnected])
}
