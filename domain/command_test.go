package domain

import (
	"testing"

	"irc-bridge/errors"

	"github.com/stretchr/testify/require"
)

func frames(parts ...string) [][]byte {
	out := make([][]byte, 0, len(parts))
	for _, p := range parts {
		out = append(out, []byte(p))
	}
	return out
}

func TestParseCommand_Msg(t *testing.T) {
	req := require.New(t)

	cmd, err := ParseCommand(frames("alice", "irc.libera.chat", "msg", "#go", "hello there"))

	req.NoError(err)
	req.Equal(UserID("alice"), cmd.User)
	req.Equal(NetworkID("irc.libera.chat"), cmd.Network)
	req.Equal(MsgCommand, cmd.Kind)
	req.Equal([]string{"#go", "hello there"}, cmd.Args)
	req.False(cmd.IsGlobal())
}

func TestParseCommand_Global_Names(t *testing.T) {
	req := require.New(t)

	cmd, err := ParseCommand(frames("alice", "global", "names", "#go"))

	req.NoError(err)
	req.True(cmd.IsGlobal())
}

func TestParseCommand_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		frames [][]byte
		want   error
	}{
		{"too few frames", frames("alice", "net"), errors.ErrMalformedCommand},
		{"empty user", frames("", "net", "join", "#go"), errors.ErrMalformedCommand},
		{"unknown kind", frames("alice", "net", "dance", "#go"), errors.ErrUnknownCommand},
		{"msg without text", frames("alice", "net", "msg", "#go"), errors.ErrMalformedCommand},
		{"join with three args", frames("alice", "net", "join", "#go", "key", "extra"), errors.ErrMalformedCommand},
		{"names without channel", frames("alice", "net", "names"), errors.ErrMalformedCommand},
		{"empty network", frames("alice", "", "join", "#go"), errors.ErrMalformedCommand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCommand(tc.frames)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCommand_ServerConfig(t *testing.T) {
	req := require.New(t)

	// Given a connect command with port and tls flag
	cmd, err := ParseCommand(frames("alice", "", "connect", "irc.libera.chat", "alice_", "6697", "true"))
	req.NoError(err)

	// When turning it into a server row
	cfg, err := cmd.ServerConfig()

	// Then every field is carried over
	req.NoError(err)
	req.Equal(ServerConfig{User: "alice", Hostname: "irc.libera.chat", Port: 6697, TLS: true, Nickname: "alice_", Enabled: true}, cfg)
	req.Equal(NetworkID("irc.libera.chat"), cfg.Network())
	req.Equal("irc.libera.chat:6697", cfg.Address())
}

func TestServerConfig_Address_Brackets_IPv6(t *testing.T) {
	req := require.New(t)

	// Given a connect command naming an IPv6 literal
	cmd, err := ParseCommand(frames("alice", "", "connect", "::1", "alice", "6667"))
	req.NoError(err)
	cfg, err := cmd.ServerConfig()
	req.NoError(err)
	req.NoError(cfg.Validate())

	// Then the address can be dialed
	req.Equal("[::1]:6667", cfg.Address())
	req.Equal("127.0.0.1:6667", ServerConfig{Hostname: "127.0.0.1", Port: 6667}.Address())
}

func TestCommand_ServerConfig_Defaults_And_Errors(t *testing.T) {
	req := require.New(t)

	cmd, err := ParseCommand(frames("alice", "ignored", "connect", "irc.example.net", "bob"))
	req.NoError(err)
	cfg, err := cmd.ServerConfig()
	req.NoError(err)
	req.Equal(DefaultPort, cfg.Port)
	req.False(cfg.TLS)

	cmd, err = ParseCommand(frames("alice", "", "connect", "irc.example.net", "bob", "not-a-port"))
	req.NoError(err)
	_, err = cmd.ServerConfig()
	req.ErrorIs(err, errors.ErrMalformedCommand)

	cmd, err = ParseCommand(frames("alice", "", "connect", "irc.example.net", "bob", "70000"))
	req.NoError(err)
	_, err = cmd.ServerConfig()
	req.ErrorIs(err, errors.ErrMalformedCommand)
}

func TestChannelConfig_Validate(t *testing.T) {
	req := require.New(t)
	req.NoError(ChannelConfig{User: "alice", Network: "irc.libera.chat", Name: "#go"}.Validate())
	req.Error(ChannelConfig{User: "alice", Network: "irc.libera.chat", Name: "go"}.Validate())
}
