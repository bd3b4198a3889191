package domain

import (
	"fmt"
	"strconv"

	"irc-bridge/errors"
)

type CommandKind string

const (
	ConnectCommand    CommandKind = "connect"
	JoinCommand       CommandKind = "join"
	PartCommand       CommandKind = "part"
	MsgCommand        CommandKind = "msg"
	ActionCommand     CommandKind = "action"
	NamesCommand      CommandKind = "names"
	DisconnectCommand CommandKind = "disconnect"
)

const DefaultPort = 6667

// arity holds the accepted argument count range per kind.
var arity = map[CommandKind][2]int{
	ConnectCommand:    {2, 4},
	JoinCommand:       {1, 2},
	PartCommand:       {1, 1},
	MsgCommand:        {2, 2},
	ActionCommand:     {2, 2},
	NamesCommand:      {1, 1},
	DisconnectCommand: {0, 0},
}

// Command is one control message read from the command bus:
// [user, network|global, kind, args...]
type Command struct {
	User    UserID
	Network NetworkID
	Kind    CommandKind
	Args    []string
}

// IsGlobal reports whether the command addresses every network of the user.
func (c Command) IsGlobal() bool {
	return c.Network == Global
}

// ParseCommand decodes the frames of a control message. It only checks the shape:
// routing is left to the registry.
func ParseCommand(frames [][]byte) (Command, error) {
	if len(frames) < 3 {
		return Command{}, fmt.Errorf("%w: expected at least 3 frames, got %d", errors.ErrMalformedCommand, len(frames))
	}
	cmd := Command{
		User:    UserID(frames[0]),
		Network: NetworkID(frames[1]),
		Kind:    CommandKind(frames[2]),
	}
	if cmd.User == "" {
		return Command{}, fmt.Errorf("%w: empty user", errors.ErrMalformedCommand)
	}
	for _, f := range frames[3:] {
		cmd.Args = append(cmd.Args, string(f))
	}
	bounds, ok := arity[cmd.Kind]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, cmd.Kind)
	}
	if len(cmd.Args) < bounds[0] || len(cmd.Args) > bounds[1] {
		return Command{}, fmt.Errorf("%w: %s takes %d..%d arguments, got %d",
			errors.ErrMalformedCommand, cmd.Kind, bounds[0], bounds[1], len(cmd.Args))
	}
	if cmd.Kind != ConnectCommand && cmd.Network == "" {
		return Command{}, fmt.Errorf("%w: empty network", errors.ErrMalformedCommand)
	}
	return cmd, nil
}

// ServerConfig builds the connection row carried by a connect command:
// [hostname, nick, port?, tls?]. The network field of the command is ignored.
func (c Command) ServerConfig() (ServerConfig, error) {
	if c.Kind != ConnectCommand {
		return ServerConfig{}, fmt.Errorf("%w: %s is not a connect command", errors.ErrMalformedCommand, c.Kind)
	}
	cfg := ServerConfig{
		User:     c.User,
		Hostname: c.Args[0],
		Nickname: c.Args[1],
		Port:     DefaultPort,
		Enabled:  true,
	}
	if len(c.Args) > 2 && c.Args[2] != "" {
		port, err := strconv.Atoi(c.Args[2])
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%w: port %q", errors.ErrMalformedCommand, c.Args[2])
		}
		cfg.Port = port
	}
	if len(c.Args) > 3 && c.Args[3] != "" {
		tls, err := strconv.ParseBool(c.Args[3])
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%w: tls flag %q", errors.ErrMalformedCommand, c.Args[3])
		}
		cfg.TLS = tls
	}
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, fmt.Errorf("%w: %v", errors.ErrMalformedCommand, err)
	}
	return cfg, nil
}
