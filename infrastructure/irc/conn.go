// Package irc adapts gopkg.in/irc.v4 to the session contracts: it dials,
// runs the client read loop and decodes server messages into handler callbacks.
package irc

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/errors"

	"gopkg.in/irc.v4"
)

var (
	_ contract.Dialer = (*Dialer)(nil)
	_ contract.Conn   = (*Conn)(nil)
)

type Options struct {
	Username  string
	Realname  string
	SendLimit time.Duration
	SendBurst int
}

type Dialer struct {
	log     *slog.Logger
	options Options
}

func NewDialer(log *slog.Logger, options Options) *Dialer {
	return &Dialer{log: log, options: options}
}

// Dial opens the TCP or TLS link. Registration happens when the connection is served.
func (d *Dialer) Dial(ctx context.Context, cfg domain.ServerConfig) (contract.Conn, error) {
	var (
		nc  net.Conn
		err error
	)
	if cfg.TLS {
		dialer := &tls.Dialer{Config: &tls.Config{ServerName: cfg.Hostname, MinVersion: tls.VersionTLS12}}
		nc, err = dialer.DialContext(ctx, "tcp", cfg.Address())
	} else {
		var dialer net.Dialer
		nc, err = dialer.DialContext(ctx, "tcp", cfg.Address())
	}
	if err != nil {
		return nil, err
	}
	return NewConn(d.log.With("network", cfg.Network()), nc, cfg.Nickname, d.options), nil
}

const (
	sendQueueSize = 256
	quitTimeout   = time.Second
)

// Conn is one IRC connection driven by an irc.Client.
// Commands are queued and written by a dedicated goroutine, so handler
// callbacks may issue commands without stalling the read loop.
type Conn struct {
	log      *slog.Logger
	rwc      net.Conn
	nick     string
	options  Options
	outbound chan *irc.Message
	stopped  chan struct{}

	mu        sync.Mutex
	client    *irc.Client
	closeOnce sync.Once
	stopOnce  sync.Once
}

func NewConn(log *slog.Logger, rwc net.Conn, nick string, options Options) *Conn {
	return &Conn{
		log:      log,
		rwc:      rwc,
		nick:     nick,
		options:  options,
		outbound: make(chan *irc.Message, sendQueueSize),
		stopped:  make(chan struct{}),
	}
}

// Serve registers with the server and pumps messages into handler until the
// link breaks or ctx ends.
func (c *Conn) Serve(ctx context.Context, handler contract.ProtocolHandler) error {
	user := c.options.Username
	if user == "" {
		user = c.nick
	}
	name := c.options.Realname
	if name == "" {
		name = c.nick
	}
	d := newDispatcher(c.log, handler)
	client := irc.NewClient(c.rwc, irc.ClientConfig{
		Nick:      c.nick,
		User:      user,
		Name:      name,
		SendLimit: c.options.SendLimit,
		SendBurst: c.options.SendBurst,
		Handler:   irc.HandlerFunc(d.handle),
	})
	c.mu.Lock()
	c.client = client
	c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		c.stopOnce.Do(func() { close(c.stopped) })
	}()
	go c.pump(runCtx, client)

	if err := client.RunContext(runCtx); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrConnection, err)
	}
	return nil
}

// pump writes queued commands in order, at the pace set by the client's send limit.
func (c *Conn) pump(ctx context.Context, client *irc.Client) {
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-c.outbound:
			if err := client.WriteMessage(m); err != nil {
				c.log.Warn("Write failed", "command", m.Command, "error", err)
			}
		}
	}
}

func (c *Conn) Join(channel, key string) error {
	if key != "" {
		return c.write("JOIN", channel, key)
	}
	return c.write("JOIN", channel)
}

func (c *Conn) Part(channel string) error {
	return c.write("PART", channel)
}

func (c *Conn) Privmsg(target, text string) error {
	return c.write("PRIVMSG", target, text)
}

// Action sends a CTCP ACTION.
func (c *Conn) Action(target, text string) error {
	return c.write("PRIVMSG", target, ctcpDelim+"ACTION "+text+ctcpDelim)
}

func (c *Conn) Names(channel string) error {
	return c.write("NAMES", channel)
}

func (c *Conn) Topic(channel string) error {
	return c.write("TOPIC", channel)
}

func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		client := c.client
		c.mu.Unlock()
		if client != nil {
			_ = c.rwc.SetWriteDeadline(time.Now().Add(quitTimeout))
			_ = client.Write("QUIT :bridge closing")
		}
		err = c.rwc.Close()
	})
	return err
}

func (c *Conn) write(command string, params ...string) error {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()
	if client == nil {
		return errors.ErrSessionOffline
	}
	for _, p := range params {
		if strings.ContainsAny(p, "\r\n\x00") {
			return fmt.Errorf("%w: line break in %s parameter", errors.ErrProtocolViolation, command)
		}
	}
	select {
	case <-c.stopped:
		return errors.ErrSessionDisconnected
	default:
	}
	select {
	case c.outbound <- &irc.Message{Command: command, Params: params}:
		return nil
	default:
		return fmt.Errorf("%w: send queue full, %s dropped", errors.ErrTransport, command)
	}
}
