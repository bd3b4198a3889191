// Package bus carries event records and control commands over ZeroMQ:
// a PUSH socket for events, a PULL socket for commands. Messages are multipart,
// one frame per field.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"irc-bridge/contract"
	"irc-bridge/domain/event"
	"irc-bridge/errors"

	"github.com/go-zeromq/zmq4"
)

var (
	_ contract.EventSink     = (*PushSink)(nil)
	_ contract.CommandSource = (*PullSource)(nil)
)

const dialRetry = 250 * time.Millisecond

func socketOptions(log *slog.Logger, extra ...zmq4.Option) []zmq4.Option {
	return append([]zmq4.Option{
		zmq4.WithLogger(slog.NewLogLogger(log.Handler(), slog.LevelDebug)),
		zmq4.WithDialerRetry(dialRetry),
	}, extra...)
}

// PushSink publishes records on the event bus.
// At most one send is in flight: a send stuck on a missing peer makes the
// following records fail fast instead of piling up.
// A failed send replaces the socket with a fresh one dialing again, so a
// restarted consumer is reached without restarting the bridge. Records
// published while no consumer is connected are lost.
type PushSink struct {
	ctx       context.Context
	log       *slog.Logger
	addr      string
	slot      chan struct{}
	connected chan struct{}
	once      sync.Once

	mu     sync.Mutex
	socket zmq4.Socket
	ready  bool
	closed bool
}

// NewPushSink dials addr in the background and returns at once: the consumer
// may come up after the bridge. The socket lives as long as ctx.
func NewPushSink(ctx context.Context, log *slog.Logger, addr string) (*PushSink, error) {
	if _, _, ok := strings.Cut(addr, "://"); !ok {
		return nil, fmt.Errorf("%w: event bus address %q", errors.ErrTransport, addr)
	}
	p := &PushSink{
		ctx:       ctx,
		log:       log,
		addr:      addr,
		slot:      make(chan struct{}, 1),
		connected: make(chan struct{}),
	}
	p.mu.Lock()
	p.redial()
	p.mu.Unlock()
	return p, nil
}

// redial must be called with mu held.
func (p *PushSink) redial() {
	previous := p.socket
	socket := zmq4.NewPush(p.ctx, socketOptions(p.log, zmq4.WithDialerMaxRetries(-1))...)
	p.socket, p.ready = socket, false
	go p.dial(socket, previous)
}

func (p *PushSink) dial(socket, previous zmq4.Socket) {
	if previous != nil {
		_ = previous.Close()
	}
	if err := socket.Dial(p.addr); err != nil {
		if p.ctx.Err() == nil {
			p.log.Error("Event bus unreachable", "address", p.addr, "error", err)
		}
		return
	}

	p.mu.Lock()
	current := p.socket == socket && !p.closed
	if current {
		p.ready = true
	}
	p.mu.Unlock()
	if !current {
		_ = socket.Close()
		return
	}
	p.log.Info("Event bus connected", "address", p.addr)
	p.once.Do(func() { close(p.connected) })
}

// Connected is closed once a consumer has been reached for the first time.
func (p *PushSink) Connected() <-chan struct{} {
	return p.connected
}

func (p *PushSink) Consume(ctx context.Context, r event.Record) error {
	select {
	case p.slot <- struct{}{}:
	default:
		return fmt.Errorf("%w: previous send still blocked", errors.ErrTransport)
	}

	p.mu.Lock()
	socket, ready := p.socket, p.ready
	p.mu.Unlock()
	if !ready {
		<-p.slot
		return fmt.Errorf("%w: event bus not connected", errors.ErrTransport)
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-p.slot }()
		err := socket.SendMulti(zmq4.NewMsgFrom(r.Frames()...))
		if err != nil {
			p.broken(socket, err)
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", errors.ErrTransport, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: send: %v", errors.ErrTransport, ctx.Err())
	}
}

func (p *PushSink) broken(socket zmq4.Socket, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.socket != socket {
		return
	}
	p.log.Warn("Event bus connection lost, dialing again", "address", p.addr, "error", err)
	p.redial()
}

func (p *PushSink) Close() error {
	p.mu.Lock()
	p.closed = true
	socket := p.socket
	p.mu.Unlock()
	return socket.Close()
}

// PullSource receives control messages from the command bus.
// One goroutine reads the socket so that Receive can give up on its own ctx
// without losing the message being read.
type PullSource struct {
	log    *slog.Logger
	socket zmq4.Socket
	msgs   chan [][]byte
	closed chan struct{}
	start  sync.Once
	stop   sync.Once
	err    error
}

// NewPullSource binds addr. Receive unblocks when ctx ends or the source is closed.
func NewPullSource(ctx context.Context, log *slog.Logger, addr string) (*PullSource, error) {
	socket := zmq4.NewPull(ctx, socketOptions(log)...)
	if err := socket.Listen(addr); err != nil {
		_ = socket.Close()
		return nil, fmt.Errorf("%w: bind command bus %s: %v", errors.ErrTransport, addr, err)
	}
	log.Info("Command bus bound", "address", addr)
	return &PullSource{
		log:    log,
		socket: socket,
		msgs:   make(chan [][]byte),
		closed: make(chan struct{}),
	}, nil
}

// Receive returns the next message, or ctx's error as soon as ctx is done.
func (p *PullSource) Receive(ctx context.Context) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.start.Do(func() { go p.read() })

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case frames, ok := <-p.msgs:
		if !ok {
			return nil, fmt.Errorf("%w: receive: %v", errors.ErrTransport, p.err)
		}
		return frames, nil
	}
}

func (p *PullSource) read() {
	defer close(p.msgs)
	for {
		msg, err := p.socket.Recv()
		if err != nil {
			p.err = err
			return
		}
		select {
		case p.msgs <- msg.Frames:
		case <-p.closed:
			p.err = net.ErrClosed
			return
		}
	}
}

func (p *PullSource) Close() error {
	p.stop.Do(func() { close(p.closed) })
	return p.socket.Close()
}

// EventConsumer is the far end of the event bus: it binds and yields records.
type EventConsumer struct {
	source *PullSource
}

func NewEventConsumer(ctx context.Context, log *slog.Logger, addr string) (*EventConsumer, error) {
	source, err := NewPullSource(ctx, log, addr)
	if err != nil {
		return nil, err
	}
	return &EventConsumer{source: source}, nil
}

func (p *EventConsumer) Next(ctx context.Context) (event.Record, error) {
	frames, err := p.source.Receive(ctx)
	if err != nil {
		return event.Record{}, err
	}
	return event.ParseRecord(frames)
}

func (p *EventConsumer) Close() error {
	return p.source.Close()
}

// CommandProducer is the far end of the command bus.
type CommandProducer struct {
	socket zmq4.Socket
}

func NewCommandProducer(ctx context.Context, log *slog.Logger, addr string) (*CommandProducer, error) {
	socket := zmq4.NewPush(ctx, socketOptions(log)...)
	if err := socket.Dial(addr); err != nil {
		_ = socket.Close()
		return nil, fmt.Errorf("%w: dial command bus %s: %v", errors.ErrTransport, addr, err)
	}
	return &CommandProducer{socket: socket}, nil
}

func (p *CommandProducer) Send(frames ...string) error {
	parts := make([][]byte, 0, len(frames))
	for _, f := range frames {
		parts = append(parts, []byte(f))
	}
	if err := p.socket.SendMulti(zmq4.NewMsgFrom(parts...)); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	return nil
}

func (p *CommandProducer) Close() error {
	return p.socket.Close()
}
