package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/domain/event"
	"irc-bridge/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MaxLineBudget is the byte budget shared by a message target and its text.
const MaxLineBudget = 500

var (
	_ contract.Session         = (*Session)(nil)
	_ contract.ProtocolHandler = (*Session)(nil)
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

type SessionOptions struct {
	Backoff     Backoff
	DialTimeout time.Duration
}

// wish is a channel the session should sit in, kept across reconnections.
type wish struct {
	name string
	key  string
}

// Session is one user's connection to one network.
//
// It outlives its connections: when the link drops it goes to Reconnecting and
// dials again on a capped exponential schedule, then rejoins its channels once
// signed on. Only Close ends it.
type Session struct {
	log       *slog.Logger
	cfg       domain.ServerConfig
	dialer    contract.Dialer
	publisher contract.IPublisher
	channels  contract.ChannelSource
	listener  contract.StateListener
	options   SessionOptions
	closed    chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	conn     contract.Conn
	nickname string
	state    domain.SessionState
	joined   map[string]string
	wanted   map[string]wish
	names    map[string]*NamesRequest
}

// NewSession builds a disconnected session. channels and listener may be nil.
func NewSession(
	log *slog.Logger,
	cfg domain.ServerConfig,
	dialer contract.Dialer,
	publisher contract.IPublisher,
	channels contract.ChannelSource,
	listener contract.StateListener,
	options SessionOptions,
) *Session {
	return &Session{
		log:       log.With("user", cfg.User, "network", cfg.Network()),
		cfg:       cfg,
		dialer:    dialer,
		publisher: publisher,
		channels:  channels,
		listener:  listener,
		options:   options,
		closed:    make(chan struct{}),
		nickname:  cfg.Nickname,
		state:     domain.Disconnected,
		joined:    make(map[string]string),
		wanted:    make(map[string]wish),
		names:     make(map[string]*NamesRequest),
	}
}

func (s *Session) User() domain.UserID { return s.cfg.User }

func (s *Session) Network() domain.NetworkID { return s.cfg.Network() }

func (s *Session) Nickname() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nickname
}

func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Channels lists the channels currently joined, sorted.
func (s *Session) Channels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := lo.Values(s.joined)
	sort.Strings(names)
	return names
}

// Dial opens the first connection. The session is not served until Run.
func (s *Session) Dial(ctx context.Context) error {
	s.setState(domain.Connecting)
	conn, err := s.dial(ctx)
	if err != nil {
		s.setState(domain.Disconnected)
		return err
	}
	s.mu.Lock()
	if s.state == domain.Closed {
		s.mu.Unlock()
		_ = conn.Close()
		return errors.ErrSessionClosed
	}
	s.conn = conn
	s.mu.Unlock()
	return nil
}

func (s *Session) dial(ctx context.Context) (contract.Conn, error) {
	if s.options.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.DialTimeout)
		defer cancel()
	}
	conn, err := s.dialer.Dial(ctx, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrConnection, s.cfg.Address(), err)
	}
	return conn, nil
}

// Run serves the connection until the session is closed, ctx ends, or
// reconnection gives up.
func (s *Session) Run(ctx context.Context) error {
	for {
		conn := s.currentConn()
		if conn == nil {
			var ok bool
			if conn, ok = s.reconnect(ctx); !ok {
				if ctx.Err() != nil {
					_ = s.Close()
				}
				return nil
			}
		}

		connID := uuid.NewString()
		s.log.Info("Serving connection", "conn_id", connID, "address", s.cfg.Address())
		err := conn.Serve(ctx, s)
		_ = conn.Close()

		if s.isClosed() {
			s.log.Info("Session closed", "conn_id", connID)
			return nil
		}
		if ctx.Err() != nil {
			_ = s.Close()
			return nil
		}
		s.connectionLost(conn, err)
	}
}

func (s *Session) reconnect(ctx context.Context) (contract.Conn, bool) {
	for attempt := 1; ; attempt++ {
		if s.isClosed() || ctx.Err() != nil {
			return nil, false
		}
		if s.options.Backoff.Exhausted(attempt) {
			s.log.Error("Giving up reconnection", "attempts", attempt-1)
			s.setState(domain.Disconnected)
			return nil, false
		}
		delay := s.options.Backoff.Delay(attempt)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, false
		case <-s.closed:
			timer.Stop()
			return nil, false
		case <-timer.C:
		}

		conn, err := s.dial(ctx)
		if err != nil {
			s.log.Warn("Reconnection attempt failed", "attempt", attempt, "error", err)
			continue
		}
		s.mu.Lock()
		if s.state == domain.Closed {
			s.mu.Unlock()
			_ = conn.Close()
			return nil, false
		}
		s.conn = conn
		s.mu.Unlock()
		s.log.Info("Reconnected", "attempt", attempt)
		return conn, true
	}
}

// connectionLost drops per-connection state. Wanted channels survive for the rejoin.
func (s *Session) connectionLost(conn contract.Conn, cause error) {
	s.mu.Lock()
	if s.conn != conn || s.state == domain.Closed {
		s.mu.Unlock()
		return
	}
	s.conn = nil
	s.state = domain.Reconnecting
	s.joined = make(map[string]string)
	pending := s.names
	s.names = make(map[string]*NamesRequest)
	s.mu.Unlock()

	for _, r := range pending {
		r.finish(errors.ErrSessionDisconnected)
	}
	s.log.Warn("Connection lost", "error", cause, "pending_names", len(pending))
	s.notify(domain.Reconnecting)
}

// Close is terminal: the connection is released and no reconnection happens.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.mu.Lock()
		conn := s.conn
		s.conn = nil
		s.state = domain.Closed
		pending := s.names
		s.names = make(map[string]*NamesRequest)
		s.joined = make(map[string]string)
		s.mu.Unlock()

		close(s.closed)
		for _, r := range pending {
			r.finish(errors.ErrSessionClosed)
		}
		if conn != nil {
			err = conn.Close()
		}
		s.notify(domain.Closed)
	})
	return err
}

func (s *Session) Join(channel, key string) error {
	s.mu.Lock()
	if s.state == domain.Closed {
		s.mu.Unlock()
		return errors.ErrSessionClosed
	}
	s.wanted[domain.NormalizeChannel(channel)] = wish{name: channel, key: key}
	if s.state != domain.Online {
		s.mu.Unlock()
		s.log.Debug("Join deferred until sign-on", "channel", channel)
		return nil
	}
	conn := s.conn
	s.mu.Unlock()

	if err := conn.Join(channel, key); err != nil {
		return fmt.Errorf("%w: join %s: %v", errors.ErrTransport, channel, err)
	}
	return nil
}

func (s *Session) Part(channel string) error {
	s.mu.Lock()
	delete(s.wanted, domain.NormalizeChannel(channel))
	conn, err := s.onlineConn()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := conn.Part(channel); err != nil {
		return fmt.Errorf("%w: part %s: %v", errors.ErrTransport, channel, err)
	}
	return nil
}

func (s *Session) SendMessage(target, text string) error {
	return s.say(event.Privmsg, target, text)
}

func (s *Session) SendAction(target, text string) error {
	return s.say(event.Action, target, text)
}

// say sends text truncated to the line budget and echoes what was sent.
func (s *Session) say(kind event.Kind, target, text string) error {
	budget := MaxLineBudget - len(target)
	if target == "" || budget <= 0 {
		return fmt.Errorf("%w: invalid target %q", errors.ErrMalformedCommand, target)
	}
	s.mu.Lock()
	conn, err := s.onlineConn()
	nick := s.nickname
	s.mu.Unlock()
	if err != nil {
		return err
	}

	body := Truncate(lineBreaks.Replace(text), budget)
	if kind == event.Action {
		err = conn.Action(target, body)
	} else {
		err = conn.Privmsg(target, body)
	}
	if err != nil {
		return fmt.Errorf("%w: %s to %s: %v", errors.ErrTransport, kind, target, err)
	}
	s.publisher.Publish(s.cfg.User, s.Network(), nick, kind, nick, target, body)
	return nil
}

// RequestNames asks for the roster of a channel. Requests for the same channel
// made before the answer arrives share it.
func (s *Session) RequestNames(channel string) contract.NamesResult {
	key := domain.NormalizeChannel(channel)

	s.mu.Lock()
	conn, err := s.onlineConn()
	if err != nil {
		s.mu.Unlock()
		return failedNamesRequest(channel, err)
	}
	if pending, ok := s.names[key]; ok {
		s.mu.Unlock()
		return pending
	}
	r := newNamesRequest(channel)
	s.names[key] = r
	s.mu.Unlock()

	if err := conn.Names(channel); err != nil {
		s.mu.Lock()
		if s.names[key] == r {
			delete(s.names, key)
		}
		s.mu.Unlock()
		r.finish(fmt.Errorf("%w: names %s: %v", errors.ErrTransport, channel, err))
	}
	return r
}

func (s *Session) OnSignedOn(nick string) {
	s.mu.Lock()
	if s.state == domain.Closed {
		s.mu.Unlock()
		return
	}
	s.nickname = nick
	s.state = domain.Online
	s.joined = make(map[string]string)
	conn := s.conn
	s.mu.Unlock()

	s.log.Info("Signed on", "nick", nick)
	s.notify(domain.Online)
	s.publish(event.SignedOn, nick)
	s.autojoin(conn)
}

// autojoin joins the configured channels plus the ones held before a reconnection.
func (s *Session) autojoin(conn contract.Conn) {
	var configured []domain.ChannelConfig
	if s.channels != nil {
		var err error
		if configured, err = s.channels.ChannelsFor(s.cfg.User, s.Network()); err != nil {
			s.log.Warn("Unable to load autojoin channels", "error", err)
		}
	}

	s.mu.Lock()
	for _, c := range configured {
		key := domain.NormalizeChannel(c.Name)
		if _, ok := s.wanted[key]; !ok {
			s.wanted[key] = wish{name: c.Name, key: c.Key}
		}
	}
	wishes := lo.Values(s.wanted)
	s.mu.Unlock()

	sort.Slice(wishes, func(i, j int) bool { return wishes[i].name < wishes[j].name })
	for _, w := range wishes {
		if err := conn.Join(w.name, w.key); err != nil {
			s.log.Warn("Autojoin failed", "channel", w.name, "error", err)
		}
	}
}

func (s *Session) OnJoined(channel string) {
	key := domain.NormalizeChannel(channel)
	s.mu.Lock()
	s.joined[key] = channel
	if _, ok := s.wanted[key]; !ok {
		s.wanted[key] = wish{name: channel}
	}
	conn := s.conn
	s.mu.Unlock()

	s.publish(event.Joined, channel)
	s.RequestNames(channel)
	if conn != nil {
		if err := conn.Topic(channel); err != nil {
			s.log.Warn("Topic request failed", "channel", channel, "error", err)
		}
	}
}

func (s *Session) OnLeft(channel string) {
	s.forget(channel)
	s.publish(event.Left, channel)
}

func (s *Session) forget(channel string) {
	key := domain.NormalizeChannel(channel)
	s.mu.Lock()
	delete(s.joined, key)
	delete(s.wanted, key)
	s.mu.Unlock()
}

func (s *Session) OnUserJoined(user, channel string) {
	s.publish(event.UserJoined, user, channel)
}

func (s *Session) OnUserLeft(user, channel string) {
	s.publish(event.UserLeft, user, channel)
}

func (s *Session) OnUserQuit(user, message string) {
	s.publish(event.UserQuit, user, message)
}

// OnUserKicked drops the channel when the kicked user is us. No automatic rejoin.
func (s *Session) OnUserKicked(kickee, channel, kicker, message string) {
	if strings.EqualFold(kickee, s.Nickname()) {
		s.forget(channel)
	}
	s.publish(event.UserKicked, kickee, channel, kicker, message)
}

func (s *Session) OnUserRenamed(oldNick, newNick string) {
	s.mu.Lock()
	if strings.EqualFold(oldNick, s.nickname) {
		s.nickname = newNick
	}
	s.mu.Unlock()
	s.publish(event.UserRenamed, oldNick, newNick)
}

func (s *Session) OnPrivmsg(user, target, message string) {
	s.publish(event.Privmsg, user, target, message)
}

func (s *Session) OnNotice(user, target, message string) {
	s.publish(event.Notice, user, target, message)
}

func (s *Session) OnAction(user, target, message string) {
	s.publish(event.Action, user, target, message)
}

func (s *Session) OnTopic(channel, topic string) {
	s.publish(event.Topic, channel, topic)
}

// OnNamesReply accumulates a roster chunk. Chunks nobody asked for are ignored.
func (s *Session) OnNamesReply(channel string, nicks []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.names[domain.NormalizeChannel(channel)]; ok {
		r.add(nicks)
	}
}

func (s *Session) OnEndOfNames(channel string) {
	key := domain.NormalizeChannel(channel)
	s.mu.Lock()
	r, ok := s.names[key]
	delete(s.names, key)
	s.mu.Unlock()
	if !ok {
		return
	}
	if r.finish(nil) {
		s.publish(event.Names, append([]string{channel}, r.nicks...)...)
	}
}

// onlineConn must be called with s.mu held.
func (s *Session) onlineConn() (contract.Conn, error) {
	switch {
	case s.state == domain.Closed:
		return nil, errors.ErrSessionClosed
	case s.state != domain.Online || s.conn == nil:
		return nil, fmt.Errorf("%w: %s", errors.ErrSessionOffline, s.state)
	default:
		return s.conn, nil
	}
}

func (s *Session) currentConn() contract.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Session) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *Session) setState(state domain.SessionState) {
	s.mu.Lock()
	if s.state == domain.Closed || s.state == state {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.mu.Unlock()
	s.notify(state)
}

func (s *Session) notify(state domain.SessionState) {
	if s.listener != nil {
		s.listener.SessionStateChanged(s.cfg.User, s.Network(), state)
	}
}

func (s *Session) publish(kind event.Kind, args ...string) {
	s.publisher.Publish(s.cfg.User, s.Network(), s.Nickname(), kind, args...)
}

// Truncate cuts text to at most limit bytes without splitting a UTF-8 sequence.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}
