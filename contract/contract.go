//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"irc-bridge/domain"
	"irc-bridge/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision, so workers don't have to name themselves.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives every published record, in publication order.
type EventSink interface {
	Consume(ctx context.Context, r event.Record) error
}

// NamesResult is the pending answer of a roster request.
type NamesResult interface {
	Channel() string
	Done() <-chan struct{}
	Wait(ctx context.Context) ([]string, error)
}

// Session is the live connection of one user to one network.
type Session interface {
	Worker
	User() domain.UserID
	Network() domain.NetworkID
	Nickname() string
	State() domain.SessionState
	Channels() []string
	Join(channel, key string) error
	Part(channel string) error
	SendMessage(target, text string) error
	SendAction(target, text string) error
	RequestNames(channel string) NamesResult
	Close() error
}

type IRegistry interface {
	Register(session Session)
	Lookup(user domain.UserID, network domain.NetworkID) ([]Session, error)
	Get(user domain.UserID, network domain.NetworkID) (Session, bool)
	Remove(user domain.UserID, network domain.NetworkID) (Session, bool)
	Sessions() []Session
}

// Connector opens a session for a server row and registers it.
type Connector interface {
	Connect(ctx context.Context, cfg domain.ServerConfig) error
}

type IPublisher interface {
	Publish(user domain.UserID, network domain.NetworkID, actor string, kind event.Kind, args ...string) event.Record
}

// SequenceStore keeps the last published sequence of each user.
type SequenceStore interface {
	LastSequence(user domain.UserID) (uint64, error)
	SaveSequence(user domain.UserID, seq uint64) error
}

// MessageArchive indexes message text for later search.
type MessageArchive interface {
	StoreBatch(records []event.Record) error
}

type ServerSource interface {
	ListServers() ([]domain.ServerConfig, error)
}

type ChannelSource interface {
	ChannelsFor(user domain.UserID, network domain.NetworkID) ([]domain.ChannelConfig, error)
}

type StateListener interface {
	SessionStateChanged(user domain.UserID, network domain.NetworkID, state domain.SessionState)
}

// ProtocolHandler receives decoded chat protocol events of one connection.
// Callbacks are invoked sequentially from the connection read loop.
type ProtocolHandler interface {
	OnSignedOn(nick string)
	OnJoined(channel string)
	OnLeft(channel string)
	OnUserJoined(user, channel string)
	OnUserLeft(user, channel string)
	OnUserQuit(user, message string)
	OnUserKicked(kickee, channel, kicker, message string)
	OnUserRenamed(oldNick, newNick string)
	OnPrivmsg(user, target, message string)
	OnNotice(user, target, message string)
	OnAction(user, target, message string)
	OnTopic(channel, topic string)
	OnNamesReply(channel string, nicks []string)
	OnEndOfNames(channel string)
}

// Conn is one established chat protocol connection.
type Conn interface {
	// Serve blocks until the connection is lost or ctx is done.
	Serve(ctx context.Context, handler ProtocolHandler) error
	Join(channel, key string) error
	Part(channel string) error
	Privmsg(target, text string) error
	Action(target, text string) error
	Names(channel string) error
	Topic(channel string) error
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context, cfg domain.ServerConfig) (Conn, error)
}

// CommandSource yields raw control messages, one multipart message per call.
type CommandSource interface {
	Receive(ctx context.Context) ([][]byte, error)
	Close() error
}

// TextFilter masks unwanted words in outgoing lines and reports what it found.
type TextFilter interface {
	Censor(text string) (string, []string)
}

type CommandHandler interface {
	HandleMessage(ctx context.Context, frames [][]byte) error
}
