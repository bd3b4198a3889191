package event

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"irc-bridge/domain"
	"irc-bridge/errors"
)

type Kind string

const (
	SignedOn    Kind = "signedOn"
	Joined      Kind = "joined"
	Left        Kind = "left"
	UserJoined  Kind = "userJoined"
	UserLeft    Kind = "userLeft"
	UserQuit    Kind = "userQuit"
	UserKicked  Kind = "userKicked"
	UserRenamed Kind = "userRenamed"
	Privmsg     Kind = "privmsg"
	Notice      Kind = "notice"
	Action      Kind = "action"
	Topic       Kind = "topic"
	Names       Kind = "names"
)

// headerFrames is the count of fixed frames before the kind-specific args.
const headerFrames = 6

// Record is one protocol event as published on the event bus.
// Sequence is strictly increasing per user, shared by every network of that user.
type Record struct {
	User     domain.UserID
	Sequence uint64
	Network  domain.NetworkID
	Actor    string
	Kind     Kind
	At       time.Time
	Args     []string
}

// IsMessage reports whether the record carries free text worth archiving.
func (r Record) IsMessage() bool {
	switch r.Kind {
	case Privmsg, Notice, Action, Topic:
		return true
	default:
		return false
	}
}

// Text returns the free text argument of message-like records.
func (r Record) Text() string {
	if !r.IsMessage() || len(r.Args) == 0 {
		return ""
	}
	return r.Args[len(r.Args)-1]
}

// Frames encodes the record as [user, seq, network, actor, kind, timestamp, args...].
func (r Record) Frames() [][]byte {
	frames := make([][]byte, 0, headerFrames+len(r.Args))
	frames = append(frames,
		[]byte(r.User),
		[]byte(strconv.FormatUint(r.Sequence, 10)),
		[]byte(r.Network),
		[]byte(r.Actor),
		[]byte(r.Kind),
		[]byte(FormatTimestamp(r.At)),
	)
	for _, arg := range r.Args {
		frames = append(frames, []byte(arg))
	}
	return frames
}

// ParseRecord is the inverse of Frames, used by consumers of the event bus.
func ParseRecord(frames [][]byte) (Record, error) {
	if len(frames) < headerFrames {
		return Record{}, fmt.Errorf("%w: event needs %d frames, got %d", errors.ErrProtocolViolation, headerFrames, len(frames))
	}
	seq, err := strconv.ParseUint(string(frames[1]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: sequence %q", errors.ErrProtocolViolation, frames[1])
	}
	at, err := ParseTimestamp(string(frames[5]))
	if err != nil {
		return Record{}, err
	}
	r := Record{
		User:     domain.UserID(frames[0]),
		Sequence: seq,
		Network:  domain.NetworkID(frames[2]),
		Actor:    string(frames[3]),
		Kind:     Kind(frames[4]),
		At:       at,
	}
	for _, f := range frames[headerFrames:] {
		r.Args = append(r.Args, string(f))
	}
	return r, nil
}

// FormatTimestamp renders seconds since the epoch with microsecond precision.
func FormatTimestamp(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixMicro())/1e6, 'f', 6, 64)
}

func ParseTimestamp(s string) (time.Time, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", errors.ErrProtocolViolation, s)
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(math.Round(frac*1e6))*int64(time.Microsecond)).UTC(), nil
}
