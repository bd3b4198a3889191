package irc

import (
	"fmt"
	"log/slog"
	"strings"

	"irc-bridge/contract"
	"irc-bridge/errors"

	"gopkg.in/irc.v4"
)

const ctcpDelim = "\x01"

const (
	rplWelcome    = "001"
	rplTopic      = "332"
	rplNamReply   = "353"
	rplEndOfNames = "366"
)

// dispatcher decodes server messages into ProtocolHandler callbacks.
type dispatcher struct {
	log     *slog.Logger
	handler contract.ProtocolHandler
}

func newDispatcher(log *slog.Logger, handler contract.ProtocolHandler) *dispatcher {
	return &dispatcher{log: log, handler: handler}
}

func (d *dispatcher) handle(c *irc.Client, m *irc.Message) {
	if err := d.dispatch(c.CurrentNick(), m); err != nil {
		d.log.Debug("Ignoring message", "command", m.Command, "error", err)
	}
}

// dispatch maps one message, me being our current nickname.
func (d *dispatcher) dispatch(me string, m *irc.Message) error {
	sender := ""
	if m.Prefix != nil {
		sender = m.Prefix.Name
	}
	self := sender != "" && strings.EqualFold(sender, me)

	switch m.Command {
	case rplWelcome:
		if len(m.Params) > 0 && m.Params[0] != "" {
			me = m.Params[0]
		}
		d.handler.OnSignedOn(me)
	case "JOIN":
		if err := need(m, 1); err != nil {
			return err
		}
		if self {
			d.handler.OnJoined(m.Params[0])
		} else {
			d.handler.OnUserJoined(sender, m.Params[0])
		}
	case "PART":
		if err := need(m, 1); err != nil {
			return err
		}
		if self {
			d.handler.OnLeft(m.Params[0])
		} else {
			d.handler.OnUserLeft(sender, m.Params[0])
		}
	case "QUIT":
		d.handler.OnUserQuit(sender, trailing(m, 0))
	case "KICK":
		if err := need(m, 2); err != nil {
			return err
		}
		d.handler.OnUserKicked(m.Params[1], m.Params[0], sender, trailing(m, 2))
	case "NICK":
		if err := need(m, 1); err != nil {
			return err
		}
		d.handler.OnUserRenamed(sender, m.Params[0])
	case "PRIVMSG":
		if err := need(m, 2); err != nil {
			return err
		}
		d.privmsg(fullPrefix(m), m.Params[0], m.Params[1])
	case "NOTICE":
		if err := need(m, 2); err != nil {
			return err
		}
		d.handler.OnNotice(fullPrefix(m), m.Params[0], m.Params[1])
	case "TOPIC":
		if err := need(m, 1); err != nil {
			return err
		}
		d.handler.OnTopic(m.Params[0], trailing(m, 1))
	case rplTopic:
		if err := need(m, 3); err != nil {
			return err
		}
		d.handler.OnTopic(m.Params[1], m.Params[2])
	case rplNamReply:
		if err := need(m, 4); err != nil {
			return err
		}
		d.handler.OnNamesReply(m.Params[2], strings.Fields(m.Params[3]))
	case rplEndOfNames:
		if err := need(m, 2); err != nil {
			return err
		}
		d.handler.OnEndOfNames(m.Params[1])
	}
	return nil
}

// privmsg splits CTCP ACTION from plain text. Other CTCP queries are dropped.
func (d *dispatcher) privmsg(user, target, text string) {
	if !strings.HasPrefix(text, ctcpDelim) {
		d.handler.OnPrivmsg(user, target, text)
		return
	}
	body := strings.TrimSuffix(strings.TrimPrefix(text, ctcpDelim), ctcpDelim)
	if verb, rest, _ := strings.Cut(body, " "); verb == "ACTION" {
		d.handler.OnAction(user, target, rest)
		return
	}
	d.log.Debug("Ignoring CTCP query", "from", user, "query", body)
}

func need(m *irc.Message, n int) error {
	if len(m.Params) < n {
		return fmt.Errorf("%w: %s needs %d params, got %d", errors.ErrProtocolViolation, m.Command, n, len(m.Params))
	}
	return nil
}

func trailing(m *irc.Message, i int) string {
	if len(m.Params) > i {
		return m.Params[len(m.Params)-1]
	}
	return ""
}

func fullPrefix(m *irc.Message) string {
	if m.Prefix == nil {
		return ""
	}
	return m.Prefix.String()
}
