package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/errors"
)

var _ contract.CommandHandler = (*Controller)(nil)

// Controller turns control messages into session operations.
type Controller struct {
	log       *slog.Logger
	registry  contract.IRegistry
	connector contract.Connector
	filter    contract.TextFilter
	wg        sync.WaitGroup
}

func NewController(log *slog.Logger, registry contract.IRegistry, connector contract.Connector) *Controller {
	return &Controller{log: log, registry: registry, connector: connector}
}

// WithFilter masks the text of msg and action commands before sending.
func (c *Controller) WithFilter(filter contract.TextFilter) *Controller {
	c.filter = filter
	return c
}

// HandleMessage parses then dispatches one control message.
func (c *Controller) HandleMessage(ctx context.Context, frames [][]byte) error {
	cmd, err := domain.ParseCommand(frames)
	if err != nil {
		return err
	}
	return c.Dispatch(ctx, cmd)
}

// Dispatch routes a command to the sessions it addresses. A global command
// is applied to every session of the user and the failures are joined.
func (c *Controller) Dispatch(ctx context.Context, cmd domain.Command) error {
	if cmd.Kind == domain.ConnectCommand {
		return c.connect(ctx, cmd)
	}

	sessions, err := c.registry.Lookup(cmd.User, cmd.Network)
	if err != nil {
		return err
	}

	var errs []error
	for _, session := range sessions {
		if err := c.apply(ctx, session, cmd); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", session.Network(), err))
		}
	}
	return errors.Join(errs...)
}

// connect runs in the background: dialing must not hold the command stream.
func (c *Controller) connect(ctx context.Context, cmd domain.Command) error {
	cfg, err := cmd.ServerConfig()
	if err != nil {
		return err
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.connector.Connect(ctx, cfg); err != nil {
			c.log.Warn("Connect command failed", "user", cfg.User, "address", cfg.Address(), "error", err)
		}
	}()
	return nil
}

func (c *Controller) apply(ctx context.Context, session contract.Session, cmd domain.Command) error {
	switch cmd.Kind {
	case domain.JoinCommand:
		key := ""
		if len(cmd.Args) > 1 {
			key = cmd.Args[1]
		}
		return session.Join(cmd.Args[0], key)
	case domain.PartCommand:
		return session.Part(cmd.Args[0])
	case domain.MsgCommand:
		return session.SendMessage(cmd.Args[0], c.censor(cmd, cmd.Args[1]))
	case domain.ActionCommand:
		return session.SendAction(cmd.Args[0], c.censor(cmd, cmd.Args[1]))
	case domain.NamesCommand:
		return c.names(ctx, session, cmd.Args[0])
	case domain.DisconnectCommand:
		c.registry.Remove(session.User(), session.Network())
		return session.Close()
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownCommand, cmd.Kind)
	}
}

func (c *Controller) censor(cmd domain.Command, text string) string {
	if c.filter == nil {
		return text
	}
	masked, words := c.filter.Censor(text)
	if len(words) > 0 {
		c.log.Info("Outgoing text masked", "user", cmd.User, "target", cmd.Args[0], "words", len(words))
	}
	return masked
}

// names only reports immediate failures. The roster itself travels as a names event.
func (c *Controller) names(ctx context.Context, session contract.Session, channel string) error {
	result := session.RequestNames(channel)
	select {
	case <-result.Done():
		_, err := result.Wait(ctx)
		return err
	default:
		return nil
	}
}

// Wait blocks until background connects are over.
func (c *Controller) Wait() {
	c.wg.Wait()
}
