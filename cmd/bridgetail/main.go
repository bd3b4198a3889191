// Command bridgetail binds the event bus and prints every record, flagging
// sequence gaps and replays. It stands in for a real consumer while debugging.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"irc-bridge/domain/event"
	"irc-bridge/errors"
	"irc-bridge/infrastructure/bus"
	"irc-bridge/projection"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	EventBusAddr string `envconfig:"EVENT_BUS_ADDR" default:"tcp://127.0.0.1:9913"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"WARN"`
	// TAIL_COLOURS toggles colorized output
	Colours bool `envconfig:"TAIL_COLOURS" default:"true"`
	Keep    int  `envconfig:"TAIL_KEEP" default:"100"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bridgetail: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := bus.NewEventConsumer(ctx, log, config.EventBusAddr)
	if err != nil {
		return err
	}
	defer consumer.Close()

	tracker := projection.NewTracker(config.Keep)
	printer := newPrinter(os.Stdout, config.Colours)
	for {
		r, err := consumer.Next(ctx)
		switch {
		case ctx.Err() != nil:
			stats := tracker.Stats()
			fmt.Fprintf(os.Stdout, "%d records, %d gaps (%d missing), %d duplicates\n",
				stats.Records, stats.Gaps, stats.Missing, stats.Duplicates)
			return nil
		case errors.Is(err, errors.ErrProtocolViolation):
			log.Warn("Unreadable event", "error", err)
			continue
		case err != nil:
			return err
		}
		printer.print(r, tracker.Observe(r))
	}
}

type printer struct {
	out     io.Writer
	colours bool
}

func newPrinter(out io.Writer, colours bool) printer {
	return printer{out: out, colours: colours}
}

func (p printer) paint(style color.Style, s string) string {
	if !p.colours {
		return s
	}
	return style.Render(s)
}

func (p printer) print(r event.Record, obs projection.Observation) {
	switch obs.Verdict {
	case projection.Gap:
		fmt.Fprintln(p.out, p.paint(color.New(color.FgRed, color.OpBold),
			fmt.Sprintf("!! %s: %d records missing before #%d", r.User, obs.Missing, r.Sequence)))
	case projection.Duplicate:
		fmt.Fprintln(p.out, p.paint(color.New(color.FgYellow),
			fmt.Sprintf("!! %s: #%d already seen", r.User, r.Sequence)))
	}
	kindStyle := color.New(color.FgCyan)
	if r.IsMessage() {
		kindStyle = color.New(color.FgGreen)
	}
	fmt.Fprintf(p.out, "%s %s #%d %s %s %s %s\n",
		p.paint(color.New(color.FgGray), r.At.Format("15:04:05.000")),
		r.User,
		r.Sequence,
		r.Network,
		p.paint(kindStyle, string(r.Kind)),
		r.Actor,
		strings.Join(r.Args, " | "),
	)
}
