// Command bridgectl administers a bridge: it sends control commands on the
// command bus and edits or inspects the stored configuration.
//
// Storage subcommands open the database directly, so add-server and
// add-channel need the bridge stopped. list and search only read.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"irc-bridge/domain"
	"irc-bridge/infrastructure/bus"
	"irc-bridge/infrastructure/storage"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

type Config struct {
	CommandBusAddr string `envconfig:"COMMAND_BUS_ADDR" default:"tcp://127.0.0.1:9912"`
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" default:"./data/bluge"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"WARN"`
}

const usage = `usage: bridgectl <command> [arguments]

  send <user> <network|global> <kind> [args...]
  add-server -user U -host H [-port P] [-tls] [-nick N] [-disabled]
  add-channel -user U -network N -channel C [-key K]
  list
  search [-user U] [-network N] [-lang L] [-limit N] [words...]
`

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bridgectl: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, out io.Writer) (int, error) {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return exitUsage, nil
	}
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitUsage, err
	}

	var err error
	switch args[0] {
	case "send":
		err = send(config, args[1:])
	case "add-server":
		err = addServer(config, args[1:], out)
	case "add-channel":
		err = addChannel(config, args[1:], out)
	case "list":
		err = list(config, out)
	case "search":
		err = search(config, args[1:], out)
	default:
		fmt.Fprint(out, usage)
		return exitUsage, fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

// send checks the command shape locally before pushing it, since the bridge
// only logs malformed commands.
func send(config Config, args []string) error {
	frames := make([][]byte, 0, len(args))
	for _, a := range args {
		frames = append(frames, []byte(a))
	}
	if _, err := domain.ParseCommand(frames); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	producer, err := bus.NewCommandProducer(ctx, logs.GetLoggerFromString(config.LogLevel), config.CommandBusAddr)
	if err != nil {
		return err
	}
	defer producer.Close()
	return producer.Send(args...)
}

func parseServer(args []string) (domain.ServerConfig, error) {
	fs := flag.NewFlagSet("add-server", flag.ContinueOnError)
	user := fs.String("user", "", "owner of the connection")
	host := fs.String("host", "", "server hostname")
	port := fs.Int("port", domain.DefaultPort, "server port")
	tls := fs.Bool("tls", false, "use TLS")
	nick := fs.String("nick", domain.DefaultNickname, "nickname")
	disabled := fs.Bool("disabled", false, "store without connecting at startup")
	if err := fs.Parse(args); err != nil {
		return domain.ServerConfig{}, err
	}
	cfg := domain.ServerConfig{
		User:     domain.UserID(*user),
		Hostname: *host,
		Port:     *port,
		TLS:      *tls,
		Nickname: *nick,
		Enabled:  !*disabled,
	}
	return cfg, cfg.Validate()
}

func addServer(config Config, args []string, out io.Writer) error {
	cfg, err := parseServer(args)
	if err != nil {
		return err
	}
	db, err := openDB(config, false)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := storage.NewServerRepository(db, logs.GetLoggerFromString(config.LogLevel)).SaveServer(cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %s for %s\n", cfg.Network(), cfg.User)
	return nil
}

func parseChannel(args []string) (domain.ChannelConfig, error) {
	fs := flag.NewFlagSet("add-channel", flag.ContinueOnError)
	user := fs.String("user", "", "owner of the connection")
	network := fs.String("network", "", "network the channel lives on")
	channel := fs.String("channel", "", "channel name, with its # or &")
	key := fs.String("key", "", "channel key")
	if err := fs.Parse(args); err != nil {
		return domain.ChannelConfig{}, err
	}
	ch := domain.ChannelConfig{
		User:    domain.UserID(*user),
		Network: domain.NetworkID(strings.ToLower(*network)),
		Name:    *channel,
		Key:     *key,
	}
	return ch, ch.Validate()
}

func addChannel(config Config, args []string, out io.Writer) error {
	ch, err := parseChannel(args)
	if err != nil {
		return err
	}
	db, err := openDB(config, false)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := storage.NewServerRepository(db, logs.GetLoggerFromString(config.LogLevel)).SaveChannel(ch); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %s on %s for %s\n", ch.Name, ch.Network, ch.User)
	return nil
}

func list(config Config, out io.Writer) error {
	db, err := openDB(config, true)
	if err != nil {
		return err
	}
	defer db.Close()
	log := logs.GetLoggerFromString(config.LogLevel)

	repository := storage.NewServerRepository(db, log)
	servers, err := repository.ListServers()
	if err != nil {
		return err
	}
	sequences, err := storage.NewSequenceRepository(db, log).All()
	if err != nil {
		return err
	}
	rows := make([]serverRow, 0, len(servers))
	for _, s := range servers {
		channels, err := repository.ChannelsFor(s.User, s.Network())
		if err != nil {
			return err
		}
		rows = append(rows, serverRow{Server: s, Channels: channels, LastSeq: sequences[s.User]})
	}
	renderServers(out, rows)
	return nil
}

func search(config Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	user := fs.String("user", "", "restrict to a user")
	network := fs.String("network", "", "restrict to a network")
	lang := fs.String("lang", "", "restrict to an ISO 639-1 language")
	limit := fs.Int("limit", storage.DefaultSearchLimit, "max hits")
	if err := fs.Parse(args); err != nil {
		return err
	}

	archive := storage.NewArchiveReader(bluge.DefaultConfig(config.BlugeFilepath), logs.GetLoggerFromString(config.LogLevel))
	hits, err := archive.Search(context.Background(), storage.SearchQuery{
		User:    domain.UserID(*user),
		Network: domain.NetworkID(*network),
		Lang:    *lang,
		Text:    strings.Join(fs.Args(), " "),
		Limit:   *limit,
	})
	if err != nil {
		return err
	}
	renderHits(out, hits)
	return nil
}

func openDB(config Config, readOnly bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil)
	if readOnly {
		opts = opts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening %s (is the bridge running?): %w", config.BadgerFilepath, err)
	}
	return db, nil
}
