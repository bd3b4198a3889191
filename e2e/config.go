package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BridgeAddr is the gRPC health endpoint of a running bridge. Empty skips the suite.
	BridgeAddr     string `envconfig:"BRIDGE_ADDR"`
	CommandBusAddr string `envconfig:"COMMAND_BUS_ADDR" default:"tcp://127.0.0.1:9912"`
	// EventBusAddr is bound by the suite, the bridge dials it.
	EventBusAddr string `envconfig:"EVENT_BUS_ADDR" default:"tcp://127.0.0.1:9913"`
	IRCHost      string `envconfig:"E2E_IRC_HOST" default:"localhost"`
	IRCPort      int    `envconfig:"E2E_IRC_PORT" default:"6667"`
	Channel      string `envconfig:"E2E_CHANNEL" default:"#bridge-e2e"`
	// E2E_DEBUG_JSON dumps full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
