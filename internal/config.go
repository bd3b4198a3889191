package internal

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"irc-bridge/errors"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	CommandBusAddr string `env:"COMMAND_BUS_ADDR,default=tcp://127.0.0.1:9912" validate:"required"`
	EventBusAddr   string `env:"EVENT_BUS_ADDR,default=tcp://127.0.0.1:9913" validate:"required"`

	BufferSize      int           `env:"BUFFER_SIZE,default=1024" validate:"min=1"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`

	DialTimeout          time.Duration `env:"DIAL_TIMEOUT,default=15s" validate:"gt=0"`
	ReconnectBaseDelay   time.Duration `env:"RECONNECT_BASE_DELAY,default=2s" validate:"gt=0"`
	ReconnectMaxDelay    time.Duration `env:"RECONNECT_MAX_DELAY,default=5m" validate:"gtefield=ReconnectBaseDelay"`
	ReconnectMaxAttempts int           `env:"RECONNECT_MAX_ATTEMPTS,default=0" validate:"min=0"`

	// Every Nth malformed command is logged as an error instead of a warning.
	MalformedWarnThreshold int           `env:"MALFORMED_WARN_THRESHOLD,default=10" validate:"min=1"`
	HeartbeatInterval      time.Duration `env:"HEARTBEAT_INTERVAL,default=1m" validate:"gt=0"`
	MetricInterval         time.Duration `env:"METRIC_INTERVAL,default=10s" validate:"gt=0"`
	LowCapacityThreshold   int           `env:"LOW_CAPACITY_THRESHOLD,default=20" validate:"min=0,max=100"`

	// CENSORED_WORDS is a comma separated list masked in outgoing text. Empty disables it.
	CensoredWords string `env:"CENSORED_WORDS"`
	CensorMask    string `env:"CENSOR_MASK,default=*" validate:"len=1"`

	ArchiveBatchSize     int           `env:"ARCHIVE_BATCH_SIZE,default=50" validate:"min=1"`
	ArchiveBufferTimeout time.Duration `env:"ARCHIVE_BUFFER_TIMEOUT,default=2s" validate:"gt=0"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`

	Host      string `env:"HOST,default=0.0.0.0" validate:"required"`
	Port      int    `env:"PORT,default=50051" validate:"min=1,max=65535"`
	DebugPort int    `env:"DEBUG_PORT,default=8081" validate:"min=1,max=65535"`

	IRCUsername  string        `env:"IRC_USERNAME,default=bridge" validate:"required,excludes= "`
	IRCRealname  string        `env:"IRC_REALNAME,default=ZeroMQ IRC bridge" validate:"required"`
	IRCSendLimit time.Duration `env:"IRC_SEND_LIMIT,default=1s" validate:"min=0"`
	IRCSendBurst int           `env:"IRC_SEND_BURST,default=4" validate:"min=0"`
}

var validate = validator.New()

// Words splits CENSORED_WORDS, dropping blanks.
func (c Config) Words() []string {
	return lo.Compact(lo.Map(strings.Split(c.CensoredWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

// Mask returns the single rune used to hide censored words.
func (c Config) Mask() rune {
	return []rune(c.CensorMask)[0]
}

// Load reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	var config Config
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("loading env file: %w", err)
	}
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return config, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
