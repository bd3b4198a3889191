package domain

import (
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UserID is the opaque owner of a set of network connections.
// It partitions event sequences.
type UserID string

// NetworkID names one chat network of a user. The hostname is used.
type NetworkID string

// Global addresses every network of a user in a command.
const Global NetworkID = "global"

const DefaultNickname = "zmq_irc_bridge"

var validate = validator.New()

// ServerConfig is one connection row: which user wants which network and under which nickname.
type ServerConfig struct {
	User     UserID `validate:"required"`
	Hostname string `validate:"required,hostname_rfc1123|ip"`
	Port     int    `validate:"required,min=1,max=65535"`
	TLS      bool
	Nickname string `validate:"required,max=30,printascii,excludes= "`
	Enabled  bool
}

// Network derives the network identifier from the hostname.
func (s ServerConfig) Network() NetworkID {
	return NetworkID(strings.ToLower(s.Hostname))
}

// Address is the dialable host:port, IPv6 literals bracketed.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Hostname, strconv.Itoa(s.Port))
}

func (s ServerConfig) Validate() error {
	return validate.Struct(s)
}

// ChannelConfig is an autojoin row attached to a server.
type ChannelConfig struct {
	User    UserID    `validate:"required"`
	Network NetworkID `validate:"required"`
	Name    string    `validate:"required,startswith=#|startswith=&"`
	Key     string
}

func (c ChannelConfig) Validate() error {
	return validate.Struct(c)
}

// NormalizeChannel folds a channel name for comparisons.
func NormalizeChannel(channel string) string {
	return strings.ToLower(channel)
}
