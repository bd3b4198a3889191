package storage

import (
	"fmt"
	"log/slog"
	"sort"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/errors"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServerPrefix  = "server:"
	ChannelPrefix = "channel:"
)

var (
	_ contract.ServerSource  = ServerRepository{}
	_ contract.ChannelSource = ServerRepository{}
)

// ServerRepository stores connection rows under "server:{user}:{network}" and
// autojoin rows under "channel:{user}:{network}:{channel}".
// Values are structpb.Struct, so user and network are read back from the value
// and never parsed out of the key.
type ServerRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewServerRepository(db *badger.DB, log *slog.Logger) ServerRepository {
	return ServerRepository{db: db, log: log}
}

func (r ServerRepository) SaveServer(cfg domain.ServerConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidServer, err)
	}
	value, err := structpb.NewStruct(map[string]any{
		"user":     string(cfg.User),
		"hostname": cfg.Hostname,
		"port":     float64(cfg.Port),
		"tls":      cfg.TLS,
		"nickname": cfg.Nickname,
		"enabled":  cfg.Enabled,
	})
	if err != nil {
		return err
	}
	return r.put(serverKey(cfg.User, cfg.Network()), value)
}

// ListServers returns every row, enabled or not, ordered by key.
func (r ServerRepository) ListServers() ([]domain.ServerConfig, error) {
	var servers []domain.ServerConfig
	err := r.scan([]byte(ServerPrefix), func(v *structpb.Struct) error {
		servers = append(servers, DecodeServer(v))
		return nil
	})
	return servers, err
}

func (r ServerRepository) DeleteServer(user domain.UserID, network domain.NetworkID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(serverKey(user, network))
	})
}

func (r ServerRepository) SaveChannel(ch domain.ChannelConfig) error {
	if err := ch.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidServer, err)
	}
	value, err := structpb.NewStruct(map[string]any{
		"user":    string(ch.User),
		"network": string(ch.Network),
		"name":    ch.Name,
		"key":     ch.Key,
	})
	if err != nil {
		return err
	}
	return r.put(channelKey(ch.User, ch.Network, ch.Name), value)
}

// ChannelsFor returns the autojoin rows of one server, sorted by name.
func (r ServerRepository) ChannelsFor(user domain.UserID, network domain.NetworkID) ([]domain.ChannelConfig, error) {
	var channels []domain.ChannelConfig
	prefix := []byte(fmt.Sprintf("%s%s:%s:", ChannelPrefix, user, network))
	err := r.scan(prefix, func(v *structpb.Struct) error {
		ch := DecodeChannel(v)
		// A user id containing ':' could share a prefix with another one.
		if ch.User == user && ch.Network == network {
			channels = append(channels, ch)
		}
		return nil
	})
	sort.Slice(channels, func(i, j int) bool { return channels[i].Name < channels[j].Name })
	return channels, err
}

func (r ServerRepository) DeleteChannel(user domain.UserID, network domain.NetworkID, channel string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(channelKey(user, network, channel))
	})
}

func (r ServerRepository) put(key []byte, value *structpb.Struct) error {
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
}

func (r ServerRepository) scan(prefix []byte, fn func(*structpb.Struct) error) error {
	return r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var v structpb.Struct
				if err := proto.Unmarshal(val, &v); err != nil {
					return err
				}
				return fn(&v)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func DecodeServer(v *structpb.Struct) domain.ServerConfig {
	f := v.GetFields()
	return domain.ServerConfig{
		User:     domain.UserID(f["user"].GetStringValue()),
		Hostname: f["hostname"].GetStringValue(),
		Port:     int(f["port"].GetNumberValue()),
		TLS:      f["tls"].GetBoolValue(),
		Nickname: f["nickname"].GetStringValue(),
		Enabled:  f["enabled"].GetBoolValue(),
	}
}

func DecodeChannel(v *structpb.Struct) domain.ChannelConfig {
	f := v.GetFields()
	return domain.ChannelConfig{
		User:    domain.UserID(f["user"].GetStringValue()),
		Network: domain.NetworkID(f["network"].GetStringValue()),
		Name:    f["name"].GetStringValue(),
		Key:     f["key"].GetStringValue(),
	}
}

func serverKey(user domain.UserID, network domain.NetworkID) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", ServerPrefix, user, network))
}

func channelKey(user domain.UserID, network domain.NetworkID, channel string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s:%s", ChannelPrefix, user, network, domain.NormalizeChannel(channel)))
}
