package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/errors"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const SequencePrefix = "seq:"

var _ contract.SequenceStore = SequenceRepository{}

// SequenceRepository checkpoints the last published sequence per user under
// "seq:{user}". Values are wrapperspb.UInt64Value.
type SequenceRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSequenceRepository(db *badger.DB, log *slog.Logger) SequenceRepository {
	return SequenceRepository{db: db, log: log}
}

// LastSequence returns 0 for a user never seen.
func (r SequenceRepository) LastSequence(user domain.UserID) (uint64, error) {
	var last uint64
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		last, err = readSequence(txn, sequenceKey(user))
		return err
	})
	return last, err
}

// SaveSequence only moves forward: an older checkpoint never overwrites a newer one.
func (r SequenceRepository) SaveSequence(user domain.UserID, seq uint64) error {
	key := sequenceKey(user)
	return r.db.Update(func(txn *badger.Txn) error {
		current, err := readSequence(txn, key)
		if err != nil {
			return err
		}
		if seq <= current {
			return nil
		}
		bytes, err := proto.Marshal(wrapperspb.UInt64(seq))
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
}

// All returns every checkpoint, keyed by user.
func (r SequenceRepository) All() (map[domain.UserID]uint64, error) {
	res := make(map[domain.UserID]uint64)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(SequencePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				seq, err := DecodeSequence(val)
				if err != nil {
					return err
				}
				res[domain.UserID(strings.TrimPrefix(string(item.Key()), SequencePrefix))] = seq
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return res, err
}

func sequenceKey(user domain.UserID) []byte {
	return []byte(SequencePrefix + string(user))
}

func readSequence(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = item.Value(func(val []byte) error {
		seq, err = DecodeSequence(val)
		return err
	})
	return seq, err
}

func DecodeSequence(val []byte) (uint64, error) {
	var v wrapperspb.UInt64Value
	if err := proto.Unmarshal(val, &v); err != nil {
		return 0, fmt.Errorf("decoding sequence: %w", err)
	}
	return v.GetValue(), nil
}
