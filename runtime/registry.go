package runtime

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"irc-bridge/contract"
	"irc-bridge/domain"
	"irc-bridge/errors"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

type networks map[domain.NetworkID]contract.Session

// Registry maps user -> network -> live session.
// A session stays registered across reconnections, it only leaves on Remove
// or when another session takes its place.
type Registry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	sessions map[domain.UserID]networks
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		sessions: make(map[domain.UserID]networks),
	}
}

// Register stores the session under (user, network). A session already stored
// under the same key is closed once the lock is released.
func (r *Registry) Register(session contract.Session) {
	user, network := session.User(), session.Network()

	r.mu.Lock()
	byNetwork, ok := r.sessions[user]
	if !ok {
		byNetwork = make(networks)
		r.sessions[user] = byNetwork
	}
	previous := byNetwork[network]
	byNetwork[network] = session
	r.mu.Unlock()

	if previous != nil && previous != session {
		r.log.Info("Replacing session", "user", user, "network", network)
		if err := previous.Close(); err != nil {
			r.log.Warn("Replaced session did not close cleanly", "user", user, "network", network, "error", err)
		}
	}
}

// Lookup resolves the sessions addressed by a command.
// domain.Global selects every session of the user, ordered by network.
func (r *Registry) Lookup(user domain.UserID, network domain.NetworkID) ([]contract.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byNetwork, ok := r.sessions[user]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownUser, user)
	}
	if network == domain.Global {
		keys := lo.Keys(byNetwork)
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		return lo.Map(keys, func(k domain.NetworkID, _ int) contract.Session {
			return byNetwork[k]
		}), nil
	}
	session, ok := byNetwork[network]
	if !ok {
		return nil, fmt.Errorf("%w: %s for user %s", errors.ErrUnknownNetwork, network, user)
	}
	return []contract.Session{session}, nil
}

func (r *Registry) Get(user domain.UserID, network domain.NetworkID) (contract.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[user][network]
	return session, ok
}

// Remove forgets the session without closing it. Empty users are pruned.
func (r *Registry) Remove(user domain.UserID, network domain.NetworkID) (contract.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byNetwork, ok := r.sessions[user]
	if !ok {
		return nil, false
	}
	session, ok := byNetwork[network]
	if !ok {
		return nil, false
	}
	delete(byNetwork, network)
	if len(byNetwork) == 0 {
		delete(r.sessions, user)
	}
	return session, true
}

// Sessions returns a snapshot of every registered session.
func (r *Registry) Sessions() []contract.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []contract.Session
	for _, byNetwork := range r.sessions {
		all = append(all, lo.Values(byNetwork)...)
	}
	return all
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, byNetwork := range r.sessions {
		n += len(byNetwork)
	}
	return n
}
