package runtime

import (
	"context"
	"sync"

	"irc-bridge/contract"
)

var _ contract.NamesResult = (*NamesRequest)(nil)

// NamesRequest is a one-shot roster answer shared by every caller that asked
// for the same channel while a NAMES round-trip was in flight.
type NamesRequest struct {
	channel string
	done    chan struct{}
	once    sync.Once
	nicks   []string
	err     error
}

func newNamesRequest(channel string) *NamesRequest {
	return &NamesRequest{channel: channel, done: make(chan struct{})}
}

func failedNamesRequest(channel string, err error) *NamesRequest {
	r := newNamesRequest(channel)
	r.finish(err)
	return r
}

func (r *NamesRequest) Channel() string { return r.channel }

func (r *NamesRequest) Done() <-chan struct{} { return r.done }

// Wait blocks until the roster is complete, the session drops, or ctx ends.
func (r *NamesRequest) Wait(ctx context.Context) ([]string, error) {
	select {
	case <-r.done:
		return r.nicks, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// add must only be called by the session holding its lock, before finish.
func (r *NamesRequest) add(nicks []string) {
	r.nicks = append(r.nicks, nicks...)
}

// finish resolves the request. Only the first call has an effect.
func (r *NamesRequest) finish(err error) bool {
	resolved := false
	r.once.Do(func() {
		r.err = err
		if err != nil {
			r.nicks = nil
		}
		close(r.done)
		resolved = true
	})
	return resolved
}
