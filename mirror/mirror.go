// Package mirror keeps a local copy of a remote object's property
// set, updated by partial change notifications.
//
// A Mirror holds two views of the same state: the raw property set as
// received from the bus, and a typed record decoded from it. Updates
// are merged shallowly: each key in an update replaces the previous
// value for that key, and keys absent from the update keep their
// value. Keys are never removed.
package mirror

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrClosed is returned when updating a closed Mirror.
var ErrClosed = errors.New("mirror closed")

// DecodeFunc decodes a raw property set into a typed record.
type DecodeFunc[T any] func(map[string]any) (T, error)

// UpdateError is the error returned when a merged property set fails
// to decode. The update that caused it is discarded.
type UpdateError struct {
	// Keys are the property names carried by the rejected update.
	Keys []string
	// Reason is the decoding failure.
	Reason error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("rejected property update %v: %s", e.Keys, e.Reason)
}

func (e *UpdateError) Unwrap() error {
	return e.Reason
}

// Mirror is a local copy of a remote property set.
type Mirror[T any] struct {
	decode DecodeFunc[T]
	stream *Stream[T]

	mu     sync.Mutex
	raw    map[string]any
	cur    T
	closed bool
}

// New returns a Mirror initialized with the full property set
// initial.
//
// The caller must not modify initial after calling New.
func New[T any](initial map[string]any, decode DecodeFunc[T]) (*Mirror[T], error) {
	if initial == nil {
		initial = map[string]any{}
	}
	cur, err := decode(initial)
	if err != nil {
		return nil, fmt.Errorf("decoding initial properties: %w", err)
	}
	return &Mirror[T]{
		decode: decode,
		stream: NewStream(cur),
		raw:    initial,
		cur:    cur,
	}, nil
}

// Snapshot returns the current typed property record. It reflects
// every update applied before the call and none after.
//
// The returned value is shared with other callers and must not be
// modified.
func (m *Mirror[T]) Snapshot() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// Raw returns a copy of the current raw property set.
func (m *Mirror[T]) Raw() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.raw)
}

// Apply merges update into the property set and publishes the result
// to all subscribers.
//
// Every call publishes, including for an empty update. If the merged
// set fails to decode, Apply returns an [*UpdateError] and leaves the
// Mirror unchanged.
func (m *Mirror[T]) Apply(update map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	next := maps.Clone(m.raw)
	maps.Copy(next, update)
	cur, err := m.decode(next)
	if err != nil {
		return &UpdateError{Keys: slices.Sorted(maps.Keys(update)), Reason: err}
	}
	m.raw, m.cur = next, cur
	m.stream.Publish(cur)
	return nil
}

// Subscribe returns a subscription that first delivers the current
// snapshot, then the result of every subsequent update.
func (m *Mirror[T]) Subscribe() *Subscription[T] {
	return m.stream.Subscribe()
}

// Close shuts down the Mirror and closes all its subscriptions. It is
// safe to call Close more than once.
func (m *Mirror[T]) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.stream.Close()
}
