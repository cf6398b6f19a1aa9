package mirror

import (
	"sync"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/mds/queue"
)

// Stream is a replay-latest publisher of values.
//
// A new subscriber first receives the most recently published value,
// then every value published after it subscribed, in publication
// order. Values are never coalesced or dropped.
type Stream[T any] struct {
	mu     sync.Mutex
	latest T
	closed bool
	subs   mapset.Set[*Subscription[T]]
}

// NewStream returns a Stream whose latest value is initial.
func NewStream[T any](initial T) *Stream[T] {
	return &Stream[T]{
		latest: initial,
		subs:   mapset.New[*Subscription[T]](),
	}
}

// Latest returns the most recently published value.
func (s *Stream[T]) Latest() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Publish makes v the latest value and delivers it to all current
// subscribers. Publish on a closed Stream does nothing.
func (s *Stream[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.latest = v
	for sub := range s.subs {
		sub.enqueue(v)
	}
}

// Subscribe returns a new subscription to the stream.
//
// If the stream is closed, the returned subscription's channel is
// already closed.
func (s *Stream[T]) Subscribe() *Subscription[T] {
	sub := newSubscription(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		sub.stop()
		return sub
	}
	sub.enqueue(s.latest)
	s.subs.Add(sub)
	return sub
}

// Close shuts down the stream and all its subscriptions.
func (s *Stream[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := s.subs
	s.subs = mapset.New[*Subscription[T]]()
	s.mu.Unlock()

	for sub := range subs {
		sub.stop()
	}
}

func (s *Stream[T]) remove(sub *Subscription[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, sub)
}

// Subscription is a single consumer's view of a [Stream].
type Subscription[T any] struct {
	stream   *Stream[T]
	values   chan T
	wakePump chan struct{}

	stopPump    chan struct{}
	pumpStopped chan struct{}
	stopOnce    sync.Once

	mu    sync.Mutex
	queue queue.Queue[T]
}

func newSubscription[T any](s *Stream[T]) *Subscription[T] {
	ret := &Subscription[T]{
		stream:      s,
		values:      make(chan T),
		wakePump:    make(chan struct{}, 1),
		stopPump:    make(chan struct{}),
		pumpStopped: make(chan struct{}),
	}
	go ret.pump()
	return ret
}

// Chan returns the channel on which values are delivered. The channel
// is closed when the subscription or its stream is closed.
func (s *Subscription[T]) Chan() <-chan T {
	return s.values
}

// Close ends the subscription. It is safe to call Close more than
// once.
func (s *Subscription[T]) Close() {
	s.stream.remove(s)
	s.stop()
}

func (s *Subscription[T]) stop() {
	s.stopOnce.Do(func() {
		close(s.stopPump)
		<-s.pumpStopped

		s.mu.Lock()
		defer s.mu.Unlock()
		s.queue.Clear()
	})
}

func (s *Subscription[T]) enqueue(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.pumpStopped:
		return
	default:
	}

	s.queue.Add(v)
	if s.queue.Len() == 1 {
		select {
		case s.wakePump <- struct{}{}:
		default:
		}
	}
}

func (s *Subscription[T]) pump() {
	defer close(s.pumpStopped)
	defer close(s.values)
	for {
		v, ok := func() (T, bool) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.queue.Pop()
		}()
		if !ok {
			select {
			case <-s.stopPump:
				return
			case <-s.wakePump:
				continue
			}
		}
		select {
		case s.values <- v:
		case <-s.stopPump:
			return
		}
	}
}
