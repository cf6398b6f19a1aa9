package bus

import (
	"context"
	"sync"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/mds/queue"
	"github.com/godbus/dbus/v5"
)

const maxWatcherQueue = 64

// Watch watches the bus for signals from other bus participants.
//
// A newly created Watcher delivers no notifications. The caller must
// use [Watcher.Match] to specify which signals the Watcher should
// provide.
func (c *Conn) Watch() *Watcher {
	w := &Watcher{
		conn:        c,
		signals:     make(chan *Notification),
		wakePump:    make(chan struct{}, 1),
		stopPump:    make(chan struct{}),
		pumpStopped: make(chan struct{}),
		matches:     mapset.New[*Match](),
	}
	go w.pump()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		w.shutdown()
		return w
	}
	c.watchers.Add(w)
	return w
}

// A Watcher delivers signals received from the bus that match its
// filters.
//
// Filters on a well-known peer name are enforced by the bus, not by
// the Watcher. When several Watchers share a Conn, a Watcher may also
// receive signals from other peers that match its remaining filters.
type Watcher struct {
	conn     *Conn
	signals  chan *Notification
	wakePump chan struct{}

	stopPump    chan struct{}
	pumpStopped chan struct{}
	stopOnce    sync.Once

	mu      sync.Mutex
	queue   queue.Queue[*Notification]
	matches mapset.Set[*Match]
}

// Notification is a signal received from a bus peer.
type Notification struct {
	// Sender is the unique bus name of the signal's originator.
	Sender string
	// Path is the object that emitted the signal.
	Path dbus.ObjectPath
	// Interface and Member name the signal.
	Interface string
	Member    string
	// Body is the signal payload.
	Body []any
	// Overflow reports that the watcher discarded some notifications
	// that followed this one, due to the caller not processing
	// delivered notifications fast enough.
	Overflow bool
}

// Close shuts down the Watcher and removes its matches from the bus.
// It is safe to call Close more than once.
func (w *Watcher) Close() {
	w.conn.mu.Lock()
	delete(w.conn.watchers, w)
	w.conn.mu.Unlock()

	w.mu.Lock()
	matches := w.matches
	w.matches = mapset.New[*Match]()
	w.mu.Unlock()
	for m := range matches {
		w.conn.removeMatch(context.Background(), m)
	}

	w.shutdown()
}

func (w *Watcher) shutdown() {
	w.stopOnce.Do(func() {
		close(w.stopPump)
		<-w.pumpStopped

		w.mu.Lock()
		defer w.mu.Unlock()
		w.queue.Clear()
	})
}

// Chan returns the channel on which signals are delivered.
//
// The caller must drain this channel of new signals promptly, to
// avoid overflowing the Watcher's receive queue and losing
// Notifications of interest. Missing signals due to an overflow are
// indicated by the Overflow field of the [Notification] that
// immediately precedes the discarded signal(s).
//
// The channel is closed when the Watcher or its Conn is closed.
func (w *Watcher) Chan() <-chan *Notification {
	return w.signals
}

// Match requests delivery of signals that match m.
//
// Matches are additive: a signal is delivered if it matches any of
// the Watcher's matches.
//
// If the match is added successfully, the returned remove function
// may be used to remove the match without affecting other
// matches. Use of remove is optional, and may be ignored if the set
// of matches doesn't need to change for the lifetime of the Watcher.
func (w *Watcher) Match(ctx context.Context, m *Match) (remove func(), err error) {
	if err = w.conn.addMatch(ctx, m); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.matches.Add(m)
	return func() {
		w.mu.Lock()
		_, ok := w.matches[m]
		delete(w.matches, m)
		w.mu.Unlock()
		if ok {
			w.conn.removeMatch(context.Background(), m)
		}
	}, nil
}

func (w *Watcher) enqueueLocked(n Notification) {
	if w.queue.Len() >= maxWatcherQueue {
		last, _ := w.queue.Peek(-1)
		last.Overflow = true
		return
	}

	w.queue.Add(&n)
	if w.queue.Len() == 1 {
		select {
		case w.wakePump <- struct{}{}:
		default:
		}
	}
}

func (w *Watcher) deliver(sig *dbus.Signal) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.pumpStopped:
		// raced with a Close, this watcher is done.
		return
	default:
	}

	want := func() bool {
		for m := range w.matches {
			if m.matches(sig) {
				return true
			}
		}
		return false
	}()
	if !want {
		return
	}

	iface, member := splitMember(sig.Name)
	w.enqueueLocked(Notification{
		Sender:    sig.Sender,
		Path:      sig.Path,
		Interface: iface,
		Member:    member,
		Body:      sig.Body,
	})
}

func (w *Watcher) pump() {
	defer close(w.pumpStopped)
	defer close(w.signals)
	for {
		sig := func() *Notification {
			w.mu.Lock()
			defer w.mu.Unlock()
			ret, _ := w.queue.Pop()
			return ret
		}()
		if sig == nil {
			select {
			case <-w.stopPump:
				return
			case <-w.wakePump:
				continue
			}
		}
		select {
		case w.signals <- sig:
		case <-w.stopPump:
			return
		}
	}
}
