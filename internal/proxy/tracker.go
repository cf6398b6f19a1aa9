package proxy

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danderson/cellnet/bus"
)

// Tracker keeps a set of objects current by reacting to the signals
// that report objects appearing and disappearing.
//
// Signals are handled one at a time, in order of receipt. If the
// underlying watcher drops signals, the tracker resynchronizes by
// re-enumerating the objects instead.
type Tracker struct {
	watcher *bus.Watcher
	logger  *slog.Logger
	handle  func(context.Context, *bus.Notification)
	resync  func(context.Context) error

	ctx       context.Context
	cancel    context.CancelFunc
	started   chan struct{}
	startOnce sync.Once
	done      chan struct{}
	closeOnce sync.Once
}

// NewTracker creates a tracker that delivers signals matched by ms to
// handle, and calls resync when signals have been lost.
//
// Signals begin queueing as soon as NewTracker returns, but are not
// handled until Start is called. This lets the caller enumerate the
// initial set of objects in between, without missing changes.
func NewTracker(ctx context.Context, conn *bus.Conn, logger *slog.Logger, ms []*bus.Match, handle func(context.Context, *bus.Notification), resync func(context.Context) error) (*Tracker, error) {
	w := conn.Watch()
	for _, m := range ms {
		if _, err := w.Match(ctx, m); err != nil {
			w.Close()
			return nil, err
		}
	}
	ret := &Tracker{
		watcher: w,
		logger:  logger,
		handle:  handle,
		resync:  resync,
		started: make(chan struct{}),
		done:    make(chan struct{}),
	}
	ret.ctx, ret.cancel = context.WithCancel(context.Background())
	go ret.loop()
	return ret, nil
}

// Start begins handling signals.
func (t *Tracker) Start() {
	t.startOnce.Do(func() { close(t.started) })
}

// Close stops the tracker and waits for any in-progress handling to
// finish. It is safe to call Close more than once.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		t.cancel()
		t.watcher.Close()
		<-t.done
	})
}

func (t *Tracker) loop() {
	defer close(t.done)
	select {
	case <-t.started:
	case <-t.ctx.Done():
		return
	}
	for n := range t.watcher.Chan() {
		t.handle(t.ctx, n)
		if n.Overflow {
			t.logger.Warn("object notifications lost, resynchronizing")
			ctx, cancel := context.WithTimeout(t.ctx, refetchTimeout)
			if err := t.resync(ctx); err != nil && t.ctx.Err() == nil {
				t.logger.Warn("resynchronizing objects", "err", err)
			}
			cancel()
		}
	}
}
