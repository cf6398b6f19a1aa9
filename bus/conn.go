package bus

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/creachadair/mds/mapset"
	"github.com/godbus/dbus/v5"
)

const (
	ifaceProps         = "org.freedesktop.DBus.Properties"
	ifaceObjectManager = "org.freedesktop.DBus.ObjectManager"
	ifacePeer          = "org.freedesktop.DBus.Peer"
)

// ErrClosed is returned by operations on a closed Conn.
var ErrClosed = errors.New("bus connection closed")

// Backend carries bus traffic for a [Conn].
type Backend interface {
	// Call invokes method, a fully qualified "interface.Member"
	// name, on the object at path offered by peer, and returns the
	// reply body.
	Call(ctx context.Context, peer string, path dbus.ObjectPath, method string, args ...any) ([]any, error)
	// AddMatch asks the bus to route signals matching m to this
	// connection.
	AddMatch(ctx context.Context, m *Match) error
	// RemoveMatch undoes a previous AddMatch.
	RemoveMatch(ctx context.Context, m *Match) error
	// Signal registers ch to receive every signal routed to this
	// connection.
	Signal(ch chan<- *dbus.Signal)
	// Close shuts down the backend.
	Close() error
}

// Option configures a Conn.
type Option func(*Conn)

// WithLogger sets the logger used by the Conn and everything built on
// top of it. The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(c *Conn) {
		if l != nil {
			c.logger = l
		}
	}
}

// SystemBus connects to the system bus.
func SystemBus(ctx context.Context, opts ...Option) (*Conn, error) {
	return dialGodbus(ctx, dbus.ConnectSystemBus, opts)
}

// SessionBus connects to the current user's session bus.
func SessionBus(ctx context.Context, opts ...Option) (*Conn, error) {
	return dialGodbus(ctx, dbus.ConnectSessionBus, opts)
}

// Dial connects to the bus at the given address, for example
// "unix:path=/run/dbus/system_bus_socket".
func Dial(ctx context.Context, address string, opts ...Option) (*Conn, error) {
	connect := func(o ...dbus.ConnOption) (*dbus.Conn, error) {
		return dbus.Connect(address, o...)
	}
	return dialGodbus(ctx, connect, opts)
}

// New returns a Conn that uses backend to talk to the bus. The Conn
// takes ownership of the backend, and closes it when the Conn is
// closed.
func New(backend Backend, opts ...Option) *Conn {
	ret := &Conn{
		backend:  backend,
		logger:   slog.Default(),
		signals:  make(chan *dbus.Signal, 64),
		done:     make(chan struct{}),
		watchers: mapset.New[*Watcher](),
	}
	for _, o := range opts {
		o(ret)
	}
	backend.Signal(ret.signals)
	go ret.dispatchLoop()
	return ret
}

// Conn is a DBus connection.
type Conn struct {
	backend Backend
	logger  *slog.Logger
	signals chan *dbus.Signal
	done    chan struct{}

	mu       sync.Mutex
	closed   bool
	watchers mapset.Set[*Watcher]
}

// Logger returns the Conn's logger.
func (c *Conn) Logger() *slog.Logger {
	return c.logger
}

// Peer returns a Peer for the given bus name.
//
// The returned value is only a handle. The peer is not contacted
// until a method is called on it or one of its objects.
func (c *Conn) Peer(name string) Peer {
	return Peer{
		c:    c,
		name: name,
	}
}

func (c *Conn) lockedWatchers() iter.Seq[*Watcher] {
	return func(yield func(*Watcher) bool) {
		c.mu.Lock()
		defer c.mu.Unlock()
		for w := range c.watchers {
			if !yield(w) {
				return
			}
		}
	}
}

// Close closes the connection. Watchers created from the connection
// are closed as well. It is safe to call Close more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.done)
	watchers := c.watchers
	c.watchers = mapset.New[*Watcher]()
	c.mu.Unlock()

	for w := range watchers {
		w.shutdown()
	}
	return c.backend.Close()
}

func (c *Conn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Conn) call(ctx context.Context, peer string, path dbus.ObjectPath, iface, method string, body any, response any) error {
	if c.isClosed() {
		return ErrClosed
	}
	args, err := bodyArgs(body)
	if err != nil {
		return err
	}
	resp, err := c.backend.Call(ctx, peer, path, iface+"."+method, args...)
	if err != nil {
		return callErr(err)
	}
	if response == nil {
		return nil
	}
	return storeResponse(resp, response)
}

func (c *Conn) addMatch(ctx context.Context, m *Match) error {
	if c.isClosed() {
		return ErrClosed
	}
	if err := c.backend.AddMatch(ctx, m); err != nil {
		return fmt.Errorf("adding match %s: %w", m, callErr(err))
	}
	return nil
}

func (c *Conn) removeMatch(ctx context.Context, m *Match) {
	if c.isClosed() {
		return
	}
	if err := c.backend.RemoveMatch(ctx, m); err != nil {
		c.logger.Debug("removing match", "match", m.String(), "err", err)
	}
}

func (c *Conn) dispatchLoop() {
	for {
		select {
		case <-c.done:
			return
		case sig, ok := <-c.signals:
			if !ok {
				return
			}
			for w := range c.lockedWatchers() {
				w.deliver(sig)
			}
		}
	}
}

// dialGodbus connects with a godbus connect function, honoring ctx
// for the duration of the handshake only.
func dialGodbus(ctx context.Context, connect func(...dbus.ConnOption) (*dbus.Conn, error), opts []Option) (*Conn, error) {
	type result struct {
		conn *dbus.Conn
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		conn, err := connect()
		ch <- result{conn, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("connecting to bus: %w", r.err)
		}
		return New(godbusBackend{r.conn}, opts...), nil
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.conn != nil {
				r.conn.Close()
			}
		}()
		return nil, ctx.Err()
	}
}
