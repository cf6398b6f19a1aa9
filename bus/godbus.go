package bus

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// godbusBackend carries bus traffic over a godbus connection.
type godbusBackend struct {
	conn *dbus.Conn
}

// NewGodbusBackend returns a Backend that uses conn, which must
// already be authenticated. Use it with [New] to wrap a connection
// established by other means.
func NewGodbusBackend(conn *dbus.Conn) Backend {
	return godbusBackend{conn}
}

func (b godbusBackend) Call(ctx context.Context, peer string, path dbus.ObjectPath, method string, args ...any) ([]any, error) {
	call := b.conn.Object(peer, path).CallWithContext(ctx, method, 0, args...)
	if call.Err != nil {
		return nil, call.Err
	}
	return call.Body, nil
}

func (b godbusBackend) AddMatch(ctx context.Context, m *Match) error {
	return b.conn.AddMatchSignalContext(ctx, m.options()...)
}

func (b godbusBackend) RemoveMatch(ctx context.Context, m *Match) error {
	return b.conn.RemoveMatchSignalContext(ctx, m.options()...)
}

func (b godbusBackend) Signal(ch chan<- *dbus.Signal) {
	b.conn.Signal(ch)
}

func (b godbusBackend) Close() error {
	return b.conn.Close()
}
