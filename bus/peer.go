package bus

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// Peer is a named participant on the bus, such as
// "org.freedesktop.ModemManager1".
type Peer struct {
	c    *Conn
	name string
}

// Conn returns the connection the peer is reached through.
func (p Peer) Conn() *Conn { return p.c }

// Name returns the peer's bus name.
func (p Peer) Name() string { return p.name }

func (p Peer) String() string {
	if p.c == nil {
		return "<no peer>"
	}
	return p.name
}

// Ping checks that the peer is reachable.
func (p Peer) Ping(ctx context.Context) error {
	return p.Conn().call(ctx, p.name, "/", ifacePeer, "Ping", nil, nil)
}

// Object returns a handle for the object at path offered by the
// peer.
func (p Peer) Object(path dbus.ObjectPath) Object {
	return Object{
		p:    p,
		path: path,
	}
}
