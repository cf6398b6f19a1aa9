package bus

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/godbus/dbus/v5"
)

// Object is an object path offered by a [Peer].
type Object struct {
	p    Peer
	path dbus.ObjectPath
}

func (o Object) Conn() *Conn           { return o.p.Conn() }
func (o Object) Peer() Peer            { return o.p }
func (o Object) Path() dbus.ObjectPath { return o.path }

func (o Object) String() string {
	if o.p.c == nil {
		return "<no object>"
	}
	return fmt.Sprintf("%s:%s", o.p, o.path)
}

// Compare orders objects by peer name, then path.
func (o Object) Compare(other Object) int {
	if c := cmp.Compare(o.p.name, other.p.name); c != 0 {
		return c
	}
	return cmp.Compare(o.path, other.path)
}

// Interface returns a handle for the named interface on the object.
func (o Object) Interface(name string) Interface {
	return Interface{
		o:    o,
		name: name,
	}
}

// ManagedObjects returns the interfaces implemented by every object
// below o, using the org.freedesktop.DBus.ObjectManager interface.
//
// The result maps each object to the names of its interfaces, in
// sorted order.
func (o Object) ManagedObjects(ctx context.Context) (map[Object][]string, error) {
	// object path -> interface name -> map[property name]value
	var resp map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	if err := o.Interface(ifaceObjectManager).Call(ctx, "GetManagedObjects", nil, &resp); err != nil {
		return nil, err
	}
	ret := make(map[Object][]string, len(resp))
	for path, ifs := range resp {
		ret[o.Peer().Object(path)] = slices.Sorted(maps.Keys(ifs))
	}
	return ret, nil
}
