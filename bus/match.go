package bus

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/value"
	"github.com/godbus/dbus/v5"
)

// Match is a filter that matches DBus signals.
type Match struct {
	sender       value.Maybe[string]
	object       value.Maybe[dbus.ObjectPath]
	objectPrefix value.Maybe[dbus.ObjectPath]
	iface        value.Maybe[string]
	member       value.Maybe[string]
	arg0         value.Maybe[string]
}

// MatchSignal returns a Match for the given signal.
func MatchSignal(iface, member string) *Match {
	return &Match{
		iface:  value.Just(iface),
		member: value.Just(member),
	}
}

// MatchPropertiesChanged returns a Match for property change
// notifications of the given interface. If iface is empty, the Match
// covers property changes of every interface.
func MatchPropertiesChanged(iface string) *Match {
	ret := MatchSignal(ifaceProps, "PropertiesChanged")
	if iface != "" {
		ret.arg0 = value.Just(iface)
	}
	return ret
}

// MatchAllSignals returns a Match for all signals.
func MatchAllSignals() *Match {
	return &Match{}
}

// Peer restricts the Match to signals sent by the given peer.
//
// The sender restriction is applied by the bus, which resolves
// well-known names to their current owner.
func (m *Match) Peer(name string) *Match {
	m.sender = value.Just(name)
	return m
}

// Object restricts the Match to signals emitted by the given object.
func (m *Match) Object(path dbus.ObjectPath) *Match {
	m.object = value.Just(path)
	return m
}

// ObjectPrefix restricts the Match to signals emitted by objects
// rooted at path, including path itself.
func (m *Match) ObjectPrefix(path dbus.ObjectPath) *Match {
	m.objectPrefix = value.Just(path)
	return m
}

// Arg0 restricts the Match to signals whose first argument is the
// string s.
func (m *Match) Arg0(s string) *Match {
	m.arg0 = value.Just(s)
	return m
}

// String returns the match in the string format that DBus wants for
// the AddMatch and RemoveMatch methods.
func (m *Match) String() string {
	ms := []string{"type='signal'"}
	kv := func(k string, v string) {
		ms = append(ms, fmt.Sprintf("%s=%s", k, escapeMatchArg(v)))
	}

	if s, ok := m.sender.GetOK(); ok {
		kv("sender", s)
	}
	if o, ok := m.object.GetOK(); ok {
		kv("path", string(o))
	}
	if p, ok := m.objectPrefix.GetOK(); ok {
		kv("path_namespace", string(p))
	}
	if i, ok := m.iface.GetOK(); ok {
		kv("interface", i)
	}
	if mb, ok := m.member.GetOK(); ok {
		kv("member", mb)
	}
	if a, ok := m.arg0.GetOK(); ok {
		kv("arg0", a)
	}
	return strings.Join(ms, ",")
}

func (m *Match) options() []dbus.MatchOption {
	var ret []dbus.MatchOption
	if s, ok := m.sender.GetOK(); ok {
		ret = append(ret, dbus.WithMatchSender(s))
	}
	if o, ok := m.object.GetOK(); ok {
		ret = append(ret, dbus.WithMatchObjectPath(o))
	}
	if p, ok := m.objectPrefix.GetOK(); ok {
		ret = append(ret, dbus.WithMatchPathNamespace(p))
	}
	if i, ok := m.iface.GetOK(); ok {
		ret = append(ret, dbus.WithMatchInterface(i))
	}
	if mb, ok := m.member.GetOK(); ok {
		ret = append(ret, dbus.WithMatchMember(mb))
	}
	if a, ok := m.arg0.GetOK(); ok {
		ret = append(ret, dbus.WithMatchArg(0, a))
	}
	return ret
}

// matches reports whether sig satisfies m.
//
// Signals carry the sender's unique name, so a sender restriction is
// only checked locally when it is itself a unique name. A restriction
// to a well-known name is left to the bus, which means a Watcher may
// accept a signal from another peer that the bus routed for a
// different Watcher's match on the same Conn.
func (m *Match) matches(sig *dbus.Signal) bool {
	if s, ok := m.sender.GetOK(); ok && strings.HasPrefix(s, ":") && sig.Sender != s {
		return false
	}
	if o, ok := m.object.GetOK(); ok && sig.Path != o {
		return false
	}
	if p, ok := m.objectPrefix.GetOK(); ok && !pathHasPrefix(sig.Path, p) {
		return false
	}
	iface, member := splitMember(sig.Name)
	if i, ok := m.iface.GetOK(); ok && iface != i {
		return false
	}
	if mb, ok := m.member.GetOK(); ok && member != mb {
		return false
	}
	if a, ok := m.arg0.GetOK(); ok {
		if len(sig.Body) == 0 {
			return false
		}
		if s, isStr := sig.Body[0].(string); !isStr || s != a {
			return false
		}
	}
	return true
}

func splitMember(name string) (iface, member string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

func pathHasPrefix(path, prefix dbus.ObjectPath) bool {
	if prefix == "/" || path == prefix {
		return true
	}
	return strings.HasPrefix(string(path), string(prefix)+"/")
}

func escapeMatchArg(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	return "'" + s + "'"
}
