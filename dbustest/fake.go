package dbustest

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/danderson/cellnet/bus"
	"github.com/godbus/dbus/v5"
)

const (
	ifaceProps         = "org.freedesktop.DBus.Properties"
	ifaceObjectManager = "org.freedesktop.DBus.ObjectManager"
)

// Method implements a fake method call. It receives the call
// arguments and returns the reply body.
type Method func(args ...any) ([]any, error)

// Fake is an in-memory [bus.Backend] that serves a tree of fake
// objects.
//
// Property values must be representable on the bus. Structs should be
// given as []any, the way the bus library decodes them, so that
// consumers see the same values they would from a real peer.
type Fake struct {
	mu        sync.Mutex
	closed    chan struct{}
	objects   map[dbus.ObjectPath]map[string]map[string]any
	methods   map[string]Method
	signals   []chan<- *dbus.Signal
	matches   map[string]int
	calls     []string
	matchErr  error
	callErrs  map[string]error
	closeOnce sync.Once
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		closed:   make(chan struct{}),
		objects:  map[dbus.ObjectPath]map[string]map[string]any{},
		methods:  map[string]Method{},
		matches:  map[string]int{},
		callErrs: map[string]error{},
	}
}

// Conn returns a bus connection backed by f.
func (f *Fake) Conn(opts ...bus.Option) *bus.Conn {
	return bus.New(f, opts...)
}

// AddObject adds the interface iface with the given properties to
// the object at path, creating the object if needed.
func (f *Fake) AddObject(path dbus.ObjectPath, iface string, props map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj := f.objects[path]
	if obj == nil {
		obj = map[string]map[string]any{}
		f.objects[path] = obj
	}
	obj[iface] = maps.Clone(props)
	if obj[iface] == nil {
		obj[iface] = map[string]any{}
	}
}

// RemoveObject deletes the object at path.
func (f *Fake) RemoveObject(path dbus.ObjectPath) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, path)
}

// Handle registers fn as the implementation of iface.method on the
// object at path.
func (f *Fake) Handle(path dbus.ObjectPath, iface, method string, fn Method) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.methods[methodKey(path, iface+"."+method)] = fn
}

// FailCall makes every call of iface.method on path fail with err,
// until cleared with a nil err.
func (f *Fake) FailCall(path dbus.ObjectPath, iface, method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.callErrs, methodKey(path, iface+"."+method))
		return
	}
	f.callErrs[methodKey(path, iface+"."+method)] = err
}

// FailAddMatch makes subsequent AddMatch calls fail with err, until
// cleared with a nil err.
func (f *Fake) FailAddMatch(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchErr = err
}

// Property returns the current value of a fake property.
func (f *Fake) Property(path dbus.ObjectPath, iface, name string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.objects[path][iface][name]
	return v, ok
}

// SetProperties updates properties of the object at path without
// emitting a change signal.
func (f *Fake) SetProperties(path dbus.ObjectPath, iface string, props map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if obj := f.objects[path]; obj != nil && obj[iface] != nil {
		maps.Copy(obj[iface], props)
	}
}

// ChangeProperties updates properties of the object at path and emits
// the corresponding PropertiesChanged signal.
func (f *Fake) ChangeProperties(path dbus.ObjectPath, iface string, props map[string]any) {
	f.SetProperties(path, iface, props)
	changed := make(map[string]dbus.Variant, len(props))
	for k, v := range props {
		changed[k] = dbus.MakeVariant(v)
	}
	f.Emit(path, ifaceProps, "PropertiesChanged", iface, changed, []string{})
}

// Emit delivers a signal to every connection using f.
func (f *Fake) Emit(path dbus.ObjectPath, iface, member string, body ...any) {
	f.mu.Lock()
	chs := slices.Clone(f.signals)
	f.mu.Unlock()

	sig := &dbus.Signal{
		Sender: ":1.1",
		Path:   path,
		Name:   iface + "." + member,
		Body:   body,
	}
	for _, ch := range chs {
		select {
		case ch <- sig:
		case <-f.closed:
			return
		}
	}
}

// Calls returns the methods invoked so far, formatted as
// "path interface.Member", excluding property accesses.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// Matches returns the number of match rules currently installed.
func (f *Fake) Matches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	ret := 0
	for _, n := range f.matches {
		ret += n
	}
	return ret
}

func (f *Fake) Call(ctx context.Context, peer string, path dbus.ObjectPath, method string, args ...any) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case <-f.closed:
		return nil, bus.ErrClosed
	default:
	}

	f.mu.Lock()
	if err, ok := f.callErrs[methodKey(path, method)]; ok {
		f.mu.Unlock()
		return nil, err
	}
	fn, ok := f.methods[methodKey(path, method)]
	if !strings.HasPrefix(method, ifaceProps+".") {
		f.calls = append(f.calls, methodKey(path, method))
	}
	f.mu.Unlock()

	if ok {
		return fn(args...)
	}

	switch method {
	case ifaceProps + ".GetAll":
		return f.getAll(path, args)
	case ifaceProps + ".Get":
		return f.get(path, args)
	case ifaceProps + ".Set":
		return f.set(path, args)
	case ifaceObjectManager + ".GetManagedObjects":
		return f.managedObjects(path)
	case "org.freedesktop.DBus.Peer.Ping":
		return nil, nil
	}
	return nil, dbus.Error{
		Name: "org.freedesktop.DBus.Error.UnknownMethod",
		Body: []any{fmt.Sprintf("no method %s on %s", method, path)},
	}
}

func (f *Fake) AddMatch(ctx context.Context, m *bus.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.matchErr != nil {
		return f.matchErr
	}
	f.matches[m.String()]++
	return nil
}

func (f *Fake) RemoveMatch(ctx context.Context, m *bus.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := m.String()
	if f.matches[k] == 0 {
		return dbus.Error{Name: "org.freedesktop.DBus.Error.MatchRuleNotFound"}
	}
	f.matches[k]--
	if f.matches[k] == 0 {
		delete(f.matches, k)
	}
	return nil
}

func (f *Fake) Signal(ch chan<- *dbus.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signals = append(f.signals, ch)
}

func (f *Fake) Close() error {
	f.closeOnce.Do(func() { close(f.closed) })
	return nil
}

func (f *Fake) lookup(path dbus.ObjectPath, args []any) (string, map[string]any, error) {
	if len(args) == 0 {
		return "", nil, dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}
	}
	iface, _ := args[0].(string)
	obj, ok := f.objects[path]
	if !ok {
		return "", nil, dbus.Error{
			Name: "org.freedesktop.DBus.Error.UnknownObject",
			Body: []any{fmt.Sprintf("no object %s", path)},
		}
	}
	props, ok := obj[iface]
	if !ok {
		return "", nil, dbus.Error{
			Name: "org.freedesktop.DBus.Error.UnknownInterface",
			Body: []any{fmt.Sprintf("no interface %s on %s", iface, path)},
		}
	}
	return iface, props, nil
}

func (f *Fake) getAll(path dbus.ObjectPath, args []any) ([]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, props, err := f.lookup(path, args)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]dbus.Variant, len(props))
	for k, v := range props {
		ret[k] = dbus.MakeVariant(v)
	}
	return []any{ret}, nil
}

func (f *Fake) get(path dbus.ObjectPath, args []any) ([]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, props, err := f.lookup(path, args)
	if err != nil {
		return nil, err
	}
	name, _ := args[1].(string)
	v, ok := props[name]
	if !ok {
		return nil, dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownProperty", Body: []any{name}}
	}
	return []any{dbus.MakeVariant(v)}, nil
}

func (f *Fake) set(path dbus.ObjectPath, args []any) ([]any, error) {
	if len(args) != 3 {
		return nil, dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}
	}
	f.mu.Lock()
	iface, _, err := f.lookup(path, args)
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	name, _ := args[1].(string)
	v, ok := args[2].(dbus.Variant)
	if !ok {
		return nil, dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}
	}
	f.ChangeProperties(path, iface, map[string]any{name: v.Value()})
	return nil, nil
}

func (f *Fake) managedObjects(root dbus.ObjectPath) ([]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ret := map[dbus.ObjectPath]map[string]map[string]dbus.Variant{}
	for path, ifaces := range f.objects {
		if path == root || !strings.HasPrefix(string(path), string(root)+"/") {
			continue
		}
		out := map[string]map[string]dbus.Variant{}
		for iface, props := range ifaces {
			vs := map[string]dbus.Variant{}
			for k, v := range props {
				vs[k] = dbus.MakeVariant(v)
			}
			out[iface] = vs
		}
		ret[path] = out
	}
	return []any{ret}, nil
}

func methodKey(path dbus.ObjectPath, method string) string {
	return string(path) + " " + method
}
