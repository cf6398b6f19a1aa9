// Package proxy implements the machinery shared by all remote object
// proxies: fetching an object's properties, mirroring them locally,
// and keeping the mirror current as change notifications arrive.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
)

const ifaceProps = "org.freedesktop.DBus.Properties"

// refetchTimeout bounds the full property re-fetch done after a
// notification overflow.
const refetchTimeout = 30 * time.Second

// Base is a mirrored remote object. Its properties are the merge of
// one or more interfaces of the object, decoded into a record of type
// T.
type Base[T any] struct {
	obj    bus.Object
	ifaces []string
	logger *slog.Logger

	mirror  *mirror.Mirror[T]
	watcher *bus.Watcher

	ctx       context.Context
	cancel    context.CancelFunc
	loopDone  chan struct{}
	closeOnce sync.Once
}

// New fetches the properties of obj for the given interfaces, starts
// watching them for changes, and returns the resulting mirrored
// object. The first interface is the object's primary interface.
//
// A change that the remote object makes between the initial fetch and
// the start of the watch is not observed until the next change to the
// same property.
//
// If any step fails, New releases everything it acquired and returns
// an error.
func New[T any](ctx context.Context, obj bus.Object, decode mirror.DecodeFunc[T], ifaces ...string) (*Base[T], error) {
	if len(ifaces) == 0 {
		return nil, errors.New("proxy needs at least one interface")
	}
	ifaces = slices.Clone(ifaces)

	raw, err := fetchAll(ctx, obj, ifaces)
	if err != nil {
		return nil, err
	}

	w := obj.Conn().Watch()
	for _, iface := range ifaces {
		m := bus.MatchPropertiesChanged(iface).Peer(obj.Peer().Name()).Object(obj.Path())
		if _, err := w.Match(ctx, m); err != nil {
			w.Close()
			return nil, fmt.Errorf("watching properties for object %s with interface %s: %w", obj.Path(), iface, err)
		}
	}

	mr, err := mirror.New(raw, decode)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("object %s: %w", obj.Path(), err)
	}

	ret := &Base[T]{
		obj:      obj,
		ifaces:   ifaces,
		logger:   obj.Conn().Logger().With("path", obj.Path(), "interface", ifaces[0]),
		mirror:   mr,
		watcher:  w,
		loopDone: make(chan struct{}),
	}
	ret.ctx, ret.cancel = context.WithCancel(context.Background())
	go ret.loop()
	ret.logger.Debug("proxy created")
	return ret, nil
}

func fetchAll(ctx context.Context, obj bus.Object, ifaces []string) (map[string]any, error) {
	ret := map[string]any{}
	for _, iface := range ifaces {
		props, err := obj.Interface(iface).GetAllProperties(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting all properties for object %s with interface %s: %w", obj.Path(), iface, err)
		}
		maps.Copy(ret, props)
	}
	return ret, nil
}

// Object returns the remote object.
func (b *Base[T]) Object() bus.Object { return b.obj }

// Path returns the remote object's path.
func (b *Base[T]) Path() dbus.ObjectPath { return b.obj.Path() }

// Interface returns the object's primary interface.
func (b *Base[T]) Interface() bus.Interface { return b.obj.Interface(b.ifaces[0]) }

// Logger returns a logger annotated with the object's identity.
func (b *Base[T]) Logger() *slog.Logger { return b.logger }

// Properties returns the current decoded properties.
func (b *Base[T]) Properties() T { return b.mirror.Snapshot() }

// RawProperties returns a copy of the current raw property set.
func (b *Base[T]) RawProperties() map[string]any { return b.mirror.Raw() }

// Subscribe returns a subscription to the object's properties. The
// current properties are delivered first.
func (b *Base[T]) Subscribe() *mirror.Subscription[T] { return b.mirror.Subscribe() }

// Call calls method on the object's primary interface.
func (b *Base[T]) Call(ctx context.Context, method string, body any, response any) error {
	return b.Interface().Call(ctx, method, body, response)
}

// Refresh fetches every property again and merges the result into the
// mirror.
func (b *Base[T]) Refresh(ctx context.Context) error {
	raw, err := fetchAll(ctx, b.obj, b.ifaces)
	if err != nil {
		return err
	}
	return b.mirror.Apply(raw)
}

// Close stops watching the remote object and closes all property
// subscriptions. It is safe to call Close more than once.
func (b *Base[T]) Close() {
	b.closeOnce.Do(func() {
		b.cancel()
		b.watcher.Close()
		<-b.loopDone
		b.mirror.Close()
		b.logger.Debug("proxy closed")
	})
}

func (b *Base[T]) loop() {
	defer close(b.loopDone)
	for n := range b.watcher.Chan() {
		if n.Interface == ifaceProps && n.Member == "PropertiesChanged" {
			b.applyChange(n)
		}
		if n.Overflow {
			b.logger.Warn("property notifications lost, refetching")
			ctx, cancel := context.WithTimeout(b.ctx, refetchTimeout)
			if err := b.Refresh(ctx); err != nil && b.ctx.Err() == nil {
				b.logger.Warn("refetching properties", "err", err)
			}
			cancel()
		}
	}
}

// applyChange merges the changed properties of a PropertiesChanged
// notification. Invalidated properties are not refetched.
func (b *Base[T]) applyChange(n *bus.Notification) {
	update, err := parsePropertiesChanged(n.Body, b.ifaces)
	if err != nil {
		b.logger.Warn("malformed property notification", "err", err)
		return
	}
	if update == nil {
		return
	}
	if err := b.mirror.Apply(update); err != nil && !errors.Is(err, mirror.ErrClosed) {
		b.logger.Warn("rejected property notification", "err", err)
	}
}

// parsePropertiesChanged extracts the changed properties from the
// body of a PropertiesChanged signal. It returns nil, nil if the
// signal concerns an interface not in ifaces.
func parsePropertiesChanged(body []any, ifaces []string) (map[string]any, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("PropertiesChanged body has %d values, want 3", len(body))
	}
	iface, ok := body[0].(string)
	if !ok {
		return nil, fmt.Errorf("PropertiesChanged interface is %T, want string", body[0])
	}
	if !slices.Contains(ifaces, iface) {
		return nil, nil
	}
	changed, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("PropertiesChanged changed properties are %T, want map[string]dbus.Variant", body[1])
	}
	ret := make(map[string]any, len(changed))
	for k, v := range changed {
		ret[k] = v.Value()
	}
	return ret, nil
}
