package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
	"golang.org/x/sync/errgroup"
)

// Closer is a proxy that can be shut down.
type Closer interface {
	Close()
}

// BuildFunc constructs the proxy for the object at path.
type BuildFunc[P Closer] func(ctx context.Context, path dbus.ObjectPath) (P, error)

// Collection is a set of proxies keyed by object path.
//
// Proxies are added and removed as the remote service reports objects
// appearing and disappearing. Subscribers receive the sorted list of
// object paths after every change.
type Collection[P Closer] struct {
	build  BuildFunc[P]
	logger *slog.Logger
	paths  *mirror.Stream[[]dbus.ObjectPath]

	mu     sync.Mutex
	items  map[dbus.ObjectPath]P
	closed bool
}

// NewCollection returns an empty collection whose proxies are created
// by build.
func NewCollection[P Closer](logger *slog.Logger, build BuildFunc[P]) *Collection[P] {
	return &Collection[P]{
		build:  build,
		logger: logger,
		paths:  mirror.NewStream([]dbus.ObjectPath{}),
		items:  map[dbus.ObjectPath]P{},
	}
}

// Populate builds proxies for all paths concurrently and adds them to
// the collection. If any proxy fails to build, every proxy built by
// this call is closed and the collection is left unchanged.
func (c *Collection[P]) Populate(ctx context.Context, paths []dbus.ObjectPath) error {
	paths = slices.Compact(slices.Sorted(slices.Values(paths)))
	built := make([]P, len(paths))
	ok := make([]bool, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			p, err := c.build(gctx, path)
			if err != nil {
				return err
			}
			built[i], ok[i] = p, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for i := range built {
			if ok[i] {
				built[i].Close()
			}
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		for _, p := range built {
			p.Close()
		}
		return ErrClosed
	}
	for i, path := range paths {
		if old, exists := c.items[path]; exists {
			old.Close()
		}
		c.items[path] = built[i]
	}
	c.publishLocked()
	return nil
}

// ErrClosed is returned when adding to a closed Collection.
var ErrClosed = errors.New("collection closed")

// Add builds and adds the proxy for path, if the collection does not
// already have one.
func (c *Collection[P]) Add(ctx context.Context, path dbus.ObjectPath) error {
	if _, ok := c.Get(path); ok {
		return nil
	}
	p, err := c.build(ctx, path)
	if err != nil {
		return fmt.Errorf("adding %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		p.Close()
		return ErrClosed
	}
	if _, ok := c.items[path]; ok {
		// Lost a race with another Add.
		p.Close()
		return nil
	}
	c.items[path] = p
	c.publishLocked()
	c.logger.Debug("object added", "path", path)
	return nil
}

// Remove closes and removes the proxy for path. It reports whether
// the collection had a proxy for path.
func (c *Collection[P]) Remove(path dbus.ObjectPath) bool {
	c.mu.Lock()
	p, ok := c.items[path]
	if ok {
		delete(c.items, path)
		c.publishLocked()
	}
	c.mu.Unlock()

	if ok {
		p.Close()
		c.logger.Debug("object removed", "path", path)
	}
	return ok
}

// Sync makes the collection hold exactly the proxies for paths,
// removing proxies for paths not listed and adding the missing ones.
// Sync keeps going when a proxy fails to build, and returns all such
// failures.
func (c *Collection[P]) Sync(ctx context.Context, paths []dbus.ObjectPath) error {
	want := map[dbus.ObjectPath]bool{}
	for _, p := range paths {
		want[p] = true
	}
	for _, p := range c.Paths() {
		if !want[p] {
			c.Remove(p)
		}
	}
	var errs []error
	for _, p := range slices.Sorted(maps.Keys(want)) {
		if err := c.Add(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Get returns the proxy for path, if any.
func (c *Collection[P]) Get(path dbus.ObjectPath) (P, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.items[path]
	return p, ok
}

// Paths returns the sorted object paths in the collection.
func (c *Collection[P]) Paths() []dbus.ObjectPath {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Sorted(maps.Keys(c.items))
}

// All returns the proxies in the collection, sorted by object path.
func (c *Collection[P]) All() []P {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := make([]P, 0, len(c.items))
	for _, path := range slices.Sorted(maps.Keys(c.items)) {
		ret = append(ret, c.items[path])
	}
	return ret
}

// Len returns the number of proxies in the collection.
func (c *Collection[P]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Subscribe returns a subscription to the collection's membership.
// The current sorted object paths are delivered first, followed by
// the new list after every change.
func (c *Collection[P]) Subscribe() *mirror.Subscription[[]dbus.ObjectPath] {
	return c.paths.Subscribe()
}

// Close closes every proxy in the collection and all membership
// subscriptions. The collection stays empty afterwards. It is safe to
// call Close more than once.
func (c *Collection[P]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	items := c.items
	c.items = map[dbus.ObjectPath]P{}
	c.mu.Unlock()

	for _, path := range slices.Sorted(maps.Keys(items)) {
		items[path].Close()
	}
	c.paths.Close()
}

func (c *Collection[P]) publishLocked() {
	ps := slices.Sorted(maps.Keys(c.items))
	if ps == nil {
		ps = []dbus.ObjectPath{}
	}
	c.paths.Publish(ps)
}
