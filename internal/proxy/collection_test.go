package proxy_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/danderson/cellnet/internal/proxy"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

type fakeProxy struct {
	path dbus.ObjectPath

	mu     sync.Mutex
	closed int
}

func (p *fakeProxy) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed++
}

func (p *fakeProxy) closeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

type builder struct {
	mu    sync.Mutex
	fail  map[dbus.ObjectPath]bool
	built []*fakeProxy
}

func (b *builder) build(ctx context.Context, path dbus.ObjectPath) (*fakeProxy, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail[path] {
		return nil, errors.New("build failed")
	}
	ret := &fakeProxy{path: path}
	b.built = append(b.built, ret)
	return ret, nil
}

func (b *builder) all() []*fakeProxy {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*fakeProxy(nil), b.built...)
}

func newCollection(t *testing.T) (*builder, *proxy.Collection[*fakeProxy]) {
	b := &builder{fail: map[dbus.ObjectPath]bool{}}
	c := proxy.NewCollection(slog.Default(), b.build)
	t.Cleanup(c.Close)
	return b, c
}

func paths(ps ...string) []dbus.ObjectPath {
	var ret []dbus.ObjectPath
	for _, p := range ps {
		ret = append(ret, dbus.ObjectPath(p))
	}
	return ret
}

func TestCollectionPopulate(t *testing.T) {
	b, c := newCollection(t)
	ctx := context.Background()

	if err := c.Populate(ctx, paths("/b", "/a", "/c", "/a")); err != nil {
		t.Fatalf("Populate() failed: %v", err)
	}
	if diff := cmp.Diff(c.Paths(), paths("/a", "/b", "/c")); diff != "" {
		t.Errorf("Paths() wrong result (-got+want):\n%s", diff)
	}
	if got := len(b.all()); got != 3 {
		t.Errorf("Populate() built %d proxies, want 3", got)
	}
	var got []dbus.ObjectPath
	for _, p := range c.All() {
		got = append(got, p.path)
	}
	if diff := cmp.Diff(got, paths("/a", "/b", "/c")); diff != "" {
		t.Errorf("All() wrong order (-got+want):\n%s", diff)
	}
}

func TestCollectionPopulateAtomic(t *testing.T) {
	b, c := newCollection(t)
	b.fail["/b"] = true

	if err := c.Populate(context.Background(), paths("/a", "/b", "/c")); err == nil {
		t.Fatal("Populate() succeeded despite a failed build")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("failed Populate() left %d proxies in collection", got)
	}
	for _, p := range b.all() {
		if p.closeCount() != 1 {
			t.Errorf("proxy %s closed %d times after failed Populate(), want 1", p.path, p.closeCount())
		}
	}
}

func TestCollectionAddRemove(t *testing.T) {
	b, c := newCollection(t)
	ctx := context.Background()

	sub := c.Subscribe()
	defer sub.Close()
	next := func() []dbus.ObjectPath {
		t.Helper()
		select {
		case v := <-sub.Chan():
			return v
		case <-time.After(waitTimeout):
			t.Fatal("timed out waiting for membership update")
		}
		return nil
	}
	if diff := cmp.Diff(next(), []dbus.ObjectPath{}); diff != "" {
		t.Errorf("initial membership wrong (-got+want):\n%s", diff)
	}

	if err := c.Add(ctx, "/a"); err != nil {
		t.Fatalf("Add(/a) failed: %v", err)
	}
	if diff := cmp.Diff(next(), paths("/a")); diff != "" {
		t.Errorf("membership after Add wrong (-got+want):\n%s", diff)
	}
	// Adding a present object is a no-op.
	if err := c.Add(ctx, "/a"); err != nil {
		t.Fatalf("second Add(/a) failed: %v", err)
	}
	if got := len(b.all()); got != 1 {
		t.Errorf("duplicate Add() built a proxy, have %d", got)
	}

	b.fail["/bad"] = true
	if err := c.Add(ctx, "/bad"); err == nil {
		t.Error("Add(/bad) succeeded despite failed build")
	}
	if _, ok := c.Get("/bad"); ok {
		t.Error("failed Add() left a proxy in the collection")
	}

	a, _ := c.Get("/a")
	if !c.Remove("/a") {
		t.Error("Remove(/a) reported absent")
	}
	if c.Remove("/a") {
		t.Error("second Remove(/a) reported present")
	}
	if got := a.closeCount(); got != 1 {
		t.Errorf("removed proxy closed %d times, want 1", got)
	}
	if diff := cmp.Diff(next(), []dbus.ObjectPath{}); diff != "" {
		t.Errorf("membership after Remove wrong (-got+want):\n%s", diff)
	}
}

func TestCollectionSync(t *testing.T) {
	b, c := newCollection(t)
	ctx := context.Background()
	if err := c.Populate(ctx, paths("/a", "/b")); err != nil {
		t.Fatalf("Populate() failed: %v", err)
	}
	a, _ := c.Get("/a")

	b.fail["/d"] = true
	err := c.Sync(ctx, paths("/b", "/c", "/d"))
	if err == nil {
		t.Error("Sync() did not report failed build")
	}
	if diff := cmp.Diff(c.Paths(), paths("/b", "/c")); diff != "" {
		t.Errorf("Paths() after Sync wrong (-got+want):\n%s", diff)
	}
	if a.closeCount() != 1 {
		t.Error("Sync() did not close removed proxy")
	}
}

func TestCollectionClose(t *testing.T) {
	b, c := newCollection(t)
	ctx := context.Background()
	if err := c.Populate(ctx, paths("/a", "/b")); err != nil {
		t.Fatalf("Populate() failed: %v", err)
	}
	c.Close()
	c.Close()

	for _, p := range b.all() {
		if p.closeCount() != 1 {
			t.Errorf("proxy %s closed %d times, want 1", p.path, p.closeCount())
		}
	}
	if _, ok := c.Get("/a"); ok {
		t.Error("Get() after Close() found a proxy")
	}
	if err := c.Add(ctx, "/z"); !errors.Is(err, proxy.ErrClosed) {
		t.Errorf("Add() after Close() = %v, want ErrClosed", err)
	}
	all := b.all()
	if last := all[len(all)-1]; last.closeCount() != 1 {
		t.Error("proxy built after Close() was not closed")
	}
}
