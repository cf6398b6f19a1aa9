package proxy_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/dbustest"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

const (
	thingIface  = "com.example.Thing"
	extraIface  = "com.example.Thing.Extra"
	thingPath   = dbus.ObjectPath("/com/example/Thing/0")
	thingPeer   = "com.example"
	ifaceProps  = "org.freedesktop.DBus.Properties"
	waitTimeout = 5 * time.Second
)

type thing struct {
	Count int32
	Name  string
	Rest  map[string]any `dbus:"vardict"`
}

func decodeThing(props map[string]any) (thing, error) {
	var ret thing
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}

func newFake(t *testing.T) (*dbustest.Fake, *bus.Conn) {
	t.Helper()
	f := dbustest.NewFake()
	f.AddObject(thingPath, thingIface, map[string]any{
		"Count": int32(1),
		"Name":  "one",
	})
	conn := f.Conn()
	t.Cleanup(func() { conn.Close() })
	return f, conn
}

func thingObject(conn *bus.Conn) bus.Object {
	return conn.Peer(thingPeer).Object(thingPath)
}

func waitFor[T any](t *testing.T, sub *mirror.Subscription[T], pred func(T) bool) T {
	t.Helper()
	timeout := time.After(waitTimeout)
	for {
		select {
		case v, ok := <-sub.Chan():
			if !ok {
				t.Fatal("subscription closed while waiting")
			}
			if pred(v) {
				return v
			}
		case <-timeout:
			t.Fatal("timed out waiting for update")
		}
	}
}

func TestNew(t *testing.T) {
	_, conn := newFake(t)
	p, err := proxy.New(context.Background(), thingObject(conn), decodeThing, thingIface)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer p.Close()

	want := thing{Count: 1, Name: "one"}
	if diff := cmp.Diff(p.Properties(), want); diff != "" {
		t.Errorf("Properties() wrong result (-got+want):\n%s", diff)
	}
	if got, want := p.Path(), thingPath; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got, want := p.Interface().Name(), thingIface; got != want {
		t.Errorf("Interface() = %q, want %q", got, want)
	}
}

func TestNewMergesInterfaces(t *testing.T) {
	f, conn := newFake(t)
	f.AddObject(thingPath, extraIface, map[string]any{
		"Extra": "yes",
	})

	p, err := proxy.New(context.Background(), thingObject(conn), decodeThing, thingIface, extraIface)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer p.Close()

	want := thing{Count: 1, Name: "one", Rest: map[string]any{"Extra": "yes"}}
	if diff := cmp.Diff(p.Properties(), want); diff != "" {
		t.Errorf("Properties() wrong result (-got+want):\n%s", diff)
	}

	f.ChangeProperties(thingPath, extraIface, map[string]any{"Extra": "still yes"})
	sub := p.Subscribe()
	defer sub.Close()
	waitFor(t, sub, func(v thing) bool { return v.Rest["Extra"] == "still yes" })
}

func TestNewErrors(t *testing.T) {
	t.Run("missing object", func(t *testing.T) {
		_, conn := newFake(t)
		obj := conn.Peer(thingPeer).Object("/nonexistent")
		_, err := proxy.New(context.Background(), obj, decodeThing, thingIface)
		if err == nil {
			t.Fatal("New() of missing object succeeded")
		}
		if !strings.Contains(err.Error(), "getting all properties for object /nonexistent") {
			t.Errorf("New() error %q does not name the object", err)
		}
		var ce bus.CallError
		if !errors.As(err, &ce) {
			t.Errorf("New() error is not a CallError: %v", err)
		}
	})

	t.Run("watch fails", func(t *testing.T) {
		f, conn := newFake(t)
		f.FailAddMatch(errors.New("no more matches"))
		_, err := proxy.New(context.Background(), thingObject(conn), decodeThing, thingIface)
		if err == nil {
			t.Fatal("New() succeeded despite failed watch")
		}
		if got := f.Matches(); got != 0 {
			t.Errorf("New() leaked %d matches", got)
		}
	})

	t.Run("undecodable", func(t *testing.T) {
		f, conn := newFake(t)
		f.SetProperties(thingPath, thingIface, map[string]any{"Count": "lots"})
		_, err := proxy.New(context.Background(), thingObject(conn), decodeThing, thingIface)
		if err == nil {
			t.Fatal("New() succeeded with undecodable properties")
		}
		if got := f.Matches(); got != 0 {
			t.Errorf("New() leaked %d matches", got)
		}
	})

	t.Run("no interfaces", func(t *testing.T) {
		_, conn := newFake(t)
		if _, err := proxy.New(context.Background(), thingObject(conn), decodeThing); err == nil {
			t.Fatal("New() with no interfaces succeeded")
		}
	})
}

func TestPropertyChanges(t *testing.T) {
	f, conn := newFake(t)
	p, err := proxy.New(context.Background(), thingObject(conn), decodeThing, thingIface)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer p.Close()

	sub := p.Subscribe()
	defer sub.Close()
	waitFor(t, sub, func(v thing) bool { return v.Count == 1 })

	f.ChangeProperties(thingPath, thingIface, map[string]any{"Count": int32(2)})
	got := waitFor(t, sub, func(v thing) bool { return v.Count == 2 })
	if got.Name != "one" {
		t.Errorf("partial update lost Name, got %q", got.Name)
	}

	// Changes for other interfaces of the same object are ignored.
	f.Emit(thingPath, ifaceProps, "PropertiesChanged", "com.example.Other",
		map[string]dbus.Variant{"Count": dbus.MakeVariant(int32(100))}, []string{})
	// Malformed notifications are skipped.
	f.Emit(thingPath, ifaceProps, "PropertiesChanged", thingIface, "garbage", []string{})
	// As are updates that fail to decode.
	f.ChangeProperties(thingPath, thingIface, map[string]any{"Count": "many"})
	f.ChangeProperties(thingPath, thingIface, map[string]any{"Count": int32(3)})

	got = waitFor(t, sub, func(v thing) bool { return v.Count != 2 })
	if got.Count != 3 {
		t.Errorf("got Count=%d after bad notifications, want 3", got.Count)
	}
	if got, want := p.RawProperties()["Count"], any(int32(3)); got != want {
		t.Errorf("RawProperties()[Count] = %v, want %v", got, want)
	}
}

func TestRefresh(t *testing.T) {
	f, conn := newFake(t)
	p, err := proxy.New(context.Background(), thingObject(conn), decodeThing, thingIface)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer p.Close()

	f.SetProperties(thingPath, thingIface, map[string]any{"Name": "uno"})
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got, want := p.Properties().Name, "uno"; got != want {
		t.Errorf("Name after Refresh() = %q, want %q", got, want)
	}
}

func TestClose(t *testing.T) {
	f, conn := newFake(t)
	p, err := proxy.New(context.Background(), thingObject(conn), decodeThing, thingIface)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	sub := p.Subscribe()
	if got := f.Matches(); got != 1 {
		t.Errorf("proxy installed %d matches, want 1", got)
	}

	p.Close()
	p.Close()

	if got := f.Matches(); got != 0 {
		t.Errorf("closed proxy left %d matches", got)
	}
	timeout := time.After(waitTimeout)
	for {
		select {
		case _, ok := <-sub.Chan():
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("subscription not closed by proxy Close()")
		}
	}
}
