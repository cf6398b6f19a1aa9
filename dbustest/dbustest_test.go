package dbustest_test

import (
	"context"
	"testing"
	"time"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/dbustest"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
)

func TestBus(t *testing.T) {
	b := dbustest.New(t, true)
	conn := b.MustConn(t)
	if err := conn.Peer("org.freedesktop.DBus").Ping(context.Background()); err != nil {
		t.Fatalf("failed to ping test bus: %v", err)
	}
}

func TestBusExport(t *testing.T) {
	const (
		name  = "org.test.Service"
		path  = dbus.ObjectPath("/org/test/Thing")
		iface = "org.test.Thing"
	)
	b := dbustest.New(t, false)
	raw := b.MustRawConn(t, name)
	props, err := prop.Export(raw, path, prop.Map{
		iface: {
			"Name":  {Value: "thing", Emit: prop.EmitTrue},
			"Count": {Value: uint32(1), Emit: prop.EmitTrue},
		},
	})
	if err != nil {
		t.Fatalf("exporting properties: %v", err)
	}

	ctx := context.Background()
	conn := b.MustConn(t)
	obj := conn.Peer(name).Object(path)
	got, err := obj.Interface(iface).GetAllProperties(ctx)
	if err != nil {
		t.Fatalf("GetAllProperties() failed: %v", err)
	}
	if got["Name"] != "thing" || got["Count"] != uint32(1) {
		t.Errorf("GetAllProperties() = %v, want Name=thing Count=1", got)
	}

	w := conn.Watch()
	defer w.Close()
	if _, err := w.Match(ctx, bus.MatchPropertiesChanged(iface).Peer(name).Object(path)); err != nil {
		t.Fatalf("Match() failed: %v", err)
	}
	props.SetMust(iface, "Count", uint32(2))

	select {
	case n := <-w.Chan():
		if n.Member != "PropertiesChanged" || n.Path != path {
			t.Errorf("got %s on %s, want PropertiesChanged on %s", n.Member, n.Path, path)
		}
		changed, _ := n.Body[1].(map[string]dbus.Variant)
		if v := changed["Count"].Value(); v != uint32(2) {
			t.Errorf("changed Count = %v, want 2", v)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for PropertiesChanged")
	}
}
