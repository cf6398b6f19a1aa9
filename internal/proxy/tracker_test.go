package proxy_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/dbustest"
	"github.com/danderson/cellnet/internal/proxy"
)

func TestTracker(t *testing.T) {
	f := dbustest.NewFake()
	conn := f.Conn()
	defer conn.Close()

	got := make(chan string, 10)
	handle := func(ctx context.Context, n *bus.Notification) {
		got <- n.Member + " " + string(n.Path)
	}
	resync := func(context.Context) error { return nil }
	ms := []*bus.Match{
		bus.MatchSignal(thingIface, "Added").Peer(thingPeer),
		bus.MatchSignal(thingIface, "Removed").Peer(thingPeer),
	}
	tr, err := proxy.NewTracker(context.Background(), conn, slog.Default(), ms, handle, resync)
	if err != nil {
		t.Fatalf("NewTracker() failed: %v", err)
	}
	if got := f.Matches(); got != 2 {
		t.Errorf("tracker installed %d matches, want 2", got)
	}

	f.Emit("/a", thingIface, "Added")
	select {
	case s := <-got:
		t.Fatalf("tracker handled %q before Start()", s)
	case <-time.After(50 * time.Millisecond):
	}

	tr.Start()
	f.Emit("/a", thingIface, "Removed")
	f.Emit("/b", thingIface, "Ignored")
	f.Emit("/c", thingIface, "Added")
	for _, want := range []string{"Added /a", "Removed /a", "Added /c"} {
		select {
		case s := <-got:
			if s != want {
				t.Errorf("handled %q, want %q", s, want)
			}
		case <-time.After(waitTimeout):
			t.Fatalf("timed out waiting for %q", want)
		}
	}

	tr.Close()
	tr.Close()
	if got := f.Matches(); got != 0 {
		t.Errorf("closed tracker left %d matches", got)
	}
}

func TestTrackerMatchFailure(t *testing.T) {
	f := dbustest.NewFake()
	conn := f.Conn()
	defer conn.Close()

	f.FailAddMatch(context.DeadlineExceeded)
	ms := []*bus.Match{bus.MatchSignal(thingIface, "Added")}
	_, err := proxy.NewTracker(context.Background(), conn, slog.Default(), ms, nil, nil)
	if err == nil {
		t.Fatal("NewTracker() succeeded despite failed match")
	}
}
