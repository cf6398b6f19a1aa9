package main

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/creachadair/command"
	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/modemmanager"
	"github.com/danderson/cellnet/networkmanager"
	"github.com/godbus/dbus/v5"
	"github.com/kr/pretty"
)

func runListen(env *command.Env) error {
	conn, err := busConn(env.Context())
	if err != nil {
		return err
	}
	defer conn.Close()

	w := conn.Watch()
	defer w.Close()
	ctx, cancel := opContext(env)
	defer cancel()
	ms := []*bus.Match{
		bus.MatchPropertiesChanged("").Peer(modemmanager.Service).ObjectPrefix(modemmanager.ManagerPath),
		bus.MatchPropertiesChanged("").Peer(networkmanager.Service).ObjectPrefix(networkmanager.Path),
		bus.MatchSignal("org.freedesktop.DBus.ObjectManager", "InterfacesAdded").Peer(modemmanager.Service),
		bus.MatchSignal("org.freedesktop.DBus.ObjectManager", "InterfacesRemoved").Peer(modemmanager.Service),
	}
	for _, m := range ms {
		if _, err := w.Match(ctx, m); err != nil {
			return fmt.Errorf("adding match %s: %w", m, err)
		}
	}
	cancel()

	var out indenter
	for {
		select {
		case <-env.Context().Done():
			return nil
		case n, ok := <-w.Chan():
			if !ok {
				return nil
			}
			out.indent(0)
			out.f("%s %s %s.%s", time.Now().Format(time.TimeOnly), n.Path, n.Interface, n.Member)
			out.indent(1)
			printSignal(&out, n)
			if n.Overflow {
				out.indent(0)
				out.s("(notifications lost)")
			}
		}
	}
}

func printSignal(out *indenter, n *bus.Notification) {
	if n.Member != "PropertiesChanged" || len(n.Body) != 3 {
		out.f("%# v", pretty.Formatter(n.Body))
		return
	}
	iface, _ := n.Body[0].(string)
	changed, _ := n.Body[1].(map[string]dbus.Variant)
	invalidated, _ := n.Body[2].([]string)
	out.v(iface)
	out.indent(2)
	for _, k := range slices.Sorted(maps.Keys(changed)) {
		out.f("%s: %# v", k, pretty.Formatter(changed[k].Value()))
	}
	for _, k := range invalidated {
		out.f("%s: (invalidated)", k)
	}
}
