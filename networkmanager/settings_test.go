package networkmanager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danderson/cellnet/networkmanager"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func connectionSettings(t *testing.T) (*networkmanager.NetworkManager, *networkmanager.ConnectionSettingsManager) {
	t.Helper()
	_, m := newNetworkManager(t)
	s, err := m.ConnectionSettings(context.Background())
	if err != nil {
		t.Fatalf("ConnectionSettings() failed: %v", err)
	}
	return m, s
}

// unwrap converts a connection profile on the wire to plain values.
func unwrap(w map[string]map[string]dbus.Variant) map[string]map[string]any {
	ret := map[string]map[string]any{}
	for setting, vs := range w {
		props := map[string]any{}
		for k, v := range vs {
			props[k] = v.Value()
		}
		ret[setting] = props
	}
	return ret
}

func TestConnectionSettings(t *testing.T) {
	_, s := connectionSettings(t)
	ctx := context.Background()

	props := s.Properties()
	if got, want := props.Hostname, "harbor"; got != want {
		t.Errorf("Hostname = %q, want %q", got, want)
	}
	if !props.CanModify {
		t.Error("CanModify = false, want true")
	}

	paths, err := s.ListConnections(ctx)
	if err != nil {
		t.Fatalf("ListConnections() failed: %v", err)
	}
	if diff := cmp.Diff(paths, []dbus.ObjectPath{conPath}); diff != "" {
		t.Errorf("ListConnections() wrong (-got+want):\n%s", diff)
	}

	c, ok := s.Connection(conPath)
	if !ok {
		t.Fatalf("Connection(%s) not found", conPath)
	}
	if got, want := c.Properties().Filename, "/etc/NetworkManager/system-connections/wired.nmconnection"; got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}

	p, err := c.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if got, want := p.ID(), "Wired connection 1"; got != want {
		t.Errorf("ID() = %q, want %q", got, want)
	}
	if got, want := p.Type(), "802-3-ethernet"; got != want {
		t.Errorf("Type() = %q, want %q", got, want)
	}
	if got, want := p.UUID(), "5f5d6a3c-92b4-4a5c-9a38-3d1c3a4b1f00"; got != want {
		t.Errorf("UUID() = %q, want %q", got, want)
	}

	all, err := s.Profiles(ctx)
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	want := map[dbus.ObjectPath]networkmanager.Profile{
		conPath: networkmanager.Profile(unwrap(savedProfile())),
	}
	if diff := cmp.Diff(all, want); diff != "" {
		t.Errorf("Profiles() wrong (-got+want):\n%s", diff)
	}
}

func TestAddWifiWPAConnection(t *testing.T) {
	f, conn := newMock(t)
	m, err := networkmanager.New(context.Background(), conn)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer m.Close()
	s, err := m.ConnectionSettings(context.Background())
	if err != nil {
		t.Fatalf("ConnectionSettings() failed: %v", err)
	}

	const newPath = dbus.ObjectPath("/org/freedesktop/NetworkManager/Settings/2")
	var sent map[string]map[string]dbus.Variant
	f.Handle(networkmanager.SettingsPath, ifaceSettings, "AddConnection", func(args ...any) ([]any, error) {
		sent = args[0].(map[string]map[string]dbus.Variant)
		f.AddObject(newPath, ifaceConnection, map[string]any{"Unsaved": false, "Flags": uint32(0), "Filename": ""})
		return []any{newPath}, nil
	})

	path, err := s.AddWifiWPAConnection(context.Background(), "harbor", true, "hunter22")
	if err != nil {
		t.Fatalf("AddWifiWPAConnection() failed: %v", err)
	}
	if path != newPath {
		t.Errorf("AddWifiWPAConnection() = %q, want %q", path, newPath)
	}
	if _, ok := s.Connection(newPath); !ok {
		t.Error("new profile not in Connections()")
	}

	got := unwrap(sent)
	id, ok := got["connection"]["uuid"].(string)
	if !ok {
		t.Fatalf("profile has no uuid: %v", got)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("profile uuid %q is invalid: %v", id, err)
	}
	want := map[string]map[string]any{
		"connection": {
			"type":           "802-11-wireless",
			"interface-name": "wlan0",
			"uuid":           id,
			"id":             "harbor",
		},
		"802-11-wireless": {
			"ssid":     []byte("harbor"),
			"mode":     "infrastructure",
			"security": "802-11-wireless-security",
			"hidden":   true,
		},
		"802-11-wireless-security": {
			"key-mgmt": "wpa-psk",
			"auth-alg": "open",
			"psk":      "hunter22",
		},
		"ipv4": {"method": "auto"},
		"ipv6": {"method": "ignore"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("AddConnection() wrong profile (-got+want):\n%s", diff)
	}

	f.FailCall(networkmanager.SettingsPath, ifaceSettings, "AddConnection", errors.New("denied"))
	if _, err := s.AddWifiWPAConnection(context.Background(), "other", false, ""); err == nil {
		t.Error("AddWifiWPAConnection() succeeded, want error")
	}
}

func TestWifiWPAProfile(t *testing.T) {
	open := networkmanager.WifiWPAProfile("cafe", false, "")
	if _, ok := open["802-11-wireless-security"]; ok {
		t.Error("open profile has security settings")
	}
	wantWifi := map[string]any{
		"ssid": []byte("cafe"),
		"mode": "infrastructure",
	}
	if diff := cmp.Diff(open["802-11-wireless"], wantWifi); diff != "" {
		t.Errorf("open profile wifi settings wrong (-got+want):\n%s", diff)
	}
	if got, want := open.ID(), "cafe"; got != want {
		t.Errorf("ID() = %q, want %q", got, want)
	}
	if got, want := open.Type(), "802-11-wireless"; got != want {
		t.Errorf("Type() = %q, want %q", got, want)
	}

	other := networkmanager.WifiWPAProfile("cafe", false, "")
	if open.UUID() == other.UUID() {
		t.Errorf("two profiles share UUID %s", open.UUID())
	}
}

func TestConnectionSettingsTracks(t *testing.T) {
	f, conn := newMock(t)
	m, err := networkmanager.New(context.Background(), conn)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer m.Close()
	s, err := m.ConnectionSettings(context.Background())
	if err != nil {
		t.Fatalf("ConnectionSettings() failed: %v", err)
	}
	sub := s.SubscribeConnections()
	defer sub.Close()

	const newPath = dbus.ObjectPath("/org/freedesktop/NetworkManager/Settings/7")
	f.AddObject(newPath, ifaceConnection, map[string]any{"Unsaved": true})
	f.SetProperties(networkmanager.SettingsPath, ifaceSettings, map[string]any{
		"Connections": []dbus.ObjectPath{conPath, newPath},
	})
	f.Emit(networkmanager.SettingsPath, ifaceSettings, "NewConnection", newPath)
	eventually(t, "profile 7 to appear", func() bool {
		_, ok := s.Connection(newPath)
		return ok
	})
	c, _ := s.Connection(newPath)
	if !c.Properties().Unsaved {
		t.Error("Unsaved = false, want true")
	}

	var last []dbus.ObjectPath
	eventually(t, "subscription to report profile 7", func() bool {
		select {
		case last = <-sub.Chan():
		default:
		}
		return len(last) == 2
	})

	f.RemoveObject(newPath)
	f.Emit(networkmanager.SettingsPath, ifaceSettings, "ConnectionRemoved", newPath)
	eventually(t, "profile 7 to disappear", func() bool {
		_, ok := s.Connection(newPath)
		return !ok
	})
	var paths []dbus.ObjectPath
	for _, c := range s.Connections() {
		paths = append(paths, c.Path())
	}
	if diff := cmp.Diff(paths, []dbus.ObjectPath{conPath}); diff != "" {
		t.Errorf("Connections() wrong paths (-got+want):\n%s", diff)
	}
}

func TestConnectionMethods(t *testing.T) {
	f, conn := newMock(t)
	m, err := networkmanager.New(context.Background(), conn)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer m.Close()
	s, err := m.ConnectionSettings(context.Background())
	if err != nil {
		t.Fatalf("ConnectionSettings() failed: %v", err)
	}
	ctx := context.Background()
	c, ok := s.Connection(conPath)
	if !ok {
		t.Fatalf("Connection(%s) not found", conPath)
	}

	update := record(f, conPath, ifaceConnection, "Update")
	p := networkmanager.Profile{
		"connection": {"id": "renamed", "uuid": nil},
		"ipv4":       {"method": "manual"},
	}
	if err := c.Update(ctx, p); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if len(*update) != 1 {
		t.Fatalf("Update() sent %d args, want 1", len(*update))
	}
	wantUpdate := map[string]map[string]any{
		"connection": {"id": "renamed"},
		"ipv4":       {"method": "manual"},
	}
	if diff := cmp.Diff(unwrap((*update)[0].(map[string]map[string]dbus.Variant)), wantUpdate); diff != "" {
		t.Errorf("Update() wrong profile (-got+want):\n%s", diff)
	}

	hostname := record(f, networkmanager.SettingsPath, ifaceSettings, "SaveHostname")
	if err := s.SaveHostname(ctx, "lighthouse"); err != nil {
		t.Fatalf("SaveHostname() failed: %v", err)
	}
	if diff := cmp.Diff(*hostname, []any{"lighthouse"}); diff != "" {
		t.Errorf("SaveHostname() wrong args (-got+want):\n%s", diff)
	}

	record(f, conPath, ifaceConnection, "Delete")
	if err := s.RemoveConnectionProfile(ctx, conPath); err != nil {
		t.Fatalf("RemoveConnectionProfile() failed: %v", err)
	}
	if _, ok := s.Connection(conPath); ok {
		t.Error("removed profile still in Connections()")
	}

	f.FailCall(conPath, ifaceConnection, "Delete", errors.New("denied"))
	if err := s.RemoveConnectionProfile(ctx, conPath); err == nil {
		t.Error("RemoveConnectionProfile() succeeded, want error")
	}
}
