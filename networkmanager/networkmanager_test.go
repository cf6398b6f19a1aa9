package networkmanager_test

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/danderson/cellnet/networkmanager"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

func devicePaths(ds []networkmanager.Device) []dbus.ObjectPath {
	var ret []dbus.ObjectPath
	for _, d := range ds {
		ret = append(ret, d.Path())
	}
	return ret
}

func TestNetworkManager(t *testing.T) {
	_, m := newNetworkManager(t)

	props := m.Properties()
	if got, want := props.Version, "1.46.0"; got != want {
		t.Errorf("Version = %q, want %q", got, want)
	}
	if got, want := props.State, networkmanager.NetworkManagerStateConnectedGlobal; got != want {
		t.Errorf("State = %v, want %v", got, want)
	}
	if got, want := props.Connectivity, networkmanager.ConnectivityStateFull; got != want {
		t.Errorf("Connectivity = %v, want %v", got, want)
	}
	if !props.WirelessEnabled {
		t.Error("WirelessEnabled = false, want true")
	}

	want := []dbus.ObjectPath{wlanPath, ethPath, loPath}
	if diff := cmp.Diff(devicePaths(m.Devices()), want); diff != "" {
		t.Errorf("Devices() wrong paths (-got+want):\n%s", diff)
	}

	d, ok := m.Device(wlanPath)
	if !ok {
		t.Fatalf("Device(%s) not found", wlanPath)
	}
	if _, ok := d.(*networkmanager.WifiDevice); !ok {
		t.Errorf("Device(%s) is %T, want *WifiDevice", wlanPath, d)
	}
	d, ok = m.Device(ethPath)
	if !ok {
		t.Fatalf("Device(%s) not found", ethPath)
	}
	if _, ok := d.(*networkmanager.EthernetDevice); !ok {
		t.Errorf("Device(%s) is %T, want *EthernetDevice", ethPath, d)
	}
	d, ok = m.Device(loPath)
	if !ok {
		t.Fatalf("Device(%s) not found", loPath)
	}
	if _, ok := d.(*networkmanager.GenericDevice); !ok {
		t.Errorf("Device(%s) is %T, want *GenericDevice", loPath, d)
	}
	if got, want := d.DeviceProperties().Interface, "dummy0"; got != want {
		t.Errorf("generic Interface = %q, want %q", got, want)
	}
	if _, ok := m.Device("/nonexistent"); ok {
		t.Error("Device(/nonexistent) found a device, want none")
	}

	if got := len(m.WifiDevices()); got != 1 {
		t.Errorf("len(WifiDevices()) = %d, want 1", got)
	}
	eths := m.EthernetDevices()
	if len(eths) != 1 {
		t.Fatalf("len(EthernetDevices()) = %d, want 1", len(eths))
	}
	eth := eths[0].Properties()
	if got, want := eth.Interface, "eth0"; got != want {
		t.Errorf("ethernet Interface = %q, want %q", got, want)
	}
	if got, want := eth.Speed, uint32(1000); got != want {
		t.Errorf("ethernet Speed = %d, want %d", got, want)
	}
	if !eth.Carrier {
		t.Error("ethernet Carrier = false, want true")
	}
	wantReason := networkmanager.DeviceStateChange{
		State:  networkmanager.DeviceStateActivated,
		Reason: networkmanager.DeviceStateReasonNone,
	}
	if got := eth.StateReason; got != wantReason {
		t.Errorf("ethernet StateReason = %+v, want %+v", got, wantReason)
	}
	if got, want := eth.IPv4(), netip.MustParseAddr("192.168.1.10"); got != want {
		t.Errorf("ethernet IPv4() = %v, want %v", got, want)
	}
	if got := m.WifiDevices()[0].DeviceProperties().IPv4(); got.IsValid() {
		t.Errorf("wifi IPv4() = %v, want invalid address", got)
	}
}

func TestNetworkManagerTracksDevices(t *testing.T) {
	f, m := newNetworkManager(t)
	sub := m.SubscribeDevices()
	defer sub.Close()

	const newPath = dbus.ObjectPath("/org/freedesktop/NetworkManager/Devices/4")
	f.AddObject(newPath, ifaceDevice, deviceProps("eth1", networkmanager.DeviceTypeEthernet))
	f.AddObject(newPath, ifaceWired, map[string]any{"Speed": uint32(100)})
	f.SetProperties(networkmanager.Path, ifaceNM, map[string]any{
		"Devices": []dbus.ObjectPath{wlanPath, ethPath, loPath, newPath},
	})
	f.Emit(networkmanager.Path, ifaceNM, "DeviceAdded", newPath)

	eventually(t, "device 4 to appear", func() bool {
		_, ok := m.Device(newPath)
		return ok
	})
	if got := len(m.EthernetDevices()); got != 2 {
		t.Errorf("len(EthernetDevices()) = %d, want 2", got)
	}

	var last []dbus.ObjectPath
	eventually(t, "subscription to report device 4", func() bool {
		select {
		case last = <-sub.Chan():
		default:
		}
		return len(last) == 4
	})
	if diff := cmp.Diff(last, []dbus.ObjectPath{wlanPath, ethPath, loPath, newPath}); diff != "" {
		t.Errorf("SubscribeDevices() wrong paths (-got+want):\n%s", diff)
	}

	f.RemoveObject(newPath)
	f.Emit(networkmanager.Path, ifaceNM, "DeviceRemoved", newPath)
	eventually(t, "device 4 to disappear", func() bool {
		_, ok := m.Device(newPath)
		return !ok
	})
	if got := len(m.Devices()); got != 3 {
		t.Errorf("len(Devices()) = %d, want 3", got)
	}
}

func TestNetworkManagerNewFails(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f, conn := newMock(t)
		f.FailCall(networkmanager.Path, ifaceNM, "GetAllDevices", errors.New("nope"))
		if _, err := networkmanager.New(context.Background(), conn); err == nil {
			t.Fatal("New() succeeded, want error")
		}
		if got := f.Matches(); got != 0 {
			t.Errorf("%d match rules left installed, want 0", got)
		}
	})

	t.Run("device", func(t *testing.T) {
		f, conn := newMock(t)
		f.FailCall(ethPath, "org.freedesktop.DBus.Properties", "GetAll", errors.New("nope"))
		if _, err := networkmanager.New(context.Background(), conn); err == nil {
			t.Fatal("New() succeeded, want error")
		}
		if got := f.Matches(); got != 0 {
			t.Errorf("%d match rules left installed, want 0", got)
		}
	})

	t.Run("watch", func(t *testing.T) {
		f, conn := newMock(t)
		f.FailAddMatch(errors.New("nope"))
		if _, err := networkmanager.New(context.Background(), conn); err == nil {
			t.Fatal("New() succeeded, want error")
		}
	})
}

func TestNetworkManagerMethods(t *testing.T) {
	f, m := newNetworkManager(t)
	ctx := context.Background()

	enable := record(f, networkmanager.Path, ifaceNM, "Enable")
	if err := m.Enable(ctx, false); err != nil {
		t.Fatalf("Enable() failed: %v", err)
	}
	if diff := cmp.Diff(*enable, []any{false}); diff != "" {
		t.Errorf("Enable() wrong args (-got+want):\n%s", diff)
	}

	record(f, networkmanager.Path, ifaceNM, "CheckConnectivity", uint32(networkmanager.ConnectivityStatePortal))
	st, err := m.CheckConnectivity(ctx)
	if err != nil {
		t.Fatalf("CheckConnectivity() failed: %v", err)
	}
	if st != networkmanager.ConnectivityStatePortal {
		t.Errorf("CheckConnectivity() = %v, want %v", st, networkmanager.ConnectivityStatePortal)
	}

	const activePath = dbus.ObjectPath("/org/freedesktop/NetworkManager/ActiveConnection/1")
	activate := record(f, networkmanager.Path, ifaceNM, "ActivateConnection", activePath)
	got, err := m.ActivateConnection(ctx, conPath, ethPath, "")
	if err != nil {
		t.Fatalf("ActivateConnection() failed: %v", err)
	}
	if got != activePath {
		t.Errorf("ActivateConnection() = %q, want %q", got, activePath)
	}
	if diff := cmp.Diff(*activate, []any{conPath, ethPath, dbus.ObjectPath("/")}); diff != "" {
		t.Errorf("ActivateConnection() wrong args (-got+want):\n%s", diff)
	}

	deactivate := record(f, networkmanager.Path, ifaceNM, "DeactivateConnection")
	if err := m.DeactivateConnection(ctx, activePath); err != nil {
		t.Fatalf("DeactivateConnection() failed: %v", err)
	}
	if diff := cmp.Diff(*deactivate, []any{activePath}); diff != "" {
		t.Errorf("DeactivateConnection() wrong args (-got+want):\n%s", diff)
	}

	const cpPath = dbus.ObjectPath("/org/freedesktop/NetworkManager/Checkpoint/1")
	create := record(f, networkmanager.Path, ifaceNM, "CheckpointCreate", cpPath)
	cp, err := m.CheckpointCreate(ctx, nil, 30, 0)
	if err != nil {
		t.Fatalf("CheckpointCreate() failed: %v", err)
	}
	if cp != cpPath {
		t.Errorf("CheckpointCreate() = %q, want %q", cp, cpPath)
	}
	if diff := cmp.Diff(*create, []any{[]dbus.ObjectPath{}, uint32(30), uint32(0)}); diff != "" {
		t.Errorf("CheckpointCreate() wrong args (-got+want):\n%s", diff)
	}

	adjust := record(f, networkmanager.Path, ifaceNM, "CheckpointAdjustRollbackTimeout")
	if err := m.CheckpointAdjustRollbackTimeout(ctx, cpPath, 60); err != nil {
		t.Fatalf("CheckpointAdjustRollbackTimeout() failed: %v", err)
	}
	if diff := cmp.Diff(*adjust, []any{cpPath, uint32(60)}); diff != "" {
		t.Errorf("CheckpointAdjustRollbackTimeout() wrong args (-got+want):\n%s", diff)
	}

	record(f, networkmanager.Path, ifaceNM, "CheckpointRollback", map[string]uint32{string(ethPath): 0})
	res, err := m.CheckpointRollback(ctx, cpPath)
	if err != nil {
		t.Fatalf("CheckpointRollback() failed: %v", err)
	}
	if diff := cmp.Diff(res, map[string]uint32{string(ethPath): 0}); diff != "" {
		t.Errorf("CheckpointRollback() wrong result (-got+want):\n%s", diff)
	}

	destroy := record(f, networkmanager.Path, ifaceNM, "CheckpointDestroy")
	if err := m.CheckpointDestroy(ctx, cpPath); err != nil {
		t.Fatalf("CheckpointDestroy() failed: %v", err)
	}
	if diff := cmp.Diff(*destroy, []any{cpPath}); diff != "" {
		t.Errorf("CheckpointDestroy() wrong args (-got+want):\n%s", diff)
	}

	if err := m.EnableWireless(ctx, false); err != nil {
		t.Fatalf("EnableWireless() failed: %v", err)
	}
	eventually(t, "WirelessEnabled to change", func() bool {
		return !m.Properties().WirelessEnabled
	})
	if err := m.EnableConnectivityCheck(ctx, false); err != nil {
		t.Fatalf("EnableConnectivityCheck() failed: %v", err)
	}
	eventually(t, "ConnectivityCheckEnabled to change", func() bool {
		return !m.Properties().ConnectivityCheckEnabled
	})

	f.FailCall(networkmanager.Path, ifaceNM, "Enable", errors.New("denied"))
	if err := m.Enable(ctx, true); err == nil {
		t.Error("Enable() succeeded, want error")
	}
}

func TestNetworkManagerClose(t *testing.T) {
	f, m := newNetworkManager(t)
	ctx := context.Background()

	s, err := m.ConnectionSettings(ctx)
	if err != nil {
		t.Fatalf("ConnectionSettings() failed: %v", err)
	}
	s2, err := m.ConnectionSettings(ctx)
	if err != nil {
		t.Fatalf("second ConnectionSettings() failed: %v", err)
	}
	if s != s2 {
		t.Error("ConnectionSettings() returned a different manager on second call")
	}
	if f.Matches() == 0 {
		t.Fatal("no match rules installed")
	}

	m.Close()
	m.Close()

	if got := len(m.Devices()); got != 0 {
		t.Errorf("len(Devices()) after Close = %d, want 0", got)
	}
	if got := len(s.Connections()); got != 0 {
		t.Errorf("len(Connections()) after Close = %d, want 0", got)
	}
	if got := f.Matches(); got != 0 {
		t.Errorf("%d match rules left installed after Close, want 0", got)
	}
	if _, err := m.ConnectionSettings(ctx); !errors.Is(err, networkmanager.ErrClosed) {
		t.Errorf("ConnectionSettings() after Close = %v, want ErrClosed", err)
	}
}
