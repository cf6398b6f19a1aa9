package networkmanager_test

import (
	"context"
	"testing"
	"time"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/dbustest"
	"github.com/danderson/cellnet/networkmanager"
	"github.com/godbus/dbus/v5"
)

const (
	ifaceNM          = "org.freedesktop.NetworkManager"
	ifaceDevice      = "org.freedesktop.NetworkManager.Device"
	ifaceWireless    = "org.freedesktop.NetworkManager.Device.Wireless"
	ifaceWired       = "org.freedesktop.NetworkManager.Device.Wired"
	ifaceAccessPoint = "org.freedesktop.NetworkManager.AccessPoint"
	ifaceSettings    = "org.freedesktop.NetworkManager.Settings"
	ifaceConnection  = "org.freedesktop.NetworkManager.Settings.Connection"

	wlanPath = dbus.ObjectPath("/org/freedesktop/NetworkManager/Devices/1")
	ethPath  = dbus.ObjectPath("/org/freedesktop/NetworkManager/Devices/2")
	loPath   = dbus.ObjectPath("/org/freedesktop/NetworkManager/Devices/3")
	ap1Path  = dbus.ObjectPath("/org/freedesktop/NetworkManager/AccessPoint/1")
	ap2Path  = dbus.ObjectPath("/org/freedesktop/NetworkManager/AccessPoint/2")
	conPath  = dbus.ObjectPath("/org/freedesktop/NetworkManager/Settings/1")

	waitTimeout = 5 * time.Second
)

func rootProps() map[string]any {
	return map[string]any{
		"Devices":                    []dbus.ObjectPath{wlanPath, ethPath, loPath},
		"AllDevices":                 []dbus.ObjectPath{wlanPath, ethPath, loPath},
		"Checkpoints":                []dbus.ObjectPath{},
		"NetworkingEnabled":          true,
		"WirelessEnabled":            true,
		"WirelessHardwareEnabled":    true,
		"WwanEnabled":                false,
		"WwanHardwareEnabled":        false,
		"ActiveConnections":          []dbus.ObjectPath{},
		"PrimaryConnection":          dbus.ObjectPath("/"),
		"PrimaryConnectionType":      "",
		"Metered":                    uint32(networkmanager.MeteredNo),
		"Startup":                    false,
		"Version":                    "1.46.0",
		"State":                      uint32(networkmanager.NetworkManagerStateConnectedGlobal),
		"Connectivity":               uint32(networkmanager.ConnectivityStateFull),
		"ConnectivityCheckAvailable": true,
		"ConnectivityCheckEnabled":   true,
		"ConnectivityCheckUri":       "http://check.example.com/",
	}
}

func deviceProps(iface string, typ networkmanager.DeviceType) map[string]any {
	return map[string]any{
		"Udi":              "/sys/devices/virtual/net/" + iface,
		"Interface":        iface,
		"IpInterface":      iface,
		"Driver":           "mock",
		"Ip4Address":       uint32(0),
		"State":            uint32(networkmanager.DeviceStateDisconnected),
		"StateReason":      []any{uint32(networkmanager.DeviceStateDisconnected), uint32(networkmanager.DeviceStateReasonNone)},
		"ActiveConnection": dbus.ObjectPath("/"),
		"Managed":          true,
		"Autoconnect":      true,
		"DeviceType":       uint32(typ),
		"Mtu":              uint32(1500),
		"Real":             true,
		"HwAddress":        "00:11:22:33:44:55",
	}
}

func wirelessProps(aps ...dbus.ObjectPath) map[string]any {
	return map[string]any{
		"PermHwAddress":        "00:11:22:33:44:55",
		"Mode":                 uint32(networkmanager.WirelessModeInfra),
		"Bitrate":              uint32(54000),
		"AccessPoints":         aps,
		"ActiveAccessPoint":    dbus.ObjectPath("/"),
		"WirelessCapabilities": uint32(0),
		"LastScan":             int64(-1),
	}
}

func apProps(ssid string, strength uint8) map[string]any {
	return map[string]any{
		"Flags":      uint32(networkmanager.AccessPointFlagsPrivacy),
		"WpaFlags":   uint32(0),
		"RsnFlags":   uint32(networkmanager.AccessPointSecurityFlagsPairCCMP | networkmanager.AccessPointSecurityFlagsGroupCCMP | networkmanager.AccessPointSecurityFlagsKeyMgmtPSK),
		"Ssid":       []byte(ssid),
		"Frequency":  uint32(2437),
		"HwAddress":  "AA:BB:CC:DD:EE:FF",
		"Mode":       uint32(networkmanager.WirelessModeInfra),
		"MaxBitrate": uint32(130000),
		"Bandwidth":  uint32(20),
		"Strength":   strength,
		"LastSeen":   int32(1234),
	}
}

func savedProfile() map[string]map[string]dbus.Variant {
	return map[string]map[string]dbus.Variant{
		"connection": {
			"id":   dbus.MakeVariant("Wired connection 1"),
			"uuid": dbus.MakeVariant("5f5d6a3c-92b4-4a5c-9a38-3d1c3a4b1f00"),
			"type": dbus.MakeVariant("802-3-ethernet"),
		},
		"ipv4": {"method": dbus.MakeVariant("auto")},
	}
}

// newMock returns a fake bus serving NetworkManager with a Wi-Fi
// device seeing one access point, an Ethernet device, a generic
// device and one saved connection profile.
func newMock(t *testing.T) (*dbustest.Fake, *bus.Conn) {
	t.Helper()
	f := dbustest.NewFake()
	f.AddObject(networkmanager.Path, ifaceNM, rootProps())
	f.Handle(networkmanager.Path, ifaceNM, "GetAllDevices", listProperty(f, networkmanager.Path, ifaceNM, "Devices"))

	f.AddObject(wlanPath, ifaceDevice, deviceProps("wlan0", networkmanager.DeviceTypeWifi))
	f.AddObject(wlanPath, ifaceWireless, wirelessProps(ap1Path))
	f.Handle(wlanPath, ifaceWireless, "GetAllAccessPoints", listProperty(f, wlanPath, ifaceWireless, "AccessPoints"))
	f.AddObject(ap1Path, ifaceAccessPoint, apProps("harbor", 80))

	eth := deviceProps("eth0", networkmanager.DeviceTypeEthernet)
	eth["State"] = uint32(networkmanager.DeviceStateActivated)
	eth["StateReason"] = []any{uint32(networkmanager.DeviceStateActivated), uint32(networkmanager.DeviceStateReasonNone)}
	eth["Ip4Address"] = uint32(0x0A01A8C0) // 192.168.1.10
	f.AddObject(ethPath, ifaceDevice, eth)
	f.AddObject(ethPath, ifaceWired, map[string]any{
		"PermHwAddress":   "00:11:22:33:44:66",
		"Speed":           uint32(1000),
		"S390Subchannels": []string{},
		"Carrier":         true,
	})

	f.AddObject(loPath, ifaceDevice, deviceProps("dummy0", networkmanager.DeviceTypeGeneric))

	f.AddObject(networkmanager.SettingsPath, ifaceSettings, map[string]any{
		"Connections": []dbus.ObjectPath{conPath},
		"Hostname":    "harbor",
		"CanModify":   true,
	})
	f.Handle(networkmanager.SettingsPath, ifaceSettings, "ListConnections", listProperty(f, networkmanager.SettingsPath, ifaceSettings, "Connections"))
	f.AddObject(conPath, ifaceConnection, map[string]any{
		"Unsaved":  false,
		"Flags":    uint32(0),
		"Filename": "/etc/NetworkManager/system-connections/wired.nmconnection",
	})
	f.Handle(conPath, ifaceConnection, "GetSettings", func(args ...any) ([]any, error) {
		return []any{savedProfile()}, nil
	})

	conn := f.Conn()
	t.Cleanup(func() { conn.Close() })
	return f, conn
}

func newNetworkManager(t *testing.T) (*dbustest.Fake, *networkmanager.NetworkManager) {
	t.Helper()
	f, conn := newMock(t)
	m, err := networkmanager.New(context.Background(), conn)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(m.Close)
	return f, m
}

// listProperty returns a method implementation that replies with
// the current value of an object path list property.
func listProperty(f *dbustest.Fake, path dbus.ObjectPath, iface, name string) dbustest.Method {
	return func(args ...any) ([]any, error) {
		v, _ := f.Property(path, iface, name)
		return []any{v}, nil
	}
}

func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// record installs a handler for iface.method on path that records
// its arguments and replies with reply.
func record(f *dbustest.Fake, path dbus.ObjectPath, iface, method string, reply ...any) *[]any {
	var got []any
	f.Handle(path, iface, method, func(args ...any) ([]any, error) {
		got = args
		return reply, nil
	})
	return &got
}
