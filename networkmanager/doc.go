// Package networkmanager provides typed access to NetworkManager
// over the system bus.
//
// A [NetworkManager] mirrors the NetworkManager root object and
// tracks the network devices it manages. Wi-Fi and Ethernet devices
// get dedicated proxies, [WifiDevice] and [EthernetDevice], and every
// other kind of device is a [GenericDevice]. Saved connection profiles
// are reached through the [ConnectionSettingsManager].
package networkmanager

//go:generate go run github.com/danderson/cellnet/cmd/cellnet enumgen enums.yaml enums_gen.go

import "github.com/godbus/dbus/v5"

const (
	// Service is the bus name of NetworkManager.
	Service = "org.freedesktop.NetworkManager"
	// Path is the object path of the NetworkManager root object.
	Path = dbus.ObjectPath("/org/freedesktop/NetworkManager")
	// SettingsPath is the object path of the connection settings
	// manager.
	SettingsPath = dbus.ObjectPath("/org/freedesktop/NetworkManager/Settings")
)

const (
	ifaceNetworkManager = "org.freedesktop.NetworkManager"
	ifaceDevice         = "org.freedesktop.NetworkManager.Device"
	ifaceWireless       = "org.freedesktop.NetworkManager.Device.Wireless"
	ifaceWired          = "org.freedesktop.NetworkManager.Device.Wired"
	ifaceAccessPoint    = "org.freedesktop.NetworkManager.AccessPoint"
	ifaceSettings       = "org.freedesktop.NetworkManager.Settings"
	ifaceConnection     = "org.freedesktop.NetworkManager.Settings.Connection"

	noObject = dbus.ObjectPath("/")
)
