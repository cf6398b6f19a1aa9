package networkmanager

import (
	"encoding/binary"
	"net/netip"

	"github.com/danderson/cellnet/bus"
	"github.com/godbus/dbus/v5"
)

// NetworkManagerProperties are the properties of the NetworkManager
// root object.
type NetworkManagerProperties struct {
	// Devices are the realized network devices.
	Devices []dbus.ObjectPath
	// AllDevices includes devices that do not exist yet, but could
	// be created by activating a connection.
	AllDevices  []dbus.ObjectPath
	Checkpoints []dbus.ObjectPath

	NetworkingEnabled       bool
	WirelessEnabled         bool
	WirelessHardwareEnabled bool
	WwanEnabled             bool
	WwanHardwareEnabled     bool

	ActiveConnections     []dbus.ObjectPath
	PrimaryConnection     dbus.ObjectPath
	PrimaryConnectionType string
	ActivatingConnection  dbus.ObjectPath
	Metered               Metered

	Startup      bool
	Version      string
	Capabilities []uint32
	State        NetworkManagerState
	Connectivity ConnectivityState

	ConnectivityCheckAvailable bool
	ConnectivityCheckEnabled   bool
	ConnectivityCheckUri       string
	GlobalDnsConfiguration     map[string]any

	Unknown map[string]any `dbus:"vardict"`
}

// DeviceProperties are the properties common to all network devices.
type DeviceProperties struct {
	Udi             string
	Path            string
	Interface       string
	IpInterface     string
	Driver          string
	DriverVersion   string
	FirmwareVersion string
	Capabilities    uint32
	// Ip4Address is the device's IPv4 address in network byte order.
	// See [DeviceProperties.IPv4].
	Ip4Address  uint32
	State       DeviceState
	StateReason DeviceStateChange

	ActiveConnection dbus.ObjectPath
	Ip4Config        dbus.ObjectPath
	Dhcp4Config      dbus.ObjectPath
	Ip6Config        dbus.ObjectPath
	Dhcp6Config      dbus.ObjectPath

	Managed         bool
	Autoconnect     bool
	FirmwareMissing bool
	NmPluginMissing bool
	DeviceType      DeviceType

	AvailableConnections []dbus.ObjectPath
	PhysicalPortId       string
	Mtu                  uint32
	Metered              Metered
	LldpNeighbors        []map[string]any
	Real                 bool
	Ip4Connectivity      ConnectivityState
	Ip6Connectivity      ConnectivityState
	InterfaceFlags       uint32
	HwAddress            string

	Unknown map[string]any `dbus:"vardict"`
}

// DeviceStateChange is a device state and the reason the device
// entered it.
type DeviceStateChange struct {
	State  DeviceState
	Reason DeviceStateReason
}

// IPv4 returns the device's IPv4 address. The result is the zero
// Addr if the device has no address.
func (p DeviceProperties) IPv4() netip.Addr {
	if p.Ip4Address == 0 {
		return netip.Addr{}
	}
	// The address is in network byte order, and the bus delivers it
	// in host (little endian) order.
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], p.Ip4Address)
	return netip.AddrFrom4(b)
}

// WifiDeviceProperties are the properties of a Wi-Fi device.
type WifiDeviceProperties struct {
	DeviceProperties

	PermHwAddress        string
	Mode                 WirelessMode
	Bitrate              uint32
	AccessPoints         []dbus.ObjectPath
	ActiveAccessPoint    dbus.ObjectPath
	WirelessCapabilities uint32
	// LastScan is the CLOCK_BOOTTIME timestamp in milliseconds of
	// the last scan, or -1 if the device never scanned.
	LastScan int64

	Unknown map[string]any `dbus:"vardict"`
}

// EthernetDeviceProperties are the properties of an Ethernet device.
type EthernetDeviceProperties struct {
	DeviceProperties

	PermHwAddress   string
	Speed           uint32
	S390Subchannels []string
	Carrier         bool

	Unknown map[string]any `dbus:"vardict"`
}

// AccessPointProperties are the properties of a Wi-Fi access point.
type AccessPointProperties struct {
	Flags      AccessPointFlags
	WpaFlags   AccessPointSecurityFlags
	RsnFlags   AccessPointSecurityFlags
	Ssid       []byte
	Frequency  uint32
	HwAddress  string
	Mode       WirelessMode
	MaxBitrate uint32
	Bandwidth  uint32
	// Strength is the signal strength as a percentage.
	Strength uint8
	LastSeen int32

	Unknown map[string]any `dbus:"vardict"`
}

// SSID returns the access point's SSID as a string.
func (p AccessPointProperties) SSID() string {
	return string(p.Ssid)
}

// SettingsProperties are the properties of the connection settings
// manager.
type SettingsProperties struct {
	Connections []dbus.ObjectPath
	Hostname    string
	CanModify   bool

	Unknown map[string]any `dbus:"vardict"`
}

// ConnectionProperties are the properties of a saved connection
// profile.
type ConnectionProperties struct {
	Unsaved  bool
	Flags    uint32
	Filename string

	Unknown map[string]any `dbus:"vardict"`
}

func decode[T any](props map[string]any) (T, error) {
	var ret T
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}
