// Package modemmanager provides typed access to the ModemManager
// system service.
//
// A [Manager] mirrors every modem that ModemManager exposes, and
// keeps the set current as modems appear and disappear. Each [Modem]
// in turn mirrors its SIM card and data bearers, and provides the
// optional 3GPP, extended signal and location interfaces on demand.
//
// All proxies keep a local copy of the remote object's properties,
// updated from the service's change notifications. Properties returns
// the latest copy, and Subscribe delivers every change.
//
// Numeric enumerations and bitmasks use the types generated in
// enums_gen.go, whose String methods render the symbolic names that
// ModemManager documents.
package modemmanager

//go:generate go run github.com/danderson/cellnet/cmd/cellnet enumgen enums.yaml enums_gen.go

import "github.com/godbus/dbus/v5"

const (
	// Service is the bus name of ModemManager.
	Service = "org.freedesktop.ModemManager1"
	// ManagerPath is the object path of the ModemManager root
	// object.
	ManagerPath = dbus.ObjectPath("/org/freedesktop/ModemManager1")
	// ModemPathPrefix is the common prefix of modem object paths. A
	// modem's index is the final component of its path.
	ModemPathPrefix = "/org/freedesktop/ModemManager1/Modem/"
)

const (
	ifaceManager       = "org.freedesktop.ModemManager1"
	ifaceModem         = "org.freedesktop.ModemManager1.Modem"
	ifaceModem3gpp     = "org.freedesktop.ModemManager1.Modem.Modem3gpp"
	ifaceSignal        = "org.freedesktop.ModemManager1.Modem.Signal"
	ifaceLocation      = "org.freedesktop.ModemManager1.Modem.Location"
	ifaceSim           = "org.freedesktop.ModemManager1.Sim"
	ifaceBearer        = "org.freedesktop.ModemManager1.Bearer"
	ifaceObjectManager = "org.freedesktop.DBus.ObjectManager"

	// noObject is the path ModemManager uses for an absent object
	// reference.
	noObject = dbus.ObjectPath("/")
)
