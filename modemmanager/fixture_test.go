package modemmanager_test

import (
	"context"
	"testing"
	"time"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/dbustest"
	"github.com/danderson/cellnet/modemmanager"
	"github.com/godbus/dbus/v5"
)

const (
	ifaceManager       = "org.freedesktop.ModemManager1"
	ifaceModem         = "org.freedesktop.ModemManager1.Modem"
	ifaceModem3gpp     = "org.freedesktop.ModemManager1.Modem.Modem3gpp"
	ifaceSim           = "org.freedesktop.ModemManager1.Sim"
	ifaceBearer        = "org.freedesktop.ModemManager1.Bearer"
	ifaceObjectManager = "org.freedesktop.DBus.ObjectManager"

	modemPath  = dbus.ObjectPath("/org/freedesktop/ModemManager1/Modem/0")
	simPath    = dbus.ObjectPath("/org/freedesktop/ModemManager1/SIM/0")
	bearerPath = dbus.ObjectPath("/org/freedesktop/ModemManager1/Bearer/0")

	waitTimeout = 5 * time.Second
)

// mockModemProps returns the properties of the mock modem that
// python-dbusmock's ModemManager template exports.
func mockModemProps() map[string]any {
	return map[string]any{
		"Sim":                          simPath,
		"SimSlots":                     []dbus.ObjectPath{simPath},
		"PrimarySimSlot":               uint32(0),
		"Bearers":                      []dbus.ObjectPath{},
		"SupportedCapabilities":        []uint32{uint32(modemmanager.ModemCapabilityCDMAEVDO | modemmanager.ModemCapabilityLTE)},
		"CurrentCapabilities":          uint32(modemmanager.ModemCapabilityCDMAEVDO | modemmanager.ModemCapabilityLTE),
		"MaxBearers":                   uint32(2),
		"MaxActiveBearers":             uint32(1),
		"MaxActiveMultiplexedBearers":  uint32(0),
		"Manufacturer":                 "HarborDigital",
		"Model":                        "ModemManager-Mock",
		"Revision":                     "v1",
		"CarrierConfiguration":         "",
		"CarrierConfigurationRevision": "",
		"HardwareRevision":             "",
		"DeviceIdentifier":             "HarborDigital:ModemManager-Mock:v1",
		"Device":                       "not-real",
		"Drivers":                      []string{},
		"Plugin":                       "python-dbusmock",
		"PrimaryPort":                  "ttyACM0",
		"Ports": [][]any{
			{"ttyACM3", uint32(3)},
			{"ttyACM3", uint32(1)},
			{"wwx000011121314", uint32(2)},
			{"ttyACM5", uint32(1)},
			{"ttyACM0", uint32(3)},
			{"ttyACM1", uint32(1)},
			{"ttyACM2", uint32(1)},
		},
		"EquipmentIdentifier": "12456test",
		"UnlockRequired":      uint32(modemmanager.ModemLockNone),
		"UnlockRetries":       map[uint32]uint32{},
		"State":               int32(modemmanager.ModemStateRegistered),
		"StateFailedReason":   uint32(modemmanager.ModemStateFailedReasonNone),
		"AccessTechnologies":  uint32(modemmanager.ModemAccessTechnologyLTE | modemmanager.ModemAccessTechnologyEVDO0),
		"SignalQuality":       []any{uint32(76), true},
		"OwnNumbers":          []string{},
		"PowerState":          uint32(modemmanager.ModemPowerStateOn),
		"SupportedModes": [][]any{
			{uint32(modemmanager.ModemMode4G | modemmanager.ModemMode3G), uint32(modemmanager.ModemMode4G)},
		},
		"CurrentModes":        []any{uint32(modemmanager.ModemMode4G | modemmanager.ModemMode3G), uint32(modemmanager.ModemMode4G)},
		"SupportedBands":      []uint32{uint32(modemmanager.ModemBandUnknown)},
		"CurrentBands":        []uint32{uint32(modemmanager.ModemBandUnknown)},
		"SupportedIpFamilies": uint32(modemmanager.BearerIpFamilyIPV4V6 | modemmanager.BearerIpFamilyIPV4 | modemmanager.BearerIpFamilyIPV6),
	}
}

func mockSimProps() map[string]any {
	return map[string]any{
		"Active":             true,
		"SimIdentifier":      "11111111111111111111",
		"Imsi":               "111111111111111",
		"Eid":                "",
		"OperatorIdentifier": "310030",
		"OperatorName":       "Harbor-test",
		"EmergencyNumbers":   []string{},
		"PreferredNetworks":  [][]any{{"310030", uint32(0)}},
	}
}

func mock3gppProps() map[string]any {
	return map[string]any{
		"Imei":                     "111111111111111",
		"RegistrationState":        uint32(1),
		"OperatorCode":             "310410",
		"OperatorName":             "AT&T",
		"EnabledFacilityLocks":     uint32(0),
		"SubscriptionState":        uint32(0),
		"EpsUeModeOperation":       uint32(4),
		"Pco":                      [][]any{},
		"InitialEpsBearer":         dbus.ObjectPath("/"),
		"InitialEpsBearerSettings": map[string]dbus.Variant{},
		"PacketServiceState":       uint32(0),
	}
}

func mockBearerProps(apn string) map[string]any {
	return map[string]any{
		"Interface":       "wwan0",
		"Connected":       false,
		"ConnectionError": []any{"", ""},
		"Suspended":       false,
		"Multiplexed":     false,
		"Ip4Config":       map[string]dbus.Variant{"method": dbus.MakeVariant(uint32(3))},
		"Ip6Config":       map[string]dbus.Variant{},
		"Stats":           map[string]dbus.Variant{},
		"IpTimeout":       uint32(20),
		"BearerType":      uint32(1),
		"ProfileId":       int32(-1),
		"Properties":      map[string]dbus.Variant{"apn": dbus.MakeVariant(apn)},
	}
}

// newMock returns a fake bus serving ModemManager with one modem, as
// set up by python-dbusmock's ModemManager template.
func newMock(t *testing.T) (*dbustest.Fake, *bus.Conn) {
	t.Helper()
	f := dbustest.NewFake()
	f.AddObject(modemmanager.ManagerPath, ifaceManager, map[string]any{"Version": "1.20.0"})
	f.AddObject(modemPath, ifaceModem, mockModemProps())
	f.AddObject(modemPath, ifaceModem3gpp, mock3gppProps())
	f.AddObject(simPath, ifaceSim, mockSimProps())
	conn := f.Conn()
	t.Cleanup(func() { conn.Close() })
	return f, conn
}

func newManager(t *testing.T) (*dbustest.Fake, *modemmanager.Manager) {
	t.Helper()
	f, conn := newMock(t)
	m, err := modemmanager.New(context.Background(), conn)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(m.Close)
	return f, m
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

// consistently fails the test if cond becomes false within a short
// settling period.
func consistently(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		if !cond() {
			t.Fatalf("condition broke while waiting for %s", what)
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
