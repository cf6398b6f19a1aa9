package modemmanager_test

import (
	"errors"
	"testing"

	"github.com/danderson/cellnet/enum"
	"github.com/danderson/cellnet/modemmanager"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

func TestPrettyProperties(t *testing.T) {
	got, err := modemmanager.PrettyProperties(mockModemProps())
	if err != nil {
		t.Fatalf("PrettyProperties() failed: %v", err)
	}
	want := map[string]any{
		"Sim":                          simPath,
		"SimSlots":                     []dbus.ObjectPath{simPath},
		"PrimarySimSlot":               uint32(0),
		"Bearers":                      []dbus.ObjectPath{},
		"SupportedCapabilities":        [][]string{{"MM_MODEM_CAPABILITY_CDMA_EVDO", "MM_MODEM_CAPABILITY_LTE"}},
		"CurrentCapabilities":          []string{"MM_MODEM_CAPABILITY_CDMA_EVDO", "MM_MODEM_CAPABILITY_LTE"},
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
		"Ports": map[string]string{
			"ttyACM0":         "MM_MODEM_PORT_TYPE_AT",
			"ttyACM1":         "MM_MODEM_PORT_TYPE_UNKNOWN",
			"ttyACM2":         "MM_MODEM_PORT_TYPE_UNKNOWN",
			"ttyACM3":         "MM_MODEM_PORT_TYPE_UNKNOWN",
			"ttyACM5":         "MM_MODEM_PORT_TYPE_UNKNOWN",
			"wwx000011121314": "MM_MODEM_PORT_TYPE_NET",
		},
		"EquipmentIdentifier": "12456test",
		"UnlockRequired":      "MM_MODEM_LOCK_NONE",
		"UnlockRetries":       map[string]uint32{},
		"State":               "MM_MODEM_STATE_REGISTERED",
		"StateFailedReason":   "MM_MODEM_STATE_FAILED_REASON_NONE",
		"AccessTechnologies":  []string{"MM_MODEM_ACCESS_TECHNOLOGY_EVDO0", "MM_MODEM_ACCESS_TECHNOLOGY_LTE"},
		"SignalQuality":       modemmanager.SignalQuality{Quality: 76, Recent: true},
		"OwnNumbers":          []string{},
		"PowerState":          "MM_MODEM_POWER_STATE_ON",
		"SupportedModes": []modemmanager.Modes{
			{Modes: []string{"MM_MODEM_MODE_3G", "MM_MODEM_MODE_4G"}, Preferred: "MM_MODEM_MODE_4G"},
		},
		"CurrentModes":        modemmanager.Modes{Modes: []string{"MM_MODEM_MODE_3G", "MM_MODEM_MODE_4G"}, Preferred: "MM_MODEM_MODE_4G"},
		"SupportedBands":      []string{"MM_MODEM_BAND_UNKNOWN"},
		"CurrentBands":        []string{"MM_MODEM_BAND_UNKNOWN"},
		"SupportedIpFamilies": []string{"MM_BEARER_IP_FAMILY_IPV4", "MM_BEARER_IP_FAMILY_IPV6", "MM_BEARER_IP_FAMILY_IPV4V6"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("PrettyProperties() wrong result (-got+want):\n%s", diff)
	}
}

func TestPrettyPropertiesPartial(t *testing.T) {
	raw := map[string]any{
		"Model":          "ModemManager-Mock",
		"UnlockRequired": uint32(modemmanager.ModemLockSIMPIN),
		"UnlockRetries":  map[uint32]uint32{uint32(modemmanager.ModemLockSIMPIN): 3},
		"Unrelated":      "ignored",
	}
	got, err := modemmanager.PrettyProperties(raw)
	if err != nil {
		t.Fatalf("PrettyProperties() failed: %v", err)
	}
	want := map[string]any{
		"Model":          "ModemManager-Mock",
		"UnlockRequired": "MM_MODEM_LOCK_SIM_PIN",
		"UnlockRetries":  map[string]uint32{"MM_MODEM_LOCK_SIM_PIN": 3},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("PrettyProperties() wrong result (-got+want):\n%s", diff)
	}
}

func TestPrettyPropertiesErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		wantVal int64
		wantBit bool
	}{
		{
			name:    "unknown state",
			raw:     map[string]any{"State": int32(42)},
			wantVal: 42,
		},
		{
			name:    "unknown access technology bit",
			raw:     map[string]any{"AccessTechnologies": uint32(1 << 30)},
			wantVal: 1 << 30,
			wantBit: true,
		},
		{
			name:    "unknown port type",
			raw:     map[string]any{"Ports": [][]any{{"ttyACM0", uint32(99)}}},
			wantVal: 99,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := modemmanager.PrettyProperties(tc.raw)
			if err == nil {
				t.Fatal("PrettyProperties() succeeded, want error")
			}
			var de *enum.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("PrettyProperties() error %v is not a DecodeError", err)
			}
			if de.Value != tc.wantVal || de.Bit != tc.wantBit {
				t.Errorf("DecodeError = %+v, want value %d bit %v", de, tc.wantVal, tc.wantBit)
			}
		})
	}

	_, err := modemmanager.PrettyProperties(map[string]any{"Ports": "not ports"})
	if err == nil {
		t.Error("PrettyProperties() with malformed Ports succeeded, want error")
	}
}
