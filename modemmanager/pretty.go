package modemmanager

import (
	"fmt"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/enum"
	"github.com/godbus/dbus/v5"
)

// Modes is the readable form of a [ModeCombination].
type Modes struct {
	Modes     []string `yaml:"modes"`
	Preferred string   `yaml:"preferred"`
}

type prettyField struct {
	key    string
	render func(any) (any, error)
}

// prettyModemFields are the modem properties rendered by
// PrettyProperties, in output order.
var prettyModemFields = []prettyField{
	{"Sim", passthrough},
	{"SimSlots", passthrough},
	{"PrimarySimSlot", passthrough},
	{"Bearers", passthrough},
	{"SupportedCapabilities", flagsList[ModemCapability](ModemCapabilityNames)},
	{"CurrentCapabilities", flags[ModemCapability](ModemCapabilityNames)},
	{"MaxBearers", passthrough},
	{"MaxActiveBearers", passthrough},
	{"MaxActiveMultiplexedBearers", passthrough},
	{"Manufacturer", passthrough},
	{"Model", passthrough},
	{"Revision", passthrough},
	{"CarrierConfiguration", passthrough},
	{"CarrierConfigurationRevision", passthrough},
	{"HardwareRevision", passthrough},
	{"DeviceIdentifier", passthrough},
	{"Device", passthrough},
	{"Drivers", passthrough},
	{"Plugin", passthrough},
	{"PrimaryPort", passthrough},
	{"Ports", renderPorts},
	{"EquipmentIdentifier", passthrough},
	{"UnlockRequired", named[ModemLock](ModemLockNames)},
	{"UnlockRetries", renderUnlockRetries},
	{"State", named[ModemState](ModemStateNames)},
	{"StateFailedReason", named[ModemStateFailedReason](ModemStateFailedReasonNames)},
	{"AccessTechnologies", flags[ModemAccessTechnology](ModemAccessTechnologyNames)},
	{"SignalQuality", renderSignalQuality},
	{"OwnNumbers", passthrough},
	{"PowerState", named[ModemPowerState](ModemPowerStateNames)},
	{"SupportedModes", renderSupportedModes},
	{"CurrentModes", renderCurrentModes},
	{"SupportedBands", namedList[ModemBand](ModemBandNames)},
	{"CurrentBands", namedList[ModemBand](ModemBandNames)},
	{"SupportedIpFamilies", flags[BearerIpFamily](BearerIpFamilyNames)},
}

// PrettyProperties renders raw modem properties in readable form.
//
// Enumerations become their symbolic names, bitmasks become lists of
// flag names, and structured values become maps and records. Only
// the known modem properties present in raw appear in the result.
//
// A value that has no symbolic name is reported as an
// [*enum.DecodeError].
func PrettyProperties(raw map[string]any) (map[string]any, error) {
	ret := map[string]any{}
	for _, f := range prettyModemFields {
		v, ok := raw[f.key]
		if !ok || v == nil {
			continue
		}
		out, err := f.render(v)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", f.key, err)
		}
		ret[f.key] = out
	}
	return ret, nil
}

func passthrough(v any) (any, error) { return v, nil }

// as converts a raw property value to T.
func as[T any](v any) (T, error) {
	var ret T
	if err := dbus.Store([]any{v}, &ret); err != nil {
		return ret, bus.TypeError{Type: fmt.Sprintf("%T", ret), Reason: err}
	}
	return ret, nil
}

func flags[T enum.Integer](t *enum.Values) func(any) (any, error) {
	return func(v any) (any, error) {
		n, err := as[T](v)
		if err != nil {
			return nil, err
		}
		return enum.Bitmask(n, t)
	}
}

func flagsList[T enum.Integer](t *enum.Values) func(any) (any, error) {
	return func(v any) (any, error) {
		ns, err := as[[]T](v)
		if err != nil {
			return nil, err
		}
		ret := make([][]string, 0, len(ns))
		for _, n := range ns {
			fs, err := enum.Bitmask(n, t)
			if err != nil {
				return nil, err
			}
			ret = append(ret, fs)
		}
		return ret, nil
	}
}

func named[T enum.Integer](t *enum.Values) func(any) (any, error) {
	return func(v any) (any, error) {
		n, err := as[T](v)
		if err != nil {
			return nil, err
		}
		return enum.Name(n, t)
	}
}

func namedList[T enum.Integer](t *enum.Values) func(any) (any, error) {
	return func(v any) (any, error) {
		ns, err := as[[]T](v)
		if err != nil {
			return nil, err
		}
		ret := make([]string, 0, len(ns))
		for _, n := range ns {
			s, err := enum.Name(n, t)
			if err != nil {
				return nil, err
			}
			ret = append(ret, s)
		}
		return ret, nil
	}
}

// renderPorts maps port names to port type names. If a port is
// listed more than once, the last entry wins.
func renderPorts(v any) (any, error) {
	ports, err := as[[]Port](v)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]string, len(ports))
	for _, p := range ports {
		s, err := enum.Name(p.Type, ModemPortTypeNames)
		if err != nil {
			return nil, err
		}
		ret[p.Name] = s
	}
	return ret, nil
}

func renderUnlockRetries(v any) (any, error) {
	retries, err := as[map[ModemLock]uint32](v)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]uint32, len(retries))
	for lock, n := range retries {
		s, err := enum.Name(lock, ModemLockNames)
		if err != nil {
			return nil, err
		}
		ret[s] = n
	}
	return ret, nil
}

func renderSignalQuality(v any) (any, error) {
	return as[SignalQuality](v)
}

func renderModes(m ModeCombination) (Modes, error) {
	allowed, err := enum.Bitmask(m.Allowed, ModemModeNames)
	if err != nil {
		return Modes{}, err
	}
	preferred, err := enum.Name(m.Preferred, ModemModeNames)
	if err != nil {
		return Modes{}, err
	}
	return Modes{Modes: allowed, Preferred: preferred}, nil
}

func renderSupportedModes(v any) (any, error) {
	ms, err := as[[]ModeCombination](v)
	if err != nil {
		return nil, err
	}
	ret := make([]Modes, 0, len(ms))
	for _, m := range ms {
		r, err := renderModes(m)
		if err != nil {
			return nil, err
		}
		ret = append(ret, r)
	}
	return ret, nil
}

func renderCurrentModes(v any) (any, error) {
	m, err := as[ModeCombination](v)
	if err != nil {
		return nil, err
	}
	return renderModes(m)
}
