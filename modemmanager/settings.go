package modemmanager

import (
	"maps"

	"github.com/creachadair/mds/value"
	"github.com/godbus/dbus/v5"
)

// BearerConfig is the set of settings for creating or connecting a
// bearer. Zero and absent fields are left out of the request, and
// ModemManager picks its defaults for them.
type BearerConfig struct {
	// APN is the access point name. For 5G networks it is the data
	// network name.
	APN                  string
	IPType               BearerIpFamily
	APNType              BearerApnType
	AllowedAuth          BearerAllowedAuth
	User                 string
	Password             string
	AccessTypePreference BearerAccessTypePreference
	RoamingAllowance     BearerRoamingAllowance
	ProfileID            value.Maybe[int32]
	ProfileName          string
	ProfileEnabled       value.Maybe[bool]
	ProfileSource        BearerProfileSource
	RmProtocol           ModemCdmaRmProtocol
	AllowRoaming         value.Maybe[bool]
	Multiplex            BearerMultiplexSupport

	// Extra holds settings not covered by other fields, keyed by
	// their ModemManager names. They override the other fields.
	Extra map[string]any
}

func (c BearerConfig) vardict() map[string]dbus.Variant {
	ret := map[string]dbus.Variant{}
	setString := func(k, v string) {
		if v != "" {
			ret[k] = dbus.MakeVariant(v)
		}
	}
	setUint := func(k string, v uint32) {
		if v != 0 {
			ret[k] = dbus.MakeVariant(v)
		}
	}
	setString("apn", c.APN)
	setUint("ip-type", uint32(c.IPType))
	setUint("apn-type", uint32(c.APNType))
	setUint("allowed-auth", uint32(c.AllowedAuth))
	setString("user", c.User)
	setString("password", c.Password)
	setUint("access-type-preference", uint32(c.AccessTypePreference))
	setUint("roaming-allowance", uint32(c.RoamingAllowance))
	if id, ok := c.ProfileID.GetOK(); ok {
		ret["profile-id"] = dbus.MakeVariant(id)
	}
	setString("profile-name", c.ProfileName)
	if en, ok := c.ProfileEnabled.GetOK(); ok {
		ret["profile-enabled"] = dbus.MakeVariant(en)
	}
	setUint("profile-source", uint32(c.ProfileSource))
	setUint("rm-protocol", uint32(c.RmProtocol))
	if r, ok := c.AllowRoaming.GetOK(); ok {
		ret["allow-roaming"] = dbus.MakeVariant(r)
	}
	setUint("multiplex", uint32(c.Multiplex))
	maps.Copy(ret, variants(c.Extra))
	return ret
}

// Nr5gRegistrationSettings are the 5G registration settings of a
// modem. Zero fields are left unchanged.
type Nr5gRegistrationSettings struct {
	MicoMode Modem3gppMicoMode
	DrxCycle Modem3gppDrxCycle
}

func (s Nr5gRegistrationSettings) vardict() map[string]dbus.Variant {
	ret := map[string]dbus.Variant{}
	if s.MicoMode != 0 {
		ret["mico-mode"] = dbus.MakeVariant(uint32(s.MicoMode))
	}
	if s.DrxCycle != 0 {
		ret["drx-cycle"] = dbus.MakeVariant(uint32(s.DrxCycle))
	}
	return ret
}

// SignalThresholds configures when a modem reports extended signal
// measurements, in addition to the periodic reports.
type SignalThresholds struct {
	// RSSIThreshold reports a measurement when the RSSI changes by
	// this many dBm. Zero disables the threshold.
	RSSIThreshold value.Maybe[uint32]
	// ErrorRateThreshold reports a measurement when the error rate
	// changes.
	ErrorRateThreshold value.Maybe[bool]
}

func (s SignalThresholds) vardict() map[string]dbus.Variant {
	ret := map[string]dbus.Variant{}
	if v, ok := s.RSSIThreshold.GetOK(); ok {
		ret["rssi-threshold"] = dbus.MakeVariant(v)
	}
	if v, ok := s.ErrorRateThreshold.GetOK(); ok {
		ret["error-rate-threshold"] = dbus.MakeVariant(v)
	}
	return ret
}

// variants wraps the values of m for sending on the bus. Nil values
// are dropped.
func variants(m map[string]any) map[string]dbus.Variant {
	ret := make(map[string]dbus.Variant, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		if vv, ok := v.(dbus.Variant); ok {
			ret[k] = vv
		} else {
			ret[k] = dbus.MakeVariant(v)
		}
	}
	return ret
}

// unwrap is the inverse of variants.
func unwrap(m map[string]dbus.Variant) map[string]any {
	ret := make(map[string]any, len(m))
	for k, v := range m {
		ret[k] = v.Value()
	}
	return ret
}
