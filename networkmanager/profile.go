package networkmanager

import (
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

// Profile is the settings of a connection profile: a map of setting
// names, such as "connection" or "802-11-wireless", to the
// properties of each setting.
type Profile map[string]map[string]any

// ID returns the profile's human readable name.
func (p Profile) ID() string { return p.connectionString("id") }

// UUID returns the profile's UUID.
func (p Profile) UUID() string { return p.connectionString("uuid") }

// Type returns the profile's connection type, for example
// "802-11-wireless".
func (p Profile) Type() string { return p.connectionString("type") }

func (p Profile) connectionString(key string) string {
	s, _ := p["connection"][key].(string)
	return s
}

func (p Profile) wire() map[string]map[string]dbus.Variant {
	ret := make(map[string]map[string]dbus.Variant, len(p))
	for setting, props := range p {
		vs := make(map[string]dbus.Variant, len(props))
		for k, v := range props {
			if v == nil {
				continue
			}
			vs[k] = dbus.MakeVariant(v)
		}
		ret[setting] = vs
	}
	return ret
}

func profileFromWire(w map[string]map[string]dbus.Variant) Profile {
	ret := make(Profile, len(w))
	for setting, vs := range w {
		props := make(map[string]any, len(vs))
		for k, v := range vs {
			props[k] = v.Value()
		}
		ret[setting] = props
	}
	return ret
}

// WifiWPAProfile returns a profile for the Wi-Fi network ssid, bound
// to the wlan0 interface, using DHCP for IPv4 and no IPv6.
//
// If password is not empty, the network is secured with WPA-PSK
// using password as the passphrase. Otherwise the network is open.
// hidden marks networks that do not broadcast their SSID.
func WifiWPAProfile(ssid string, hidden bool, password string) Profile {
	wifi := map[string]any{
		"ssid": []byte(ssid),
		"mode": "infrastructure",
	}
	ret := Profile{
		"connection": {
			"type":           "802-11-wireless",
			"interface-name": "wlan0",
			"uuid":           uuid.NewString(),
			"id":             ssid,
		},
		"802-11-wireless": wifi,
		"ipv4":            {"method": "auto"},
		"ipv6":            {"method": "ignore"},
	}
	if password != "" {
		ret["802-11-wireless-security"] = map[string]any{
			"key-mgmt": "wpa-psk",
			"auth-alg": "open",
			"psk":      password,
		}
		wifi["security"] = "802-11-wireless-security"
	}
	if hidden {
		wifi["hidden"] = true
	}
	return ret
}
