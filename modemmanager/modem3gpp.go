package modemmanager

import (
	"context"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/godbus/dbus/v5"
)

// Modem3gpp is the 3GPP (GSM, UMTS, LTE and 5G) interface of a
// modem.
type Modem3gpp struct {
	*proxy.Base[Modem3gppProperties]
}

func newModem3gpp(ctx context.Context, obj bus.Object) (*Modem3gpp, error) {
	b, err := proxy.New(ctx, obj, decodeModem3gpp, ifaceModem3gpp)
	if err != nil {
		return nil, err
	}
	return &Modem3gpp{b}, nil
}

// Register requests registration with the network identified by the
// "MCCMNC" code operatorID. An empty operatorID requests automatic
// registration with the home network.
func (m *Modem3gpp) Register(ctx context.Context, operatorID string) error {
	return m.Call(ctx, "Register", operatorID, nil)
}

// Scan scans for available networks. Each result describes one
// network, keyed by ModemManager's attribute names such as
// "operator-code" and "status".
//
// Scanning can take several minutes.
func (m *Modem3gpp) Scan(ctx context.Context) ([]map[string]any, error) {
	var resp []map[string]dbus.Variant
	if err := m.Call(ctx, "Scan", nil, &resp); err != nil {
		return nil, err
	}
	ret := make([]map[string]any, 0, len(resp))
	for _, n := range resp {
		ret = append(ret, unwrap(n))
	}
	return ret, nil
}

// SetEpsUeModeOperation sets the UE mode of operation for EPS.
func (m *Modem3gpp) SetEpsUeModeOperation(ctx context.Context, mode Modem3gppEpsUeModeOperation) error {
	return m.Call(ctx, "SetEpsUeModeOperation", uint32(mode), nil)
}

// SetInitialEpsBearerSettings updates the settings requested for the
// initial EPS bearer when attaching to an LTE network.
func (m *Modem3gpp) SetInitialEpsBearerSettings(ctx context.Context, settings BearerConfig) error {
	return m.Call(ctx, "SetInitialEpsBearerSettings", settings.vardict(), nil)
}

// SetNr5gRegistrationSettings updates the 5G registration settings.
func (m *Modem3gpp) SetNr5gRegistrationSettings(ctx context.Context, settings Nr5gRegistrationSettings) error {
	return m.Call(ctx, "SetNr5gRegistrationSettings", settings.vardict(), nil)
}

// DisableFacilityLock disables the PIN lock of facility, using key as
// the unlock code.
func (m *Modem3gpp) DisableFacilityLock(ctx context.Context, facility Modem3gppFacility, key string) error {
	type lock struct {
		Facility uint32
		Key      string
	}
	req := struct{ Lock lock }{lock{uint32(facility), key}}
	return m.Call(ctx, "DisableFacilityLock", req, nil)
}

// SetPacketServiceState attaches to or detaches from the packet
// domain service.
func (m *Modem3gpp) SetPacketServiceState(ctx context.Context, state Modem3gppPacketServiceState) error {
	return m.Call(ctx, "SetPacketServiceState", uint32(state), nil)
}
