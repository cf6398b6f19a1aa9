package modemmanager

import (
	"context"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/godbus/dbus/v5"
)

// Location is the location interface of a modem.
//
// Location sources are identified by ModemManager's
// MMModemLocationSource bit values.
type Location struct {
	*proxy.Base[LocationProperties]
}

func newLocation(ctx context.Context, obj bus.Object) (*Location, error) {
	b, err := proxy.New(ctx, obj, decodeLocation, ifaceLocation)
	if err != nil {
		return nil, err
	}
	return &Location{b}, nil
}

// Setup enables the location sources in the bitmask sources and
// disables all others. If signalLocation is true, location updates
// are published in the Location property.
func (l *Location) Setup(ctx context.Context, sources uint32, signalLocation bool) error {
	req := struct {
		Sources        uint32
		SignalLocation bool
	}{sources, signalLocation}
	return l.Call(ctx, "Setup", req, nil)
}

// GetLocation returns the current location from every enabled source.
func (l *Location) GetLocation(ctx context.Context) (map[uint32]any, error) {
	var resp map[uint32]dbus.Variant
	if err := l.Call(ctx, "GetLocation", nil, &resp); err != nil {
		return nil, err
	}
	ret := make(map[uint32]any, len(resp))
	for k, v := range resp {
		ret[k] = v.Value()
	}
	return ret, nil
}

// SetSuplServer sets the SUPL server used for A-GPS, as "IP:PORT" or
// "FQDN:PORT".
func (l *Location) SetSuplServer(ctx context.Context, server string) error {
	return l.Call(ctx, "SetSuplServer", server, nil)
}

// InjectAssistanceData loads A-GPS assistance data into the modem.
func (l *Location) InjectAssistanceData(ctx context.Context, data []byte) error {
	return l.Call(ctx, "InjectAssistanceData", data, nil)
}

// SetGpsRefreshRate sets the minimum interval, in seconds, between
// GPS location updates.
func (l *Location) SetGpsRefreshRate(ctx context.Context, rate uint32) error {
	return l.Call(ctx, "SetGpsRefreshRate", rate, nil)
}
