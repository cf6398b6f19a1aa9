package networkmanager

import (
	"context"
	"fmt"
	"sync"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
)

// WifiDevice is a Wi-Fi device.
//
// The access points the device can see are kept current as the
// device reports them appearing and disappearing.
type WifiDevice struct {
	*proxy.Base[WifiDeviceProperties]

	nm      bus.Object
	aps     *proxy.Collection[*AccessPoint]
	tracker *proxy.Tracker

	closeOnce sync.Once
}

func newWifiDevice(ctx context.Context, obj bus.Object, nm bus.Object) (ret *WifiDevice, err error) {
	b, err := proxy.New(ctx, obj, decode[WifiDeviceProperties], ifaceDevice, ifaceWireless)
	if err != nil {
		return nil, err
	}
	d := &WifiDevice{
		Base: b,
		nm:   nm,
	}
	d.aps = proxy.NewCollection(b.Logger(), d.buildAccessPoint)
	defer func() {
		if err != nil {
			if d.tracker != nil {
				d.tracker.Close()
			}
			d.aps.Close()
			b.Close()
		}
	}()

	ms := []*bus.Match{
		bus.MatchSignal(ifaceWireless, "AccessPointAdded").Peer(obj.Peer().Name()).Object(obj.Path()),
		bus.MatchSignal(ifaceWireless, "AccessPointRemoved").Peer(obj.Peer().Name()).Object(obj.Path()),
	}
	d.tracker, err = proxy.NewTracker(ctx, obj.Conn(), b.Logger(), ms, d.handleAccessPointSignal, d.resync)
	if err != nil {
		return nil, fmt.Errorf("watching access points of %s: %w", obj.Path(), err)
	}
	if err := d.aps.Populate(ctx, b.Properties().AccessPoints); err != nil {
		return nil, fmt.Errorf("wifi device %s: %w", obj.Path(), err)
	}
	d.tracker.Start()
	return d, nil
}

func (d *WifiDevice) buildAccessPoint(ctx context.Context, path dbus.ObjectPath) (*AccessPoint, error) {
	return newAccessPoint(ctx, d.Object().Peer().Object(path))
}

func (d *WifiDevice) handleAccessPointSignal(ctx context.Context, n *bus.Notification) {
	if len(n.Body) < 1 {
		d.Logger().Warn("malformed access point notification", "member", n.Member)
		return
	}
	path, ok := n.Body[0].(dbus.ObjectPath)
	if !ok {
		d.Logger().Warn("malformed access point notification", "member", n.Member, "path", n.Body[0])
		return
	}
	switch n.Member {
	case "AccessPointAdded":
		// Access points come and go quickly, and can vanish before
		// their properties are read.
		if err := d.aps.Add(ctx, path); err != nil && ctx.Err() == nil {
			d.Logger().Warn("adding access point", "path", path, "err", err)
		}
	case "AccessPointRemoved":
		d.aps.Remove(path)
	}
}

func (d *WifiDevice) resync(ctx context.Context) error {
	var paths []dbus.ObjectPath
	if err := d.Object().Interface(ifaceWireless).Call(ctx, "GetAllAccessPoints", nil, &paths); err != nil {
		return err
	}
	return d.aps.Sync(ctx, paths)
}

func (d *WifiDevice) DeviceProperties() DeviceProperties { return d.Properties().DeviceProperties }

func (d *WifiDevice) Disconnect(ctx context.Context) error {
	return disconnect(ctx, d.Object())
}

// AccessPoints returns the access points the device can see, sorted
// by path.
func (d *WifiDevice) AccessPoints() []*AccessPoint {
	return d.aps.All()
}

// AccessPoint returns the access point at path, if the device can see
// it.
func (d *WifiDevice) AccessPoint(path dbus.ObjectPath) (*AccessPoint, bool) {
	return d.aps.Get(path)
}

// ActiveAccessPoint returns the access point the device is connected
// to, if any.
func (d *WifiDevice) ActiveAccessPoint() (*AccessPoint, bool) {
	path := d.Properties().ActiveAccessPoint
	if path == "" || path == noObject {
		return nil, false
	}
	return d.aps.Get(path)
}

// SubscribeAccessPoints returns a subscription to the paths of the
// access points the device can see.
func (d *WifiDevice) SubscribeAccessPoints() *mirror.Subscription[[]dbus.ObjectPath] {
	return d.aps.Subscribe()
}

// RequestScan asks the device to scan for access points. The scan is
// complete when the LastScan property changes.
func (d *WifiDevice) RequestScan(ctx context.Context) error {
	opts := map[string]dbus.Variant{}
	return d.Object().Interface(ifaceWireless).Call(ctx, "RequestScan", opts, nil)
}

// ActivateConnection activates the saved connection profile at
// profile on the device, and returns the path of the resulting active
// connection.
func (d *WifiDevice) ActivateConnection(ctx context.Context, profile dbus.ObjectPath) (dbus.ObjectPath, error) {
	return activateConnection(ctx, d.nm, profile, d.Path(), noObject)
}

// Close closes the device proxy and its access point proxies. It is
// safe to call Close more than once.
func (d *WifiDevice) Close() {
	d.closeOnce.Do(func() {
		d.tracker.Close()
		d.aps.Close()
		d.Base.Close()
	})
}

// AccessPoint is a Wi-Fi access point seen by a [WifiDevice].
type AccessPoint struct {
	*proxy.Base[AccessPointProperties]
}

func newAccessPoint(ctx context.Context, obj bus.Object) (*AccessPoint, error) {
	b, err := proxy.New(ctx, obj, decode[AccessPointProperties], ifaceAccessPoint)
	if err != nil {
		return nil, err
	}
	return &AccessPoint{b}, nil
}

// SSID returns the access point's current SSID.
func (a *AccessPoint) SSID() string {
	return a.Properties().SSID()
}
