package networkmanager

import (
	"context"
	"fmt"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/godbus/dbus/v5"
)

// Device is a network device managed by NetworkManager. It is one of
// *[GenericDevice], *[WifiDevice] or *[EthernetDevice], depending on
// the device's type.
type Device interface {
	// Path returns the device's object path.
	Path() dbus.ObjectPath
	// DeviceProperties returns the device's current common
	// properties.
	DeviceProperties() DeviceProperties
	// RawProperties returns the device's current undecoded
	// properties.
	RawProperties() map[string]any
	// Disconnect disconnects the device and prevents it from
	// activating further connections on its own.
	Disconnect(ctx context.Context) error
	// Close releases the device proxy.
	Close()
}

// newDevice returns the proxy for the device at obj, choosing the
// proxy type from the device's DeviceType.
func newDevice(ctx context.Context, obj bus.Object, nm bus.Object) (Device, error) {
	var typ DeviceType
	if err := obj.Interface(ifaceDevice).GetProperty(ctx, "DeviceType", &typ); err != nil {
		return nil, fmt.Errorf("getting type of device %s: %w", obj.Path(), err)
	}
	switch typ {
	case DeviceTypeWifi:
		return newWifiDevice(ctx, obj, nm)
	case DeviceTypeEthernet:
		return newEthernetDevice(ctx, obj)
	default:
		return newGenericDevice(ctx, obj)
	}
}

func disconnect(ctx context.Context, obj bus.Object) error {
	return obj.Interface(ifaceDevice).Call(ctx, "Disconnect", nil, nil)
}

// GenericDevice is a network device with no type-specific proxy.
type GenericDevice struct {
	*proxy.Base[DeviceProperties]
}

func newGenericDevice(ctx context.Context, obj bus.Object) (*GenericDevice, error) {
	b, err := proxy.New(ctx, obj, decode[DeviceProperties], ifaceDevice)
	if err != nil {
		return nil, err
	}
	return &GenericDevice{b}, nil
}

func (d *GenericDevice) DeviceProperties() DeviceProperties { return d.Properties() }

func (d *GenericDevice) Disconnect(ctx context.Context) error {
	return disconnect(ctx, d.Object())
}

// EthernetDevice is a wired Ethernet device.
type EthernetDevice struct {
	*proxy.Base[EthernetDeviceProperties]
}

func newEthernetDevice(ctx context.Context, obj bus.Object) (*EthernetDevice, error) {
	b, err := proxy.New(ctx, obj, decode[EthernetDeviceProperties], ifaceDevice, ifaceWired)
	if err != nil {
		return nil, err
	}
	return &EthernetDevice{b}, nil
}

func (d *EthernetDevice) DeviceProperties() DeviceProperties { return d.Properties().DeviceProperties }

func (d *EthernetDevice) Disconnect(ctx context.Context) error {
	return disconnect(ctx, d.Object())
}
