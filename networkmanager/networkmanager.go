package networkmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
)

// ErrClosed is returned when using a closed NetworkManager.
var ErrClosed = errors.New("network manager closed")

// Option configures a NetworkManager.
type Option func(*NetworkManager)

// WithLogger sets the logger for device and profile registry events.
// The default is the bus connection's logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *NetworkManager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NetworkManager is the NetworkManager root object, and the registry
// of the network devices it manages.
//
// NetworkManager does not own the bus connection; closing it leaves
// the connection open.
type NetworkManager struct {
	*proxy.Base[NetworkManagerProperties]

	conn    *bus.Conn
	logger  *slog.Logger
	devices *proxy.Collection[Device]
	tracker *proxy.Tracker

	settingsMu sync.Mutex
	settings   *ConnectionSettingsManager
	closed     bool

	closeOnce sync.Once
}

// New connects to NetworkManager on conn and returns a NetworkManager
// holding a proxy for each of its devices.
//
// If any device proxy fails to build, New closes every proxy it built
// and returns an error.
func New(ctx context.Context, conn *bus.Conn, opts ...Option) (*NetworkManager, error) {
	ret := &NetworkManager{
		conn:   conn,
		logger: conn.Logger(),
	}
	for _, o := range opts {
		o(ret)
	}
	if err := ret.init(ctx); err != nil {
		return nil, fmt.Errorf("initializing network manager: %w", err)
	}
	return ret, nil
}

func (m *NetworkManager) init(ctx context.Context) (err error) {
	obj := m.conn.Peer(Service).Object(Path)
	m.Base, err = proxy.New(ctx, obj, decode[NetworkManagerProperties], ifaceNetworkManager)
	if err != nil {
		return err
	}
	m.devices = proxy.NewCollection(m.logger, m.buildDevice)
	defer func() {
		if err != nil {
			if m.tracker != nil {
				m.tracker.Close()
			}
			m.devices.Close()
			m.Base.Close()
		}
	}()

	ms := []*bus.Match{
		bus.MatchSignal(ifaceNetworkManager, "DeviceAdded").Peer(Service).Object(Path),
		bus.MatchSignal(ifaceNetworkManager, "DeviceRemoved").Peer(Service).Object(Path),
	}
	m.tracker, err = proxy.NewTracker(ctx, m.conn, m.logger, ms, m.handleDeviceSignal, m.resync)
	if err != nil {
		return fmt.Errorf("watching for devices: %w", err)
	}

	paths, err := m.allDevices(ctx)
	if err != nil {
		return err
	}
	if err := m.devices.Populate(ctx, paths); err != nil {
		return err
	}
	m.tracker.Start()
	m.logger.Debug("network manager ready", "devices", len(paths))
	return nil
}

func (m *NetworkManager) buildDevice(ctx context.Context, path dbus.ObjectPath) (Device, error) {
	return newDevice(ctx, m.conn.Peer(Service).Object(path), m.Object())
}

func (m *NetworkManager) allDevices(ctx context.Context) ([]dbus.ObjectPath, error) {
	var ret []dbus.ObjectPath
	if err := m.Call(ctx, "GetAllDevices", nil, &ret); err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	return ret, nil
}

func (m *NetworkManager) handleDeviceSignal(ctx context.Context, n *bus.Notification) {
	if len(n.Body) < 1 {
		m.logger.Warn("malformed device notification", "member", n.Member)
		return
	}
	path, ok := n.Body[0].(dbus.ObjectPath)
	if !ok {
		m.logger.Warn("malformed device notification", "member", n.Member, "path", n.Body[0])
		return
	}
	switch n.Member {
	case "DeviceAdded":
		if err := m.devices.Add(ctx, path); err != nil && ctx.Err() == nil {
			m.logger.Warn("adding device", "path", path, "err", err)
		}
	case "DeviceRemoved":
		m.devices.Remove(path)
	}
}

func (m *NetworkManager) resync(ctx context.Context) error {
	paths, err := m.allDevices(ctx)
	if err != nil {
		return err
	}
	return m.devices.Sync(ctx, paths)
}

// Devices returns all network devices, sorted by path.
func (m *NetworkManager) Devices() []Device {
	return m.devices.All()
}

// Device returns the device at path, if there is one.
func (m *NetworkManager) Device(path dbus.ObjectPath) (Device, bool) {
	return m.devices.Get(path)
}

// SubscribeDevices returns a subscription to the paths of the current
// devices.
func (m *NetworkManager) SubscribeDevices() *mirror.Subscription[[]dbus.ObjectPath] {
	return m.devices.Subscribe()
}

// WifiDevices returns the Wi-Fi devices, sorted by path.
func (m *NetworkManager) WifiDevices() []*WifiDevice {
	return devicesOfType[*WifiDevice](m)
}

// EthernetDevices returns the Ethernet devices, sorted by path.
func (m *NetworkManager) EthernetDevices() []*EthernetDevice {
	return devicesOfType[*EthernetDevice](m)
}

func devicesOfType[D Device](m *NetworkManager) []D {
	var ret []D
	for _, d := range m.Devices() {
		if t, ok := d.(D); ok {
			ret = append(ret, t)
		}
	}
	return ret
}

// ConnectionSettings returns the manager of saved connection
// profiles. It is created on first use, and closed when m is closed.
func (m *NetworkManager) ConnectionSettings(ctx context.Context) (*ConnectionSettingsManager, error) {
	m.settingsMu.Lock()
	defer m.settingsMu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	if m.settings != nil {
		return m.settings, nil
	}
	s, err := newConnectionSettingsManager(ctx, m.conn, m.logger)
	if err != nil {
		return nil, fmt.Errorf("initializing connection settings: %w", err)
	}
	m.settings = s
	return s, nil
}

// Enable enables or disables all networking.
func (m *NetworkManager) Enable(ctx context.Context, enable bool) error {
	return m.Call(ctx, "Enable", enable, nil)
}

// EnableWireless enables or disables Wi-Fi.
func (m *NetworkManager) EnableWireless(ctx context.Context, enable bool) error {
	return m.Interface().SetProperty(ctx, "WirelessEnabled", enable)
}

// EnableConnectivityCheck enables or disables NetworkManager's
// periodic polling of its connectivity check URI.
func (m *NetworkManager) EnableConnectivityCheck(ctx context.Context, enable bool) error {
	return m.Interface().SetProperty(ctx, "ConnectivityCheckEnabled", enable)
}

// CheckConnectivity runs a connectivity check and returns the
// result. Connectivity checking must be available and enabled.
func (m *NetworkManager) CheckConnectivity(ctx context.Context) (ConnectivityState, error) {
	var ret ConnectivityState
	if err := m.Call(ctx, "CheckConnectivity", nil, &ret); err != nil {
		return 0, err
	}
	return ret, nil
}

// ActivateConnection activates the saved connection profile at
// profile on device, and returns the path of the resulting active
// connection. specific selects a device-specific object such as an
// access point, or is "/" to let NetworkManager choose.
func (m *NetworkManager) ActivateConnection(ctx context.Context, profile, device, specific dbus.ObjectPath) (dbus.ObjectPath, error) {
	return activateConnection(ctx, m.Object(), profile, device, specific)
}

func activateConnection(ctx context.Context, nm bus.Object, profile, device, specific dbus.ObjectPath) (dbus.ObjectPath, error) {
	if specific == "" {
		specific = noObject
	}
	req := struct {
		Connection dbus.ObjectPath
		Device     dbus.ObjectPath
		Specific   dbus.ObjectPath
	}{profile, device, specific}
	var ret dbus.ObjectPath
	if err := nm.Interface(ifaceNetworkManager).Call(ctx, "ActivateConnection", req, &ret); err != nil {
		return "", err
	}
	return ret, nil
}

// DeactivateConnection deactivates the active connection at active.
func (m *NetworkManager) DeactivateConnection(ctx context.Context, active dbus.ObjectPath) error {
	return m.Call(ctx, "DeactivateConnection", active, nil)
}

// CheckpointCreate snapshots the network configuration of devices,
// or of all devices if devices is empty, and returns the
// checkpoint's path. If rollbackTimeout is not zero, the
// configuration is rolled back automatically after that many seconds.
func (m *NetworkManager) CheckpointCreate(ctx context.Context, devices []dbus.ObjectPath, rollbackTimeout uint32, flags uint32) (dbus.ObjectPath, error) {
	if devices == nil {
		devices = []dbus.ObjectPath{}
	}
	req := struct {
		Devices         []dbus.ObjectPath
		RollbackTimeout uint32
		Flags           uint32
	}{devices, rollbackTimeout, flags}
	var ret dbus.ObjectPath
	if err := m.Call(ctx, "CheckpointCreate", req, &ret); err != nil {
		return "", err
	}
	return ret, nil
}

// CheckpointDestroy destroys the checkpoint at checkpoint, or all
// checkpoints if checkpoint is "/".
func (m *NetworkManager) CheckpointDestroy(ctx context.Context, checkpoint dbus.ObjectPath) error {
	return m.Call(ctx, "CheckpointDestroy", checkpoint, nil)
}

// CheckpointRollback rolls the network configuration back to
// checkpoint, and returns the rollback result of each device.
func (m *NetworkManager) CheckpointRollback(ctx context.Context, checkpoint dbus.ObjectPath) (map[string]uint32, error) {
	var ret map[string]uint32
	if err := m.Call(ctx, "CheckpointRollback", checkpoint, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// CheckpointAdjustRollbackTimeout resets the rollback timeout of
// checkpoint to timeout seconds from now. Zero disables the timeout.
func (m *NetworkManager) CheckpointAdjustRollbackTimeout(ctx context.Context, checkpoint dbus.ObjectPath, timeout uint32) error {
	req := struct {
		Checkpoint dbus.ObjectPath
		Timeout    uint32
	}{checkpoint, timeout}
	return m.Call(ctx, "CheckpointAdjustRollbackTimeout", req, nil)
}

// Close stops tracking devices and closes every proxy, including the
// connection settings manager. Lookups on a closed NetworkManager
// report no devices. It is safe to call Close more than once.
func (m *NetworkManager) Close() {
	m.closeOnce.Do(func() {
		m.tracker.Close()
		m.devices.Close()

		m.settingsMu.Lock()
		m.closed = true
		s := m.settings
		m.settings = nil
		m.settingsMu.Unlock()
		if s != nil {
			s.Close()
		}

		m.Base.Close()
		m.logger.Debug("network manager closed")
	})
}
