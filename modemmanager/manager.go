package modemmanager

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for the Manager's registry events. The
// default is the bus connection's logger, which individual proxies
// always use.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager is the registry of modems known to ModemManager.
//
// The set of modems follows the modems that ModemManager reports
// being added and removed. Manager does not own the bus connection;
// closing the Manager leaves it open.
type Manager struct {
	*proxy.Base[ManagerProperties]

	conn    *bus.Conn
	logger  *slog.Logger
	modems  *proxy.Collection[*Modem]
	tracker *proxy.Tracker

	closeOnce sync.Once
}

// New enumerates the modems that ModemManager exposes on conn, and
// returns a Manager holding a proxy for each one.
//
// Modem proxies are built concurrently. If any of them fails, New
// closes every proxy it built and returns an error.
func New(ctx context.Context, conn *bus.Conn, opts ...Option) (*Manager, error) {
	ret := &Manager{
		conn:   conn,
		logger: conn.Logger(),
	}
	for _, o := range opts {
		o(ret)
	}
	if err := ret.init(ctx); err != nil {
		return nil, fmt.Errorf("initializing modem manager: %w", err)
	}
	return ret, nil
}

func (m *Manager) init(ctx context.Context) (err error) {
	obj := m.conn.Peer(Service).Object(ManagerPath)
	m.Base, err = proxy.New(ctx, obj, decodeManager, ifaceManager)
	if err != nil {
		return err
	}
	m.modems = proxy.NewCollection(m.logger, m.buildModem)
	defer func() {
		if err != nil {
			if m.tracker != nil {
				m.tracker.Close()
			}
			m.modems.Close()
			m.Base.Close()
		}
	}()

	ms := []*bus.Match{
		bus.MatchSignal(ifaceObjectManager, "InterfacesAdded").Peer(Service).Object(ManagerPath),
		bus.MatchSignal(ifaceObjectManager, "InterfacesRemoved").Peer(Service).Object(ManagerPath),
	}
	m.tracker, err = proxy.NewTracker(ctx, m.conn, m.logger, ms, m.handleObjectSignal, m.resync)
	if err != nil {
		return fmt.Errorf("watching for modems: %w", err)
	}

	paths, err := m.modemPaths(ctx)
	if err != nil {
		return err
	}
	if err := m.modems.Populate(ctx, paths); err != nil {
		return err
	}
	m.tracker.Start()
	m.logger.Debug("modem manager ready", "modems", len(paths))
	return nil
}

func (m *Manager) buildModem(ctx context.Context, path dbus.ObjectPath) (*Modem, error) {
	return newModem(ctx, m.conn.Peer(Service).Object(path))
}

// modemPaths returns the paths of every object that implements the
// modem interface.
func (m *Manager) modemPaths(ctx context.Context) ([]dbus.ObjectPath, error) {
	objs, err := m.Object().ManagedObjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing modems: %w", err)
	}
	var ret []dbus.ObjectPath
	for obj, ifaces := range objs {
		if slices.Contains(ifaces, ifaceModem) {
			ret = append(ret, obj.Path())
		}
	}
	slices.Sort(ret)
	return ret, nil
}

func (m *Manager) handleObjectSignal(ctx context.Context, n *bus.Notification) {
	if len(n.Body) < 2 {
		m.logger.Warn("malformed object notification", "member", n.Member)
		return
	}
	path, ok := n.Body[0].(dbus.ObjectPath)
	if !ok {
		m.logger.Warn("malformed object notification", "member", n.Member, "path", n.Body[0])
		return
	}
	switch n.Member {
	case "InterfacesAdded":
		ifaces, ok := n.Body[1].(map[string]map[string]dbus.Variant)
		if !ok {
			m.logger.Warn("malformed object notification", "member", n.Member, "path", path)
			return
		}
		if _, ok := ifaces[ifaceModem]; !ok {
			return
		}
		if err := m.modems.Add(ctx, path); err != nil && ctx.Err() == nil {
			m.logger.Warn("adding modem", "path", path, "err", err)
		}
	case "InterfacesRemoved":
		ifaces, ok := n.Body[1].([]string)
		if !ok {
			m.logger.Warn("malformed object notification", "member", n.Member, "path", path)
			return
		}
		if slices.Contains(ifaces, ifaceModem) {
			m.modems.Remove(path)
		}
	}
}

func (m *Manager) resync(ctx context.Context) error {
	paths, err := m.modemPaths(ctx)
	if err != nil {
		return err
	}
	return m.modems.Sync(ctx, paths)
}

// Get returns the modem at path, if there is one.
func (m *Manager) Get(path dbus.ObjectPath) (*Modem, bool) {
	return m.modems.Get(path)
}

// GetByIndex returns the modem with the given index, if there is one.
// Modem indexes are assigned by ModemManager and are the last element
// of the modem's object path.
func (m *Manager) GetByIndex(n int) (*Modem, bool) {
	if n < 0 {
		return nil, false
	}
	return m.Get(dbus.ObjectPath(fmt.Sprintf("%s%d", ModemPathPrefix, n)))
}

// Modems returns all modems, sorted by path.
func (m *Manager) Modems() []*Modem {
	return m.modems.All()
}

// SubscribeModems returns a subscription to the paths of the current
// modems. The current set is delivered first, followed by the new
// set every time a modem is added or removed.
func (m *Manager) SubscribeModems() *mirror.Subscription[[]dbus.ObjectPath] {
	return m.modems.Subscribe()
}

// ModemProperties returns the current properties of every modem,
// keyed by modem path.
func (m *Manager) ModemProperties() map[dbus.ObjectPath]ModemProperties {
	ret := map[dbus.ObjectPath]ModemProperties{}
	for _, mod := range m.Modems() {
		ret[mod.Path()] = mod.Properties()
	}
	return ret
}

// PrettyProperties returns the current properties of every modem in
// readable form, keyed by modem path.
func (m *Manager) PrettyProperties() (map[dbus.ObjectPath]map[string]any, error) {
	ret := map[dbus.ObjectPath]map[string]any{}
	for _, mod := range m.Modems() {
		props, err := mod.PrettyProperties()
		if err != nil {
			return nil, fmt.Errorf("modem %s: %w", mod.Path(), err)
		}
		ret[mod.Path()] = props
	}
	return ret, nil
}

// Modem3gppProperties returns the 3GPP properties of every modem
// that has a 3GPP interface, keyed by modem path.
func (m *Manager) Modem3gppProperties(ctx context.Context) map[dbus.ObjectPath]Modem3gppProperties {
	ret := map[dbus.ObjectPath]Modem3gppProperties{}
	for _, mod := range m.Modems() {
		if p, ok := mod.Modem3gpp(ctx).GetOK(); ok {
			ret[mod.Path()] = p.Properties()
		}
	}
	return ret
}

// SimProperties returns the SIM properties of every modem that has a
// SIM, keyed by modem path.
func (m *Manager) SimProperties() map[dbus.ObjectPath]SimProperties {
	ret := map[dbus.ObjectPath]SimProperties{}
	for _, mod := range m.Modems() {
		if s, ok := mod.Sim().GetOK(); ok {
			ret[mod.Path()] = s.Properties()
		}
	}
	return ret
}

// ScanDevices asks ModemManager to look for new modems.
//
// Modems that ModemManager finds are added to the Manager as they
// are reported.
func (m *Manager) ScanDevices(ctx context.Context) error {
	return m.Call(ctx, "ScanDevices", nil, nil)
}

// SetLogging sets ModemManager's log level: one of "ERR", "WARN",
// "INFO" or "DEBUG".
func (m *Manager) SetLogging(ctx context.Context, level string) error {
	return m.Call(ctx, "SetLogging", level, nil)
}

// ReportKernelEvent reports a kernel device event to ModemManager,
// for systems where ModemManager does not watch udev itself.
//
// props must include "action", "name" and "subsystem".
func (m *Manager) ReportKernelEvent(ctx context.Context, props map[string]any) error {
	return m.Call(ctx, "ReportKernelEvent", variants(props), nil)
}

// InhibitDevice stops or resumes ModemManager's use of the modem
// identified by uid, the modem's Device property.
//
// The inhibition lasts until it is lifted, or until the bus
// connection that requested it closes.
func (m *Manager) InhibitDevice(ctx context.Context, uid string, inhibit bool) error {
	req := struct {
		UID     string
		Inhibit bool
	}{uid, inhibit}
	return m.Call(ctx, "InhibitDevice", req, nil)
}

// Close stops tracking modems and closes every modem proxy. Lookups
// on a closed Manager report no modems. It is safe to call Close more
// than once.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.tracker.Close()
		m.modems.Close()
		m.Base.Close()
		m.logger.Debug("modem manager closed")
	})
}
