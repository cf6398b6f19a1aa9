package networkmanager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
)

// ConnectionSettingsManager manages NetworkManager's saved connection
// profiles.
//
// To connect to a network, a device activates a connection profile:
// either a saved one, or one added with AddConnection.
type ConnectionSettingsManager struct {
	*proxy.Base[SettingsProperties]

	logger  *slog.Logger
	conns   *proxy.Collection[*Connection]
	tracker *proxy.Tracker

	closeOnce sync.Once
}

func newConnectionSettingsManager(ctx context.Context, conn *bus.Conn, logger *slog.Logger) (ret *ConnectionSettingsManager, err error) {
	obj := conn.Peer(Service).Object(SettingsPath)
	b, err := proxy.New(ctx, obj, decode[SettingsProperties], ifaceSettings)
	if err != nil {
		return nil, err
	}
	s := &ConnectionSettingsManager{
		Base:   b,
		logger: logger,
	}
	s.conns = proxy.NewCollection(logger, s.buildConnection)
	defer func() {
		if err != nil {
			if s.tracker != nil {
				s.tracker.Close()
			}
			s.conns.Close()
			b.Close()
		}
	}()

	ms := []*bus.Match{
		bus.MatchSignal(ifaceSettings, "NewConnection").Peer(Service).Object(SettingsPath),
		bus.MatchSignal(ifaceSettings, "ConnectionRemoved").Peer(Service).Object(SettingsPath),
	}
	s.tracker, err = proxy.NewTracker(ctx, conn, logger, ms, s.handleConnectionSignal, s.resync)
	if err != nil {
		return nil, fmt.Errorf("watching connection profiles: %w", err)
	}
	paths, err := s.ListConnections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing connection profiles: %w", err)
	}
	if err := s.conns.Populate(ctx, paths); err != nil {
		return nil, err
	}
	s.tracker.Start()
	return s, nil
}

func (s *ConnectionSettingsManager) buildConnection(ctx context.Context, path dbus.ObjectPath) (*Connection, error) {
	return newConnection(ctx, s.Object().Peer().Object(path))
}

func (s *ConnectionSettingsManager) handleConnectionSignal(ctx context.Context, n *bus.Notification) {
	if len(n.Body) < 1 {
		s.logger.Warn("malformed connection notification", "member", n.Member)
		return
	}
	path, ok := n.Body[0].(dbus.ObjectPath)
	if !ok {
		s.logger.Warn("malformed connection notification", "member", n.Member, "path", n.Body[0])
		return
	}
	switch n.Member {
	case "NewConnection":
		if err := s.conns.Add(ctx, path); err != nil && ctx.Err() == nil {
			s.logger.Warn("adding connection profile", "path", path, "err", err)
		}
	case "ConnectionRemoved":
		s.conns.Remove(path)
	}
}

func (s *ConnectionSettingsManager) resync(ctx context.Context) error {
	paths, err := s.ListConnections(ctx)
	if err != nil {
		return err
	}
	return s.conns.Sync(ctx, paths)
}

// ListConnections returns the paths of the saved connection profiles,
// as reported by NetworkManager.
func (s *ConnectionSettingsManager) ListConnections(ctx context.Context) ([]dbus.ObjectPath, error) {
	var ret []dbus.ObjectPath
	if err := s.Call(ctx, "ListConnections", nil, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Connections returns the saved connection profiles, sorted by path.
func (s *ConnectionSettingsManager) Connections() []*Connection {
	return s.conns.All()
}

// Connection returns the connection profile at path, if there is one.
func (s *ConnectionSettingsManager) Connection(path dbus.ObjectPath) (*Connection, bool) {
	return s.conns.Get(path)
}

// SubscribeConnections returns a subscription to the paths of the
// saved connection profiles.
func (s *ConnectionSettingsManager) SubscribeConnections() *mirror.Subscription[[]dbus.ObjectPath] {
	return s.conns.Subscribe()
}

// Profiles returns the settings of every saved connection profile,
// keyed by profile path.
func (s *ConnectionSettingsManager) Profiles(ctx context.Context) (map[dbus.ObjectPath]Profile, error) {
	ret := map[dbus.ObjectPath]Profile{}
	for _, c := range s.Connections() {
		p, err := c.Settings(ctx)
		if err != nil {
			return nil, err
		}
		ret[c.Path()] = p
	}
	return ret, nil
}

// AddConnection saves a new connection profile and returns its path.
func (s *ConnectionSettingsManager) AddConnection(ctx context.Context, p Profile) (dbus.ObjectPath, error) {
	var path dbus.ObjectPath
	if err := s.Call(ctx, "AddConnection", p.wire(), &path); err != nil {
		return "", err
	}
	if err := s.conns.Add(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}

// AddWifiWPAConnection saves a new profile for the Wi-Fi network
// ssid, as built by [WifiWPAProfile], and returns its path.
func (s *ConnectionSettingsManager) AddWifiWPAConnection(ctx context.Context, ssid string, hidden bool, password string) (dbus.ObjectPath, error) {
	return s.AddConnection(ctx, WifiWPAProfile(ssid, hidden, password))
}

// RemoveConnectionProfile deactivates and deletes the connection
// profile at path.
func (s *ConnectionSettingsManager) RemoveConnectionProfile(ctx context.Context, path dbus.ObjectPath) error {
	obj := s.Object().Peer().Object(path)
	if err := obj.Interface(ifaceConnection).Call(ctx, "Delete", nil, nil); err != nil {
		return err
	}
	s.conns.Remove(path)
	return nil
}

// SaveHostname saves the system's persistent hostname.
func (s *ConnectionSettingsManager) SaveHostname(ctx context.Context, hostname string) error {
	return s.Call(ctx, "SaveHostname", hostname, nil)
}

// Close stops tracking connection profiles and closes their proxies.
// It is safe to call Close more than once.
func (s *ConnectionSettingsManager) Close() {
	s.closeOnce.Do(func() {
		s.tracker.Close()
		s.conns.Close()
		s.Base.Close()
	})
}

// Connection is a saved connection profile.
type Connection struct {
	*proxy.Base[ConnectionProperties]
}

func newConnection(ctx context.Context, obj bus.Object) (*Connection, error) {
	b, err := proxy.New(ctx, obj, decode[ConnectionProperties], ifaceConnection)
	if err != nil {
		return nil, err
	}
	return &Connection{b}, nil
}

// Settings returns the profile's settings, without secrets.
func (c *Connection) Settings(ctx context.Context) (Profile, error) {
	var resp map[string]map[string]dbus.Variant
	if err := c.Call(ctx, "GetSettings", nil, &resp); err != nil {
		return nil, err
	}
	return profileFromWire(resp), nil
}

// Update replaces the profile's settings and saves them.
func (c *Connection) Update(ctx context.Context, p Profile) error {
	return c.Call(ctx, "Update", p.wire(), nil)
}

// Delete deletes the profile.
func (c *Connection) Delete(ctx context.Context) error {
	return c.Call(ctx, "Delete", nil, nil)
}
