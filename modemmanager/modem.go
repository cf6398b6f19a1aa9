package modemmanager

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/creachadair/mds/value"
	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
	"github.com/danderson/cellnet/mirror"
	"github.com/godbus/dbus/v5"
	"golang.org/x/sync/errgroup"
)

// Modem is a modem managed by ModemManager.
//
// A Modem owns proxies for its SIM card and its bearers, and keeps
// them in step with its Sim and Bearers properties.
type Modem struct {
	*proxy.Base[ModemProperties]

	bearers *proxy.Collection[*Bearer]
	sub     *mirror.Subscription[ModemProperties]
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	mu     sync.Mutex
	sim    *Sim
	closed bool
	// created and deleted are bearers changed by this Modem that the
	// Bearers property does not reflect yet.
	created map[dbus.ObjectPath]bool
	deleted map[dbus.ObjectPath]bool

	// optMu serializes construction of the optional interfaces.
	optMu     sync.Mutex
	modem3gpp *Modem3gpp
	signal    *AdvancedSignal
	location  *Location

	closeOnce sync.Once
}

func newModem(ctx context.Context, obj bus.Object) (ret *Modem, err error) {
	b, err := proxy.New(ctx, obj, decodeModem, ifaceModem)
	if err != nil {
		return nil, err
	}
	m := &Modem{
		Base:    b,
		done:    make(chan struct{}),
		created: map[dbus.ObjectPath]bool{},
		deleted: map[dbus.ObjectPath]bool{},
	}
	m.bearers = proxy.NewCollection(b.Logger(), m.buildBearer)
	defer func() {
		if err != nil {
			m.bearers.Close()
			if m.sim != nil {
				m.sim.Close()
			}
			b.Close()
		}
	}()

	props := b.Properties()
	var sim *Sim
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sim, err = m.buildSim(gctx, props.Sim)
		return err
	})
	g.Go(func() error {
		return m.bearers.Populate(gctx, props.Bearers)
	})
	err = g.Wait()
	m.sim = sim
	if err != nil {
		return nil, fmt.Errorf("modem %s: %w", obj.Path(), err)
	}

	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.sub = b.Subscribe()
	go m.syncChildren()
	return m, nil
}

// buildSim returns the SIM proxy for path, or nil if path refers to
// no SIM.
func (m *Modem) buildSim(ctx context.Context, path dbus.ObjectPath) (*Sim, error) {
	if path == "" || path == noObject {
		return nil, nil
	}
	return newSim(ctx, m.Object().Peer().Object(path))
}

func (m *Modem) buildBearer(ctx context.Context, path dbus.ObjectPath) (*Bearer, error) {
	return newBearer(ctx, m.Object().Peer().Object(path))
}

// syncChildren reconciles the SIM and bearers with the latest
// properties each time they change. Queued deliveries may be stale,
// so they only serve as a wakeup.
func (m *Modem) syncChildren() {
	defer close(m.done)
	for range m.sub.Chan() {
		props := m.Properties()
		if err := m.bearers.Sync(m.ctx, m.bearerPaths(props.Bearers)); err != nil && m.ctx.Err() == nil {
			m.Logger().Warn("syncing bearers", "err", err)
		}
		if err := m.syncSim(props.Sim); err != nil && m.ctx.Err() == nil {
			m.Logger().Warn("syncing SIM", "sim", props.Sim, "err", err)
		}
	}
}

// bearerPaths returns the bearers the modem should have, given the
// reported Bearers property and the bearers this Modem created or
// deleted itself. Local changes stop overriding the property once it
// catches up with them.
func (m *Modem) bearerPaths(reported []dbus.ObjectPath) []dbus.ObjectPath {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := map[dbus.ObjectPath]bool{}
	for _, p := range reported {
		want[p] = true
	}
	for p := range m.created {
		if want[p] {
			delete(m.created, p)
		}
		want[p] = true
	}
	for p := range m.deleted {
		if !want[p] {
			delete(m.deleted, p)
		}
		delete(want, p)
	}
	return slices.Sorted(maps.Keys(want))
}

// syncSim replaces the SIM proxy if the modem's SIM has changed.
func (m *Modem) syncSim(path dbus.ObjectPath) error {
	m.mu.Lock()
	cur := m.sim
	m.mu.Unlock()
	switch {
	case cur == nil && (path == "" || path == noObject):
		return nil
	case cur != nil && cur.Path() == path:
		return nil
	}

	next, err := m.buildSim(m.ctx, path)
	if err != nil {
		return err
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		if next != nil {
			next.Close()
		}
		return nil
	}
	m.sim = next
	m.mu.Unlock()
	if cur != nil {
		cur.Close()
	}
	m.Logger().Debug("SIM changed", "sim", path)
	return nil
}

// Index returns the modem's index, the number ModemManager assigns
// to it in its object path.
func (m *Modem) Index() (int, bool) {
	s, ok := strings.CutPrefix(string(m.Path()), ModemPathPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// PrettyProperties returns the modem's current properties in
// readable form. See [PrettyProperties].
func (m *Modem) PrettyProperties() (map[string]any, error) {
	return PrettyProperties(m.RawProperties())
}

// Sim returns the modem's primary SIM card, if it has one.
func (m *Modem) Sim() value.Maybe[*Sim] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sim == nil {
		return value.Absent[*Sim]()
	}
	return value.Just(m.sim)
}

// Bearers returns the modem's bearers, sorted by path.
func (m *Modem) Bearers() []*Bearer {
	return m.bearers.All()
}

// Bearer returns the bearer at path, if the modem has one.
func (m *Modem) Bearer(path dbus.ObjectPath) (*Bearer, bool) {
	return m.bearers.Get(path)
}

// SubscribeBearers returns a subscription to the paths of the
// modem's bearers.
func (m *Modem) SubscribeBearers() *mirror.Subscription[[]dbus.ObjectPath] {
	return m.bearers.Subscribe()
}

type optionalProxy interface {
	comparable
	Close()
}

// optional returns the proxy in slot, building it first if needed.
// Failures are logged and reported as absence, so that a later call
// can try again.
func optional[P optionalProxy](ctx context.Context, m *Modem, slot *P, what string, build func(context.Context, bus.Object) (P, error)) value.Maybe[P] {
	m.optMu.Lock()
	defer m.optMu.Unlock()
	var zero P
	if *slot != zero {
		return value.Just(*slot)
	}
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return value.Absent[P]()
	}
	p, err := build(ctx, m.Object())
	if err != nil {
		m.Logger().Warn("modem interface unavailable", "interface", what, "err", err)
		return value.Absent[P]()
	}
	*slot = p
	return value.Just(p)
}

// Modem3gpp returns the modem's 3GPP interface, if it has one.
func (m *Modem) Modem3gpp(ctx context.Context) value.Maybe[*Modem3gpp] {
	return optional(ctx, m, &m.modem3gpp, ifaceModem3gpp, newModem3gpp)
}

// AdvancedSignal returns the modem's extended signal interface, if it
// has one.
func (m *Modem) AdvancedSignal(ctx context.Context) value.Maybe[*AdvancedSignal] {
	return optional(ctx, m, &m.signal, ifaceSignal, newAdvancedSignal)
}

// Location returns the modem's location interface, if it has one.
func (m *Modem) Location(ctx context.Context) value.Maybe[*Location] {
	return optional(ctx, m, &m.location, ifaceLocation, newLocation)
}

// Enable powers the modem's radio on or off.
func (m *Modem) Enable(ctx context.Context, enable bool) error {
	return m.Call(ctx, "Enable", enable, nil)
}

// ListBearers returns the paths of the modem's bearers, as reported
// by the modem.
func (m *Modem) ListBearers(ctx context.Context) ([]dbus.ObjectPath, error) {
	var ret []dbus.ObjectPath
	if err := m.Call(ctx, "ListBearers", nil, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// CreateBearer creates a new bearer with the given settings and
// returns its proxy.
func (m *Modem) CreateBearer(ctx context.Context, cfg BearerConfig) (*Bearer, error) {
	var path dbus.ObjectPath
	if err := m.Call(ctx, "CreateBearer", cfg.vardict(), &path); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.created[path] = true
	delete(m.deleted, path)
	m.mu.Unlock()
	if err := m.bearers.Add(ctx, path); err != nil {
		m.mu.Lock()
		delete(m.created, path)
		m.mu.Unlock()
		return nil, err
	}
	ret, ok := m.bearers.Get(path)
	if !ok {
		return nil, fmt.Errorf("bearer %s disappeared after creation", path)
	}
	return ret, nil
}

// DeleteBearer deletes the bearer at path.
func (m *Modem) DeleteBearer(ctx context.Context, path dbus.ObjectPath) error {
	if err := m.Call(ctx, "DeleteBearer", path, nil); err != nil {
		return err
	}
	m.mu.Lock()
	m.deleted[path] = true
	delete(m.created, path)
	m.mu.Unlock()
	m.bearers.Remove(path)
	return nil
}

// Reset clears non-persistent configuration and state, and returns
// the device to a newly-powered-on state.
func (m *Modem) Reset(ctx context.Context) error {
	return m.Call(ctx, "Reset", nil, nil)
}

// FactoryReset clears all settings, including persistent ones. code
// is the carrier-supplied reset code.
func (m *Modem) FactoryReset(ctx context.Context, code string) error {
	return m.Call(ctx, "FactoryReset", code, nil)
}

// SetPowerState sets the power state of the modem. It is only allowed
// while the modem is disabled.
func (m *Modem) SetPowerState(ctx context.Context, state ModemPowerState) error {
	return m.Call(ctx, "SetPowerState", uint32(state), nil)
}

// SetCurrentCapabilities sets the capabilities the modem uses. It
// must be one of the SupportedCapabilities combinations.
func (m *Modem) SetCurrentCapabilities(ctx context.Context, caps ModemCapability) error {
	return m.Call(ctx, "SetCurrentCapabilities", uint32(caps), nil)
}

// SetCurrentModes sets the access modes the modem may use, and the
// preferred one among them.
func (m *Modem) SetCurrentModes(ctx context.Context, modes, preferred ModemMode) error {
	type combination struct {
		Allowed   uint32
		Preferred uint32
	}
	req := struct{ Modes combination }{combination{uint32(modes), uint32(preferred)}}
	return m.Call(ctx, "SetCurrentModes", req, nil)
}

// SetCurrentBands sets the radio frequency bands the modem may use.
func (m *Modem) SetCurrentBands(ctx context.Context, bands []ModemBand) error {
	req := make([]uint32, 0, len(bands))
	for _, b := range bands {
		req = append(req, uint32(b))
	}
	return m.Call(ctx, "SetCurrentBands", req, nil)
}

// SetPrimarySimSlot selects the SIM slot to use, numbered from 1.
func (m *Modem) SetPrimarySimSlot(ctx context.Context, slot uint32) error {
	return m.Call(ctx, "SetPrimarySimSlot", slot, nil)
}

// Command sends an AT command to the modem and returns its response.
// timeout is rounded up to a whole number of seconds.
//
// ModemManager only allows this in debug mode.
func (m *Modem) Command(ctx context.Context, cmd string, timeout time.Duration) (string, error) {
	secs := uint32((timeout + time.Second - 1) / time.Second)
	req := struct {
		Cmd     string
		Timeout uint32
	}{cmd, secs}
	var resp string
	if err := m.Call(ctx, "Command", req, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// Close closes the modem proxy and every proxy it owns. It is safe
// to call Close more than once.
func (m *Modem) Close() {
	m.closeOnce.Do(func() {
		m.cancel()
		m.sub.Close()
		<-m.done

		m.mu.Lock()
		m.closed = true
		sim := m.sim
		m.sim = nil
		m.mu.Unlock()

		m.optMu.Lock()
		if m.modem3gpp != nil {
			m.modem3gpp.Close()
		}
		if m.signal != nil {
			m.signal.Close()
		}
		if m.location != nil {
			m.location.Close()
		}
		m.modem3gpp, m.signal, m.location = nil, nil, nil
		m.optMu.Unlock()

		if sim != nil {
			sim.Close()
		}
		m.bearers.Close()
		m.Base.Close()
	})
}
