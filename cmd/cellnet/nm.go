package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/creachadair/command"
	"github.com/danderson/cellnet/networkmanager"
	"github.com/godbus/dbus/v5"
)

var wifiAddArgs struct {
	Hidden  bool `flag:"hidden,Network does not broadcast its SSID"`
	Connect bool `flag:"connect,Activate the new profile on the first Wi-Fi device"`
}

// withNetworkManager connects to NetworkManager and calls fn with
// it. The context passed to fn is bounded by --timeout.
func withNetworkManager(env *command.Env, fn func(context.Context, *networkmanager.NetworkManager) error) error {
	conn, err := busConn(env.Context())
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := opContext(env)
	defer cancel()
	nm, err := networkmanager.New(ctx, conn, networkmanager.WithLogger(logger()))
	if err != nil {
		return err
	}
	defer nm.Close()
	return fn(ctx, nm)
}

func runNMStatus(env *command.Env) error {
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		props := nm.Properties()
		return show(props, func(out *indenter) {
			out.f("Version: %s", props.Version)
			out.f("State: %s", props.State)
			out.f("Connectivity: %s", props.Connectivity)
			out.f("Networking: %v", props.NetworkingEnabled)
			out.f("Wireless: %v (hardware %v)", props.WirelessEnabled, props.WirelessHardwareEnabled)
			out.f("WWAN: %v (hardware %v)", props.WwanEnabled, props.WwanHardwareEnabled)
			if props.PrimaryConnectionType != "" {
				out.f("Primary connection: %s (%s)", props.PrimaryConnection, props.PrimaryConnectionType)
			}
		})
	})
}

type deviceSummary struct {
	Path      dbus.ObjectPath `yaml:"path"`
	Interface string          `yaml:"interface"`
	Type      string          `yaml:"type"`
	State     string          `yaml:"state"`
	IPv4      string          `yaml:"ipv4,omitempty"`
}

func runNMDevices(env *command.Env) error {
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		var ds []deviceSummary
		for _, d := range nm.Devices() {
			props := d.DeviceProperties()
			s := deviceSummary{
				Path:      d.Path(),
				Interface: props.Interface,
				Type:      props.DeviceType.String(),
				State:     props.State.String(),
			}
			if ip := props.IPv4(); ip.IsValid() {
				s.IPv4 = ip.String()
			}
			ds = append(ds, s)
		}
		return show(ds, func(out *indenter) {
			for _, d := range ds {
				if d.IPv4 != "" {
					out.f("%s: %s, %s, %s", d.Interface, d.Type, d.State, d.IPv4)
				} else {
					out.f("%s: %s, %s", d.Interface, d.Type, d.State)
				}
			}
		})
	})
}

func runNMConnectivity(env *command.Env) error {
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		st, err := nm.CheckConnectivity(ctx)
		if err != nil {
			return fmt.Errorf("checking connectivity: %w", err)
		}
		fmt.Println(st)
		return nil
	})
}

func runNMWifiScan(env *command.Env) error {
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		devs := nm.WifiDevices()
		if len(devs) == 0 {
			return errors.New("no Wi-Fi devices")
		}
		var errs []error
		for _, d := range devs {
			if err := d.RequestScan(ctx); err != nil {
				errs = append(errs, fmt.Errorf("scanning on %s: %w", d.DeviceProperties().Interface, err))
			}
		}
		return errors.Join(errs...)
	})
}

type apSummary struct {
	Device    string `yaml:"device"`
	SSID      string `yaml:"ssid"`
	BSSID     string `yaml:"bssid"`
	Frequency uint32 `yaml:"frequency"`
	Strength  uint8  `yaml:"strength"`
	Security  string `yaml:"security"`
	Active    bool   `yaml:"active"`
}

func runNMWifiAPs(env *command.Env) error {
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		var aps []apSummary
		for _, d := range nm.WifiDevices() {
			iface := d.DeviceProperties().Interface
			active := d.Properties().ActiveAccessPoint
			for _, ap := range d.AccessPoints() {
				props := ap.Properties()
				aps = append(aps, apSummary{
					Device:    iface,
					SSID:      props.SSID(),
					BSSID:     props.HwAddress,
					Frequency: props.Frequency,
					Strength:  props.Strength,
					Security:  (props.WpaFlags | props.RsnFlags).String(),
					Active:    ap.Path() == active,
				})
			}
		}
		slices.SortStableFunc(aps, func(a, b apSummary) int {
			return cmp.Compare(b.Strength, a.Strength)
		})
		return show(aps, func(out *indenter) {
			for _, ap := range aps {
				mark := " "
				if ap.Active {
					mark = "*"
				}
				out.f("%s %-32q %s %3d%% %dMHz %s (%s)", mark, ap.SSID, ap.BSSID, ap.Strength, ap.Frequency, ap.Security, ap.Device)
			}
		})
	})
}

func runNMWifiAdd(env *command.Env) error {
	if len(env.Args) < 1 || len(env.Args) > 2 {
		return env.Usagef("wrong number of arguments")
	}
	args := growTo(env.Args, 2)
	ssid, password := args[0], args[1]
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		settings, err := nm.ConnectionSettings(ctx)
		if err != nil {
			return err
		}
		path, err := settings.AddWifiWPAConnection(ctx, ssid, wifiAddArgs.Hidden, password)
		if err != nil {
			return fmt.Errorf("saving profile for %q: %w", ssid, err)
		}
		fmt.Println(path)
		if !wifiAddArgs.Connect {
			return nil
		}
		devs := nm.WifiDevices()
		if len(devs) == 0 {
			return errors.New("no Wi-Fi devices to connect with")
		}
		if _, err := devs[0].ActivateConnection(ctx, path); err != nil {
			return fmt.Errorf("activating %s: %w", path, err)
		}
		return nil
	})
}

type profileSummary struct {
	Path dbus.ObjectPath `yaml:"path"`
	ID   string          `yaml:"id"`
	UUID string          `yaml:"uuid"`
	Type string          `yaml:"type"`
}

func runNMConnections(env *command.Env) error {
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		settings, err := nm.ConnectionSettings(ctx)
		if err != nil {
			return err
		}
		profiles, err := settings.Profiles(ctx)
		if err != nil {
			return fmt.Errorf("listing profiles: %w", err)
		}
		var ps []profileSummary
		for _, path := range slices.Sorted(maps.Keys(profiles)) {
			p := profiles[path]
			ps = append(ps, profileSummary{path, p.ID(), p.UUID(), p.Type()})
		}
		return show(ps, func(out *indenter) {
			for _, p := range ps {
				out.f("%s: %s (%s, %s)", p.Path, p.ID, p.Type, p.UUID)
			}
		})
	})
}

func runNMConnectionsRemove(env *command.Env, path string) error {
	return withNetworkManager(env, func(ctx context.Context, nm *networkmanager.NetworkManager) error {
		settings, err := nm.ConnectionSettings(ctx)
		if err != nil {
			return err
		}
		if err := settings.RemoveConnectionProfile(ctx, dbus.ObjectPath(path)); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		return nil
	})
}
