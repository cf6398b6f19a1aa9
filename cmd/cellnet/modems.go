package main

import (
	"context"
	"fmt"
	"time"

	"github.com/creachadair/command"
	"github.com/danderson/cellnet/modemmanager"
	"github.com/godbus/dbus/v5"
)

// withModems connects to ModemManager and calls fn with the manager.
// The context passed to fn is bounded by --timeout.
func withModems(env *command.Env, fn func(context.Context, *modemmanager.Manager) error) error {
	conn, err := busConn(env.Context())
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := opContext(env)
	defer cancel()
	mm, err := modemmanager.New(ctx, conn, modemmanager.WithLogger(logger()))
	if err != nil {
		return err
	}
	defer mm.Close()
	return fn(ctx, mm)
}

type modemSummary struct {
	Index        int             `yaml:"index"`
	Path         dbus.ObjectPath `yaml:"path"`
	Manufacturer string          `yaml:"manufacturer"`
	Model        string          `yaml:"model"`
	State        string          `yaml:"state"`
	Access       string          `yaml:"access"`
	Signal       uint32          `yaml:"signal"`
}

func runModemsList(env *command.Env) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		var ms []modemSummary
		for _, m := range mm.Modems() {
			idx, _ := m.Index()
			props := m.Properties()
			ms = append(ms, modemSummary{
				Index:        idx,
				Path:         m.Path(),
				Manufacturer: props.Manufacturer,
				Model:        props.Model,
				State:        props.State.String(),
				Access:       props.AccessTechnologies.String(),
				Signal:       props.SignalQuality.Quality,
			})
		}
		return show(ms, func(out *indenter) {
			if len(ms) == 0 {
				out.s("no modems")
				return
			}
			for _, m := range ms {
				out.f("%d: %s %s (%s, %s, signal %d%%)", m.Index, m.Manufacturer, m.Model, m.State, m.Access, m.Signal)
			}
		})
	})
}

func runModemsShow(env *command.Env, idx string) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		m, err := modemByIndex(mm, idx)
		if err != nil {
			return err
		}
		return show(m.Properties(), func(out *indenter) {
			out.v(m.Path())
			out.indent(1)
			out.props(m.RawProperties())
		})
	})
}

func runModemsPretty(env *command.Env, idx string) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		m, err := modemByIndex(mm, idx)
		if err != nil {
			return err
		}
		pp, err := m.PrettyProperties()
		if err != nil {
			return fmt.Errorf("rendering properties of %s: %w", m.Path(), err)
		}
		return show(pp, func(out *indenter) {
			out.v(m.Path())
			out.indent(1)
			out.props(pp)
		})
	})
}

func runModems3gpp(env *command.Env, idx string) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		m, err := modemByIndex(mm, idx)
		if err != nil {
			return err
		}
		g, ok := m.Modem3gpp(ctx).GetOK()
		if !ok {
			return fmt.Errorf("modem %s has no 3GPP interface", idx)
		}
		props := g.Properties()
		return show(props, func(out *indenter) {
			out.f("IMEI: %s", props.Imei)
			out.f("Registration: %s", props.RegistrationState)
			out.f("Operator: %s (%s)", props.OperatorName, props.OperatorCode)
			out.f("Packet service: %s", props.PacketServiceState)
			out.f("Facility locks: %s", props.EnabledFacilityLocks)
		})
	})
}

func runModemsSim(env *command.Env, idx string) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		m, err := modemByIndex(mm, idx)
		if err != nil {
			return err
		}
		sim, ok := m.Sim().GetOK()
		if !ok {
			return fmt.Errorf("modem %s has no SIM", idx)
		}
		props := sim.Properties()
		return show(props, func(out *indenter) {
			out.v(sim.Path())
			out.indent(1)
			out.f("ICCID: %s", props.SimIdentifier)
			out.f("IMSI: %s", props.Imsi)
			out.f("Operator: %s (%s)", props.OperatorName, props.OperatorIdentifier)
			out.f("Type: %s", props.SimType)
			out.f("Active: %v", props.Active)
		})
	})
}

func runModemsWatch(env *command.Env, idx string) error {
	conn, err := busConn(env.Context())
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := opContext(env)
	defer cancel()
	mm, err := modemmanager.New(ctx, conn, modemmanager.WithLogger(logger()))
	if err != nil {
		return err
	}
	defer mm.Close()
	m, err := modemByIndex(mm, idx)
	if err != nil {
		return err
	}

	sub := m.Subscribe()
	defer sub.Close()
	for {
		select {
		case <-env.Context().Done():
			return nil
		case props, ok := <-sub.Chan():
			if !ok {
				return fmt.Errorf("modem %s went away", idx)
			}
			fmt.Println(time.Now().Format(time.TimeOnly))
			err := show(props, func(out *indenter) {
				out.indent(1)
				out.f("State: %s", props.State)
				out.f("Power: %s", props.PowerState)
				out.f("Access: %s", props.AccessTechnologies)
				out.f("Signal: %d%% (recent: %v)", props.SignalQuality.Quality, props.SignalQuality.Recent)
				out.f("Bearers: %v", props.Bearers)
			})
			if err != nil {
				return err
			}
		}
	}
}

func runModemsScan(env *command.Env) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		if err := mm.ScanDevices(ctx); err != nil {
			return fmt.Errorf("scanning for modems: %w", err)
		}
		return nil
	})
}

func modemBearer(mm *modemmanager.Manager, idx, path string) (*modemmanager.Bearer, error) {
	m, err := modemByIndex(mm, idx)
	if err != nil {
		return nil, err
	}
	b, ok := m.Bearer(dbus.ObjectPath(path))
	if !ok {
		return nil, fmt.Errorf("modem %s has no bearer %s", idx, path)
	}
	return b, nil
}

func runBearerConnect(env *command.Env, idx, path string) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		b, err := modemBearer(mm, idx, path)
		if err != nil {
			return err
		}
		if err := b.Connect(ctx); err != nil {
			return fmt.Errorf("connecting bearer %s: %w", path, err)
		}
		fmt.Printf("connected, interface %s\n", b.Properties().Interface)
		return nil
	})
}

func runBearerDisconnect(env *command.Env, idx, path string) error {
	return withModems(env, func(ctx context.Context, mm *modemmanager.Manager) error {
		b, err := modemBearer(mm, idx, path)
		if err != nil {
			return err
		}
		if err := b.Disconnect(ctx); err != nil {
			return fmt.Errorf("disconnecting bearer %s: %w", path, err)
		}
		return nil
	})
}
