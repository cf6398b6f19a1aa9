package modemmanager

import (
	"context"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
)

// Sim is a SIM card.
type Sim struct {
	*proxy.Base[SimProperties]
}

func newSim(ctx context.Context, obj bus.Object) (*Sim, error) {
	b, err := proxy.New(ctx, obj, decodeSim, ifaceSim)
	if err != nil {
		return nil, err
	}
	return &Sim{b}, nil
}

// SendPin sends the PIN to unlock the SIM card.
func (s *Sim) SendPin(ctx context.Context, pin string) error {
	return s.Call(ctx, "SendPin", pin, nil)
}

// SendPuk sends the PUK and a new PIN to unlock the SIM card.
func (s *Sim) SendPuk(ctx context.Context, puk, pin string) error {
	req := struct {
		Puk string
		Pin string
	}{puk, pin}
	return s.Call(ctx, "SendPuk", req, nil)
}

// EnablePin enables or disables the PIN check of the SIM card.
func (s *Sim) EnablePin(ctx context.Context, pin string, enabled bool) error {
	req := struct {
		Pin     string
		Enabled bool
	}{pin, enabled}
	return s.Call(ctx, "EnablePin", req, nil)
}

// ChangePin changes the PIN code of the SIM card.
func (s *Sim) ChangePin(ctx context.Context, oldPin, newPin string) error {
	req := struct {
		Old string
		New string
	}{oldPin, newPin}
	return s.Call(ctx, "ChangePin", req, nil)
}

// SetPreferredNetworks replaces the list of preferred networks stored
// on the SIM card.
func (s *Sim) SetPreferredNetworks(ctx context.Context, networks []PreferredNetwork) error {
	if networks == nil {
		networks = []PreferredNetwork{}
	}
	return s.Call(ctx, "SetPreferredNetworks", networks, nil)
}
