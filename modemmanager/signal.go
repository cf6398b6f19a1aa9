package modemmanager

import (
	"context"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
)

// AdvancedSignal is the extended signal quality interface of a modem.
//
// The modem only reports measurements after Setup or SetupThresholds
// has enabled them.
type AdvancedSignal struct {
	*proxy.Base[SignalProperties]
}

func newAdvancedSignal(ctx context.Context, obj bus.Object) (*AdvancedSignal, error) {
	b, err := proxy.New(ctx, obj, decodeSignal, ifaceSignal)
	if err != nil {
		return nil, err
	}
	return &AdvancedSignal{b}, nil
}

// Setup sets the measurement refresh rate in seconds. Zero disables
// periodic measurements.
func (s *AdvancedSignal) Setup(ctx context.Context, rate uint32) error {
	return s.Call(ctx, "Setup", rate, nil)
}

// SetupThresholds sets the thresholds that trigger measurement
// reports.
func (s *AdvancedSignal) SetupThresholds(ctx context.Context, t SignalThresholds) error {
	return s.Call(ctx, "SetupThresholds", t.vardict(), nil)
}
