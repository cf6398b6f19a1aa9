package modemmanager

import (
	"context"

	"github.com/danderson/cellnet/bus"
	"github.com/danderson/cellnet/internal/proxy"
)

// Bearer is a data connection of a modem.
type Bearer struct {
	*proxy.Base[BearerProperties]
}

func newBearer(ctx context.Context, obj bus.Object) (*Bearer, error) {
	b, err := proxy.New(ctx, obj, decodeBearer, ifaceBearer)
	if err != nil {
		return nil, err
	}
	return &Bearer{b}, nil
}

// Connect requests activation of a packet data connection with the
// network, using the bearer's properties.
func (b *Bearer) Connect(ctx context.Context) error {
	return b.Call(ctx, "Connect", nil, nil)
}

// Disconnect disconnects and deactivates the bearer.
func (b *Bearer) Disconnect(ctx context.Context) error {
	return b.Call(ctx, "Disconnect", nil, nil)
}
