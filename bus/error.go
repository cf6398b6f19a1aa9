package bus

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// TypeError is the error returned when a value received from the bus
// cannot be stored in the Go type provided for it.
type TypeError struct {
	// Type is the name of the destination type.
	Type string
	// Reason is an explanation of why the value doesn't fit.
	Reason error
}

func (e TypeError) Error() string {
	return fmt.Sprintf("cannot store bus value in %s: %s", e.Type, e.Reason)
}

func (e TypeError) Unwrap() error {
	return e.Reason
}

// CallError is the error returned from failed DBus method calls.
type CallError struct {
	// Name is the error name provided by the remote peer.
	Name string
	// Detail is the human-readable explanation of what went wrong.
	Detail string
}

func (e CallError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("call error %s", e.Name)
	}
	return fmt.Sprintf("call error %s: %s", e.Name, e.Detail)
}

// callErr converts the bus library's error replies into CallError.
// Other errors are returned unchanged.
func callErr(err error) error {
	var de dbus.Error
	var dep *dbus.Error
	switch {
	case errors.As(err, &dep) && dep != nil:
		de = *dep
	case errors.As(err, &de):
	default:
		return err
	}
	ret := CallError{Name: de.Name}
	if len(de.Body) > 0 {
		if s, ok := de.Body[0].(string); ok {
			ret.Detail = s
		}
	}
	return ret
}
