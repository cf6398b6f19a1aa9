package bus

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/godbus/dbus/v5"
)

// Interface is a set of methods, properties and signals offered by an
// [Object].
type Interface struct {
	o    Object
	name string
}

// Conn returns the DBus connection associated with the interface.
func (f Interface) Conn() *Conn { return f.o.Conn() }

// Peer returns the Peer that is offering the interface.
func (f Interface) Peer() Peer { return f.o.Peer() }

// Object returns the Object that implements the interface.
func (f Interface) Object() Object { return f.o }

// Name returns the name of the interface.
func (f Interface) Name() string { return f.name }

func (f Interface) String() string {
	if f.name == "" {
		return fmt.Sprintf("%s:<no interface>", f.Object())
	}
	return fmt.Sprintf("%s:%s", f.Object(), f.name)
}

// Call calls method on the interface with the given request body, and
// writes the response into response.
//
// Body may be nil for methods that accept no parameters. A struct
// body supplies one parameter per exported field, in field order; to
// pass a single struct-typed parameter, wrap it in an outer struct.
// Any other body is passed as the sole parameter.
//
// Response may be nil for methods that return no values. For methods
// that return more than one value, response must point to a struct
// with one field per returned value.
//
// This is a low-level calling API. It is the caller's responsibility
// to match the body and response types to the signature of the method
// being invoked.
func (f Interface) Call(ctx context.Context, method string, body any, response any) error {
	return f.Conn().call(ctx, f.Peer().Name(), f.Object().Path(), f.Name(), method, body, response)
}

// GetProperty reads the value of the given property into val.
//
// It is the caller's responsibility to match the value's type to the
// type offered by the interface. val may also be of type *any to
// retrieve a property without knowing its type.
func (f Interface) GetProperty(ctx context.Context, name string, val any) error {
	want := reflect.ValueOf(val)
	if !want.IsValid() {
		return errors.New("cannot read property into nil interface")
	}
	if want.Kind() != reflect.Pointer {
		return errors.New("cannot read property into non-pointer")
	}
	if want.IsNil() {
		return errors.New("cannot read property into nil pointer")
	}

	var resp dbus.Variant
	req := struct {
		InterfaceName string
		PropertyName  string
	}{f.name, name}
	if err := f.Object().Interface(ifaceProps).Call(ctx, "Get", req, &resp); err != nil {
		return err
	}
	if err := dbus.Store([]any{resp.Value()}, val); err != nil {
		return TypeError{want.Type().Elem().String(), fmt.Errorf("property %s: %w", name, err)}
	}
	return nil
}

// SetProperty sets the given property to value.
//
// It is the caller's responsibility to match the value's type to the
// type offered by the interface.
func (f Interface) SetProperty(ctx context.Context, name string, value any) error {
	req := struct {
		InterfaceName string
		PropertyName  string
		Value         dbus.Variant
	}{f.name, name, dbus.MakeVariant(value)}
	return f.Object().Interface(ifaceProps).Call(ctx, "Set", req, nil)
}

// GetAllProperties returns all the properties exported by the
// interface.
//
// Property values are unwrapped from their variants. Nested values
// keep the representation chosen by the bus library: structs arrive
// as []any, and dictionaries of variants as map[string]dbus.Variant.
func (f Interface) GetAllProperties(ctx context.Context) (map[string]any, error) {
	var resp map[string]dbus.Variant
	if err := f.Object().Interface(ifaceProps).Call(ctx, "GetAll", f.name, &resp); err != nil {
		return nil, err
	}

	ret := make(map[string]any, len(resp))
	for k, v := range resp {
		ret[k] = v.Value()
	}
	return ret, nil
}

var (
	variantType   = reflect.TypeFor[dbus.Variant]()
	signatureType = reflect.TypeFor[dbus.Signature]()
)

func bodyArgs(body any) ([]any, error) {
	if body == nil {
		return nil, nil
	}
	v := reflect.ValueOf(body)
	if v.Kind() != reflect.Struct || v.Type() == variantType || v.Type() == signatureType {
		return []any{body}, nil
	}
	t := v.Type()
	ret := make([]any, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			return nil, TypeError{t.String(), fmt.Errorf("unexported field %s in call body", field.Name)}
		}
		ret = append(ret, v.Field(i).Interface())
	}
	return ret, nil
}

func storeResponse(resp []any, response any) error {
	var err error
	switch len(resp) {
	case 0:
		return nil
	case 1:
		err = dbus.Store(resp, response)
	default:
		err = dbus.Store([]any{resp}, response)
	}
	if err != nil {
		return TypeError{fmt.Sprintf("%T", response), err}
	}
	return nil
}
