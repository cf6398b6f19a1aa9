package bus

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

// DecodeProperties stores the property set props into the struct
// pointed to by dst.
//
// Each exported field receives the property of the same name, or the
// property named by a `dbus:"key=Name"` struct tag. The fields of an
// embedded struct are treated as fields of the outer struct, and an
// outer field hides an embedded field with the same key. A field of
// type map[string]any tagged `dbus:"vardict"` receives every property
// that no other field claims; the outermost vardict field is used.
// Fields tagged `dbus:"-"` are ignored. Properties absent from props
// leave their field untouched.
//
// Values are converted with the same rules the bus library uses for
// method replies, so a property of DBus type a(su) can be stored in a
// slice of two-field structs.
func DecodeProperties(props map[string]any, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return TypeError{fmt.Sprintf("%T", dst), errors.New("destination must be a non-nil pointer to struct")}
	}
	v = v.Elem()
	inf, err := getPropStructInfo(v.Type())
	if err != nil {
		return err
	}

	var unknown reflect.Value
	if inf.vardict != nil {
		unknown = v.FieldByIndex(inf.vardict)
	}
	for name, val := range props {
		idx, ok := inf.fields[name]
		if !ok {
			if unknown.IsValid() {
				if unknown.IsNil() {
					unknown.Set(reflect.MakeMap(unknown.Type()))
				}
				unknown.SetMapIndex(reflect.ValueOf(name), reflect.ValueOf(&val).Elem())
			}
			continue
		}
		if val == nil {
			continue
		}
		f := v.FieldByIndex(idx)
		if err := dbus.Store([]any{val}, f.Addr().Interface()); err != nil {
			return TypeError{v.Type().String() + "." + v.Type().FieldByIndex(idx).Name, fmt.Errorf("property %s: %w", name, err)}
		}
	}
	return nil
}

type propStructInfo struct {
	fields  map[string][]int
	vardict []int
}

var propStructCache sync.Map // reflect.Type -> *propStructInfo

func getPropStructInfo(t reflect.Type) (*propStructInfo, error) {
	if ret, ok := propStructCache.Load(t); ok {
		return ret.(*propStructInfo), nil
	}

	ret := &propStructInfo{
		fields: map[string][]int{},
	}
	if err := ret.add(t, nil); err != nil {
		return nil, err
	}
	propStructCache.Store(t, ret)
	return ret, nil
}

// add records the fields of struct type t, found at index path
// prefix. Fields already recorded by an outer struct take precedence.
func (inf *propStructInfo) add(t reflect.Type, prefix []int) error {
	// Keys defined at this depth, to detect collisions within the
	// same struct while letting outer fields hide embedded ones.
	local := map[string]bool{}
	var embedded []int
	hasVardict := false
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		skip, isVardict, key := parsePropTag(field)
		idx := append(slices.Clone(prefix), i)
		switch {
		case skip:
		case isVardict:
			if field.Type != reflect.TypeFor[map[string]any]() {
				return TypeError{t.String(), fmt.Errorf("vardict field %s must be a map[string]any", field.Name)}
			}
			if hasVardict {
				return TypeError{t.String(), errors.New("more than one vardict field")}
			}
			hasVardict = true
			if inf.vardict == nil {
				inf.vardict = idx
			}
		case field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get("dbus") == "":
			embedded = append(embedded, i)
		default:
			if local[key] {
				return TypeError{t.String(), fmt.Errorf("duplicate property key %q", key)}
			}
			local[key] = true
			if _, ok := inf.fields[key]; !ok {
				inf.fields[key] = idx
			}
		}
	}
	for _, i := range embedded {
		if err := inf.add(t.Field(i).Type, append(slices.Clone(prefix), i)); err != nil {
			return err
		}
	}
	return nil
}

func parsePropTag(field reflect.StructField) (skip, isVardict bool, key string) {
	key = field.Name
	tag := field.Tag.Get("dbus")
	if tag == "-" {
		return true, false, ""
	}
	for _, f := range strings.Split(tag, ",") {
		if f == "vardict" {
			isVardict = true
		} else if val, ok := strings.CutPrefix(f, "key="); ok && val != "" {
			key = val
		}
	}
	return false, isVardict, key
}
