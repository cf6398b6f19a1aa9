// Package enum decodes the packed integers that bus services use for
// enumerations and bitmasks into symbolic names.
package enum

import (
	"fmt"
	"sort"
	"strings"
)

// Integer is the set of integer types that enumeration values are
// carried in.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Table maps the values of an enumeration to their symbolic names.
type Table interface {
	// Enum returns the name of the enumeration, for use in error
	// messages.
	Enum() string
	// Lookup returns the symbolic name for v.
	Lookup(v int64) (string, bool)
}

// Values is a static enumeration table.
type Values struct {
	name    string
	names   map[int64]string
	bitmask bool
}

// New returns an enumeration table with the given name and values.
func New(name string, names map[int64]string) *Values {
	return &Values{name: name, names: names}
}

// NewBitmask returns a table for an enumeration whose values are
// combined as bit flags.
func NewBitmask(name string, names map[int64]string) *Values {
	return &Values{name: name, names: names, bitmask: true}
}

// IsBitmask reports whether the table's values are bit flags.
func (v *Values) IsBitmask() bool {
	return v != nil && v.bitmask
}

func (v *Values) Enum() string {
	if v == nil {
		return ""
	}
	return v.name
}

func (v *Values) Lookup(n int64) (string, bool) {
	if v == nil {
		return "", false
	}
	ret, ok := v.names[n]
	return ret, ok
}

// All returns the table's values in ascending order.
func (v *Values) All() []int64 {
	if v == nil {
		return nil
	}
	ret := make([]int64, 0, len(v.names))
	for k := range v.names {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// Bitmask returns the names of the single-bit values set in mask, in
// ascending bit order.
//
// A zero mask decodes to the table's name for 0. A negative mask
// decodes to no names. A set bit that the table doesn't name is a
// [*DecodeError].
func Bitmask[T Integer](mask T, t Table) ([]string, error) {
	if isNil(t) {
		return nil, &TypeError{}
	}
	m := int64(mask)
	if m < 0 {
		return []string{}, nil
	}
	if m == 0 {
		name, ok := t.Lookup(0)
		if !ok {
			return nil, &DecodeError{Enum: t.Enum(), Value: 0}
		}
		return []string{name}, nil
	}

	var ret []string
	for m != 0 {
		bit := m & -m
		name, ok := t.Lookup(bit)
		if !ok {
			return nil, &DecodeError{Enum: t.Enum(), Value: bit, Bit: true}
		}
		ret = append(ret, name)
		m ^= bit
	}
	return ret, nil
}

// Name returns the name of the single enumeration value v.
func Name[T Integer](v T, t Table) (string, error) {
	if isNil(t) {
		return "", &TypeError{}
	}
	name, ok := t.Lookup(int64(v))
	if !ok {
		return "", &DecodeError{Enum: t.Enum(), Value: int64(v)}
	}
	return name, nil
}

// String returns the name of v, or a numeric placeholder if t has no
// name for it.
func String[T Integer](v T, t Table) string {
	if name, err := Name(v, t); err == nil {
		return name
	}
	if isNil(t) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%s(%d)", t.Enum(), int64(v))
}

// MaskString returns the names of the bits set in mask joined with
// "|", or a hexadecimal placeholder if some bit has no name.
func MaskString[T Integer](mask T, t Table) string {
	names, err := Bitmask(mask, t)
	if err == nil {
		return strings.Join(names, "|")
	}
	if isNil(t) {
		return fmt.Sprintf("0x%x", uint64(mask))
	}
	return fmt.Sprintf("%s(0x%x)", t.Enum(), uint64(mask))
}

// Decode returns the names for v, decoding it as a bitmask if t is a
// bitmask table and as a single value otherwise.
func Decode(v int64, t *Values) ([]string, error) {
	if t.IsBitmask() {
		return Bitmask(v, t)
	}
	name, err := Name(v, t)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func isNil(t Table) bool {
	if t == nil {
		return true
	}
	if v, ok := t.(*Values); ok && (v == nil || v.names == nil) {
		return true
	}
	return false
}
