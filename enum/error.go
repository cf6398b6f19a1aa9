package enum

import "fmt"

// TypeError is the error returned when decoding against something
// that isn't an enumeration table.
type TypeError struct{}

func (e *TypeError) Error() string {
	return "Failed to parse given enumeration, likely from passing in a non-enumeration type"
}

// DecodeError is the error returned when a value has no name in an
// enumeration table.
type DecodeError struct {
	// Enum is the name of the enumeration.
	Enum string
	// Value is the value that has no name.
	Value int64
	// Bit reports whether Value is a single bit extracted from a
	// bitmask.
	Bit bool
}

func (e *DecodeError) Error() string {
	if e.Bit {
		return fmt.Sprintf("bit 0x%x is not a member of enumeration %s", e.Value, e.Enum)
	}
	return fmt.Sprintf("value %d is not a member of enumeration %s", e.Value, e.Enum)
}
