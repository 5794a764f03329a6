package tcx

import (
	"errors"
	"fmt"
)

// ErrTypeNotDefined is returned when a polymorphic element such as
// Author or Creator is missing the xsi:type attribute that selects
// its concrete shape.
var ErrTypeNotDefined = errors.New("type not defined, but expected")

// UnknownEnumValueError is returned when element text does not match
// any literal of the target closed enumeration.
type UnknownEnumValueError struct {
	Enum  string // the enumeration's name, e.g. "sport"
	Value string // the offending text
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Enum, e.Value)
}
