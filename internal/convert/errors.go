package convert

import (
	"fmt"

	"github.com/LBNL-ETA/opticalc/internal/product"
)

// ValidationError reports nil or structurally malformed input. It signals a
// caller bug and is never worth retrying.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// UnsupportedSubtypeError reports a product subtype outside the closed set
// the layer builder can map to an engine material type.
type UnsupportedSubtypeError struct {
	Subtype product.Subtype
}

func (e *UnsupportedSubtypeError) Error() string {
	return fmt.Sprintf("unsupported subtype: %s", e.Subtype)
}

// UnsupportedCoatedSideError reports a coated-side token outside the closed
// lookup. Empty input and the legacy alias "NA" are not errors; they map to
// NEITHER.
type UnsupportedCoatedSideError struct {
	CoatedSide string
}

func (e *UnsupportedCoatedSideError) Error() string {
	return fmt.Sprintf("unsupported coated side: %s", e.CoatedSide)
}

// MissingOpticalDataError reports a product with no usable optical
// measurement set.
type MissingOpticalDataError struct {
	Reason string
}

func (e *MissingOpticalDataError) Error() string {
	return "missing optical data: " + e.Reason
}

// MissingFieldError attributes an absent or unusable required field to the
// wavelength record it came from. Record is the zero-based index in input
// order.
type MissingFieldError struct {
	Record int
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("wavelength record %d: missing or invalid %q", e.Record, e.Field)
}

// MissingValueError reports a measurement sub-value that was present as a
// key but held nothing coercible to a number (null or empty string).
type MissingValueError struct {
	Record int
	Field  string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("wavelength record %d: no usable value for %q", e.Record, e.Field)
}
