package archtab

import "errors"

// Error kinds reported by the packages of this module. Call sites wrap these
// with fmt.Errorf("%w: …") to add source location and names; test with
// errors.Is.
var (
	// ErrMalformedTable is returned when the table text violates the layout:
	// no usable column rule, data before the rule, a missing header, an empty
	// name cell, a row with the wrong number of cells, or a cell glyph outside
	// the conventions. Parsing stops at the first violation.
	ErrMalformedTable = errors.New("malformed table")

	// ErrDuplicateName is returned when two architectures or two features
	// carry the same name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrIndexOutOfRange is returned by matrix accessors for positions
	// outside the matrix dimensions.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownArchitecture is returned by queries for an architecture name
	// not present in the table.
	ErrUnknownArchitecture = errors.New("unknown architecture")

	// ErrUnknownFeature is returned by queries for a feature name not present
	// in the table.
	ErrUnknownFeature = errors.New("unknown feature")
)
