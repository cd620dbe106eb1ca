package vtable

import (
	"errors"
	"fmt"
)

// Axis identifies which label axis an error refers to.
type Axis string

const (
	// AxisColumn refers to the column label axis.
	AxisColumn Axis = "column"
	// AxisRow refers to the row label axis.
	AxisRow Axis = "row"
)

// SchemaError represents an invalid table schema at construction time:
// an empty label sequence, a duplicate label, or malformed load input.
// Schema errors are not retried; the caller must fix the input and
// reconstruct the table.
type SchemaError struct {
	Axis   Axis
	Label  string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("invalid schema: %s %s label %q", e.Reason, e.Axis, e.Label)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid schema: %s: %v", e.Reason, e.Err)
	}
	return "invalid schema: " + e.Reason
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError creates a SchemaError for a whole-axis problem such as an
// empty label sequence.
func NewSchemaError(axis Axis, reason string) *SchemaError {
	return &SchemaError{Axis: axis, Reason: reason}
}

// WrapSchemaError wraps an underlying parse error (for example from the CSV
// reader) with schema context.
func WrapSchemaError(err error, reason string) *SchemaError {
	return &SchemaError{Reason: reason, Err: err}
}

// UnknownLabelError represents an addressing failure: a column or row label
// that is not part of the declared schema, or the reserved row-header column
// used as a data target. It indicates a usage error by the caller and is not
// retried.
type UnknownLabelError struct {
	Axis     Axis
	Label    string
	Reserved bool
}

func (e *UnknownLabelError) Error() string {
	if e.Reserved {
		return fmt.Sprintf("column %q is reserved for row headers", e.Label)
	}
	return fmt.Sprintf("unknown %s label %q", e.Axis, e.Label)
}

// Type checkers
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

func IsUnknownLabelError(err error) bool {
	var e *UnknownLabelError
	return errors.As(err, &e)
}
