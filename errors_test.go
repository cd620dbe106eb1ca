package vtable

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSchemaError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *SchemaError
		want string
	}{
		{
			name: "whole axis",
			err:  NewSchemaError(AxisColumn, "no column labels declared"),
			want: `invalid schema: no column labels declared`,
		},
		{
			name: "duplicate label",
			err:  &SchemaError{Axis: AxisRow, Label: "web-1", Reason: "duplicate"},
			want: `invalid schema: duplicate row label "web-1"`,
		},
		{
			name: "wrapped parse error",
			err:  WrapSchemaError(errors.New("boom"), "malformed CSV content"),
			want: `invalid schema: malformed CSV content: boom`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSchemaError_Unwrap(t *testing.T) {
	underlying := errors.New("record on line 2: wrong number of fields")
	err := WrapSchemaError(underlying, "malformed CSV content")

	if !errors.Is(err, underlying) {
		t.Error("wrapped error not reachable via errors.Is")
	}
}

func TestUnknownLabelError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *UnknownLabelError
		want string
	}{
		{
			name: "unknown column",
			err:  &UnknownLabelError{Axis: AxisColumn, Label: "disk"},
			want: `unknown column label "disk"`,
		},
		{
			name: "unknown row",
			err:  &UnknownLabelError{Axis: AxisRow, Label: "web-9"},
			want: `unknown row label "web-9"`,
		},
		{
			name: "reserved column",
			err:  &UnknownLabelError{Axis: AxisColumn, Label: "host", Reserved: true},
			want: `column "host" is reserved for row headers`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeCheckers(t *testing.T) {
	schemaErr := NewSchemaError(AxisColumn, "no column labels declared")
	labelErr := &UnknownLabelError{Axis: AxisRow, Label: "web-9"}

	if !IsSchemaError(schemaErr) {
		t.Error("IsSchemaError(schemaErr) = false")
	}
	if IsSchemaError(labelErr) {
		t.Error("IsSchemaError(labelErr) = true")
	}
	if !IsUnknownLabelError(labelErr) {
		t.Error("IsUnknownLabelError(labelErr) = false")
	}
	if IsUnknownLabelError(schemaErr) {
		t.Error("IsUnknownLabelError(schemaErr) = true")
	}

	// Checkers see through wrapping.
	wrapped := fmt.Errorf("loading snapshot: %w", labelErr)
	if !IsUnknownLabelError(wrapped) {
		t.Error("IsUnknownLabelError does not unwrap")
	}
}

func TestErrorFields(t *testing.T) {
	table := mustNew(t, []string{"host", "cpu"}, []string{"web-1"})

	_, err := table.Get("disk", "web-1")
	var labelErr *UnknownLabelError
	if !errors.As(err, &labelErr) {
		t.Fatalf("expected *UnknownLabelError, got %T", err)
	}
	if labelErr.Axis != AxisColumn || labelErr.Label != "disk" || labelErr.Reserved {
		t.Errorf("unexpected fields: %+v", labelErr)
	}

	_, err = table.Get("host", "web-1")
	if !errors.As(err, &labelErr) {
		t.Fatalf("expected *UnknownLabelError, got %T", err)
	}
	if !labelErr.Reserved {
		t.Error("reserved column error not flagged as reserved")
	}
	if !strings.Contains(err.Error(), "reserved") {
		t.Errorf("reserved column message missing hint: %q", err.Error())
	}

	_, newErr := New[string]([]string{"host", "cpu", "cpu"}, []string{"web-1"})
	var schemaErr *SchemaError
	if !errors.As(newErr, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T", newErr)
	}
	if schemaErr.Axis != AxisColumn || schemaErr.Label != "cpu" {
		t.Errorf("unexpected fields: %+v", schemaErr)
	}
}
