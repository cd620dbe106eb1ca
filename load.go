package vtable

import (
	"encoding/csv"
	"strings"
)

// FromGrid builds a table from a materialized grid: the header row supplies
// the column labels (first entry is the row-header caption) and the first
// element of each data row supplies that row's label. It is the inverse of
// Table.Grid.
//
// Rows shorter than the header leave their remaining cells absent. A row
// wider than the header is rejected with a *SchemaError. Empty-string cells
// load as absent, so an exported grid's placeholder cells stay absent after
// a round-trip.
func FromGrid(g Grid, opts ...Option[string]) (*Table[string], error) {
	rowLabels := make([]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		if len(row) == 0 {
			return nil, NewSchemaError(AxisRow, "empty row in grid")
		}
		if len(row) > len(g.Headers) {
			return nil, &SchemaError{Axis: AxisRow, Label: row[0], Reason: "too many cells in"}
		}
		rowLabels = append(rowLabels, row[0])
	}

	t, err := New(g.Headers, rowLabels, opts...)
	if err != nil {
		return nil, err
	}
	for _, row := range g.Rows {
		for i, value := range row[1:] {
			if value == "" {
				continue
			}
			if err := t.Set(g.Headers[i+1], row[0], value); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// LoadFlat parses delimiter-separated text content (as produced by Export)
// back into a table. Lines are split on "\n" with any trailing "\r"
// stripped, so both Unix and Windows line endings load.
func LoadFlat(contents, delimiter string, opts ...Option[string]) (*Table[string], error) {
	var g Grid
	first := true
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			// tolerate a trailing newline
			continue
		}
		cells := strings.Split(line, delimiter)
		if first {
			g.Headers = cells
			first = false
			continue
		}
		g.Rows = append(g.Rows, cells)
	}
	return FromGrid(g, opts...)
}

// LoadCSV parses CSV content into a table using the given field separator.
// Parse failures are wrapped in a *SchemaError.
func LoadCSV(contents string, comma rune, opts ...Option[string]) (*Table[string], error) {
	r := csv.NewReader(strings.NewReader(contents))
	r.Comma = comma
	records, err := r.ReadAll()
	if err != nil {
		return nil, WrapSchemaError(err, "malformed CSV content")
	}
	if len(records) == 0 {
		return nil, NewSchemaError(AxisColumn, "no header row in CSV content")
	}
	return FromGrid(Grid{Headers: records[0], Rows: records[1:]}, opts...)
}
