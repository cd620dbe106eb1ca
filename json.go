package vtable

import (
	"encoding/json"
)

// tableDocument is the JSON document form of a table: the declared label
// sequences plus a nested cells map keyed by row label, then column label.
// Absent cells are omitted, so absence survives a round-trip.
type tableDocument[V any] struct {
	Columns []string                `json:"columns"`
	Rows    []string                `json:"rows"`
	Cells   map[string]map[string]V `json:"cells"`
}

// MarshalJSON encodes the table in its document form. Declaration order is
// preserved through the columns and rows arrays.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	doc := tableDocument[V]{
		Columns: t.columns,
		Rows:    t.rows,
		Cells:   make(map[string]map[string]V),
	}
	for key, value := range t.cells {
		byColumn, ok := doc.Cells[key.row]
		if !ok {
			byColumn = make(map[string]V)
			doc.Cells[key.row] = byColumn
		}
		byColumn[key.column] = value
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reconstructs a table from its document form, validating the
// schema and every addressed cell. Malformed schemas return a *SchemaError;
// cells addressing undeclared labels return an *UnknownLabelError.
func (t *Table[V]) UnmarshalJSON(data []byte) error {
	var doc tableDocument[V]
	if err := json.Unmarshal(data, &doc); err != nil {
		return WrapSchemaError(err, "malformed table document")
	}

	nt, err := New[V](doc.Columns, doc.Rows)
	if err != nil {
		return err
	}
	for row, byColumn := range doc.Cells {
		for column, value := range byColumn {
			if err := nt.Set(column, row, value); err != nil {
				return err
			}
		}
	}

	*t = *nt
	return nil
}

// documentValue returns the table's document form as plain maps and slices,
// the shape jq and JSONPath expressions operate on.
func (t *Table[V]) documentValue() (any, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
