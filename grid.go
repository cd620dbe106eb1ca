package vtable

import "fmt"

// Grid is a fully materialized string snapshot of a table.
//
// Headers holds the reserved row-header caption followed by the data column
// labels. Each entry of Rows starts with its row label followed by that
// row's cell values in column declaration order. All exporting and
// rendering flows through this form.
type Grid struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Grid materializes the table. Non-string values are formatted with %v;
// absent cells render as the configured placeholder (empty string unless
// overridden with WithPlaceholder).
func (t *Table[V]) Grid(opts ...ExportOption) Grid {
	o := newExportOptions(opts)

	g := Grid{
		Headers: t.Columns(),
		Rows:    make([][]string, 0, len(t.rows)),
	}
	for _, row := range t.rows {
		line := make([]string, 0, len(t.columns))
		line = append(line, row)
		for _, column := range t.columns[1:] {
			v, ok := t.cells[cellKey{column: column, row: row}]
			if !ok {
				line = append(line, o.placeholder)
				continue
			}
			line = append(line, formatCell(v))
		}
		g.Rows = append(g.Rows, line)
	}
	return g
}

// formatCell converts a cell value to its export string form.
func formatCell(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
