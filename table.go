package vtable

import (
	"log/slog"
)

// cellKey addresses a single cell by its declared labels.
type cellKey struct {
	column string
	row    string
}

// Table is an in-memory 2D table whose cells are addressed by a
// (column label, row label) pair instead of numeric indexes.
//
// The first declared column label is reserved as the row-header caption: it
// appears in exports as the heading above the row labels but is never a
// valid target for Get/Set/FillColumn. All other columns crossed with all
// rows form the addressable cells, which start out absent.
//
// The schema (both label sequences) is fixed at construction. Cell values
// may be overwritten any number of times. A Table is not safe for
// concurrent use; callers sharing an instance across goroutines must
// synchronize externally.
type Table[V any] struct {
	columns []string // declaration order; columns[0] is the row-header caption
	rows    []string
	colIdx  map[string]int
	rowIdx  map[string]int
	cells   map[cellKey]V
	logger  *slog.Logger
}

// Option configures a Table at construction time.
type Option[V any] func(*Table[V])

// WithLogger sets the logger used for debug-level mutation logging.
// Defaults to slog.Default().
func WithLogger[V any](logger *slog.Logger) Option[V] {
	return func(t *Table[V]) {
		t.logger = logger
	}
}

// New creates a table from the declared column and row labels.
//
// columns must be non-empty and duplicate-free; its first element is
// reserved as the row-header caption. rows must be non-empty and
// duplicate-free. Violations return a *SchemaError. Duplicate labels are
// rejected on both axes rather than silently collapsed.
func New[V any](columns, rows []string, opts ...Option[V]) (*Table[V], error) {
	if len(columns) == 0 {
		return nil, NewSchemaError(AxisColumn, "no column labels declared")
	}
	if len(rows) == 0 {
		return nil, NewSchemaError(AxisRow, "no row labels declared")
	}

	colIdx := make(map[string]int, len(columns))
	for i, label := range columns {
		if _, dup := colIdx[label]; dup {
			return nil, &SchemaError{Axis: AxisColumn, Label: label, Reason: "duplicate"}
		}
		colIdx[label] = i
	}

	rowIdx := make(map[string]int, len(rows))
	for i, label := range rows {
		if _, dup := rowIdx[label]; dup {
			return nil, &SchemaError{Axis: AxisRow, Label: label, Reason: "duplicate"}
		}
		rowIdx[label] = i
	}

	t := &Table[V]{
		columns: append([]string(nil), columns...),
		rows:    append([]string(nil), rows...),
		colIdx:  colIdx,
		rowIdx:  rowIdx,
		cells:   make(map[cellKey]V),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t, nil
}

// checkDataColumn validates a column label used as a data target.
func (t *Table[V]) checkDataColumn(column string) error {
	if column == t.columns[0] {
		return &UnknownLabelError{Axis: AxisColumn, Label: column, Reserved: true}
	}
	if _, ok := t.colIdx[column]; !ok {
		return &UnknownLabelError{Axis: AxisColumn, Label: column}
	}
	return nil
}

func (t *Table[V]) checkRow(row string) error {
	if _, ok := t.rowIdx[row]; !ok {
		return &UnknownLabelError{Axis: AxisRow, Label: row}
	}
	return nil
}

// Get returns the current value of the addressed cell, or the zero value of
// V when the cell was never set. Unknown labels and the reserved row-header
// column return an *UnknownLabelError.
func (t *Table[V]) Get(column, row string) (V, error) {
	v, _, err := t.Lookup(column, row)
	return v, err
}

// Lookup is Get plus a presence report: ok is false when the cell was never
// set (or was cleared), letting callers distinguish an absent cell from a
// stored zero value.
func (t *Table[V]) Lookup(column, row string) (V, bool, error) {
	var zero V
	if err := t.checkDataColumn(column); err != nil {
		return zero, false, err
	}
	if err := t.checkRow(row); err != nil {
		return zero, false, err
	}
	v, ok := t.cells[cellKey{column: column, row: row}]
	if !ok {
		return zero, false, nil
	}
	return v, true, nil
}

// Set overwrites the addressed cell's value. Label constraints are the same
// as Get.
func (t *Table[V]) Set(column, row string, value V) error {
	if err := t.checkDataColumn(column); err != nil {
		return err
	}
	if err := t.checkRow(row); err != nil {
		return err
	}
	t.cells[cellKey{column: column, row: row}] = value
	t.logger.Debug("cell set", "column", column, "row", row)
	return nil
}

// Clear returns the addressed cell to the absent state. Clearing a cell
// that is already absent is a no-op.
func (t *Table[V]) Clear(column, row string) error {
	if err := t.checkDataColumn(column); err != nil {
		return err
	}
	if err := t.checkRow(row); err != nil {
		return err
	}
	delete(t.cells, cellKey{column: column, row: row})
	t.logger.Debug("cell cleared", "column", column, "row", row)
	return nil
}

// FillColumn sets every row's cell in the given column to value,
// overwriting existing values. The column must be declared and not the
// reserved row-header column.
func (t *Table[V]) FillColumn(column string, value V) error {
	if err := t.checkDataColumn(column); err != nil {
		return err
	}
	for _, row := range t.rows {
		t.cells[cellKey{column: column, row: row}] = value
	}
	t.logger.Debug("column filled", "column", column, "rows", len(t.rows))
	return nil
}

// Columns returns the declared column labels in declaration order. The
// first element is the reserved row-header caption.
func (t *Table[V]) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Rows returns the declared row labels in declaration order.
func (t *Table[V]) Rows() []string {
	return append([]string(nil), t.rows...)
}

// Caption returns the reserved row-header caption (the first declared
// column label).
func (t *Table[V]) Caption() string {
	return t.columns[0]
}

// RowCells returns the row's values in column declaration order, excluding
// the reserved row-header column. Absent cells yield the zero value of V.
func (t *Table[V]) RowCells(row string) ([]V, error) {
	if err := t.checkRow(row); err != nil {
		return nil, err
	}
	out := make([]V, 0, len(t.columns)-1)
	for _, column := range t.columns[1:] {
		out = append(out, t.cells[cellKey{column: column, row: row}])
	}
	return out, nil
}

// Len returns the addressable dimensions: the number of data columns
// (excluding the reserved row-header column) and the number of rows.
func (t *Table[V]) Len() (cols, rows int) {
	return len(t.columns) - 1, len(t.rows)
}
