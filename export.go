package vtable

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents an export format type.
type Format string

const (
	// FormatText is delimiter-separated text (default).
	FormatText Format = "text"
	// FormatCSV is RFC 4180 CSV.
	FormatCSV Format = "csv"
	// FormatJSON is the pretty-printed JSON document form.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON, one object per row.
	FormatNDJSON Format = "ndjson"
	// FormatYAML is the YAML grid form.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
// Returns error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid format (expected text|csv|json|ndjson|jsonl|yaml)")
	}
}

type exportOptions struct {
	headers     bool
	placeholder string
	newline     string
}

// ExportOption adjusts delimited-text export and grid materialization.
type ExportOption func(*exportOptions)

// WithoutHeaders omits the header line from delimited-text export.
func WithoutHeaders() ExportOption {
	return func(o *exportOptions) {
		o.headers = false
	}
}

// WithPlaceholder sets the string rendered for absent cells.
// Defaults to the empty string.
func WithPlaceholder(s string) ExportOption {
	return func(o *exportOptions) {
		o.placeholder = s
	}
}

// WithNewline sets the line separator for delimited-text export.
// Defaults to "\n".
func WithNewline(s string) ExportOption {
	return func(o *exportOptions) {
		o.newline = s
	}
}

func newExportOptions(opts []ExportOption) exportOptions {
	o := exportOptions{
		headers: true,
		newline: "\n",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Export flattens the table into delimiter-separated text: one header line
// (the row-header caption followed by the column labels), then one line per
// row starting with the row label, all joined by the delimiter. Absent
// cells render as empty string between delimiters.
//
// Values are not escaped; if a value contains the delimiter the output is
// ambiguous. Use FormatCSV export when that matters.
//
// Output depends only on current cell contents and declared label order,
// so repeated calls with no intervening mutation yield identical strings.
func (t *Table[V]) Export(delimiter string, opts ...ExportOption) string {
	o := newExportOptions(opts)
	g := t.Grid(opts...)

	var b strings.Builder
	if o.headers {
		b.WriteString(strings.Join(g.Headers, delimiter))
		b.WriteString(o.newline)
	}
	lines := make([]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		lines = append(lines, strings.Join(row, delimiter))
	}
	b.WriteString(strings.Join(lines, o.newline))
	return b.String()
}

// Exporter writes tables to an io.Writer in a configured format.
type Exporter[V any] struct {
	w      io.Writer
	format Format
	opts   []ExportOption
}

// NewExporter creates an Exporter that writes to w in the given format.
// Export options apply to the text, CSV and YAML forms.
func NewExporter[V any](w io.Writer, format Format, opts ...ExportOption) *Exporter[V] {
	return &Exporter[V]{
		w:      w,
		format: format,
		opts:   opts,
	}
}

// Export writes the table in the exporter's format.
func (e *Exporter[V]) Export(t *Table[V]) error {
	switch e.format {
	case FormatText:
		return e.exportText(t)
	case FormatCSV:
		return e.exportCSV(t)
	case FormatJSON:
		return e.exportJSON(t)
	case FormatNDJSON:
		return e.exportNDJSON(t)
	case FormatYAML:
		return e.exportYAML(t)
	default:
		return fmt.Errorf("unsupported format: %s", e.format)
	}
}

// exportText writes the tab-delimited text form with a trailing newline.
func (e *Exporter[V]) exportText(t *Table[V]) error {
	_, err := io.WriteString(e.w, t.Export("\t", e.opts...)+"\n")
	return err
}

// exportCSV writes the grid form through encoding/csv, which handles
// quoting of values containing commas, quotes or newlines.
func (e *Exporter[V]) exportCSV(t *Table[V]) error {
	g := t.Grid(e.opts...)
	w := csv.NewWriter(e.w)
	if err := w.Write(g.Headers); err != nil {
		return err
	}
	for _, row := range g.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// exportJSON writes the pretty-printed JSON document form.
func (e *Exporter[V]) exportJSON(t *Table[V]) error {
	enc := json.NewEncoder(e.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// rowDoc is the per-row object emitted by NDJSON export.
type rowDoc[V any] struct {
	Row   string       `json:"row"`
	Cells map[string]V `json:"cells"`
}

// exportNDJSON writes one JSON object per row: the row label plus a cells
// map holding that row's set cells. Absent cells are omitted.
func (e *Exporter[V]) exportNDJSON(t *Table[V]) error {
	enc := json.NewEncoder(e.w)
	enc.SetEscapeHTML(false)

	for _, row := range t.rows {
		doc := rowDoc[V]{Row: row, Cells: make(map[string]V)}
		for _, column := range t.columns[1:] {
			if v, ok := t.cells[cellKey{column: column, row: row}]; ok {
				doc.Cells[column] = v
			}
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return nil
}

// exportYAML writes the grid form as YAML.
func (e *Exporter[V]) exportYAML(t *Table[V]) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(t.Grid(e.opts...))
}
