// Package vtable provides an in-memory 2D table whose cells are addressed
// by a (column label, row label) pair instead of numeric indexes, similar
// to referencing a spreadsheet cell by its column letter and row number.
//
// A table is constructed once with a fixed schema. The first column label
// is reserved as the row-header caption: it heads the row-label column in
// exports and is never a valid data target.
//
//	t, err := vtable.New[string](
//	    []string{"host", "cpu", "memory"},
//	    []string{"web-1", "web-2"},
//	)
//	if err != nil {
//	    return err
//	}
//	_ = t.Set("cpu", "web-1", "82%")
//	_ = t.FillColumn("memory", "ok")
//	fmt.Println(t.Export("\t"))
//
// # Exporting
//
// Export produces delimiter-separated text. Exporter writes to an
// io.Writer in one of the Format variants (text, csv, json, ndjson, yaml),
// Render produces an aligned human-oriented view, and MarshalJSON /
// UnmarshalJSON round-trip a table through its JSON document form.
// LoadFlat, LoadCSV and FromGrid rebuild a table from previously exported
// content.
//
// # Queries
//
// Query (jq) and ExtractPath (JSONPath) evaluate expressions against the
// table's document form for ad hoc inspection.
//
// # Concurrency
//
// A Table is not safe for concurrent use. Callers sharing an instance
// across goroutines must synchronize externally.
package vtable
