package vtable

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/itchyny/gojq"
)

// Query runs a jq expression against the table's document form
// ({"columns": [...], "rows": [...], "cells": {row: {column: value}}}) and
// returns the produced values.
//
// For example, `.cells["2"].B` reads one cell and `.rows[]` streams the
// row labels.
func (t *Table[V]) Query(expr string) ([]any, error) {
	doc, err := t.documentValue()
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	var results []any
	iter := code.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %w", queryErr)
		}
		results = append(results, v)
	}
	return results, nil
}

// ExtractPath evaluates a JSONPath expression against the table's document
// form and returns the matched value. A missing leading "$" is supplied, so
// both "$.cells" and "cells" address the cells map.
func (t *Table[V]) ExtractPath(path string) (any, error) {
	normalized := normalizePath(path)
	if normalized == "" {
		return nil, fmt.Errorf("empty path")
	}

	doc, err := t.documentValue()
	if err != nil {
		return nil, err
	}

	value, err := jsonpath.Get(normalized, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	return value, nil
}

func normalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(trimmed, "$"), strings.HasPrefix(trimmed, "@"):
		// keep as-is
	case strings.HasPrefix(trimmed, "."), strings.HasPrefix(trimmed, "["):
		trimmed = "$" + trimmed
	default:
		trimmed = "$." + trimmed
	}
	return trimmed
}
