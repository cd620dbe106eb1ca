package vtable

import (
	"bytes"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"
)

// ColorMode determines when Render uses colored output.
type ColorMode int

const (
	// ColorAuto uses the color capabilities detected for the writer.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output regardless of capabilities.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

type renderOptions struct {
	color      ColorMode
	exportOpts []ExportOption
}

// RenderOption adjusts table rendering.
type RenderOption func(*renderOptions)

// WithColor sets the color mode. Defaults to ColorAuto.
func WithColor(mode ColorMode) RenderOption {
	return func(o *renderOptions) {
		o.color = mode
	}
}

// WithRenderExportOptions forwards export options (such as WithPlaceholder)
// to the grid materialization backing the render.
func WithRenderExportOptions(opts ...ExportOption) RenderOption {
	return func(o *renderOptions) {
		o.exportOpts = append(o.exportOpts, opts...)
	}
}

// Render writes a human-oriented view of the table with aligned columns.
// The header line is styled bold when color is enabled. The NO_COLOR
// environment variable (POSIX convention) disables color in any mode.
func (t *Table[V]) Render(w io.Writer, opts ...RenderOption) error {
	o := renderOptions{color: ColorAuto}
	for _, opt := range opts {
		opt(&o)
	}

	g := t.Grid(o.exportOpts...)

	// Align first, style after: escape sequences inside tabwriter cells
	// would skew the computed widths.
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	if _, err := io.WriteString(tw, strings.Join(g.Headers, "\t")+"\n"); err != nil {
		return err
	}
	for _, row := range g.Rows {
		if _, err := io.WriteString(tw, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	out := termenv.NewOutput(w, termenv.WithProfile(renderProfile(o.color)))
	lines := strings.SplitAfter(buf.String(), "\n")
	for i, line := range lines {
		if i == 0 {
			text := strings.TrimSuffix(line, "\n")
			if _, err := io.WriteString(w, out.String(text).Bold().String()+"\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderProfile picks the termenv profile for the requested color mode.
func renderProfile(mode ColorMode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.ANSI256
	default:
		return termenv.ColorProfile()
	}
}
