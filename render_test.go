package vtable

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender_PlainAlignment(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	table := mustNew(t, []string{"host", "cpu", "memory"}, []string{"web-1", "web-2"})
	if err := table.Set("cpu", "web-1", "82%"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var buf bytes.Buffer
	if err := table.Render(&buf, WithColor(ColorNever)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ColorNever output contains escape sequences: %q", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "host") {
		t.Errorf("header line = %q", lines[0])
	}

	// Columns are aligned: "cpu" starts at the same offset in every line.
	headerIdx := strings.Index(lines[0], "cpu")
	cellIdx := strings.Index(lines[1], "82%")
	if headerIdx < 0 || cellIdx < 0 || headerIdx != cellIdx {
		t.Errorf("columns not aligned:\n%s", out)
	}
}

func TestRender_ColorAlways(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	table := mustNew(t, []string{"host", "cpu"}, []string{"web-1"})

	var buf bytes.Buffer
	if err := table.Render(&buf, WithColor(ColorAlways)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(buf.String(), "\x1b[1m") {
		t.Errorf("ColorAlways output missing bold header: %q", buf.String())
	}
}

func TestRender_NoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	table := mustNew(t, []string{"host", "cpu"}, []string{"web-1"})

	var buf bytes.Buffer
	if err := table.Render(&buf, WithColor(ColorAlways)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("NO_COLOR output contains escape sequences: %q", buf.String())
	}
}

func TestRender_Placeholder(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	table := mustNew(t, []string{"host", "cpu"}, []string{"web-1"})

	var buf bytes.Buffer
	err := table.Render(&buf,
		WithColor(ColorNever),
		WithRenderExportOptions(WithPlaceholder("-")),
	)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(buf.String(), "-") {
		t.Errorf("placeholder not rendered: %q", buf.String())
	}
}
