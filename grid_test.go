package vtable

import (
	"reflect"
	"testing"
)

func TestGrid_Shape(t *testing.T) {
	table := mustNew(t, []string{"host", "cpu", "memory"}, []string{"web-1", "web-2"})
	if err := table.Set("cpu", "web-2", "82%"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got := table.Grid()
	want := Grid{
		Headers: []string{"host", "cpu", "memory"},
		Rows: [][]string{
			{"web-1", "", ""},
			{"web-2", "82%", ""},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Grid = %+v, want %+v", got, want)
	}
}

func TestGrid_Placeholder(t *testing.T) {
	table := mustNew(t, []string{"host", "cpu"}, []string{"web-1"})

	got := table.Grid(WithPlaceholder("-"))
	if got.Rows[0][1] != "-" {
		t.Errorf("absent cell = %q, want %q", got.Rows[0][1], "-")
	}
}

func TestGrid_NonStringValues(t *testing.T) {
	table, err := New[int]([]string{"host", "requests"}, []string{"web-1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := table.Set("requests", "web-1", 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got := table.Grid()
	if got.Rows[0][1] != "42" {
		t.Errorf("formatted cell = %q, want %q", got.Rows[0][1], "42")
	}
}
