package models

import (
	"errors"
	"testing"
)

func TestGridFromCells_Retention(t *testing.T) {
	cells := []Cell{
		{Row: 1, Col: 1, Value: "  Product  "},
		{Row: 1, Col: 2, Value: "   "},
		{Row: 1, Col: 3, Value: nil},
		{Row: 2, Col: 1, Value: int64(0)},
		{Row: 2, Col: 2, Value: false},
	}
	g, err := GridFromCells(cells, Bounds{}, FrozenPanes{})
	if err != nil {
		t.Fatalf("GridFromCells failed: %v", err)
	}

	if g.Len() != 3 {
		t.Errorf("Expected 3 retained cells, got %d", g.Len())
	}
	if v := g.ValueAt(1, 1); v != "Product" {
		t.Errorf("Expected trimmed 'Product', got %v", v)
	}
	if v := g.ValueAt(1, 2); v != nil {
		t.Errorf("Blank string should be dropped, got %v", v)
	}
	// Numeric zero and boolean false are retained.
	if v := g.ValueAt(2, 1); v != int64(0) {
		t.Errorf("Expected int64(0) retained, got %v", v)
	}
	if v := g.ValueAt(2, 2); v != false {
		t.Errorf("Expected false retained, got %v", v)
	}
}

func TestGridFromCells_DerivedBounds(t *testing.T) {
	cells := []Cell{
		{Row: 3, Col: 2, Value: "a"},
		{Row: 7, Col: 5, Value: "b"},
	}
	g, err := GridFromCells(cells, Bounds{}, FrozenPanes{})
	if err != nil {
		t.Fatalf("GridFromCells failed: %v", err)
	}
	want := Bounds{MinRow: 3, MaxRow: 7, MinCol: 2, MaxCol: 5}
	if g.Bounds() != want {
		t.Errorf("Expected bounds %+v, got %+v", want, g.Bounds())
	}
}

func TestGridFromCells_InvalidBounds(t *testing.T) {
	cells := []Cell{{Row: 1, Col: 1, Value: "a"}}
	_, err := GridFromCells(cells, Bounds{MinRow: 5, MaxRow: 2, MinCol: 1, MaxCol: 1}, FrozenPanes{})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("Expected ErrInvalidBounds, got %v", err)
	}
}

func TestGrid_PopulatedRowsAndCols(t *testing.T) {
	cells := []Cell{
		{Row: 2, Col: 3, Value: "a"},
		{Row: 2, Col: 1, Value: "b"},
		{Row: 5, Col: 2, Value: "c"},
	}
	g, err := GridFromCells(cells, Bounds{}, FrozenPanes{})
	if err != nil {
		t.Fatalf("GridFromCells failed: %v", err)
	}

	rows := g.PopulatedRows()
	if len(rows) != 2 || rows[0] != 2 || rows[1] != 5 {
		t.Errorf("Expected populated rows [2 5], got %v", rows)
	}
	cols := g.ColsInRow(2)
	if len(cols) != 2 || cols[0] != 1 || cols[1] != 3 {
		t.Errorf("Expected sorted cols [1 3], got %v", cols)
	}
}

func TestGrid_CountRegion_RunAware(t *testing.T) {
	cells := []Cell{
		{Row: 1, Col: 1, Value: "label"},
		{Row: 1, Col: 2, Value: 1.5, Run: 4},
		{Row: 2, Col: 1, Value: true},
		{Row: 2, Col: 2, Value: int64(7)},
	}
	g, err := GridFromCells(cells, Bounds{}, FrozenPanes{})
	if err != nil {
		t.Fatalf("GridFromCells failed: %v", err)
	}

	region := Region{StartRow: 1, EndRow: 2, StartCol: 1, EndCol: 6}
	total, numeric := g.CountRegion(region)
	if total != 7 {
		t.Errorf("Expected total 7 (run expanded), got %d", total)
	}
	// Booleans are not numeric.
	if numeric != 5 {
		t.Errorf("Expected numeric 5, got %d", numeric)
	}
}

func TestGrid_RunPresenceOnlyAtStart(t *testing.T) {
	cells := []Cell{{Row: 1, Col: 2, Value: "x", Run: 3}}
	g, err := GridFromCells(cells, Bounds{}, FrozenPanes{})
	if err != nil {
		t.Fatalf("GridFromCells failed: %v", err)
	}

	if _, ok := g.CellAt(1, 2); !ok {
		t.Error("Run should be present at its starting column")
	}
	if _, ok := g.CellAt(1, 3); ok {
		t.Error("Run must not be expanded into per-column entries")
	}
	if _, ok := g.CellAt(1, 4); ok {
		t.Error("Run must not be expanded into per-column entries")
	}
}

func TestGrid_WithFrozen(t *testing.T) {
	g, err := GridFromCells([]Cell{{Row: 1, Col: 1, Value: "a"}}, Bounds{}, FrozenPanes{})
	if err != nil {
		t.Fatalf("GridFromCells failed: %v", err)
	}
	g2 := g.WithFrozen(FrozenPanes{Rows: 2})
	if g.Frozen().Rows != 0 {
		t.Error("Original grid hint must stay unchanged")
	}
	if g2.Frozen().Rows != 2 {
		t.Errorf("Expected frozen rows 2, got %d", g2.Frozen().Rows)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{"  hi  ", "hi"},
		{int64(42), "42"},
		{3.25, "3.25"},
		{true, "true"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.input); got != tt.expected {
			t.Errorf("FormatValue(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
