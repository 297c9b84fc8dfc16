package detect

import (
	"testing"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

func TestContinuity_ColumnCountBreak(t *testing.T) {
	g := mustGrid(t, flatten(
		numRow(1, 1, 1, 2, 3, 4, 5, 6, 7, 8),
		numRow(2, 1, 9, 10, 11, 12, 13, 14, 15, 16),
		numRow(3, 1, 1, 2),
		numRow(4, 1, 3, 4),
	), models.FrozenPanes{})

	s := columnContinuity{}
	regions := s.Detect(g, DefaultConfig())
	if len(regions) != 2 {
		t.Fatalf("Expected a break at the column-count change, got %d regions", len(regions))
	}
	if regions[0].EndRow != 2 || regions[1].StartRow != 3 {
		t.Errorf("Break must fall between rows 2 and 3, got %+v", regions)
	}
	for _, r := range regions {
		if r.Method != models.MethodColumnContinuity {
			t.Errorf("Expected method %q, got %q", models.MethodColumnContinuity, r.Method)
		}
	}
}

func TestContinuity_NumericRatioBreak(t *testing.T) {
	g := mustGrid(t, flatten(
		numRow(1, 1, 1, 2, 3, 4),
		numRow(2, 1, 5, 6, 7, 8),
		append(textRow(3, "a", "b", "c"), numRow(3, 4, 9)...),
		append(textRow(4, "d", "e", "f"), numRow(4, 4, 10)...),
	), models.FrozenPanes{})

	s := columnContinuity{}
	regions := s.Detect(g, DefaultConfig())
	if len(regions) != 2 {
		t.Fatalf("Expected a break at the numeric-ratio flip, got %d regions", len(regions))
	}
}

func TestContinuity_StableShapeYieldsNothing(t *testing.T) {
	g := mustGrid(t, flatten(
		numRow(1, 1, 1, 2, 3),
		numRow(2, 1, 4, 5, 6),
		numRow(3, 1, 7, 8, 9),
	), models.FrozenPanes{})

	s := columnContinuity{}
	if regions := s.Detect(g, DefaultConfig()); regions != nil {
		t.Errorf("Stable shape must fall through, got %v", regions)
	}
}

func TestContinuity_IgnoresHeaderRows(t *testing.T) {
	// The all-text header row must not register as a shape break.
	g := mustGrid(t, flatten(
		textRow(1, "A", "B", "C"),
		numRow(2, 1, 1, 2, 3),
		numRow(3, 1, 4, 5, 6),
	), models.FrozenPanes{})

	s := columnContinuity{}
	if regions := s.Detect(g, DefaultConfig()); regions != nil {
		t.Errorf("Header row must be ignored, got %v", regions)
	}
}
