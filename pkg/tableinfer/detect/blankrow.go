package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

const (
	// A gap of this many blank rows always splits.
	hardGapRows = 4
	// Profile differences that mark two rows as materially different.
	boundaryColCountDelta = 2
)

// blankRowSeparation splits the sheet at blank-row gaps, with
// content-aware tie-breaking for short gaps: a 1-3 row gap followed by
// a section-header-like continuation of the same table does not
// split, unless the row after the gap is a date header, which always
// does.
type blankRowSeparation struct{}

func (blankRowSeparation) Name() string {
	return models.MethodBlankRow
}

func (blankRowSeparation) Detect(g *models.Grid, _ Config) []models.Region {
	rows := g.PopulatedRows()
	if len(rows) < 2 {
		return nil
	}

	segments := [][]int{{rows[0]}}
	for i := 1; i < len(rows); i++ {
		gap := rows[i] - rows[i-1] - 1
		if gap > 0 && splitsAtGap(g, gap, rows[i-1], rows[i]) {
			segments = append(segments, nil)
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], rows[i])
	}

	if len(segments) < 2 {
		return nil
	}
	return segmentsToRegions(g, segments, models.MethodBlankRow)
}

// splitsAtGap decides whether a blank-row gap is a table boundary.
// Precedence: a hard gap always splits; a date header after the gap
// always splits; otherwise a short gap splits only when the rows on
// either side differ materially (a section header within the same
// table does not).
func splitsAtGap(g *models.Grid, gap, before, after int) bool {
	if gap >= hardGapRows {
		return true
	}
	if isTemporalHeaderRow(g, after) {
		return true
	}
	return differsMaterially(profileRow(g, before), profileRow(g, after))
}

// differsMaterially compares the shape of the rows bracketing a gap:
// a large column-count delta, a numeric/text majority flip, or text
// labels appearing where the previous row was numeric.
func differsMaterially(before, after rowProfile) bool {
	delta := before.colCount - after.colCount
	if delta < 0 {
		delta = -delta
	}
	if delta > boundaryColCountDelta {
		return true
	}
	if before.mostlyNumeric() && after.mostlyText() {
		return true
	}
	if before.mostlyText() && after.mostlyNumeric() {
		return true
	}
	// The row after the gap introduces text labels where the row
	// before was numeric.
	if before.numericCount > 0 && before.textCount == 0 && after.textCount > 0 {
		return true
	}
	return false
}
