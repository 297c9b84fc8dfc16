package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// Shape-signature deltas beyond which consecutive rows no longer
// belong to the same table.
const (
	continuityColCountDelta     = 5
	continuityNumericRatioDelta = 0.4
	continuitySpanDelta         = 10
	continuityDensityDelta      = 0.3
)

// columnContinuity splits the sheet where the column shape of
// consecutive populated rows changes abruptly: occupied column count,
// numeric ratio, span, or density.
type columnContinuity struct{}

func (columnContinuity) Name() string {
	return models.MethodColumnContinuity
}

func (columnContinuity) Detect(g *models.Grid, _ Config) []models.Region {
	// Only data rows carry a shape signature; all-text rows are
	// header material and must not trigger shape breaks.
	var dataRows []rowProfile
	for _, row := range g.PopulatedRows() {
		p := profileRow(g, row)
		if p.numericCount == 0 && p.mostlyText() {
			continue
		}
		dataRows = append(dataRows, p)
	}
	if len(dataRows) < 2 {
		return nil
	}

	segments := [][]int{{dataRows[0].row}}
	for i := 1; i < len(dataRows); i++ {
		if shapeBreak(dataRows[i-1], dataRows[i]) {
			segments = append(segments, nil)
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], dataRows[i].row)
	}

	if len(segments) < 2 {
		return nil
	}
	return segmentsToRegions(g, segments, models.MethodColumnContinuity)
}

func shapeBreak(a, b rowProfile) bool {
	if absInt(a.colCount-b.colCount) > continuityColCountDelta {
		return true
	}
	if absFloat(a.numericRatio-b.numericRatio) > continuityNumericRatioDelta {
		return true
	}
	if absInt(a.span-b.span) > continuitySpanDelta {
		return true
	}
	if absFloat(a.density-b.density) > continuityDensityDelta {
		return true
	}
	return false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
