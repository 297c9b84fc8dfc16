package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

const (
	// Rows scanned from the top of the sheet for date header rows.
	temporalScanRows = 5
	// Blank-row gap that ends a temporal table.
	temporalBreakGap = 2
)

// temporalHeaders detects tables anchored by date header rows (ISO
// dates or "Month N" cells) in the first rows of the sheet. Each
// qualifying row starts a table extending to the next qualifying row
// or an unresolved gap.
type temporalHeaders struct{}

func (temporalHeaders) Name() string {
	return models.MethodTemporal
}

func (temporalHeaders) Detect(g *models.Grid, _ Config) []models.Region {
	rows := g.PopulatedRows()
	if len(rows) == 0 {
		return nil
	}

	scanLimit := g.Bounds().MinRow + temporalScanRows - 1
	var starts []int
	for _, row := range rows {
		if row > scanLimit {
			break
		}
		if isTemporalHeaderRow(g, row) {
			starts = append(starts, row)
		}
	}
	if len(starts) == 0 {
		return nil
	}

	var out []models.Region
	for i, start := range starts {
		end := tableEnd(rows, start, nextStart(starts, i))
		if r, ok := regionForRows(g, start, end, models.MethodTemporal); ok {
			out = append(out, r)
		}
	}
	return out
}

func nextStart(starts []int, i int) int {
	if i+1 < len(starts) {
		return starts[i+1]
	}
	return -1
}

// tableEnd walks the populated rows from start until the next
// qualifying header row or a gap of temporalBreakGap or more.
func tableEnd(rows []int, start, next int) int {
	end := start
	for _, row := range rows {
		if row <= start {
			continue
		}
		if next > 0 && row >= next {
			break
		}
		if row-end-1 >= temporalBreakGap {
			break
		}
		end = row
	}
	return end
}
