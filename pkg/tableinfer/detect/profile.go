package detect

import (
	"regexp"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// rowProfile is the shape signature of one populated row, used by the
// blank-row and column-continuity strategies to compare consecutive
// rows.
type rowProfile struct {
	row          int
	colCount     int
	numericCount int
	textCount    int
	span         int
	numericRatio float64
	textRatio    float64
	density      float64
}

// profileRow computes the shape signature for a row. Returns a zero
// profile when the row has no populated cells.
func profileRow(g *models.Grid, row int) rowProfile {
	cols := g.ColsInRow(row)
	p := rowProfile{row: row, colCount: len(cols)}
	if len(cols) == 0 {
		return p
	}
	for _, col := range cols {
		v := g.ValueAt(row, col)
		if models.IsNumeric(v) {
			p.numericCount++
		} else if models.IsText(v) {
			p.textCount++
		}
	}
	p.span = cols[len(cols)-1] - cols[0] + 1
	p.numericRatio = float64(p.numericCount) / float64(p.colCount)
	p.textRatio = float64(p.textCount) / float64(p.colCount)
	p.density = float64(p.colCount) / float64(p.span)
	return p
}

// mostlyNumeric reports whether numeric cells dominate the row.
func (p rowProfile) mostlyNumeric() bool {
	return p.colCount > 0 && p.numericCount > p.textCount
}

// mostlyText reports whether text cells dominate the row.
func (p rowProfile) mostlyText() bool {
	return p.colCount > 0 && p.textCount > p.numericCount
}

var (
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthNumRe = regexp.MustCompile(`(?i)^(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(t(ember)?)?|oct(ober)?|nov(ember)?|dec(ember)?)\.?\s+\d{1,4}$`)
)

// isTemporalValue reports whether a cell value looks like a date
// header: an ISO date (YYYY-MM-DD) or a "Month N" pattern.
func isTemporalValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return isoDateRe.MatchString(s) || monthNumRe.MatchString(s)
}

// temporalCellRatio is the share of non-label cells in a row that
// must look like dates for the row to qualify as a temporal header.
const temporalCellRatio = 0.25

// isTemporalHeaderRow reports whether a row qualifies as a temporal
// header row. The leftmost populated cell is treated as a label and
// excluded from the ratio.
func isTemporalHeaderRow(g *models.Grid, row int) bool {
	cols := g.ColsInRow(row)
	if len(cols) == 0 {
		return false
	}
	candidates := cols
	if len(cols) > 1 {
		candidates = cols[1:]
	}
	matches := 0
	for _, col := range candidates {
		if isTemporalValue(g.ValueAt(row, col)) {
			matches++
		}
	}
	return float64(matches) >= temporalCellRatio*float64(len(candidates)) && matches > 0
}

// regionForRows builds a region over a row span with column bounds
// narrowed to the populated columns in that span.
func regionForRows(g *models.Grid, startRow, endRow int, method string) (models.Region, bool) {
	minCol, maxCol, ok := g.ColRange(startRow, endRow)
	if !ok {
		return models.Region{}, false
	}
	return models.Region{
		StartRow: startRow,
		EndRow:   endRow,
		StartCol: minCol,
		EndCol:   maxCol,
		Method:   method,
	}, true
}

// segmentsToRegions converts boundary-split segments of populated
// rows into trimmed regions.
func segmentsToRegions(g *models.Grid, segments [][]int, method string) []models.Region {
	var out []models.Region
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if r, ok := regionForRows(g, seg[0], seg[len(seg)-1], method); ok {
			out = append(out, r)
		}
	}
	return out
}
