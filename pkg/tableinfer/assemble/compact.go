package assemble

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/resolve"
)

// Compact assembles a table without materializing cell maps: per-axis
// and aggregate counts only, run-length aware, plus title detection.
// When a title occupies the region's first row the region is shifted
// down one row to exclude it; headers are resolved against the
// shifted region. A title strictly above the region needs no shift.
func Compact(g *models.Grid, id string, region models.Region) models.Table {
	title, titleRow := detectTitle(g, region)
	if title != "" && titleRow == region.StartRow {
		region.StartRow++
	}

	hi := resolve.Headers(region, frozenHint(g, region))

	t := models.Table{
		ID:     id,
		Title:  title,
		Region: region,
		Header: hi,
		Meta:   models.Metadata{DetectionMethod: region.Method},
	}
	if region.Empty() {
		return t
	}

	for col := region.StartCol; col <= region.EndCol; col++ {
		t.Columns = append(t.Columns, models.Column{
			Index:     col,
			Label:     resolve.CompactColumnLabel(g, hi.HeaderRows, col),
			IsHeader:  hi.HasHeaderCol(col),
			CellCount: countColumn(g, region, col),
		})
	}

	for row := region.StartRow; row <= region.EndRow; row++ {
		label := resolve.CompactRowLabel(g, hi.HeaderCols, row)
		t.Rows = append(t.Rows, models.Row{
			Index:     row,
			Label:     label,
			IsHeader:  hi.HasHeaderRow(row),
			CellCount: countRow(g, region, row),
		})
	}

	t.Meta.CellCount, t.Meta.NumericCellCount = g.CountRegion(region)
	return t
}

// countColumn counts populated cells in one column of the region.
// A run counts with its full length at its starting column.
func countColumn(g *models.Grid, region models.Region, col int) int {
	count := 0
	for row := region.StartRow; row <= region.EndRow; row++ {
		if c, ok := g.CellAt(row, col); ok {
			count += c.Span()
		}
	}
	return count
}

// countRow counts populated cells in one row of the region,
// run-length aware.
func countRow(g *models.Grid, region models.Region, row int) int {
	count := 0
	for _, col := range g.ColsInRow(row) {
		if col < region.StartCol || col > region.EndCol {
			continue
		}
		if c, ok := g.CellAt(row, col); ok {
			count += c.Span()
		}
	}
	return count
}
