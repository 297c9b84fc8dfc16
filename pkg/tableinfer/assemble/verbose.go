// Package assemble combines a region, its header layout, and labels
// into the final Table entity. The verbose variant materializes
// nested per-cell maps; the compact variant only aggregates counts
// and detects titles.
package assemble

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/resolve"
)

// Verbose assembles a table with full nested per-cell maps restricted
// to the region. An empty region yields an empty table.
func Verbose(g *models.Grid, id string, region models.Region, hi models.HeaderInfo) models.Table {
	t := models.Table{
		ID:     id,
		Region: region,
		Header: hi,
		Meta:   models.Metadata{DetectionMethod: region.Method},
	}
	if region.Empty() {
		return t
	}

	frozen := frozenHint(g, region)

	for col := region.StartCol; col <= region.EndCol; col++ {
		column := models.Column{
			Index:    col,
			Label:    resolve.ColumnLabel(g, hi.HeaderRows, col),
			IsHeader: hi.HasHeaderCol(col),
			Cells:    make(map[int]interface{}),
		}
		for row := region.StartRow; row <= region.EndRow; row++ {
			if v := g.ValueAt(row, col); v != nil {
				column.Cells[row] = v
			}
		}
		t.Columns = append(t.Columns, column)
	}

	for row := region.StartRow; row <= region.EndRow; row++ {
		r := models.Row{
			Index:    row,
			IsHeader: hi.HasHeaderRow(row),
			Cells:    make(map[int]interface{}),
		}
		r.Label = resolve.RowLabel(g, hi, frozen, row)
		for col := region.StartCol; col <= region.EndCol; col++ {
			if v := g.ValueAt(row, col); v != nil {
				r.Cells[col] = v
			}
		}
		t.Rows = append(t.Rows, r)
	}

	t.Meta.CellCount, t.Meta.NumericCellCount = countVerbose(g, region)
	return t
}

// countVerbose tallies populated cells in the region for the verbose
// variant; stored entries count once (no run expansion).
func countVerbose(g *models.Grid, region models.Region) (total, numeric int) {
	for row := region.StartRow; row <= region.EndRow; row++ {
		for _, col := range g.ColsInRow(row) {
			if col < region.StartCol || col > region.EndCol {
				continue
			}
			total++
			if models.IsNumeric(g.ValueAt(row, col)) {
				numeric++
			}
		}
	}
	return total, numeric
}

// frozenHint recovers the frozen-pane hint for label building: the
// counts carried on a frozen_panes region win over the grid hint.
func frozenHint(g *models.Grid, region models.Region) models.FrozenPanes {
	if region.FrozenRows > 0 || region.FrozenCols > 0 {
		return models.FrozenPanes{Rows: region.FrozenRows, Cols: region.FrozenCols}
	}
	return g.Frozen()
}
