// Package xlsx adapts excelize workbooks into canonical grids. It is
// the cell-extraction boundary: everything downstream only ever sees
// a models.Grid.
package xlsx

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// GridFromSheet extracts one sheet into a canonical grid, including
// its frozen-pane hint.
func GridFromSheet(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var cells []models.Cell
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cells = append(cells, models.Cell{
				Row:   rowIdx + 1,
				Col:   colIdx + 1,
				Value: parseValue(cellValue),
			})
		}
	}

	frozen := frozenPanes(f, sheetName)
	return models.GridFromCells(cells, models.Bounds{}, frozen)
}

// frozenPanes reads the sheet's freeze-pane split counts. Errors and
// non-frozen panes degrade to a zero hint.
func frozenPanes(f *excelize.File, sheetName string) models.FrozenPanes {
	panes, err := f.GetPanes(sheetName)
	if err != nil || !panes.Freeze {
		return models.FrozenPanes{}
	}
	return models.FrozenPanes{
		Rows: panes.YSplit,
		Cols: panes.XSplit,
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
