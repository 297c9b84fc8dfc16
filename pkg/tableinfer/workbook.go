package tableinfer

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/xlsx"
)

// WorkbookTables holds inference results for every sheet of a
// workbook, in sheet-list order.
type WorkbookTables struct {
	BookName string        `json:"book_name"`
	Sheets   []SheetTables `json:"sheets"`
}

// SheetTables holds the tables inferred from one sheet.
type SheetTables struct {
	SheetName string         `json:"sheet_name"`
	Tables    []models.Table `json:"tables"`
}

// Infer reads an xlsx workbook and infers tables for every sheet.
// A sheet that fails to extract contributes an empty table list
// rather than failing the workbook. Sheets are independent; within a
// sheet the detector's emission order is preserved.
func Infer(path string, opts Options) (*WorkbookTables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := &WorkbookTables{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		grid, err := xlsx.GridFromSheet(f, sheetName)
		if err != nil {
			out.Sheets = append(out.Sheets, SheetTables{SheetName: sheetName})
			continue
		}
		tables, err := InferTables(grid, opts)
		if err != nil {
			return nil, NewInferError(sheetName, "detect", err)
		}
		out.Sheets = append(out.Sheets, SheetTables{
			SheetName: sheetName,
			Tables:    tables,
		})
	}
	return out, nil
}
