package models

// Unlabeled is the sentinel label for a header position with no
// discoverable value.
const Unlabeled = "unlabeled"

// HeaderInfo records which rows/columns of a region act as headers.
// Header indices always lie within the owning region; data start is
// the region start plus the header count on that axis.
type HeaderInfo struct {
	HeaderRows   []int `json:"header_rows"`
	HeaderCols   []int `json:"header_columns"`
	DataStartRow int   `json:"data_start_row"`
	DataStartCol int   `json:"data_start_col"`
}

// HasHeaderRow reports whether the given row is a header row.
func (h HeaderInfo) HasHeaderRow(row int) bool {
	for _, r := range h.HeaderRows {
		if r == row {
			return true
		}
	}
	return false
}

// HasHeaderCol reports whether the given column is a header column.
func (h HeaderInfo) HasHeaderCol(col int) bool {
	for _, c := range h.HeaderCols {
		if c == col {
			return true
		}
	}
	return false
}

// Column describes one column of an assembled table. Cells is
// populated by the verbose assembler; CellCount by the compact one.
type Column struct {
	Index     int                 `json:"index"`
	Label     string              `json:"label"`
	IsHeader  bool                `json:"is_header"`
	Cells     map[int]interface{} `json:"cells,omitempty"`
	CellCount int                 `json:"cell_count,omitempty"`
}

// Row describes one row of an assembled table.
type Row struct {
	Index     int                 `json:"index"`
	Label     string              `json:"label"`
	IsHeader  bool                `json:"is_header"`
	Cells     map[int]interface{} `json:"cells,omitempty"`
	CellCount int                 `json:"cell_count,omitempty"`
}

// Metadata carries observability fields for an assembled table.
type Metadata struct {
	DetectionMethod  string `json:"detection_method"`
	CellCount        int    `json:"cell_count"`
	NumericCellCount int    `json:"numeric_cell_count"`
}

// Table is the terminal output entity: one detected table with
// resolved headers and labels. Immutable once assembled.
type Table struct {
	ID      string     `json:"id"`
	Title   string     `json:"title,omitempty"`
	Region  Region     `json:"region"`
	Header  HeaderInfo `json:"header_info"`
	Columns []Column   `json:"columns"`
	Rows    []Row      `json:"rows"`
	Meta    Metadata   `json:"metadata"`
}
