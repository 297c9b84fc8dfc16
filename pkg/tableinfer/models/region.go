package models

// Detection method tags carried on regions and table metadata.
const (
	MethodFrozenPanes      = "frozen_panes"
	MethodFinancial        = "financial_statement"
	MethodBlankRow         = "blank_row_separation"
	MethodTemporal         = "temporal_headers"
	MethodColumnContinuity = "column_continuity"
	MethodMultiRowHeaders  = "multi_row_headers"
	MethodGaps             = "gaps"
	MethodFormatting       = "formatting"
	MethodContentStructure = "content_structure"
	MethodDefault          = "default"
)

// Region is a rectangular candidate table boundary (1-based,
// inclusive), always clipped to grid bounds by the validator.
type Region struct {
	StartRow int    `json:"start_row"`
	EndRow   int    `json:"end_row"`
	StartCol int    `json:"start_col"`
	EndCol   int    `json:"end_col"`
	Method   string `json:"detection_method"`

	// Frozen counts carried by frozen_panes regions.
	FrozenRows int `json:"frozen_rows,omitempty"`
	FrozenCols int `json:"frozen_cols,omitempty"`
}

// Height returns the number of rows the region spans.
func (r Region) Height() int {
	return r.EndRow - r.StartRow + 1
}

// Width returns the number of columns the region spans.
func (r Region) Width() int {
	return r.EndCol - r.StartCol + 1
}

// Empty reports whether the region has zero width or height.
// Downstream components treat an empty region as a no-op.
func (r Region) Empty() bool {
	return r.StartRow > r.EndRow || r.StartCol > r.EndCol
}

// Clip restricts the region to the given bounds.
func (r Region) Clip(b Bounds) Region {
	if r.StartRow < b.MinRow {
		r.StartRow = b.MinRow
	}
	if r.EndRow > b.MaxRow {
		r.EndRow = b.MaxRow
	}
	if r.StartCol < b.MinCol {
		r.StartCol = b.MinCol
	}
	if r.EndCol > b.MaxCol {
		r.EndCol = b.MaxCol
	}
	return r
}
