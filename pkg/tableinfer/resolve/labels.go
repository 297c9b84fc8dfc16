package resolve

import (
	"strings"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// hierarchySep joins contributions from multiple header columns (and
// all compact-variant contributions).
const hierarchySep = " | "

// ColumnLabel builds the verbose label for a column: the column's
// value at each header row, most granular (lowest) header row first,
// joined with a single space. "Jan 2023", never "2023 Jan".
func ColumnLabel(g *models.Grid, headerRows []int, col int) string {
	parts := collect(g, headerRows, func(row int) interface{} {
		return g.ValueAt(row, col)
	})
	reverse(parts)
	return label(parts, " ")
}

// RowLabel builds the verbose label for a data row from the header
// columns. In a frozen-header layout with multiple header rows the
// header-column content is part of the fixed header block, so every
// data row reads the header column at every header row; otherwise the
// header column's value comes from the data row itself.
func RowLabel(g *models.Grid, hi models.HeaderInfo, frozen models.FrozenPanes, row int) string {
	var parts []string
	for _, headerCol := range hi.HeaderCols {
		var piece string
		if frozen.Rows > 0 && len(hi.HeaderRows) > 1 {
			colParts := collect(g, hi.HeaderRows, func(r int) interface{} {
				return g.ValueAt(r, headerCol)
			})
			reverse(colParts)
			piece = strings.Join(colParts, " ")
		} else {
			piece = models.FormatValue(g.ValueAt(row, headerCol))
		}
		if piece != "" {
			parts = append(parts, piece)
		}
	}
	return label(parts, hierarchySep)
}

// CompactColumnLabel builds the compact label for a column: header
// row values in natural top-to-bottom order, pipe-joined.
func CompactColumnLabel(g *models.Grid, headerRows []int, col int) string {
	parts := collect(g, headerRows, func(row int) interface{} {
		return g.ValueAt(row, col)
	})
	return label(parts, hierarchySep)
}

// CompactRowLabel builds the compact label for a data row: the value
// of each header column at the row itself, pipe-joined. No
// frozen-repetition rule.
func CompactRowLabel(g *models.Grid, headerCols []int, row int) string {
	parts := collect(g, headerCols, func(col int) interface{} {
		return g.ValueAt(row, col)
	})
	return label(parts, hierarchySep)
}

// collect gathers the non-empty formatted values at the given
// indices. Missing contributions are omitted, not placeholders.
func collect(g *models.Grid, indices []int, at func(int) interface{}) []string {
	var parts []string
	for _, idx := range indices {
		if s := models.FormatValue(at(idx)); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

func label(parts []string, sep string) string {
	if len(parts) == 0 {
		return models.Unlabeled
	}
	return strings.Join(parts, sep)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
