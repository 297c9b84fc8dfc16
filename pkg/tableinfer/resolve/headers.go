// Package resolve computes header row/column sets for a region and
// builds hierarchical column and row labels from them.
package resolve

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// Headers resolves the header layout of a region. A frozen-pane hint
// is authoritative per axis: the first N frozen rows/columns of the
// region become headers, clipped to the region. Without a hint on an
// axis, a single leading header row/column is assumed, but only when
// the region spans more than one row/column on that axis.
func Headers(region models.Region, frozen models.FrozenPanes) models.HeaderInfo {
	if region.Empty() {
		return models.HeaderInfo{
			DataStartRow: region.StartRow,
			DataStartCol: region.StartCol,
		}
	}

	headerRows := axisHeaders(region.StartRow, region.EndRow, frozen.Rows)
	headerCols := axisHeaders(region.StartCol, region.EndCol, frozen.Cols)

	return models.HeaderInfo{
		HeaderRows:   headerRows,
		HeaderCols:   headerCols,
		DataStartRow: region.StartRow + len(headerRows),
		DataStartCol: region.StartCol + len(headerCols),
	}
}

// axisHeaders returns the header indices for one axis: the frozen
// count when positive, else one default header when the axis spans
// more than one index.
func axisHeaders(start, end, frozen int) []int {
	count := frozen
	if count <= 0 {
		if end > start {
			count = 1
		} else {
			return nil
		}
	}
	if max := end - start + 1; count > max {
		count = max
	}
	out := make([]int, count)
	for i := range out {
		out[i] = start + i
	}
	return out
}
