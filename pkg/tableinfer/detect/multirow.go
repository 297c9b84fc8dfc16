package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

const (
	// Consecutive header-like rows needed to form a header block.
	minHeaderBlockRows = 2
	// Populated columns a row needs to be header-like.
	minHeaderRowCols = 3
	// Blank-row gap that ends a multi-row-header table.
	multiRowBreakGap = 2
)

// multiRowHeaders detects tables anchored by blocks of two or more
// consecutive header-like rows (mostly text, no numeric majority,
// several populated columns).
type multiRowHeaders struct{}

func (multiRowHeaders) Name() string {
	return models.MethodMultiRowHeaders
}

func (multiRowHeaders) Detect(g *models.Grid, _ Config) []models.Region {
	rows := g.PopulatedRows()
	if len(rows) < minHeaderBlockRows {
		return nil
	}

	blocks := headerBlocks(g, rows)
	if len(blocks) == 0 {
		return nil
	}

	var out []models.Region
	for i, start := range blocks {
		next := -1
		if i+1 < len(blocks) {
			next = blocks[i+1]
		}
		end := start
		for _, row := range rows {
			if row <= start {
				continue
			}
			if next > 0 && row >= next {
				break
			}
			if row-end-1 >= multiRowBreakGap {
				break
			}
			end = row
		}
		if r, ok := regionForRows(g, start, end, models.MethodMultiRowHeaders); ok {
			out = append(out, r)
		}
	}
	return out
}

// headerBlocks returns the starting rows of runs of at least
// minHeaderBlockRows physically consecutive header-like rows.
func headerBlocks(g *models.Grid, rows []int) []int {
	var blocks []int
	runStart, runLen := 0, 0
	flush := func() {
		if runLen >= minHeaderBlockRows {
			blocks = append(blocks, runStart)
		}
		runLen = 0
	}
	for i, row := range rows {
		if !headerLike(profileRow(g, row)) {
			flush()
			continue
		}
		if runLen > 0 && i > 0 && rows[i-1] == row-1 {
			runLen++
			continue
		}
		flush()
		runStart, runLen = row, 1
	}
	flush()
	return blocks
}

// headerLike reports whether a row reads as a header: several
// populated columns, mostly text, and no numeric majority.
func headerLike(p rowProfile) bool {
	return p.colCount >= minHeaderRowCols && p.mostlyText() && p.numericCount <= p.textCount
}
