package models

import (
	"fmt"
	"sort"
)

// Bounds describes the rectangular extent of a sheet (1-based, inclusive).
type Bounds struct {
	MinRow int `json:"min_row"`
	MaxRow int `json:"max_row"`
	MinCol int `json:"min_col"`
	MaxCol int `json:"max_col"`
}

// Valid reports whether the bounds are internally consistent.
func (b Bounds) Valid() bool {
	return b.MinRow <= b.MaxRow && b.MinCol <= b.MaxCol
}

// FrozenPanes is a spreadsheet hint that the first Rows rows and
// Cols columns stay fixed while scrolling.
type FrozenPanes struct {
	Rows int `json:"frozen_rows"`
	Cols int `json:"frozen_cols"`
}

// Any reports whether either axis has a frozen count.
func (f FrozenPanes) Any() bool {
	return f.Rows > 0 || f.Cols > 0
}

type coord struct {
	row, col int
}

// Grid is the canonical sparse representation of one sheet: populated
// cells keyed by coordinate, sheet bounds, and an optional frozen-pane
// hint. A Grid is built once per sheet and read-only afterwards.
type Grid struct {
	cells  map[coord]Cell
	bounds Bounds
	frozen FrozenPanes

	rowIndex map[int][]int // row -> sorted populated columns
}

// ErrInvalidBounds indicates caller-supplied bounds with min > max.
var ErrInvalidBounds = fmt.Errorf("invalid bounds: min exceeds max")

// GridFromCells builds a Grid from per-cell records. Cells with nil or
// blank-string values are dropped. A zero Bounds value derives bounds
// from the populated cells.
func GridFromCells(cells []Cell, bounds Bounds, frozen FrozenPanes) (*Grid, error) {
	g := &Grid{
		cells:    make(map[coord]Cell, len(cells)),
		frozen:   frozen,
		rowIndex: make(map[int][]int),
	}
	for _, c := range cells {
		v, ok := normalizeValue(c.Value)
		if !ok {
			continue
		}
		c.Value = v
		g.put(c)
	}
	if err := g.finalize(bounds); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) put(c Cell) {
	g.cells[coord{c.Row, c.Col}] = c
}

func (g *Grid) finalize(bounds Bounds) error {
	if bounds == (Bounds{}) {
		bounds = g.dataBounds()
	} else if !bounds.Valid() {
		return ErrInvalidBounds
	}
	g.bounds = bounds

	for c := range g.cells {
		g.rowIndex[c.row] = append(g.rowIndex[c.row], c.col)
	}
	for r := range g.rowIndex {
		sort.Ints(g.rowIndex[r])
	}
	return nil
}

func (g *Grid) dataBounds() Bounds {
	var b Bounds
	first := true
	for c := range g.cells {
		if first {
			b = Bounds{MinRow: c.row, MaxRow: c.row, MinCol: c.col, MaxCol: c.col}
			first = false
			continue
		}
		if c.row < b.MinRow {
			b.MinRow = c.row
		}
		if c.row > b.MaxRow {
			b.MaxRow = c.row
		}
		if c.col < b.MinCol {
			b.MinCol = c.col
		}
		if c.col > b.MaxCol {
			b.MaxCol = c.col
		}
	}
	return b
}

// Bounds returns the sheet bounds.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// Frozen returns the frozen-pane hint.
func (g *Grid) Frozen() FrozenPanes {
	return g.frozen
}

// WithFrozen returns a view of the grid with a replacement
// frozen-pane hint. Cell storage is shared, not copied.
func (g *Grid) WithFrozen(f FrozenPanes) *Grid {
	clone := *g
	clone.frozen = f
	return &clone
}

// IsEmpty reports whether the grid holds no populated cells.
func (g *Grid) IsEmpty() bool {
	return len(g.cells) == 0
}

// Len returns the number of stored cell entries (runs count once).
func (g *Grid) Len() int {
	return len(g.cells)
}

// CellAt returns the cell at (row, col), if populated. A run is only
// present at its starting column.
func (g *Grid) CellAt(row, col int) (Cell, bool) {
	c, ok := g.cells[coord{row, col}]
	return c, ok
}

// ValueAt returns the value at (row, col), or nil when unpopulated.
func (g *Grid) ValueAt(row, col int) interface{} {
	if c, ok := g.cells[coord{row, col}]; ok {
		return c.Value
	}
	return nil
}

// ColsInRow returns the populated columns of a row in ascending order.
func (g *Grid) ColsInRow(row int) []int {
	return g.rowIndex[row]
}

// PopulatedRows returns the rows with at least one populated cell,
// in ascending order.
func (g *Grid) PopulatedRows() []int {
	rows := make([]int, 0, len(g.rowIndex))
	for r := range g.rowIndex {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// DataBounds returns the bounding box of the populated cells. The zero
// Bounds is returned for an empty grid.
func (g *Grid) DataBounds() Bounds {
	return g.dataBounds()
}

// ColRange returns the populated column extent across the given row
// range, and whether any cell was found.
func (g *Grid) ColRange(startRow, endRow int) (minCol, maxCol int, ok bool) {
	for r := startRow; r <= endRow; r++ {
		cols := g.rowIndex[r]
		if len(cols) == 0 {
			continue
		}
		if !ok {
			minCol, maxCol = cols[0], cols[len(cols)-1]
			ok = true
			continue
		}
		if cols[0] < minCol {
			minCol = cols[0]
		}
		if cols[len(cols)-1] > maxCol {
			maxCol = cols[len(cols)-1]
		}
	}
	return minCol, maxCol, ok
}

// CountRegion tallies populated cells within a region. RLE runs are
// multiplied by their run length; booleans are excluded from numeric.
func (g *Grid) CountRegion(r Region) (total, numeric int) {
	for row := r.StartRow; row <= r.EndRow; row++ {
		for _, col := range g.rowIndex[row] {
			if col < r.StartCol || col > r.EndCol {
				continue
			}
			c := g.cells[coord{row, col}]
			span := c.Span()
			total += span
			if IsNumeric(c.Value) {
				numeric += span
			}
		}
	}
	return total, numeric
}
