package models

// CellRow is the compact row-oriented input representation: one sheet
// row with its populated cells as tuples. Each tuple is
// [col, value, ...] with an optional trailing integer > 1 denoting a
// run length (run of identical values starting at col).
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the cell tuples for the row.
	Cells [][]interface{} `json:"cells"`
}

// GridFromRows builds a Grid from compact RLE row records. Malformed
// tuples (fewer than two elements, or a non-numeric column index) are
// skipped for that cell only and never fail the whole sheet. Runs are
// stored at their starting column and never expanded.
func GridFromRows(rows []CellRow, bounds Bounds, frozen FrozenPanes) (*Grid, error) {
	g := &Grid{
		cells:    make(map[coord]Cell),
		frozen:   frozen,
		rowIndex: make(map[int][]int),
	}
	for _, row := range rows {
		for _, tuple := range row.Cells {
			c, ok := decodeTuple(row.R, tuple)
			if !ok {
				continue
			}
			v, ok := normalizeValue(c.Value)
			if !ok {
				continue
			}
			c.Value = v
			g.put(c)
		}
	}
	if err := g.finalize(bounds); err != nil {
		return nil, err
	}
	return g, nil
}

// decodeTuple decodes one [col, value, ..., run?] tuple.
func decodeTuple(row int, tuple []interface{}) (Cell, bool) {
	if len(tuple) < 2 {
		return Cell{}, false
	}
	col, ok := asInt(tuple[0])
	if !ok || col < 1 {
		return Cell{}, false
	}
	c := Cell{Row: row, Col: col, Value: tuple[1]}
	if len(tuple) > 2 {
		if run, ok := asInt(tuple[len(tuple)-1]); ok && run > 1 {
			c.Run = run
		}
	}
	return c, true
}

// asInt coerces JSON-decoded numbers to an integer index. Floats with
// a fractional part are rejected.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case float32:
		if n != float32(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
