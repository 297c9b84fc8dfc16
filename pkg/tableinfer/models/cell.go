// Package models defines data structures for table structure inference.
package models

import (
	"strconv"
	"strings"
)

// Cell represents a single populated cell in a sheet.
// A Cell with Run > 1 is a run-length-encoded run: Run consecutive
// columns starting at Col share the same value. Presence logic only
// ever sees the run at its starting column; only counting expands it.
type Cell struct {
	// Row is the row index (1-based).
	Row int `json:"row"`
	// Col is the column index (1-based).
	Col int `json:"col"`
	// Value is the cell value (string, int64, float64, or bool).
	Value interface{} `json:"value"`
	// Run is the run length for RLE cells (0 or 1 means a single cell).
	Run int `json:"run,omitempty"`
}

// Span returns the number of columns the cell covers when counting.
func (c Cell) Span() int {
	if c.Run > 1 {
		return c.Run
	}
	if c.Run < 0 {
		return 0
	}
	return 1
}

// IsNumeric reports whether a cell value is numeric.
// Booleans are not numeric.
func IsNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

// IsText reports whether a cell value is a non-empty string.
func IsText(v interface{}) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// FormatValue renders a cell value as a string for label building.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	}
	return ""
}

// normalizeValue trims string values and reports whether the value
// should be retained in the grid. Numeric zero and boolean false are
// retained; nil and blank strings are not.
func normalizeValue(v interface{}) (interface{}, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return nil, false
		}
		return trimmed, true
	}
	return v, true
}
