package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

const (
	minContentRows = 3
	minContentCols = 2
)

// contentStructure is the structural fallback: any sheet with a few
// populated rows and columns becomes a single table over its
// populated bounds.
type contentStructure struct{}

func (contentStructure) Name() string {
	return models.MethodContentStructure
}

func (contentStructure) Detect(g *models.Grid, _ Config) []models.Region {
	rows := g.PopulatedRows()
	if len(rows) < minContentRows {
		return nil
	}
	b := g.DataBounds()
	if b.MaxCol-b.MinCol+1 < minContentCols {
		return nil
	}
	return []models.Region{{
		StartRow: b.MinRow,
		EndRow:   b.MaxRow,
		StartCol: b.MinCol,
		EndCol:   b.MaxCol,
		Method:   models.MethodContentStructure,
	}}
}

// defaultFallback covers anything the rest of the chain missed: a
// non-empty grid always yields at least one table.
type defaultFallback struct{}

func (defaultFallback) Name() string {
	return models.MethodDefault
}

func (defaultFallback) Detect(g *models.Grid, _ Config) []models.Region {
	if g.IsEmpty() {
		return nil
	}
	b := g.DataBounds()
	return []models.Region{{
		StartRow: b.MinRow,
		EndRow:   b.MaxRow,
		StartCol: b.MinCol,
		EndCol:   b.MaxCol,
		Method:   models.MethodDefault,
	}}
}
