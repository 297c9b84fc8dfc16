package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// frozenPanes is the highest-priority strategy: a frozen-pane hint is
// treated as authoritative, producing exactly one table spanning the
// whole sheet regardless of content shape.
type frozenPanes struct{}

func (frozenPanes) Name() string {
	return models.MethodFrozenPanes
}

func (frozenPanes) Detect(g *models.Grid, _ Config) []models.Region {
	frozen := g.Frozen()
	if !frozen.Any() {
		return nil
	}
	b := g.Bounds()
	return []models.Region{{
		StartRow:   b.MinRow,
		EndRow:     b.MaxRow,
		StartCol:   b.MinCol,
		EndCol:     b.MaxCol,
		Method:     models.MethodFrozenPanes,
		FrozenRows: frozen.Rows,
		FrozenCols: frozen.Cols,
	}}
}
