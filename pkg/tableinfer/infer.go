package tableinfer

import (
	"fmt"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/assemble"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/detect"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/resolve"
)

// InferTables partitions one sheet's grid into table regions,
// resolves headers and labels, and assembles the final tables in the
// detector's emission order. Zero tables is a valid outcome. The grid
// is never mutated; running twice on the same grid produces
// structurally identical results.
func InferTables(g *models.Grid, opts Options) ([]models.Table, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if opts.Mode == "" {
		opts.Mode = ModeVerbose
	}

	grid := g
	if opts.Frozen != nil {
		grid = g.WithFrozen(*opts.Frozen)
	}

	cfg := detect.Config{
		UseGaps:      opts.UseGaps,
		GapThreshold: opts.gapThreshold(),
	}

	regions := detect.Regions(grid, cfg)
	tables := make([]models.Table, 0, len(regions))
	for i, region := range regions {
		id := fmt.Sprintf("table_%d", i+1)
		if opts.Mode == ModeCompact {
			tables = append(tables, assemble.Compact(grid, id, region))
			continue
		}
		hi := resolve.Headers(region, effectiveFrozen(grid, region))
		tables = append(tables, assemble.Verbose(grid, id, region, hi))
	}
	return tables, nil
}

// effectiveFrozen picks the frozen hint for header resolution: counts
// carried on a frozen_panes region win over the grid-level hint.
func effectiveFrozen(g *models.Grid, region models.Region) models.FrozenPanes {
	if region.FrozenRows > 0 || region.FrozenCols > 0 {
		return models.FrozenPanes{Rows: region.FrozenRows, Cols: region.FrozenCols}
	}
	return g.Frozen()
}
