package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// gapSplitter is the opt-in fixed-threshold blank-row splitter. It
// has no content-aware tie-breaking: every gap of at least the
// configured threshold splits.
type gapSplitter struct{}

func (gapSplitter) Name() string {
	return models.MethodGaps
}

func (gapSplitter) Detect(g *models.Grid, cfg Config) []models.Region {
	if !cfg.UseGaps {
		return nil
	}
	rows := g.PopulatedRows()
	if len(rows) == 0 {
		return nil
	}

	segments := [][]int{{rows[0]}}
	for i := 1; i < len(rows); i++ {
		if rows[i]-rows[i-1]-1 >= cfg.GapThreshold {
			segments = append(segments, nil)
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], rows[i])
	}
	return segmentsToRegions(g, segments, models.MethodGaps)
}
