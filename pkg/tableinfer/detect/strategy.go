// Package detect partitions a grid into rectangular table regions by
// running a fixed, priority-ordered chain of detection strategies.
package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// Strategy is one table detection algorithm. Implementations are
// stateless pure functions over an immutable grid.
type Strategy interface {
	// Name returns the detection method tag.
	Name() string

	// Detect finds candidate regions, or returns nil when the
	// strategy does not apply. A nil result is normal control flow.
	Detect(g *models.Grid, cfg Config) []models.Region
}

// Config holds detection configuration.
type Config struct {
	// UseGaps enables the fixed-threshold gap splitter strategy.
	UseGaps bool

	// GapThreshold is the minimum blank-row gap for the gap
	// splitter strategy.
	GapThreshold int
}

// DefaultGapThreshold is the default for the generic gap splitter.
const DefaultGapThreshold = 3

// DefaultConfig returns default detection configuration.
func DefaultConfig() Config {
	return Config{
		UseGaps:      false,
		GapThreshold: DefaultGapThreshold,
	}
}

// chain returns the strategies in priority order. Frozen panes
// override everything; the content-structure and default strategies
// are the fallbacks.
func chain() []Strategy {
	return []Strategy{
		frozenPanes{},
		financialStatement{},
		blankRowSeparation{},
		temporalHeaders{},
		columnContinuity{},
		multiRowHeaders{},
		gapSplitter{},
		formatting{},
		contentStructure{},
		defaultFallback{},
	}
}

// Regions runs the strategy chain over the grid and returns the first
// strategy's non-empty result, validated against grid bounds. Results
// from different strategies are never merged. An empty result (blank
// grid) is valid.
func Regions(g *models.Grid, cfg Config) []models.Region {
	if g == nil || g.IsEmpty() {
		return nil
	}
	if cfg.GapThreshold <= 0 {
		cfg.GapThreshold = DefaultGapThreshold
	}
	for _, s := range chain() {
		if regions := s.Detect(g, cfg); len(regions) > 0 {
			return validate(g, regions)
		}
	}
	return nil
}

// validate clips each region to grid bounds and drops regions that
// end up inverted on either axis.
func validate(g *models.Grid, regions []models.Region) []models.Region {
	out := make([]models.Region, 0, len(regions))
	for _, r := range regions {
		r = r.Clip(g.Bounds())
		if r.Empty() {
			continue
		}
		out = append(out, r)
	}
	return out
}
