// Package tableinfer infers table structure from sparse spreadsheet
// cell grids: region detection, header resolution, and label building.
package tableinfer

import "github.com/tablekit/tableinfer-go/pkg/tableinfer/models"

// Mode selects the table assembly variant.
type Mode string

const (
	// ModeVerbose assembles tables with full nested per-cell maps.
	ModeVerbose Mode = "verbose"
	// ModeCompact assembles tables with aggregate counts and title
	// detection only, without materializing cell maps.
	ModeCompact Mode = "compact"
)

// Default gap thresholds. The compact pipeline's simplified splitter
// and the generic gap strategy are configured independently.
const (
	DefaultGapThreshold        = 3
	DefaultCompactGapThreshold = 2
)

// Options configures table inference.
type Options struct {
	// Mode specifies the assembly variant (verbose, compact).
	Mode Mode

	// UseGaps enables the fixed-threshold blank-row splitter
	// strategy. Off by default.
	UseGaps bool

	// GapThreshold is the blank-row threshold for the generic gap
	// splitter. Zero means DefaultGapThreshold.
	GapThreshold int

	// CompactGapThreshold is the blank-row threshold used by the
	// compact pipeline's gap splitter. Zero means
	// DefaultCompactGapThreshold.
	CompactGapThreshold int

	// Frozen overrides the grid's frozen-pane hint when non-nil.
	Frozen *models.FrozenPanes
}

// DefaultOptions returns default inference options.
func DefaultOptions() Options {
	return Options{
		Mode:                ModeVerbose,
		UseGaps:             false,
		GapThreshold:        DefaultGapThreshold,
		CompactGapThreshold: DefaultCompactGapThreshold,
	}
}

// gapThreshold returns the effective threshold for the active mode.
func (o Options) gapThreshold() int {
	if o.Mode == ModeCompact {
		if o.CompactGapThreshold > 0 {
			return o.CompactGapThreshold
		}
		return DefaultCompactGapThreshold
	}
	if o.GapThreshold > 0 {
		return o.GapThreshold
	}
	return DefaultGapThreshold
}
