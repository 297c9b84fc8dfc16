package tableinfer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// fileConfig mirrors the recognized configuration keys of a YAML
// options file.
type fileConfig struct {
	TableDetection struct {
		UseGaps             bool `yaml:"use_gaps"`
		GapThreshold        int  `yaml:"gap_threshold"`
		CompactGapThreshold int  `yaml:"compact_gap_threshold"`
	} `yaml:"table_detection"`
	SheetData struct {
		FrozenPanes *struct {
			FrozenRows int `yaml:"frozen_rows"`
			FrozenCols int `yaml:"frozen_cols"`
		} `yaml:"frozen_panes"`
	} `yaml:"sheet_data"`
}

// LoadOptions reads a YAML options file and merges it over the
// defaults. Unknown keys are ignored.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return opts, fmt.Errorf("parse config: %w", err)
	}

	opts.UseGaps = fc.TableDetection.UseGaps
	if fc.TableDetection.GapThreshold > 0 {
		opts.GapThreshold = fc.TableDetection.GapThreshold
	}
	if fc.TableDetection.CompactGapThreshold > 0 {
		opts.CompactGapThreshold = fc.TableDetection.CompactGapThreshold
	}
	if fp := fc.SheetData.FrozenPanes; fp != nil {
		opts.Frozen = &models.FrozenPanes{
			Rows: fp.FrozenRows,
			Cols: fp.FrozenCols,
		}
	}
	return opts, nil
}
