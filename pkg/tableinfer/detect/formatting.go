package detect

import (
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// formatting is a reserved passthrough slot in the strategy chain for
// style-based detection (cell borders, fills). It currently matches
// nothing and must stay registered.
type formatting struct{}

func (formatting) Name() string {
	return models.MethodFormatting
}

func (formatting) Detect(_ *models.Grid, _ Config) []models.Region {
	return nil
}
