// Package output serializes inference results to JSON for the CLI.
package output

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// Envelope wraps a workbook result with a per-run extraction id so
// separate runs over the same file are distinguishable downstream.
type Envelope struct {
	ExtractionID string                     `json:"extraction_id"`
	Workbook     *tableinfer.WorkbookTables `json:"workbook"`
}

// ToJSON serializes a workbook result, stamping a fresh extraction
// id. Set pretty for indented output.
func ToJSON(wb *tableinfer.WorkbookTables, pretty bool) ([]byte, error) {
	env := Envelope{
		ExtractionID: uuid.NewString(),
		Workbook:     wb,
	}
	if pretty {
		return json.MarshalIndent(env, "", "  ")
	}
	return json.Marshal(env)
}

// SheetToJSON serializes one sheet's tables.
func SheetToJSON(tables []models.Table, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(tables, "", "  ")
	}
	return json.Marshal(tables)
}
