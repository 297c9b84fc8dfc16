package detect

import (
	"strings"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// financialVocabulary are the terms a section-header text is matched
// against when classifying a sheet as a financial statement.
var financialVocabulary = []string{
	"assets", "liabilities", "equity", "revenue", "expenses", "income",
	"cash", "receivable", "payable", "inventory", "property", "debt",
	"retained", "earnings", "capital", "current", "non-current", "total",
}

const (
	minSectionHeaderRows = 2
	minFinancialDataRows = 3
	// Share of section-header texts that must contain a financial term.
	financialTermRatio = 0.6
	// A data row has a first-column label plus more than this many
	// other populated cells.
	minDataRowExtraCells = 2
)

// financialStatement recognizes the balance-sheet/income-statement
// layout: section-header rows carrying a lone label in the first
// column interleaved with wide data rows.
type financialStatement struct{}

func (financialStatement) Name() string {
	return models.MethodFinancial
}

func (financialStatement) Detect(g *models.Grid, _ Config) []models.Region {
	firstCol := g.Bounds().MinCol

	var sectionTexts []string
	dataRows := 0
	for _, row := range g.PopulatedRows() {
		cols := g.ColsInRow(row)
		label := g.ValueAt(row, firstCol)
		if !models.IsText(label) {
			continue
		}
		extra := len(cols) - 1
		switch {
		case extra == 0:
			sectionTexts = append(sectionTexts, models.FormatValue(label))
		case extra > minDataRowExtraCells:
			dataRows++
		}
	}

	if len(sectionTexts) < minSectionHeaderRows || dataRows < minFinancialDataRows {
		return nil
	}
	matched := 0
	for _, text := range sectionTexts {
		if containsFinancialTerm(text) {
			matched++
		}
	}
	if float64(matched) < financialTermRatio*float64(len(sectionTexts)) {
		return nil
	}

	rows := g.PopulatedRows()
	r, ok := regionForRows(g, rows[0], rows[len(rows)-1], models.MethodFinancial)
	if !ok {
		return nil
	}
	return []models.Region{r}
}

func containsFinancialTerm(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range financialVocabulary {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
