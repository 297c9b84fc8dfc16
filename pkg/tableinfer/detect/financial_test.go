package detect

import (
	"testing"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

// financialSheet builds a balance-sheet-like layout: section headers
// alone in the first column, wide data rows beneath them.
func financialSheet() []models.Cell {
	return flatten(
		textRow(1, "Current Assets"),
		append(textRow(2, "Cash and equivalents"), numRow(2, 2, 100, 110, 120)...),
		append(textRow(3, "Accounts receivable"), numRow(3, 2, 50, 55, 60)...),
		textRow(5, "Current Liabilities"),
		append(textRow(6, "Accounts payable"), numRow(6, 2, 30, 35, 40)...),
	)
}

func TestFinancial_RecognizesStatementLayout(t *testing.T) {
	g := mustGrid(t, financialSheet(), models.FrozenPanes{})

	regions := Regions(g, DefaultConfig())
	if len(regions) != 1 {
		t.Fatalf("Expected one region, got %d", len(regions))
	}
	r := regions[0]
	if r.Method != models.MethodFinancial {
		t.Errorf("Expected method %q, got %q", models.MethodFinancial, r.Method)
	}
	if r.StartRow != 1 || r.EndRow != 6 {
		t.Errorf("Region must cover all populated rows, got rows %d-%d", r.StartRow, r.EndRow)
	}
	if r.StartCol != 1 || r.EndCol != 4 {
		t.Errorf("Columns must narrow to populated data, got cols %d-%d", r.StartCol, r.EndCol)
	}
}

func TestFinancial_RequiresVocabulary(t *testing.T) {
	// Same shape, but section headers without financial terms.
	g := mustGrid(t, flatten(
		textRow(1, "Fruit"),
		append(textRow(2, "Apples"), numRow(2, 2, 1, 2, 3)...),
		append(textRow(3, "Pears"), numRow(3, 2, 4, 5, 6)...),
		textRow(5, "Vegetables"),
		append(textRow(6, "Leeks"), numRow(6, 2, 7, 8, 9)...),
	), models.FrozenPanes{})

	s := financialStatement{}
	if regions := s.Detect(g, DefaultConfig()); regions != nil {
		t.Errorf("Non-financial vocabulary must not match, got %v", regions)
	}
}

func TestFinancial_RequiresEnoughRows(t *testing.T) {
	// Only one section header.
	g := mustGrid(t, flatten(
		textRow(1, "Total Assets"),
		append(textRow(2, "Cash"), numRow(2, 2, 1, 2, 3)...),
		append(textRow(3, "Inventory"), numRow(3, 2, 4, 5, 6)...),
		append(textRow(4, "Property"), numRow(4, 2, 7, 8, 9)...),
	), models.FrozenPanes{})

	s := financialStatement{}
	if regions := s.Detect(g, DefaultConfig()); regions != nil {
		t.Errorf("One section header is not enough, got %v", regions)
	}
}
