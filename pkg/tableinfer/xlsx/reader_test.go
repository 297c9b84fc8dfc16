package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGridFromSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	g, err := GridFromSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("GridFromSheet failed: %v", err)
	}

	if g.Len() != 5 {
		t.Errorf("Expected 5 cells, got %d", g.Len())
	}
	if v := g.ValueAt(1, 1); v != "Header1" {
		t.Errorf("Expected 'Header1', got %v", v)
	}
	if v := g.ValueAt(2, 1); v != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", v, v)
	}
	if v := g.ValueAt(2, 2); v != 200.5 {
		t.Errorf("Expected 200.5, got %v", v)
	}

	b := g.Bounds()
	if b.MinRow != 1 || b.MaxRow != 3 || b.MinCol != 1 || b.MaxCol != 2 {
		t.Errorf("Unexpected bounds %+v", b)
	}
}

func TestGridFromSheet_FrozenPanes(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "H")
	f.SetCellValue(sheetName, "A2", "v")
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      2,
		TopLeftCell: "B3",
		ActivePane:  "bottomRight",
	}); err != nil {
		t.Fatalf("SetPanes failed: %v", err)
	}

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "frozen.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	g, err := GridFromSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("GridFromSheet failed: %v", err)
	}
	frozen := g.Frozen()
	if frozen.Rows != 2 || frozen.Cols != 1 {
		t.Errorf("Expected frozen (2 rows, 1 col), got %+v", frozen)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
