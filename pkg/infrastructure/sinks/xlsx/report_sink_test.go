package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReportSink_Workbook(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "report.xlsx")

	sink, err := NewReportSink(filename, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := sink.WriteTitle(0, "BOM"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := sink.WriteTable(1, []string{"Item", "Quantity"}, [][]string{{"1.10", "12"}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := sink.WriteNote(1, "late"); err == nil {
		t.Error("Expected overlapping note to be rejected")
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != DefaultSheet {
		t.Errorf("Expected single sheet %q, got %v", DefaultSheet, sheets)
	}

	testCases := []struct {
		cell     string
		expected string
	}{
		{"A1", "BOM"},
		{"A2", "Item"},
		{"B2", "Quantity"},
		{"A3", "1.10"},
		{"B3", "12"},
	}
	for _, tc := range testCases {
		value, err := f.GetCellValue(DefaultSheet, tc.cell)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", tc.cell, err)
		}
		if value != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.cell, tc.expected, value)
		}
	}
}
