package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vsinha/bomtree/pkg/application/dto"
	"github.com/vsinha/bomtree/pkg/application/services/report"
	"github.com/vsinha/bomtree/pkg/domain/services/hierarchy_validator"
)

func TestPrintRecap(t *testing.T) {
	var buf bytes.Buffer
	summary := &dto.Recap{
		DistinctParts: 2,
		TotalParts:    30,
		Rows: []dto.RecapRow{
			{Quantity: 6, PartNumber: "SHAFT"},
			{Quantity: 24, PartNumber: "BOLT_M8", Revision: "A", Description: "Hex bolt"},
		},
	}

	PrintRecap(&buf, summary, report.LabelsFor("en"))

	out := buf.String()
	for _, expected := range []string{"Recapitulation", "Distinct parts: 2", "Total parts: 30", "BOLT_M8", "Hex bolt"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, out)
		}
	}
}

func TestPrintRecap_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintRecap(&buf, &dto.Recap{}, report.LabelsFor("fr"))

	if !strings.Contains(buf.String(), "Aucune ligne") {
		t.Errorf("Expected placeholder, got:\n%s", buf.String())
	}
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	PrintValidation(&buf, "ok.csv", &hierarchy_validator.ValidationResult{})
	PrintValidation(&buf, "bad.csv", &hierarchy_validator.ValidationResult{
		Warnings: []string{"item codes without a parent row: 4.2"},
	})

	out := buf.String()
	if !strings.Contains(out, "ok.csv: no hierarchy warnings") {
		t.Errorf("Expected clean source line, got:\n%s", out)
	}
	if !strings.Contains(out, "  - item codes without a parent row: 4.2") {
		t.Errorf("Expected warning line, got:\n%s", out)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, &dto.ReportResult{
		Source:   "gearbox.csv",
		Sections: make([]dto.Section, 4),
		Recap:    &dto.Recap{DistinctParts: 4, TotalParts: 48},
		Stats:    dto.Stats{Rows: 8, RecordsRead: 9, SkippedEmptyCode: 1, CoercedQuantities: 2, MaxDepth: 3},
	}, "gearbox_bom.xlsx")

	out := buf.String()
	for _, expected := range []string{
		"Rows: 8 (read 9, skipped 1 without item code)",
		"Unreadable quantities set to 0: 2",
		"Sections: 4",
		"Total parts: 48",
		"gearbox_bom.xlsx",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	results := []*dto.ReportResult{{RunID: "run-1", Title: "BOM", Recap: &dto.Recap{TotalParts: 3}}}

	if err := WriteJSON(&buf, results); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["runId"] != "run-1" {
		t.Errorf("Unexpected JSON %s", buf.String())
	}
}
