package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vsinha/bomtree/pkg/application/dto"
	"github.com/vsinha/bomtree/pkg/application/services/report"
	"github.com/vsinha/bomtree/pkg/domain/services/hierarchy_validator"
)

// PrintSummary writes a short human-readable summary of a generated report
func PrintSummary(w io.Writer, result *dto.ReportResult, destination string) {
	fmt.Fprintf(w, "📊 %s\n", result.Source)
	fmt.Fprintf(w, "  Rows: %d (read %d, skipped %d without item code)\n",
		result.Stats.Rows, result.Stats.RecordsRead, result.Stats.SkippedEmptyCode)
	if result.Stats.CoercedQuantities > 0 {
		fmt.Fprintf(w, "  Unreadable quantities set to 0: %d\n", result.Stats.CoercedQuantities)
	}
	fmt.Fprintf(w, "  Sections: %d\n", len(result.Sections))
	fmt.Fprintf(w, "  Depth: %d\n", result.Stats.MaxDepth)
	if result.Recap != nil {
		fmt.Fprintf(w, "  Distinct parts: %d\n", result.Recap.DistinctParts)
		fmt.Fprintf(w, "  Total parts: %d\n", result.Recap.TotalParts)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "  Warnings: %d\n", len(result.Warnings))
	}
	if destination != "" {
		fmt.Fprintf(w, "💾 Report saved to: %s\n", destination)
	}
	fmt.Fprintln(w)
}

// PrintRecap writes the recapitulation as an aligned text table
func PrintRecap(w io.Writer, summary *dto.Recap, labels report.Labels) {
	fmt.Fprintf(w, "%s\n", labels.Recap)
	fmt.Fprintf(w, "%s: %d\n", labels.DistinctParts, summary.DistinctParts)
	fmt.Fprintf(w, "%s: %d\n\n", labels.TotalParts, summary.TotalParts)

	if len(summary.Rows) == 0 {
		fmt.Fprintf(w, "%s\n", labels.NoRows)
		return
	}

	fmt.Fprintf(w, "%-10s %-20s %-10s %s\n", "Quantity", "Part Number", "Revision", "Product Description")
	fmt.Fprintf(w, "%-10s %-20s %-10s %s\n", "----------", "--------------------", "----------", "-------------------")
	for _, row := range summary.Rows {
		fmt.Fprintf(w, "%-10d %-20s %-10s %s\n", row.Quantity, row.PartNumber, row.Revision, row.Description)
	}
}

// PrintValidation writes hierarchy diagnostics for one source
func PrintValidation(w io.Writer, source string, result *hierarchy_validator.ValidationResult) {
	if !result.HasWarnings() {
		fmt.Fprintf(w, "✅ %s: no hierarchy warnings\n", source)
		return
	}
	fmt.Fprintf(w, "⚠️  %s:\n", source)
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  - %s\n", warning)
	}
}

// WriteJSON writes the results as indented JSON
func WriteJSON(w io.Writer, results []*dto.ReportResult) error {
	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
