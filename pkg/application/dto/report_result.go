package dto

import (
	"time"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// ReportResult contains the complete output of one report generation
type ReportResult struct {
	RunID       string        `json:"runId"`
	Source      string        `json:"source,omitempty"`
	Title       string        `json:"title"`
	Sections    []Section     `json:"sections"`
	Recap       *Recap        `json:"recap"`
	Stats       Stats         `json:"stats"`
	Warnings    []string      `json:"warnings,omitempty"`
	RowsWritten int           `json:"rowsWritten"`
	Duration    time.Duration `json:"duration"`
}

// Section is one titled table of the report, in emission order
type Section struct {
	Title    string            `json:"title"`
	Code     entities.ItemCode `json:"code,omitempty"` // empty for the top-level table
	Level    int               `json:"level"`
	StartRow int               `json:"startRow"`
	Rows     []SectionRow      `json:"rows"`
}

// SectionRow is a row as listed in a section
type SectionRow struct {
	Code         entities.ItemCode   `json:"item"`
	Quantity     string              `json:"quantity"`
	PartNumber   entities.PartNumber `json:"partNumber"`
	Type         string              `json:"type"`
	Nomenclature string              `json:"nomenclature,omitempty"`
	Revision     string              `json:"revision,omitempty"`
	Description  string              `json:"description,omitempty"`
}

// Recap summarizes the parts consumed by the whole tree
type Recap struct {
	DistinctParts int        `json:"distinctParts"`
	TotalParts    int64      `json:"totalParts"`
	Rows          []RecapRow `json:"rows"`
}

// RecapRow is one part number of the recapitulation
type RecapRow struct {
	Quantity    int64               `json:"quantity"`
	PartNumber  entities.PartNumber `json:"partNumber"`
	Revision    string              `json:"revision"`
	Description string              `json:"description"`
}

// Stats reports how the input was read
type Stats struct {
	RecordsRead       int `json:"recordsRead"`
	Rows              int `json:"rows"`
	SkippedEmptyCode  int `json:"skippedEmptyCode"`
	CoercedQuantities int `json:"coercedQuantities"`
	Assemblies        int `json:"assemblies"`
	LeafParts         int `json:"leafParts"`
	MaxDepth          int `json:"maxDepth"`
}

// NewSectionRow copies the display fields of a row
func NewSectionRow(row entities.Row) SectionRow {
	return SectionRow{
		Code:         row.Code,
		Quantity:     row.Value(entities.QuantityColumn),
		PartNumber:   row.PartNumber,
		Type:         row.Value(entities.TypeColumn),
		Nomenclature: row.Nomenclature,
		Revision:     row.Revision,
		Description:  row.Description,
	}
}
