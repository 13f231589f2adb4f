package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PartNumber represents a part identifier as printed in the parts list
type PartNumber string

// ItemType classifies a row of the parts list
type ItemType int

const (
	OtherType ItemType = iota
	PartType
	AssemblyType
)

// String method for ItemType enum
func (t ItemType) String() string {
	switch t {
	case PartType:
		return "Part"
	case AssemblyType:
		return "Assembly"
	default:
		return "Other"
	}
}

// ParseItemType maps a free-form type label to an ItemType.
// Matching is case-insensitive; anything unrecognized is OtherType.
func ParseItemType(s string) ItemType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "part":
		return PartType
	case "assembly":
		return AssemblyType
	default:
		return OtherType
	}
}

// Row represents one normalized record of the parts list
type Row struct {
	Code         ItemCode
	Quantity     decimal.Decimal
	PartNumber   PartNumber
	Type         ItemType
	TypeLabel    string // label as read from the source, kept for display
	Nomenclature string
	Revision     string
	Description  string
}

// IsPart reports whether the row is typed as a part
func (r Row) IsPart() bool {
	return r.Type == PartType
}

// IsAssembly reports whether the row is typed as an assembly
func (r Row) IsAssembly() bool {
	return r.Type == AssemblyType
}

// Value returns the display value of the row for a canonical column
func (r Row) Value(col Column) string {
	switch col {
	case ItemColumn:
		return string(r.Code)
	case QuantityColumn:
		return r.Quantity.String()
	case PartNumberColumn:
		return string(r.PartNumber)
	case TypeColumn:
		if r.TypeLabel != "" {
			return r.TypeLabel
		}
		if r.Type == OtherType {
			return ""
		}
		return r.Type.String()
	case NomenclatureColumn:
		return r.Nomenclature
	case RevisionColumn:
		return r.Revision
	case DescriptionColumn:
		return r.Description
	default:
		return ""
	}
}

// Table is an ordered sequence of rows, in source order unless re-sorted
type Table []Row

// Project returns the table restricted to the given columns, one record per row
func (t Table) Project(columns []Column) [][]string {
	records := make([][]string, 0, len(t))
	for _, row := range t {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row.Value(col)
		}
		records = append(records, record)
	}
	return records
}

// Codes returns the item codes of the table in table order
func (t Table) Codes() []ItemCode {
	codes := make([]ItemCode, len(t))
	for i, row := range t {
		codes[i] = row.Code
	}
	return codes
}
