package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// Part builds a part row
func Part(code string, qty int64, partNumber string) entities.Row {
	return entities.Row{
		Code:       entities.ItemCode(code),
		Quantity:   decimal.NewFromInt(qty),
		PartNumber: entities.PartNumber(partNumber),
		Type:       entities.PartType,
		TypeLabel:  "Part",
	}
}

// Assembly builds an assembly row
func Assembly(code string, qty int64, partNumber string) entities.Row {
	return entities.Row{
		Code:       entities.ItemCode(code),
		Quantity:   decimal.NewFromInt(qty),
		PartNumber: entities.PartNumber(partNumber),
		Type:       entities.AssemblyType,
		TypeLabel:  "Assembly",
	}
}

// WithMetadata returns the row with revision and description set
func WithMetadata(row entities.Row, revision, description string) entities.Row {
	row.Revision = revision
	row.Description = description
	return row
}

// RawRecord builds a raw record of text cells in canonical column order:
// item, quantity, part number, type, nomenclature, revision, description.
// Missing trailing values are empty.
func RawRecord(values ...string) entities.RawRecord {
	record := make(entities.RawRecord, len(entities.CanonicalColumns))
	for i, col := range entities.CanonicalColumns {
		if i < len(values) {
			record[col] = entities.Text(values[i])
		} else {
			record[col] = entities.Empty()
		}
	}
	return record
}

// BuildGearboxTestData builds a three level parts list declared out of order:
//
//	1     GEARBOX     assembly x2
//	1.1   HOUSING     part     x1
//	1.2   SHAFT_ASSY  assembly x3
//	1.2.1 SHAFT       part     x1
//	1.2.2 BEARING     part     x2
//	1.10  BOLT_M8     part     x12
//	2     BEARING     part     x4
//	3     COVER_ASSY  assembly x1 (no children)
func BuildGearboxTestData() entities.Table {
	return entities.Table{
		Part("1.10", 12, "BOLT_M8"),
		WithMetadata(Part("2", 4, "BEARING"), "", ""),
		Assembly("1", 2, "GEARBOX"),
		Assembly("1.2", 3, "SHAFT_ASSY"),
		WithMetadata(Part("1.2.2", 2, "BEARING"), "3", "Deep groove bearing 6204"),
		WithMetadata(Part("1.1", 1, "HOUSING"), "B", "Cast housing"),
		Part("1.2.1", 1, "SHAFT"),
		Assembly("3", 1, "COVER_ASSY"),
	}
}
