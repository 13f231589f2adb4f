package explosion

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/services"
)

// Result holds exploded consumption. Values stay exact; rounding is left to
// presentation through Round.
type Result struct {
	TotalExact decimal.Decimal
	PerPart    map[entities.PartNumber]decimal.Decimal
	LeafParts  int
}

// Total returns the rounded total consumption
func (r *Result) Total() int64 {
	return Round(r.TotalExact)
}

// Quantity returns the rounded consumption of one part number, 0 if absent
func (r *Result) Quantity(pn entities.PartNumber) int64 {
	qty, ok := r.PerPart[pn]
	if !ok {
		return 0
	}
	return Round(qty)
}

// Round rounds half to even. Every presented count goes through here.
func Round(d decimal.Decimal) int64 {
	return d.RoundBank(0).IntPart()
}

// Explode computes the consumption of every leaf part row: its own quantity
// multiplied by the quantity of each strict ancestor. Ancestors missing from
// the table multiply by one.
func Explode(table entities.Table) *Result {
	return ExplodeWithHierarchy(services.NewHierarchy(table))
}

// ExplodeWithHierarchy is Explode over an already built index
func ExplodeWithHierarchy(hierarchy *services.Hierarchy) *Result {
	table := hierarchy.Table()

	// duplicate codes are tolerated by summation
	quantityByCode := make(map[entities.ItemCode]decimal.Decimal, len(table))
	for _, row := range table {
		quantityByCode[row.Code] = quantityByCode[row.Code].Add(row.Quantity)
	}

	result := &Result{
		TotalExact: decimal.Zero,
		PerPart:    make(map[entities.PartNumber]decimal.Decimal),
	}

	for _, row := range table {
		if !row.IsPart() || !hierarchy.IsLeaf(row.Code) {
			continue
		}

		contribution := row.Quantity.Mul(Multiplier(row.Code, quantityByCode))
		result.TotalExact = result.TotalExact.Add(contribution)
		result.PerPart[row.PartNumber] = result.PerPart[row.PartNumber].Add(contribution)
		result.LeafParts++
	}

	return result
}

// Multiplier is the product of the quantities of every strict ancestor of code
func Multiplier(code entities.ItemCode, quantityByCode map[entities.ItemCode]decimal.Decimal) decimal.Decimal {
	multiplier := decimal.NewFromInt(1)
	for _, ancestor := range code.Ancestors() {
		if qty, ok := quantityByCode[ancestor]; ok {
			multiplier = multiplier.Mul(qty)
		}
	}
	return multiplier
}
