package recap

import (
	"sort"

	"github.com/vsinha/bomtree/pkg/application/dto"
	"github.com/vsinha/bomtree/pkg/application/services/explosion"
	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/services"
)

// Build computes the recapitulation of a table
func Build(table entities.Table) *dto.Recap {
	hierarchy := services.NewHierarchy(table)
	return BuildWithHierarchy(hierarchy, explosion.ExplodeWithHierarchy(hierarchy))
}

// BuildWithHierarchy computes the recapitulation from an index and its explosion.
//
// Distinct parts counts every part row, leaf or not, while the totals only
// include leaf part rows. A part row with children is treated as mis-modeled
// data and contributes to the distinct count only.
func BuildWithHierarchy(hierarchy *services.Hierarchy, exploded *explosion.Result) *dto.Recap {
	table := hierarchy.Table()
	metadata := bestMetadata(table)

	distinct := make(map[entities.PartNumber]bool)
	for _, row := range table {
		if row.IsPart() {
			distinct[row.PartNumber] = true
		}
	}

	order := FirstSeenOrder(hierarchy)
	rows := make([]dto.RecapRow, 0, len(order))
	for _, pn := range order {
		meta := metadata[pn]
		rows = append(rows, dto.RecapRow{
			Quantity:    exploded.Quantity(pn),
			PartNumber:  pn,
			Revision:    meta.Revision,
			Description: meta.Description,
		})
	}

	return &dto.Recap{
		DistinctParts: len(distinct),
		TotalParts:    exploded.Total(),
		Rows:          rows,
	}
}

// FirstSeenOrder lists part numbers in the order a depth-first walk of the
// tree first meets them: top-level rows in natural order, each assembly's
// children visited before its next sibling.
func FirstSeenOrder(hierarchy *services.Hierarchy) []entities.PartNumber {
	seen := make(map[entities.PartNumber]bool)
	var order []entities.PartNumber

	var visit func(rows entities.Table)
	visit = func(rows entities.Table) {
		for _, row := range rows {
			switch row.Type {
			case entities.PartType:
				if !seen[row.PartNumber] {
					seen[row.PartNumber] = true
					order = append(order, row.PartNumber)
				}
			case entities.AssemblyType:
				// depth is bounded by the number of code segments
				visit(hierarchy.DirectChildren(row.Code))
			}
		}
	}
	visit(hierarchy.TopLevel())

	return order
}

// bestMetadata picks, per part number, the part row with a description if
// any, then with a revision; ties keep table order
func bestMetadata(table entities.Table) map[entities.PartNumber]entities.Row {
	parts := make(entities.Table, 0, len(table))
	for _, row := range table {
		if row.IsPart() {
			parts = append(parts, row)
		}
	}

	sort.SliceStable(parts, func(i, j int) bool {
		di, dj := parts[i].Description != "", parts[j].Description != ""
		if di != dj {
			return di
		}
		ri, rj := parts[i].Revision != "", parts[j].Revision != ""
		return ri && !rj
	})

	best := make(map[entities.PartNumber]entities.Row)
	for _, row := range parts {
		if _, ok := best[row.PartNumber]; !ok {
			best[row.PartNumber] = row
		}
	}
	return best
}
