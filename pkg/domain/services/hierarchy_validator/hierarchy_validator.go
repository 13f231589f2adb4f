package hierarchy_validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/services"
)

var numericSegment = regexp.MustCompile(`^\d+$`)

// ValidationResult lists structural oddities of a coded parts list. None of
// them stops a report; they are surfaced as warnings.
type ValidationResult struct {
	DuplicateCodes   []entities.ItemCode
	MalformedCodes   []entities.ItemCode
	OrphanedCodes    []entities.ItemCode // parent code has no row
	UnreachableCodes []entities.ItemCode // never listed in any report section
	UnknownTypes     []entities.ItemCode
	NonLeafParts     []entities.ItemCode // typed part but has descendants
	ConflictingParts []entities.PartNumber
	Warnings         []string
}

// HasWarnings reports whether anything was found
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ValidateHierarchy inspects the table without modifying it
func ValidateHierarchy(table entities.Table) *ValidationResult {
	result := &ValidationResult{
		Warnings: make([]string, 0),
	}
	hierarchy := services.NewHierarchy(table)

	seen := make(map[entities.ItemCode]bool)
	for _, row := range table {
		code := row.Code

		if seen[code] {
			result.DuplicateCodes = append(result.DuplicateCodes, code)
		}
		seen[code] = true

		if !isWellFormed(code) {
			result.MalformedCodes = append(result.MalformedCodes, code)
		}

		if parent, ok := code.Parent(); ok && !hierarchy.Contains(parent) {
			result.OrphanedCodes = append(result.OrphanedCodes, code)
		}

		if row.Type == entities.OtherType {
			result.UnknownTypes = append(result.UnknownTypes, code)
		}

		if row.IsPart() && !hierarchy.IsLeaf(code) {
			result.NonLeafParts = append(result.NonLeafParts, code)
		}
	}

	result.UnreachableCodes = detectUnreachable(hierarchy)
	result.ConflictingParts = detectConflictingParts(table)

	if len(result.DuplicateCodes) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("duplicate item codes: %s", joinCodes(result.DuplicateCodes)))
	}
	if len(result.MalformedCodes) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("item codes with non-numeric segments: %s", joinCodes(result.MalformedCodes)))
	}
	if len(result.OrphanedCodes) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("item codes without a parent row: %s", joinCodes(result.OrphanedCodes)))
	}
	if len(result.UnreachableCodes) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("rows not listed in any section: %s", joinCodes(result.UnreachableCodes)))
	}
	if len(result.UnknownTypes) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("rows with unrecognized type: %s", joinCodes(result.UnknownTypes)))
	}
	if len(result.NonLeafParts) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("part rows with children (excluded from totals): %s", joinCodes(result.NonLeafParts)))
	}
	if len(result.ConflictingParts) > 0 {
		pns := make([]string, len(result.ConflictingParts))
		for i, pn := range result.ConflictingParts {
			pns[i] = string(pn)
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("part numbers with conflicting revision or description: %s", strings.Join(pns, ", ")))
	}

	return result
}

func isWellFormed(code entities.ItemCode) bool {
	for _, segment := range code.Segments() {
		if !numericSegment.MatchString(segment) {
			return false
		}
	}
	return true
}

// detectUnreachable walks the same path as section emission: top-level rows,
// then the children of every reached assembly
func detectUnreachable(hierarchy *services.Hierarchy) []entities.ItemCode {
	reached := make(map[entities.ItemCode]bool)
	queue := hierarchy.TopLevel()
	for len(queue) > 0 {
		row := queue[0]
		queue = queue[1:]
		if reached[row.Code] {
			continue
		}
		reached[row.Code] = true
		if row.IsAssembly() {
			queue = append(queue, hierarchy.DirectChildren(row.Code)...)
		}
	}

	var unreachable []entities.ItemCode
	for _, row := range services.SortByNaturalKey(hierarchy.Table()) {
		if !reached[row.Code] {
			unreachable = append(unreachable, row.Code)
		}
	}
	return unreachable
}

func detectConflictingParts(table entities.Table) []entities.PartNumber {
	type metadata struct {
		revision    string
		description string
	}
	first := make(map[entities.PartNumber]metadata)
	flagged := make(map[entities.PartNumber]bool)
	var conflicting []entities.PartNumber

	for _, row := range table {
		if !row.IsPart() {
			continue
		}
		current := metadata{revision: row.Revision, description: row.Description}
		existing, ok := first[row.PartNumber]
		if !ok {
			first[row.PartNumber] = current
			continue
		}
		if existing != current && !flagged[row.PartNumber] {
			flagged[row.PartNumber] = true
			conflicting = append(conflicting, row.PartNumber)
		}
	}
	return conflicting
}

func joinCodes(codes []entities.ItemCode) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = string(code)
	}
	return strings.Join(parts, ", ")
}
