package services

import (
	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// DirectChildren returns the rows exactly one level below parent, in natural
// order. The parent code does not need to exist as a row.
func DirectChildren(table entities.Table, parent entities.ItemCode) entities.Table {
	children := entities.Table{}
	for _, row := range table {
		if row.Code.IsDirectChildOf(parent) {
			children = append(children, row)
		}
	}
	return SortByNaturalKey(children)
}

// IsLeaf reports whether no row of the full table descends from code
func IsLeaf(table entities.Table, code entities.ItemCode) bool {
	for _, row := range table {
		if row.Code.IsDescendantOf(code) {
			return false
		}
	}
	return true
}

// TopLevel returns the rows whose code is digits only, in natural order
func TopLevel(table entities.Table) entities.Table {
	top := entities.Table{}
	for _, row := range table {
		if row.Code.IsTopLevel() {
			top = append(top, row)
		}
	}
	return SortByNaturalKey(top)
}

// Hierarchy is an index over a table built once per report. It answers the
// same questions as DirectChildren and IsLeaf without rescanning the table.
type Hierarchy struct {
	table       entities.Table
	children    map[entities.ItemCode]entities.Table
	nonLeaf     map[entities.ItemCode]bool
	occurrences map[entities.ItemCode]int
	top         entities.Table
}

// NewHierarchy indexes the table. The table must not be mutated afterwards.
func NewHierarchy(table entities.Table) *Hierarchy {
	h := &Hierarchy{
		table:       table,
		children:    make(map[entities.ItemCode]entities.Table),
		nonLeaf:     make(map[entities.ItemCode]bool),
		occurrences: make(map[entities.ItemCode]int),
	}

	sorted := SortByNaturalKey(table)
	for _, row := range sorted {
		h.occurrences[row.Code]++
		if row.Code.IsTopLevel() {
			h.top = append(h.top, row)
		}
		if parent, ok := row.Code.Parent(); ok {
			// sorted input keeps every children list in natural order
			h.children[parent] = append(h.children[parent], row)
		}
		for _, ancestor := range row.Code.Ancestors() {
			h.nonLeaf[ancestor] = true
		}
	}
	return h
}

// Table returns the indexed table in source order
func (h *Hierarchy) Table() entities.Table {
	return h.table
}

// TopLevel returns the top-level rows in natural order
func (h *Hierarchy) TopLevel() entities.Table {
	return append(entities.Table{}, h.top...)
}

// DirectChildren returns the children of parent in natural order
func (h *Hierarchy) DirectChildren(parent entities.ItemCode) entities.Table {
	return append(entities.Table{}, h.children[parent]...)
}

// IsLeaf reports whether no row descends from code
func (h *Hierarchy) IsLeaf(code entities.ItemCode) bool {
	return !h.nonLeaf[code]
}

// Contains reports whether at least one row carries the code
func (h *Hierarchy) Contains(code entities.ItemCode) bool {
	return h.occurrences[code] > 0
}

// Occurrences returns how many rows carry the code
func (h *Hierarchy) Occurrences(code entities.ItemCode) int {
	return h.occurrences[code]
}

// MaxDepth returns the deepest code depth in the table
func (h *Hierarchy) MaxDepth() int {
	depth := 0
	for _, row := range h.table {
		if d := row.Code.Depth(); d > depth {
			depth = d
		}
	}
	return depth
}
