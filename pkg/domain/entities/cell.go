package entities

import (
	"strconv"
	"strings"
)

// Column is a canonical column name of the parts list
type Column string

const (
	ItemColumn         Column = "Item"
	QuantityColumn     Column = "Quantity"
	PartNumberColumn   Column = "Part Number"
	TypeColumn         Column = "Type"
	NomenclatureColumn Column = "Nomenclature"
	RevisionColumn     Column = "Revision"
	DescriptionColumn  Column = "Product Description"
)

// CanonicalColumns lists every canonical column in source order
var CanonicalColumns = []Column{
	ItemColumn,
	QuantityColumn,
	PartNumberColumn,
	TypeColumn,
	NomenclatureColumn,
	RevisionColumn,
	DescriptionColumn,
}

// ParseColumn matches a canonical column name, ignoring case and surrounding space
func ParseColumn(s string) (Column, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, col := range CanonicalColumns {
		if strings.ToLower(string(col)) == needle {
			return col, true
		}
	}
	return "", false
}

// CellKind tags the dynamic type of a raw cell value
type CellKind int

const (
	EmptyCell CellKind = iota
	NumberCell
	TextCell
)

// Cell is a raw value read from a tabular source before normalization
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// Empty returns an empty cell
func Empty() Cell {
	return Cell{Kind: EmptyCell}
}

// Number returns a numeric cell
func Number(v float64) Cell {
	return Cell{Kind: NumberCell, Number: v}
}

// Text returns a text cell. Blank text is treated as empty.
func Text(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Empty()
	}
	return Cell{Kind: TextCell, Text: s}
}

// String renders the cell as trimmed text; integral numbers lose their ".0"
func (c Cell) String() string {
	switch c.Kind {
	case NumberCell:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case TextCell:
		return strings.TrimSpace(c.Text)
	default:
		return ""
	}
}

// RawRecord is one source row keyed by canonical column
type RawRecord map[Column]Cell

// Get returns the cell for a column, or an empty cell when the column is missing
func (r RawRecord) Get(col Column) Cell {
	if cell, ok := r[col]; ok {
		return cell
	}
	return Empty()
}
