package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// NormalizationStats counts what the normalizer had to repair
type NormalizationStats struct {
	RecordsRead       int
	RowsKept          int
	SkippedEmptyCode  int
	CoercedQuantities int
	UnknownTypes      int
}

// Normalizer turns raw source records into rows. It never fails: malformed
// values fall back to defaults so one bad record cannot abort a report.
type Normalizer struct {
	integralRevision *regexp.Regexp
	decimalComma     *regexp.Regexp
}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{
		integralRevision: regexp.MustCompile(`^(\d+)\.0+$`),
		decimalComma:     regexp.MustCompile(`^[+-]?\d+,\d{1,2}$`),
	}
}

// Normalize converts records in order. Records whose item code is empty
// after trimming are dropped.
func (n *Normalizer) Normalize(records []entities.RawRecord) (entities.Table, NormalizationStats) {
	stats := NormalizationStats{RecordsRead: len(records)}
	table := make(entities.Table, 0, len(records))

	for _, record := range records {
		code := entities.ItemCode(record.Get(entities.ItemColumn).String())
		if code == "" {
			stats.SkippedEmptyCode++
			continue
		}

		quantity, ok := n.CoerceQuantity(record.Get(entities.QuantityColumn))
		if !ok {
			stats.CoercedQuantities++
		}

		typeLabel := record.Get(entities.TypeColumn).String()
		itemType := entities.ParseItemType(typeLabel)
		if itemType == entities.OtherType {
			stats.UnknownTypes++
		}

		table = append(table, entities.Row{
			Code:         code,
			Quantity:     quantity,
			PartNumber:   entities.PartNumber(record.Get(entities.PartNumberColumn).String()),
			Type:         itemType,
			TypeLabel:    typeLabel,
			Nomenclature: record.Get(entities.NomenclatureColumn).String(),
			Revision:     n.NormalizeRevision(record.Get(entities.RevisionColumn)),
			Description:  record.Get(entities.DescriptionColumn).String(),
		})
	}

	stats.RowsKept = len(table)
	return table, stats
}

// CoerceQuantity reads a quantity leniently. The boolean is false when the
// value could not be read and zero was substituted; an empty cell is a
// legitimate zero. A comma is a decimal separator only when followed by one
// or two digits, so "2,5" is 2.5 while "1,000" is unreadable.
func (n *Normalizer) CoerceQuantity(cell entities.Cell) (decimal.Decimal, bool) {
	switch cell.Kind {
	case entities.NumberCell:
		return decimal.NewFromFloat(cell.Number), true
	case entities.TextCell:
		text := strings.TrimSpace(cell.Text)
		if n.decimalComma.MatchString(text) {
			text = strings.Replace(text, ",", ".", 1)
		}
		qty, err := decimal.NewFromString(text)
		if err != nil {
			return decimal.Zero, false
		}
		return qty, true
	default:
		return decimal.Zero, true
	}
}

// NormalizeRevision renders "2.0" as "2"; any other value is only trimmed
func (n *Normalizer) NormalizeRevision(cell entities.Cell) string {
	revision := cell.String()
	if m := n.integralRevision.FindStringSubmatch(revision); m != nil {
		return m[1]
	}
	return revision
}
