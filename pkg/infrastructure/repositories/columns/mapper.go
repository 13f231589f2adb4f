package columns

import (
	"strings"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// Mapper maps source headers to canonical columns. A header matches its
// canonical name or any configured alias, ignoring case and surrounding space.
type Mapper struct {
	lookup map[string]entities.Column
}

// NewMapper creates a mapper from canonical column name to aliases
func NewMapper(aliases map[entities.Column][]string) *Mapper {
	m := &Mapper{lookup: make(map[string]entities.Column)}
	for _, col := range entities.CanonicalColumns {
		m.lookup[normalizeHeader(string(col))] = col
	}
	for col, names := range aliases {
		for _, name := range names {
			key := normalizeHeader(name)
			if key == "" {
				continue
			}
			m.lookup[key] = col
		}
	}
	return m
}

// Column returns the canonical column for a source header
func (m *Mapper) Column(header string) (entities.Column, bool) {
	col, ok := m.lookup[normalizeHeader(header)]
	return col, ok
}

// MapHeader returns the canonical column of each header position. Unknown
// headers are left out; when two headers map to the same column the first wins.
func (m *Mapper) MapHeader(header []string) map[int]entities.Column {
	positions := make(map[int]entities.Column)
	taken := make(map[entities.Column]bool)
	for i, name := range header {
		col, ok := m.Column(name)
		if !ok || taken[col] {
			continue
		}
		taken[col] = true
		positions[i] = col
	}
	return positions
}

// Missing lists the canonical columns a header does not provide
func (m *Mapper) Missing(header []string) []entities.Column {
	found := make(map[entities.Column]bool)
	for _, col := range m.MapHeader(header) {
		found[col] = true
	}
	var missing []entities.Column
	for _, col := range entities.CanonicalColumns {
		if !found[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// Records converts text rows to raw records using the header positions.
// Short rows leave their trailing columns empty; fully blank rows are skipped.
func (m *Mapper) Records(header []string, rows [][]string) []entities.RawRecord {
	positions := m.MapHeader(header)
	records := make([]entities.RawRecord, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		record := make(entities.RawRecord, len(entities.CanonicalColumns))
		for _, col := range entities.CanonicalColumns {
			record[col] = entities.Empty()
		}
		for i, col := range positions {
			if i < len(row) {
				record[col] = entities.Text(row[i])
			}
		}
		records = append(records, record)
	}
	return records
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
