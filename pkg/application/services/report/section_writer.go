package report

import (
	"fmt"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// SectionSpacing is the number of blank rows after every section
const SectionSpacing = 2

// SectionWriter writes titled tables to a sink and tracks the extent they use
type SectionWriter struct {
	placeholder string
}

// NewSectionWriter creates a section writer using placeholder for empty tables
func NewSectionWriter(placeholder string) *SectionWriter {
	return &SectionWriter{placeholder: placeholder}
}

// WriteSection writes title at cursor, then the rows restricted to columns in
// their current order, or the placeholder when there are none. It returns the
// first free row after the section.
func (w *SectionWriter) WriteSection(
	sink Sink,
	title string,
	table entities.Table,
	cursor int,
	columns []entities.Column,
) (int, error) {
	if err := sink.WriteTitle(cursor, title); err != nil {
		return cursor, fmt.Errorf("failed to write title of section %q: %w", title, err)
	}
	cursor++

	if len(table) == 0 {
		if err := sink.WriteNote(cursor, w.placeholder); err != nil {
			return cursor, fmt.Errorf("failed to write empty section %q: %w", title, err)
		}
		return cursor + 1 + SectionSpacing, nil
	}

	if err := sink.WriteTable(cursor, Header(columns), table.Project(columns)); err != nil {
		return cursor, fmt.Errorf("failed to write table of section %q: %w", title, err)
	}
	return cursor + 1 + len(table) + SectionSpacing, nil
}

// Header renders column names
func Header(columns []entities.Column) []string {
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = string(col)
	}
	return header
}
