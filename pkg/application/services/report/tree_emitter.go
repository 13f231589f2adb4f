package report

import (
	"sort"

	"github.com/vsinha/bomtree/pkg/application/dto"
	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/services"
)

// frontierEntry is an assembly waiting for its section
type frontierEntry struct {
	code       entities.ItemCode
	partNumber entities.PartNumber
	level      int
}

// TreeEmitter writes the top-level table followed by one section per
// assembly, level by level
type TreeEmitter struct {
	writer     *SectionWriter
	comparator *services.ItemCodeComparator
	columns    []entities.Column
}

// NewTreeEmitter creates a tree emitter writing the given columns
func NewTreeEmitter(writer *SectionWriter, columns []entities.Column) *TreeEmitter {
	return &TreeEmitter{
		writer:     writer,
		comparator: services.NewItemCodeComparator(),
		columns:    columns,
	}
}

// Emit performs the breadth-first emission starting at cursor and returns the
// next free row together with the sections in the order they were written.
// Every step descends one code level, so the loop ends after at most the
// maximum depth of the table.
func (e *TreeEmitter) Emit(
	hierarchy *services.Hierarchy,
	sink Sink,
	title string,
	cursor int,
) (int, []dto.Section, error) {
	var sections []dto.Section

	top := hierarchy.TopLevel()
	start := cursor
	cursor, err := e.writer.WriteSection(sink, title, top, cursor, e.columns)
	if err != nil {
		return cursor, sections, err
	}
	sections = append(sections, newSection(title, "", 0, start, top))

	// a duplicated assembly code gets a single section
	emitted := make(map[entities.ItemCode]bool)

	frontier := e.collectAssemblies(top, 1)
	for len(frontier) > 0 {
		var next []frontierEntry
		for _, entry := range frontier {
			if emitted[entry.code] {
				continue
			}
			emitted[entry.code] = true

			children := hierarchy.DirectChildren(entry.code)
			heading := sectionTitle(entry)

			start := cursor
			cursor, err = e.writer.WriteSection(sink, heading, children, cursor, e.columns)
			if err != nil {
				return cursor, sections, err
			}
			sections = append(sections, newSection(heading, entry.code, entry.level, start, children))

			next = append(next, e.collectAssemblies(children, entry.level+1)...)
		}

		sort.SliceStable(next, func(i, j int) bool {
			return e.comparator.CompareCodes(next[i].code, next[j].code) < 0
		})
		frontier = next
	}

	return cursor, sections, nil
}

func (e *TreeEmitter) collectAssemblies(rows entities.Table, level int) []frontierEntry {
	var entries []frontierEntry
	for _, row := range rows {
		if row.IsAssembly() {
			entries = append(entries, frontierEntry{code: row.Code, partNumber: row.PartNumber, level: level})
		}
	}
	return entries
}

// sectionTitle is the assembly part number, or its item code when the part
// number is blank
func sectionTitle(entry frontierEntry) string {
	if entry.partNumber == "" {
		return string(entry.code)
	}
	return string(entry.partNumber)
}

func newSection(title string, code entities.ItemCode, level, startRow int, rows entities.Table) dto.Section {
	sectionRows := make([]dto.SectionRow, 0, len(rows))
	for _, row := range rows {
		sectionRows = append(sectionRows, dto.NewSectionRow(row))
	}
	return dto.Section{
		Title:    title,
		Code:     code,
		Level:    level,
		StartRow: startRow,
		Rows:     sectionRows,
	}
}
