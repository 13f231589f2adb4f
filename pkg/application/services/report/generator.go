package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/bomtree/pkg/application/dto"
	"github.com/vsinha/bomtree/pkg/application/services/explosion"
	"github.com/vsinha/bomtree/pkg/application/services/recap"
	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/services"
	"github.com/vsinha/bomtree/pkg/domain/services/hierarchy_validator"
	"github.com/vsinha/bomtree/pkg/infrastructure/logger"
)

// DefaultColumns are written for the top-level table and every section
var DefaultColumns = []entities.Column{
	entities.ItemColumn,
	entities.QuantityColumn,
	entities.PartNumberColumn,
	entities.TypeColumn,
	entities.NomenclatureColumn,
	entities.RevisionColumn,
	entities.DescriptionColumn,
}

// RecapColumns is the header of the recapitulation table
var RecapColumns = []string{
	string(entities.QuantityColumn),
	string(entities.PartNumberColumn),
	string(entities.RevisionColumn),
	string(entities.DescriptionColumn),
}

// Options carries everything a single report generation depends on
type Options struct {
	Title         string
	Source        string
	Language      string
	ForkliftLabel string
	Columns       []entities.Column
	SkipRecap     bool
}

// Generator produces a leveled BOM report from a normalized table
type Generator struct {
	log *logger.Logger
}

// NewGenerator creates a report generator
func NewGenerator(log *logger.Logger) *Generator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Generator{log: log}
}

// Generate writes the header, the tree sections and the recapitulation to
// sink. Only sink failures are returned; partial output is left as written.
func (g *Generator) Generate(
	table entities.Table,
	stats services.NormalizationStats,
	sink Sink,
	opts Options,
) (*dto.ReportResult, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	log := g.log.With("run_id", runID, "source", opts.Source)

	labels := LabelsFor(opts.Language)
	columns := opts.Columns
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	if stats.SkippedEmptyCode > 0 || stats.CoercedQuantities > 0 {
		log.Debug("input repaired",
			"skipped_empty_code", stats.SkippedEmptyCode,
			"coerced_quantities", stats.CoercedQuantities,
			"unknown_types", stats.UnknownTypes,
		)
	}

	hierarchy := services.NewHierarchy(table)
	exploded := explosion.ExplodeWithHierarchy(hierarchy)

	validation := hierarchy_validator.ValidateHierarchy(table)
	for _, warning := range validation.Warnings {
		log.Warn("hierarchy warning", "detail", warning)
	}

	cursor := 0
	if opts.ForkliftLabel != "" {
		if err := sink.WriteNote(cursor, fmt.Sprintf("%s: %s", labels.Forklift, opts.ForkliftLabel)); err != nil {
			return nil, fmt.Errorf("failed to write report header: %w", err)
		}
		cursor += 1 + SectionSpacing
	}

	writer := NewSectionWriter(labels.NoRows)
	emitter := NewTreeEmitter(writer, columns)

	cursor, sections, err := emitter.Emit(hierarchy, sink, opts.Title, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to write BOM sections: %w", err)
	}
	log.Debug("BOM sections written", "sections", len(sections), "next_row", cursor)

	var summary *dto.Recap
	if !opts.SkipRecap {
		summary = recap.BuildWithHierarchy(hierarchy, exploded)
		cursor, err = WriteRecap(sink, summary, labels, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to write recapitulation: %w", err)
		}
	}

	assemblies := 0
	for _, row := range table {
		if row.IsAssembly() {
			assemblies++
		}
	}

	result := &dto.ReportResult{
		RunID:    runID,
		Source:   opts.Source,
		Title:    opts.Title,
		Sections: sections,
		Recap:    summary,
		Stats: dto.Stats{
			RecordsRead:       stats.RecordsRead,
			Rows:              len(table),
			SkippedEmptyCode:  stats.SkippedEmptyCode,
			CoercedQuantities: stats.CoercedQuantities,
			Assemblies:        assemblies,
			LeafParts:         exploded.LeafParts,
			MaxDepth:          hierarchy.MaxDepth(),
		},
		Warnings:    validation.Warnings,
		RowsWritten: cursor,
		Duration:    time.Since(startTime),
	}

	log.Info("report generated",
		"sections", len(sections),
		"rows", len(table),
		"total_parts", exploded.Total(),
		"duration", result.Duration,
	)
	return result, nil
}

// WriteRecap writes the recapitulation block at cursor and returns the next free row
func WriteRecap(sink Sink, summary *dto.Recap, labels Labels, cursor int) (int, error) {
	if err := sink.WriteTitle(cursor, labels.Recap); err != nil {
		return cursor, err
	}
	cursor++

	if err := sink.WriteNote(cursor, fmt.Sprintf("%s: %d", labels.DistinctParts, summary.DistinctParts)); err != nil {
		return cursor, err
	}
	cursor++
	if err := sink.WriteNote(cursor, fmt.Sprintf("%s: %d", labels.TotalParts, summary.TotalParts)); err != nil {
		return cursor, err
	}
	cursor++

	if len(summary.Rows) == 0 {
		if err := sink.WriteNote(cursor, labels.NoRows); err != nil {
			return cursor, err
		}
		return cursor + 1 + SectionSpacing, nil
	}

	records := make([][]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		records = append(records, []string{
			fmt.Sprintf("%d", row.Quantity),
			string(row.PartNumber),
			row.Revision,
			row.Description,
		})
	}
	if err := sink.WriteTable(cursor, RecapColumns, records); err != nil {
		return cursor, err
	}
	return cursor + 1 + len(records) + SectionSpacing, nil
}
