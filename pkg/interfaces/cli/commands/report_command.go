package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vsinha/bomtree/pkg/application/dto"
	"github.com/vsinha/bomtree/pkg/application/services/recap"
	"github.com/vsinha/bomtree/pkg/application/services/report"
	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/repositories"
	"github.com/vsinha/bomtree/pkg/domain/services"
	"github.com/vsinha/bomtree/pkg/domain/services/hierarchy_validator"
	"github.com/vsinha/bomtree/pkg/infrastructure/config"
	"github.com/vsinha/bomtree/pkg/infrastructure/logger"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/columns"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/jsonsrc"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/xlsx"
	csvsink "github.com/vsinha/bomtree/pkg/infrastructure/sinks/csv"
	"github.com/vsinha/bomtree/pkg/infrastructure/sinks/memory"
	xlsxsink "github.com/vsinha/bomtree/pkg/infrastructure/sinks/xlsx"
	"github.com/vsinha/bomtree/pkg/interfaces/cli/output"
)

// ErrUnsupportedFormat is returned for unknown input or output formats
var ErrUnsupportedFormat = errors.New("unsupported format")

// maxParallelReports bounds how many inputs are processed at once
const maxParallelReports = 4

// Config holds configuration for the report commands. Empty fields fall
// back to the configuration file.
type Config struct {
	Inputs        []string
	OutputDir     string
	Format        string
	ConfigFile    string
	Title         string
	Language      string
	ForkliftLabel string
	Sheet         string
	NoRecap       bool
	Verbose       bool
	LogMode       string
	Stdout        io.Writer
}

// ReportCommand handles loading parts lists and producing reports
type ReportCommand struct {
	config Config
	stdout io.Writer
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config) *ReportCommand {
	stdout := config.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &ReportCommand{
		config: config,
		stdout: stdout,
	}
}

// loadedTable is one normalized input
type loadedTable struct {
	source string
	table  entities.Table
	stats  services.NormalizationStats
}

// Generate writes one report per input
func (c *ReportCommand) Generate(ctx context.Context) error {
	cfg, log, err := c.prepare()
	if err != nil {
		return err
	}
	defer log.Sync()

	format := strings.ToLower(cfg.Output.Format)
	switch format {
	case "xlsx", "csv", "text", "json":
	default:
		return fmt.Errorf("%w: output %q (expected xlsx, csv, text or json)", ErrUnsupportedFormat, cfg.Output.Format)
	}

	if c.config.OutputDir != "" {
		if err := os.MkdirAll(c.config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	generator := report.NewGenerator(log)
	results := make([]*dto.ReportResult, len(c.config.Inputs))
	rendered := make([]*memory.ReportSink, len(c.config.Inputs))
	destinations := make([]string, len(c.config.Inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReports)
	for i, input := range c.config.Inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			loaded, err := c.load(cfg, input)
			if err != nil {
				return err
			}
			opts := c.reportOptions(cfg, loaded.source)

			switch format {
			case "text", "json":
				sink := memory.NewReportSink()
				result, err := generator.Generate(loaded.table, loaded.stats, sink, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				results[i], rendered[i] = result, sink
			default:
				destination := c.destination(input, format)
				result, err := c.generateToFile(generator, loaded, opts, cfg, format, destination)
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				results[i], destinations[i] = result, destination
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	switch format {
	case "json":
		return output.WriteJSON(c.stdout, results)
	case "text":
		for _, sink := range rendered {
			if err := sink.Render(c.stdout); err != nil {
				return err
			}
		}
	default:
		for i, result := range results {
			if c.config.Verbose || len(results) > 1 {
				output.PrintSummary(c.stdout, result, destinations[i])
			}
		}
	}
	return nil
}

func (c *ReportCommand) generateToFile(
	generator *report.Generator,
	loaded *loadedTable,
	opts report.Options,
	cfg *config.Config,
	format string,
	destination string,
) (*dto.ReportResult, error) {
	var (
		sink   report.Sink
		closer io.Closer
	)
	switch format {
	case "xlsx":
		s, err := xlsxsink.NewReportSink(destination, cfg.Output.Sheet)
		if err != nil {
			return nil, err
		}
		sink, closer = s, s
	case "csv":
		s, err := csvsink.CreateReportSink(destination)
		if err != nil {
			return nil, err
		}
		sink, closer = s, s
	}

	result, err := generator.Generate(loaded.table, loaded.stats, sink, opts)
	if err != nil {
		closer.Close()
		return nil, err
	}
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return result, nil
}

// Recap prints the recapitulation of every input
func (c *ReportCommand) Recap(ctx context.Context) error {
	cfg, log, err := c.prepare()
	if err != nil {
		return err
	}
	defer log.Sync()

	labels := report.LabelsFor(cfg.Language)
	for _, input := range c.config.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		loaded, err := c.load(cfg, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "📋 %s\n", loaded.source)
		output.PrintRecap(c.stdout, recap.Build(loaded.table), labels)
		fmt.Fprintln(c.stdout)
	}
	return nil
}

// Check prints hierarchy warnings for every input. Warnings never fail the command.
func (c *ReportCommand) Check(ctx context.Context) error {
	cfg, log, err := c.prepare()
	if err != nil {
		return err
	}
	defer log.Sync()

	for _, input := range c.config.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		loaded, err := c.load(cfg, input)
		if err != nil {
			return err
		}
		output.PrintValidation(c.stdout, loaded.source, hierarchy_validator.ValidateHierarchy(loaded.table))
	}
	return nil
}

// prepare validates inputs and builds the effective configuration and logger
func (c *ReportCommand) prepare() (*config.Config, *logger.Logger, error) {
	if err := c.validateInputs(); err != nil {
		return nil, nil, fmt.Errorf("validation error: %w", err)
	}

	cfg, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	c.applyOverrides(cfg)

	log, err := logger.New(c.config.LogMode, c.config.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

// validateInputs validates the command configuration
func (c *ReportCommand) validateInputs() error {
	if len(c.config.Inputs) == 0 {
		return fmt.Errorf("at least one input file is required")
	}
	for _, input := range c.config.Inputs {
		if _, err := os.Stat(input); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", input)
		}
	}
	return nil
}

func (c *ReportCommand) applyOverrides(cfg *config.Config) {
	if c.config.Format != "" {
		cfg.Output.Format = c.config.Format
	}
	if c.config.Title != "" {
		cfg.Title = c.config.Title
	}
	if c.config.Language != "" {
		cfg.Language = c.config.Language
	}
	if c.config.ForkliftLabel != "" {
		cfg.ForkliftLabel = c.config.ForkliftLabel
	}
	if c.config.Sheet != "" {
		cfg.Input.Sheet = c.config.Sheet
	}
	if c.config.NoRecap {
		cfg.Recap = false
	}
}

func (c *ReportCommand) reportOptions(cfg *config.Config, source string) report.Options {
	return report.Options{
		Title:         cfg.Title,
		Source:        source,
		Language:      cfg.Language,
		ForkliftLabel: cfg.ForkliftLabel,
		Columns:       cfg.ReportColumns(),
		SkipRecap:     !cfg.Recap,
	}
}

// load reads and normalizes one input
func (c *ReportCommand) load(cfg *config.Config, input string) (*loadedTable, error) {
	source, err := NewTableSource(cfg, input)
	if err != nil {
		return nil, err
	}
	records, err := source.Load(input)
	if err != nil {
		return nil, err
	}
	table, stats := services.NewNormalizer().Normalize(records)
	return &loadedTable{source: input, table: table, stats: stats}, nil
}

// NewTableSource picks a source by file extension
func NewTableSource(cfg *config.Config, filename string) (repositories.TableSource, error) {
	mapper := columns.NewMapper(cfg.Aliases())
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return csv.NewLoader(mapper, cfg.Delimiter()), nil
	case ".xlsx", ".xlsm":
		return xlsx.NewLoader(mapper, cfg.Input.Sheet), nil
	case ".json":
		return jsonsrc.NewLoader(mapper), nil
	default:
		return nil, fmt.Errorf("%w: input %s (expected .csv, .xlsx or .json)", ErrUnsupportedFormat, filename)
	}
}

// destination is <output dir or input dir>/<input name>_bom.<format>
func (c *ReportCommand) destination(input, format string) string {
	dir := c.config.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"_bom."+format)
}

// RenderText generates the text report of a single table; used by callers
// that already hold a normalized table
func RenderText(table entities.Table, stats services.NormalizationStats, opts report.Options) (string, error) {
	sink := memory.NewReportSink()
	if _, err := report.NewGenerator(nil).Generate(table, stats, sink, opts); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := sink.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
