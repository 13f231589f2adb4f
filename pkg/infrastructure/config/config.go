package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// EnvConfigFile names a configuration file used when none is given explicitly
const EnvConfigFile = "BOMTREE_CONFIG"

//go:embed default.yaml
var defaultYAML []byte

// Config is the report configuration. It replaces any process-wide state:
// every report generation receives its own copy.
type Config struct {
	Title         string              `yaml:"title"`
	Language      string              `yaml:"language"`
	ForkliftLabel string              `yaml:"forklift_label"`
	Recap         bool                `yaml:"recap"`
	Columns       []string            `yaml:"columns"`
	ColumnAliases map[string][]string `yaml:"column_aliases"`
	Input         InputConfig         `yaml:"input"`
	Output        OutputConfig        `yaml:"output"`
}

// InputConfig controls how sources are read
type InputConfig struct {
	Sheet        string `yaml:"sheet"`
	CSVDelimiter string `yaml:"csv_delimiter"`
}

// OutputConfig controls how reports are written
type OutputConfig struct {
	Format string `yaml:"format"`
	Sheet  string `yaml:"sheet"`
}

// Default returns the embedded configuration
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default configuration: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with filename. An empty filename falls
// back to the file named by BOMTREE_CONFIG, then to the defaults alone.
func Load(filename string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if filename == "" {
		filename = strings.TrimSpace(os.Getenv(EnvConfigFile))
	}
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks that column names are canonical
func (c *Config) Validate() error {
	for _, name := range c.Columns {
		if _, ok := entities.ParseColumn(name); !ok {
			return fmt.Errorf("unknown column %q", name)
		}
	}
	for name := range c.ColumnAliases {
		if _, ok := entities.ParseColumn(name); !ok {
			return fmt.Errorf("aliases given for unknown column %q", name)
		}
	}
	if len([]rune(c.Input.CSVDelimiter)) > 1 {
		return fmt.Errorf("csv_delimiter must be a single character, got %q", c.Input.CSVDelimiter)
	}
	return nil
}

// ReportColumns returns the configured section columns
func (c *Config) ReportColumns() []entities.Column {
	columns := make([]entities.Column, 0, len(c.Columns))
	for _, name := range c.Columns {
		if col, ok := entities.ParseColumn(name); ok {
			columns = append(columns, col)
		}
	}
	return columns
}

// Aliases returns the header aliases keyed by canonical column
func (c *Config) Aliases() map[entities.Column][]string {
	aliases := make(map[entities.Column][]string, len(c.ColumnAliases))
	for name, names := range c.ColumnAliases {
		if col, ok := entities.ParseColumn(name); ok {
			aliases[col] = append(aliases[col], names...)
		}
	}
	return aliases
}

// Delimiter returns the CSV delimiter, ',' when unset
func (c *Config) Delimiter() rune {
	runes := []rune(c.Input.CSVDelimiter)
	if len(runes) == 0 {
		return ','
	}
	return runes[0]
}
