package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/repositories"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/columns"
)

// Loader handles loading parts lists from CSV files
type Loader struct {
	mapper *columns.Mapper
	comma  rune
}

// Verify interface compliance
var _ repositories.TableSource = (*Loader)(nil)

// NewLoader creates a new CSV loader. A zero comma means ','.
func NewLoader(mapper *columns.Mapper, comma rune) *Loader {
	if comma == 0 {
		comma = ','
	}
	return &Loader{mapper: mapper, comma: comma}
}

// Load reads a parts list from a CSV file
func (l *Loader) Load(filename string) ([]entities.RawRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts list %s: %w", filename, err)
	}
	defer file.Close()

	records, err := l.Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read parts list %s: %w", filename, err)
	}
	return records, nil
}

// Read reads a parts list from CSV content. The first line is the header.
func (l *Loader) Read(r io.Reader) ([]entities.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return []entities.RawRecord{}, nil
	}

	return l.mapper.Records(rows[0], rows[1:]), nil
}
