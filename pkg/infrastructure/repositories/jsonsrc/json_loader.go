package jsonsrc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/repositories"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/columns"
)

// Loader reads parts lists exported as a JSON array of objects, one object
// per row keyed by column header
type Loader struct {
	mapper *columns.Mapper
}

// Verify interface compliance
var _ repositories.TableSource = (*Loader)(nil)

// NewLoader creates a new JSON loader
func NewLoader(mapper *columns.Mapper) *Loader {
	return &Loader{mapper: mapper}
}

// Load reads a parts list from a JSON file
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

// Read decodes the JSON array. Numbers, strings and nulls keep their kind;
// any other value is rendered as text.
func (l *Loader) Read(r io.Reader) ([]entities.RawRecord, error) {
	var objects []map[string]interface{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&objects); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	records := make([]entities.RawRecord, 0, len(objects))
	for _, object := range objects {
		record := make(entities.RawRecord, len(entities.CanonicalColumns))
		for _, col := range entities.CanonicalColumns {
			record[col] = entities.Empty()
		}
		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		taken := make(map[entities.Column]bool)
		for _, key := range keys {
			col, ok := l.mapper.Column(key)
			if !ok || taken[col] {
				continue
			}
			taken[col] = true
			record[col] = toCell(object[key])
		}
		records = append(records, record)
	}
	return records, nil
}

func toCell(value interface{}) entities.Cell {
	switch v := value.(type) {
	case nil:
		return entities.Empty()
	case float64:
		return entities.Number(v)
	case string:
		return entities.Text(v)
	default:
		return entities.Text(fmt.Sprint(v))
	}
}
