package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/domain/repositories"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/columns"
)

// Loader handles loading parts lists from Excel workbooks
type Loader struct {
	mapper *columns.Mapper
	sheet  string
}

// Verify interface compliance
var _ repositories.TableSource = (*Loader)(nil)

// NewLoader creates a new workbook loader. An empty sheet name reads the
// first sheet of the workbook.
func NewLoader(mapper *columns.Mapper, sheet string) *Loader {
	return &Loader{mapper: mapper, sheet: sheet}
}

// Load reads the parts list sheet of a workbook. The first row is the header.
func (l *Loader) Load(filename string) ([]entities.RawRecord, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", filename)
		}
		sheet = sheets[0]
	}

	// raw values keep "4.10" from being displayed through a number format
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, filename, err)
	}
	if len(rows) == 0 {
		return []entities.RawRecord{}, nil
	}

	return l.mapper.Records(rows[0], rows[1:]), nil
}
