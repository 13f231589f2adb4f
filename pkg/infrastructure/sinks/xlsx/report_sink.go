package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/bomtree/pkg/application/services/report"
)

// DefaultSheet is the worksheet the report is written to
const DefaultSheet = "BOM"

// ReportSink writes the report into a single worksheet. Report rows are
// zero based; worksheet rows start at 1.
type ReportSink struct {
	file        *excelize.File
	filename    string
	sheet       string
	titleStyle  int
	headerStyle int
	nextRow     int
}

// Verify interface compliance
var _ report.Sink = (*ReportSink)(nil)

// NewReportSink prepares a workbook that Close saves to filename
func NewReportSink(filename, sheet string) (*ReportSink, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name worksheet %q: %w", sheet, err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	return &ReportSink{
		file:        f,
		filename:    filename,
		sheet:       sheet,
		titleStyle:  titleStyle,
		headerStyle: headerStyle,
	}, nil
}

func (s *ReportSink) claim(row, height int) error {
	if row < s.nextRow {
		return fmt.Errorf("write at row %d overlaps rows already written up to %d", row, s.nextRow-1)
	}
	s.nextRow = row + height
	return nil
}

func cellName(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col, row+1)
}

// WriteTitle writes a bold title in the first column
func (s *ReportSink) WriteTitle(row int, title string) error {
	if err := s.claim(row, 1); err != nil {
		return err
	}
	cell, err := cellName(1, row)
	if err != nil {
		return err
	}
	if err := s.file.SetCellValue(s.sheet, cell, title); err != nil {
		return err
	}
	return s.file.SetCellStyle(s.sheet, cell, cell, s.titleStyle)
}

// WriteNote writes plain text in the first column
func (s *ReportSink) WriteNote(row int, text string) error {
	if err := s.claim(row, 1); err != nil {
		return err
	}
	cell, err := cellName(1, row)
	if err != nil {
		return err
	}
	return s.file.SetCellValue(s.sheet, cell, text)
}

// WriteTable writes a styled header followed by the records
func (s *ReportSink) WriteTable(row int, header []string, records [][]string) error {
	if err := s.claim(row, 1+len(records)); err != nil {
		return err
	}

	start, err := cellName(1, row)
	if err != nil {
		return err
	}
	if err := s.file.SetSheetRow(s.sheet, start, &header); err != nil {
		return err
	}
	end, err := cellName(len(header), row)
	if err != nil {
		return err
	}
	if err := s.file.SetCellStyle(s.sheet, start, end, s.headerStyle); err != nil {
		return err
	}

	for i, record := range records {
		cell, err := cellName(1, row+1+i)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(record))
		for j, v := range record {
			values[j] = v
		}
		if err := s.file.SetSheetRow(s.sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// Close saves the workbook
func (s *ReportSink) Close() error {
	defer s.file.Close()
	if err := s.file.SaveAs(s.filename); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", s.filename, err)
	}
	return nil
}
