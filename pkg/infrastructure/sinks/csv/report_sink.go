package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/bomtree/pkg/application/services/report"
)

// ReportSink writes the report as CSV, one CSV record per report row. Gaps
// between directives become empty records.
type ReportSink struct {
	writer  *csv.Writer
	closer  io.Closer
	nextRow int
}

// Verify interface compliance
var _ report.Sink = (*ReportSink)(nil)

// NewReportSink writes to w. Close flushes but does not close w.
func NewReportSink(w io.Writer) *ReportSink {
	return &ReportSink{writer: csv.NewWriter(w)}
}

// CreateReportSink creates filename and writes the report into it
func CreateReportSink(filename string) (*ReportSink, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file %s: %w", filename, err)
	}
	sink := NewReportSink(file)
	sink.closer = file
	return sink, nil
}

func (s *ReportSink) seek(row int) error {
	if row < s.nextRow {
		return fmt.Errorf("write at row %d overlaps rows already written up to %d", row, s.nextRow-1)
	}
	for s.nextRow < row {
		if err := s.writer.Write([]string{}); err != nil {
			return err
		}
		s.nextRow++
	}
	return nil
}

func (s *ReportSink) writeRecord(record []string) error {
	if err := s.writer.Write(record); err != nil {
		return err
	}
	s.nextRow++
	return nil
}

// WriteTitle writes the title in the first column
func (s *ReportSink) WriteTitle(row int, title string) error {
	if err := s.seek(row); err != nil {
		return err
	}
	return s.writeRecord([]string{title})
}

// WriteNote writes the text in the first column
func (s *ReportSink) WriteNote(row int, text string) error {
	if err := s.seek(row); err != nil {
		return err
	}
	return s.writeRecord([]string{text})
}

// WriteTable writes the header and records
func (s *ReportSink) WriteTable(row int, header []string, records [][]string) error {
	if err := s.seek(row); err != nil {
		return err
	}
	if err := s.writeRecord(header); err != nil {
		return err
	}
	for _, record := range records {
		if err := s.writeRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered records and closes the file when the sink owns it
func (s *ReportSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV report: %w", err)
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
