package memory

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vsinha/bomtree/pkg/application/services/report"
)

// DirectiveKind tags a recorded write
type DirectiveKind int

const (
	TitleDirective DirectiveKind = iota
	NoteDirective
	TableDirective
)

// String method for DirectiveKind enum
func (k DirectiveKind) String() string {
	switch k {
	case TitleDirective:
		return "Title"
	case NoteDirective:
		return "Note"
	case TableDirective:
		return "Table"
	default:
		return "Unknown"
	}
}

// Directive is one write received by the sink
type Directive struct {
	Kind    DirectiveKind
	Row     int
	Text    string
	Header  []string
	Records [][]string
}

// ReportSink keeps every directive in memory and rejects writes that would
// overlap rows already written
type ReportSink struct {
	directives []Directive
	nextRow    int
}

// Verify interface compliance
var _ report.Sink = (*ReportSink)(nil)

// NewReportSink creates an empty in-memory sink
func NewReportSink() *ReportSink {
	return &ReportSink{directives: make([]Directive, 0)}
}

func (s *ReportSink) claim(row, height int) error {
	if row < s.nextRow {
		return fmt.Errorf("write at row %d overlaps rows already written up to %d", row, s.nextRow-1)
	}
	s.nextRow = row + height
	return nil
}

// WriteTitle records a title line
func (s *ReportSink) WriteTitle(row int, title string) error {
	if err := s.claim(row, 1); err != nil {
		return err
	}
	s.directives = append(s.directives, Directive{Kind: TitleDirective, Row: row, Text: title})
	return nil
}

// WriteNote records a text line
func (s *ReportSink) WriteNote(row int, text string) error {
	if err := s.claim(row, 1); err != nil {
		return err
	}
	s.directives = append(s.directives, Directive{Kind: NoteDirective, Row: row, Text: text})
	return nil
}

// WriteTable records a header and its records
func (s *ReportSink) WriteTable(row int, header []string, records [][]string) error {
	if err := s.claim(row, 1+len(records)); err != nil {
		return err
	}
	s.directives = append(s.directives, Directive{
		Kind:    TableDirective,
		Row:     row,
		Header:  append([]string(nil), header...),
		Records: copyRecords(records),
	})
	return nil
}

// Directives returns the recorded writes in order
func (s *ReportSink) Directives() []Directive {
	return s.directives
}

// Titles returns the recorded title lines in order
func (s *ReportSink) Titles() []string {
	var titles []string
	for _, d := range s.directives {
		if d.Kind == TitleDirective {
			titles = append(titles, d.Text)
		}
	}
	return titles
}

// Lines lays the directives out as text, one entry per report row. Table
// columns are padded to a common width.
func (s *ReportSink) Lines() []string {
	lines := make([]string, s.nextRow)
	for _, d := range s.directives {
		switch d.Kind {
		case TitleDirective:
			lines[d.Row] = "== " + d.Text + " =="
		case NoteDirective:
			lines[d.Row] = d.Text
		case TableDirective:
			widths := columnWidths(d.Header, d.Records)
			lines[d.Row] = formatLine(d.Header, widths)
			for i, record := range d.Records {
				lines[d.Row+1+i] = formatLine(record, widths)
			}
		}
	}
	return lines
}

// Render writes Lines to w
func (s *ReportSink) Render(w io.Writer) error {
	for _, line := range s.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}
	return nil
}

func columnWidths(header []string, records [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, record := range records {
		for i, cell := range record {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func formatLine(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func copyRecords(records [][]string) [][]string {
	out := make([][]string, len(records))
	for i, record := range records {
		out[i] = append([]string(nil), record...)
	}
	return out
}
