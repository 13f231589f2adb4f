package report

// Sink receives positioned write directives in increasing row order. Layout
// and file format belong to the sink.
type Sink interface {
	// WriteTitle writes a section title line at row
	WriteTitle(row int, title string) error
	// WriteNote writes a plain text line at row
	WriteNote(row int, text string) error
	// WriteTable writes a header line at row followed by one line per record
	WriteTable(row int, header []string, records [][]string) error
}
