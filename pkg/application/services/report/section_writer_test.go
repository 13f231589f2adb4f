package report_test

import (
	"reflect"
	"testing"

	"github.com/vsinha/bomtree/pkg/application/services/report"
	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/infrastructure/sinks/memory"
	testhelpers "github.com/vsinha/bomtree/pkg/infrastructure/testing"
)

func TestWriteSection_Extent(t *testing.T) {
	sink := memory.NewReportSink()
	writer := report.NewSectionWriter("No rows")
	table := entities.Table{
		testhelpers.Part("1", 2, "A"),
		testhelpers.Part("2", 3, "B"),
	}

	next, err := writer.WriteSection(sink, "Parts", table, 5, report.DefaultColumns)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// title + header + 2 rows + spacing
	if next != 5+1+1+2+report.SectionSpacing {
		t.Errorf("Expected next row %d, got %d", 5+1+1+2+report.SectionSpacing, next)
	}

	directives := sink.Directives()
	if len(directives) != 2 {
		t.Fatalf("Expected 2 directives, got %d", len(directives))
	}
	if directives[0].Kind != memory.TitleDirective || directives[0].Row != 5 || directives[0].Text != "Parts" {
		t.Errorf("Unexpected title directive %+v", directives[0])
	}
	if directives[1].Kind != memory.TableDirective || directives[1].Row != 6 {
		t.Errorf("Unexpected table directive %+v", directives[1])
	}
	if len(directives[1].Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(directives[1].Records))
	}
}

func TestWriteSection_EmptyTableWritesPlaceholder(t *testing.T) {
	sink := memory.NewReportSink()
	writer := report.NewSectionWriter("Nothing here")

	next, err := writer.WriteSection(sink, "Empty", entities.Table{}, 0, report.DefaultColumns)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if next != 1+1+report.SectionSpacing {
		t.Errorf("Expected next row %d, got %d", 1+1+report.SectionSpacing, next)
	}

	directives := sink.Directives()
	if len(directives) != 2 || directives[1].Kind != memory.NoteDirective || directives[1].Text != "Nothing here" {
		t.Errorf("Expected title then placeholder note, got %+v", directives)
	}
}

func TestWriteSection_ColumnSelection(t *testing.T) {
	sink := memory.NewReportSink()
	writer := report.NewSectionWriter("No rows")
	table := entities.Table{
		testhelpers.WithMetadata(testhelpers.Part("1", 2, "A"), "C", "Spacer"),
	}
	columns := []entities.Column{entities.PartNumberColumn, entities.ItemColumn, entities.DescriptionColumn}

	if _, err := writer.WriteSection(sink, "Parts", table, 0, columns); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	directive := sink.Directives()[1]
	expectedHeader := []string{"Part Number", "Item", "Product Description"}
	if !reflect.DeepEqual(directive.Header, expectedHeader) {
		t.Errorf("Expected header %v, got %v", expectedHeader, directive.Header)
	}
	expectedRecords := [][]string{{"A", "1", "Spacer"}}
	if !reflect.DeepEqual(directive.Records, expectedRecords) {
		t.Errorf("Expected records %v, got %v", expectedRecords, directive.Records)
	}
}

func TestWriteSection_PropagatesSinkErrors(t *testing.T) {
	sink := memory.NewReportSink()
	writer := report.NewSectionWriter("No rows")

	if _, err := writer.WriteSection(sink, "First", entities.Table{}, 10, report.DefaultColumns); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// row 3 is before rows already written
	if _, err := writer.WriteSection(sink, "Second", entities.Table{}, 3, report.DefaultColumns); err == nil {
		t.Error("Expected overlapping write to fail")
	}
}
