package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vsinha/bomtree/pkg/domain/entities"
	"github.com/vsinha/bomtree/pkg/infrastructure/repositories/columns"
)

const gearboxCSV = `Item,Qty,Part Number,Type,Nomenclature,Rev,Description
1,2,GEARBOX,Assembly,Gearbox,,
1.1,1,HOUSING,Part,Housing,B,Cast housing
1.10, 12,BOLT_M8,part,Bolt,,

1.2,"1,5",SHIM,Part,Shim,,
`

func newLoader(comma rune) *Loader {
	return NewLoader(columns.NewMapper(map[entities.Column][]string{
		entities.QuantityColumn:    {"Qty"},
		entities.RevisionColumn:    {"Rev"},
		entities.DescriptionColumn: {"Description"},
	}), comma)
}

func TestLoader_Read(t *testing.T) {
	records, err := newLoader(0).Read(strings.NewReader(gearboxCSV))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}

	testCases := []struct {
		index  int
		column entities.Column
		value  string
	}{
		{0, entities.ItemColumn, "1"},
		{1, entities.RevisionColumn, "B"},
		{1, entities.DescriptionColumn, "Cast housing"},
		{2, entities.ItemColumn, "1.10"},
		{2, entities.QuantityColumn, "12"},
		{3, entities.QuantityColumn, "1,5"},
	}

	for _, tc := range testCases {
		got := records[tc.index].Get(tc.column).String()
		if got != tc.value {
			t.Errorf("record %d %s: expected %q, got %q", tc.index, tc.column, tc.value, got)
		}
	}

	// item codes stay text so "1.10" is not read as 1.1
	if records[2].Get(entities.ItemColumn).Kind != entities.TextCell {
		t.Error("Expected item code to be a text cell")
	}
}

func TestLoader_Delimiter(t *testing.T) {
	content := "Item;Quantity;Part Number;Type\n1;2;A;Part\n"

	records, err := newLoader(';').Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Get(entities.PartNumberColumn).String() != "A" {
		t.Errorf("Expected one record for part A, got %v", records)
	}
}

func TestLoader_EmptyInput(t *testing.T) {
	records, err := newLoader(0).Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestLoader_Load(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "gearbox.csv")
	if err := os.WriteFile(filename, []byte(gearboxCSV), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	records, err := newLoader(0).Load(filename)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("Expected 4 records, got %d", len(records))
	}

	if _, err := newLoader(0).Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}
