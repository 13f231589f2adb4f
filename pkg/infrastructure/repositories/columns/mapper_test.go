package columns

import (
	"reflect"
	"testing"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

func newTestMapper() *Mapper {
	return NewMapper(map[entities.Column][]string{
		entities.ItemColumn:       {"Item Code", "Repère"},
		entities.QuantityColumn:   {"Qty"},
		entities.PartNumberColumn: {"PN"},
	})
}

func TestMapper_Column(t *testing.T) {
	m := newTestMapper()

	testCases := []struct {
		header   string
		expected entities.Column
		ok       bool
	}{
		{"Item", entities.ItemColumn, true},
		{"  item  code ", entities.ItemColumn, true},
		{"REPÈRE", entities.ItemColumn, true},
		{"qty", entities.QuantityColumn, true},
		{"Product Description", entities.DescriptionColumn, true},
		{"Weight", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.header, func(t *testing.T) {
			col, ok := m.Column(tc.header)
			if ok != tc.ok || col != tc.expected {
				t.Errorf("Column(%q) = %q, %v; expected %q, %v", tc.header, col, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestMapper_MapHeaderFirstWins(t *testing.T) {
	m := newTestMapper()

	positions := m.MapHeader([]string{"Qty", "Item", "Quantity", "Notes"})
	expected := map[int]entities.Column{
		0: entities.QuantityColumn,
		1: entities.ItemColumn,
	}
	if !reflect.DeepEqual(positions, expected) {
		t.Errorf("Expected %v, got %v", expected, positions)
	}
}

func TestMapper_Missing(t *testing.T) {
	m := newTestMapper()

	missing := m.Missing([]string{"Item", "Qty", "PN", "Type"})
	expected := []entities.Column{
		entities.NomenclatureColumn,
		entities.RevisionColumn,
		entities.DescriptionColumn,
	}
	if !reflect.DeepEqual(missing, expected) {
		t.Errorf("Expected %v, got %v", expected, missing)
	}
}

func TestMapper_Records(t *testing.T) {
	m := newTestMapper()
	header := []string{"Item", "Qty", "PN", "Comment"}
	rows := [][]string{
		{"1", "2", "GEARBOX", "ignored"},
		{"", " ", ""},
		{"1.1", "3"},
	}

	records := m.Records(header, rows)
	if len(records) != 2 {
		t.Fatalf("Expected blank row to be skipped, got %d records", len(records))
	}

	if records[0].Get(entities.PartNumberColumn).String() != "GEARBOX" {
		t.Errorf("Expected GEARBOX, got %q", records[0].Get(entities.PartNumberColumn).String())
	}
	if records[1].Get(entities.PartNumberColumn).Kind != entities.EmptyCell {
		t.Error("Expected short row to leave part number empty")
	}
	if records[1].Get(entities.TypeColumn).Kind != entities.EmptyCell {
		t.Error("Expected unmapped column to be empty")
	}
	if len(records[0]) != len(entities.CanonicalColumns) {
		t.Errorf("Expected every canonical column, got %d", len(records[0]))
	}
}
