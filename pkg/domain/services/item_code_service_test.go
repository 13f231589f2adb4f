package services

import (
	"math"
	"reflect"
	"testing"

	"github.com/vsinha/bomtree/pkg/domain/entities"
	testhelpers "github.com/vsinha/bomtree/pkg/infrastructure/testing"
)

func TestItemCodeComparator_Key(t *testing.T) {
	cc := NewItemCodeComparator()

	testCases := []struct {
		code     entities.ItemCode
		expected []int
	}{
		{"4", []int{4}},
		{"4.10.2", []int{4, 10, 2}},
		{"4.A3", []int{4, 3}},
		{"4.x", []int{4, 0}},
		{"4.1b2", []int{4, 12}},
		{"007", []int{7}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := cc.Key(tc.code); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected key %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestItemCodeComparator_NaturalOrdering(t *testing.T) {
	cc := NewItemCodeComparator()

	testCases := []struct {
		code1    entities.ItemCode
		code2    entities.ItemCode
		expected int
	}{
		{"4.10", "4.9", 1},
		{"4.9", "4.2", 1},
		{"4.10", "4.11", -1},
		{"10", "4", 1},
		{"4", "4.1", -1},
		{"4.2", "4.2", 0},
		{"04", "4", 0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code1)+"_vs_"+string(tc.code2), func(t *testing.T) {
			if got := cc.CompareCodes(tc.code1, tc.code2); got != tc.expected {
				t.Errorf("CompareCodes(%s, %s): expected %d, got %d", tc.code1, tc.code2, tc.expected, got)
			}
		})
	}
}

func TestSortByNaturalKey(t *testing.T) {
	table := entities.Table{
		testhelpers.Part("4.10", 1, "A"),
		testhelpers.Part("10", 1, "B"),
		testhelpers.Part("4.9", 1, "C"),
		testhelpers.Part("4", 1, "D"),
		testhelpers.Part("4.2", 1, "E"),
	}

	sorted := SortByNaturalKey(table)
	expected := []entities.ItemCode{"4", "4.2", "4.9", "4.10", "10"}
	if got := sorted.Codes(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected order %v, got %v", expected, got)
	}

	// the input keeps its source order
	if table[0].Code != "4.10" {
		t.Errorf("Expected input table to be left untouched, first code is %s", table[0].Code)
	}
}

func TestSortByNaturalKey_EqualKeysKeepSourceOrder(t *testing.T) {
	table := entities.Table{
		testhelpers.Part("1.a", 1, "FIRST"),
		testhelpers.Part("1.0", 1, "SECOND"),
		testhelpers.Part("1.b", 1, "THIRD"),
	}

	sorted := SortByNaturalKey(table)
	for i, pn := range []entities.PartNumber{"FIRST", "SECOND", "THIRD"} {
		if sorted[i].PartNumber != pn {
			t.Errorf("Position %d: expected %s, got %s", i, pn, sorted[i].PartNumber)
		}
	}
}

func TestSortByNaturalKey_OversizedSegment(t *testing.T) {
	table := entities.Table{
		testhelpers.Part("99999999999999999999", 1, "HUGE"),
		testhelpers.Part("1", 1, "ONE"),
		testhelpers.Part("2.99999999999999999999", 1, "DEEP_HUGE"),
		testhelpers.Part("2.3", 1, "DEEP"),
	}

	sorted := SortByNaturalKey(table)
	expected := []entities.ItemCode{"1", "2.3", "2.99999999999999999999", "99999999999999999999"}
	if !reflect.DeepEqual(sorted.Codes(), expected) {
		t.Errorf("Expected %v, got %v", expected, sorted.Codes())
	}

	if key := NaturalKey("99999999999999999999"); key[0] != math.MaxInt {
		t.Errorf("Expected oversized segment to clamp to math.MaxInt, got %d", key[0])
	}
}
