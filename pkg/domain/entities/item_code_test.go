package entities

import (
	"reflect"
	"testing"
)

func TestItemCode_Depth(t *testing.T) {
	testCases := []struct {
		code     ItemCode
		expected int
	}{
		{"4", 1},
		{"4.3", 2},
		{"4.10.2", 3},
		{"A", 1},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := tc.code.Depth(); got != tc.expected {
				t.Errorf("Expected depth %d for %s, got %d", tc.expected, tc.code, got)
			}
		})
	}
}

func TestItemCode_IsTopLevel(t *testing.T) {
	testCases := []struct {
		code     ItemCode
		expected bool
	}{
		{"1", true},
		{"10", true},
		{"1.1", false},
		{"A", false},
		{"1A", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := tc.code.IsTopLevel(); got != tc.expected {
			t.Errorf("IsTopLevel(%q): expected %v, got %v", tc.code, tc.expected, got)
		}
	}
}

func TestItemCode_Ancestors(t *testing.T) {
	ancestors := ItemCode("4.10.2").Ancestors()
	expected := []ItemCode{"4.10", "4"}
	if !reflect.DeepEqual(ancestors, expected) {
		t.Errorf("Expected ancestors %v, got %v", expected, ancestors)
	}

	if got := ItemCode("4").Ancestors(); len(got) != 0 {
		t.Errorf("Expected no ancestors for top-level code, got %v", got)
	}

	if _, ok := ItemCode("4").Parent(); ok {
		t.Error("Expected top-level code to have no parent")
	}
}

func TestItemCode_DirectChild(t *testing.T) {
	testCases := []struct {
		name     string
		code     ItemCode
		parent   ItemCode
		expected bool
	}{
		{"direct child", "1.1", "1", true},
		{"grandchild", "1.1.1", "1", false},
		{"sibling prefix", "11.1", "1", false},
		{"same code", "1", "1", false},
		{"absent parent still matches", "7.3", "7", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.code.IsDirectChildOf(tc.parent); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}

	if !ItemCode("1.1.1").IsDescendantOf("1") {
		t.Error("Expected 1.1.1 to descend from 1")
	}
	if ItemCode("10.1").IsDescendantOf("1") {
		t.Error("Expected 10.1 not to descend from 1")
	}
}
