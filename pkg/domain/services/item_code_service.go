package services

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/vsinha/bomtree/pkg/domain/entities"
)

// ItemCodeComparator orders dotted item codes numerically level by level,
// so "4.10" sorts after "4.9" and before "4.11".
type ItemCodeComparator struct {
	numericPattern *regexp.Regexp
	digitPattern   *regexp.Regexp
}

// NewItemCodeComparator creates a new item code comparator
func NewItemCodeComparator() *ItemCodeComparator {
	return &ItemCodeComparator{
		numericPattern: regexp.MustCompile(`^\d+$`),
		digitPattern:   regexp.MustCompile(`\d`),
	}
}

var defaultComparator = NewItemCodeComparator()

// Key turns an item code into its natural sort key, one integer per segment.
// Non-numeric segments keep only their digits; a segment without digits is 0.
// Values beyond the int range are clamped to math.MaxInt.
func (cc *ItemCodeComparator) Key(code entities.ItemCode) []int {
	segments := code.Segments()
	key := make([]int, len(segments))
	for i, segment := range segments {
		key[i] = cc.segmentValue(segment)
	}
	return key
}

func (cc *ItemCodeComparator) segmentValue(segment string) int {
	digits := segment
	if !cc.numericPattern.MatchString(segment) {
		found := cc.digitPattern.FindAllString(segment, -1)
		if len(found) == 0 {
			return 0
		}
		digits = ""
		for _, d := range found {
			digits += d
		}
	}

	value, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return value
}

// CompareCodes compares two item codes by natural key
// Returns: -1 if code1 < code2, 0 if equal, 1 if code1 > code2
func (cc *ItemCodeComparator) CompareCodes(code1, code2 entities.ItemCode) int {
	if code1 == code2 {
		return 0
	}
	return CompareKeys(cc.Key(code1), cc.Key(code2))
}

// CompareKeys compares two natural keys element by element; a strict prefix sorts first
func CompareKeys(key1, key2 []int) int {
	for i := 0; i < len(key1) && i < len(key2); i++ {
		if key1[i] < key2[i] {
			return -1
		} else if key1[i] > key2[i] {
			return 1
		}
	}
	switch {
	case len(key1) < len(key2):
		return -1
	case len(key1) > len(key2):
		return 1
	}
	return 0
}

// SortTable returns a copy of the table stably sorted by natural key
func (cc *ItemCodeComparator) SortTable(table entities.Table) entities.Table {
	keys := make(map[entities.ItemCode][]int, len(table))
	for _, row := range table {
		if _, ok := keys[row.Code]; !ok {
			keys[row.Code] = cc.Key(row.Code)
		}
	}

	sorted := make(entities.Table, len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareKeys(keys[sorted[i].Code], keys[sorted[j].Code]) < 0
	})
	return sorted
}

// NaturalKey is the package-level form of ItemCodeComparator.Key
func NaturalKey(code entities.ItemCode) []int {
	return defaultComparator.Key(code)
}

// SortByNaturalKey is the package-level form of ItemCodeComparator.SortTable
func SortByNaturalKey(table entities.Table) entities.Table {
	return defaultComparator.SortTable(table)
}
