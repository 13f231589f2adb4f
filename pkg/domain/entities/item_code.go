package entities

import (
	"regexp"
	"strings"
)

// CodeSeparator separates the levels of an item code
const CodeSeparator = "."

var topLevelPattern = regexp.MustCompile(`^\d+$`)

// ItemCode is a dotted hierarchical identifier such as "4", "4.3" or "4.10.2".
// The position of a row in the BOM tree is derived from its code only.
type ItemCode string

// Segments splits the code into its levels
func (c ItemCode) Segments() []string {
	return strings.Split(string(c), CodeSeparator)
}

// Depth is the number of segments in the code
func (c ItemCode) Depth() int {
	return strings.Count(string(c), CodeSeparator) + 1
}

// IsTopLevel reports whether the code is digits only, without any separator
func (c ItemCode) IsTopLevel() bool {
	return topLevelPattern.MatchString(string(c))
}

// Parent strips the last segment. Top-level codes have no parent.
func (c ItemCode) Parent() (ItemCode, bool) {
	idx := strings.LastIndex(string(c), CodeSeparator)
	if idx < 0 {
		return "", false
	}
	return c[:idx], true
}

// Ancestors returns every strict ancestor, nearest first
func (c ItemCode) Ancestors() []ItemCode {
	var ancestors []ItemCode
	current := c
	for {
		parent, ok := current.Parent()
		if !ok {
			return ancestors
		}
		ancestors = append(ancestors, parent)
		current = parent
	}
}

// IsDescendantOf reports whether the code starts with parent followed by a separator
func (c ItemCode) IsDescendantOf(parent ItemCode) bool {
	return strings.HasPrefix(string(c), string(parent)+CodeSeparator)
}

// IsDirectChildOf reports whether the code sits exactly one level below parent
func (c ItemCode) IsDirectChildOf(parent ItemCode) bool {
	return c.IsDescendantOf(parent) && c.Depth() == parent.Depth()+1
}
