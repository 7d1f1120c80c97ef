package accounts

import (
	"slices"
	"strings"
)

// CategorySeparator joins the segments of a category path. This is a
// load-bearing convention of the source data: a segment can never contain a
// literal hyphen.
const CategorySeparator = "-"

// Category is a transaction's category path, parsed once at the system
// boundary into an ordered list of hierarchy segment names. The aggregation
// and tree-building logic consumes this type and never re-parses strings.
type Category []string

// ParseCategory splits a raw category string into its path segments.
// It returns an error when the string is empty or its first segment is empty.
func ParseCategory(raw string) (Category, error) {
	if raw == "" {
		return nil, structuralf("", 0, "category is missing or empty")
	}
	segments := strings.Split(raw, CategorySeparator)
	if segments[0] == "" {
		return nil, structuralf("", 0, "category %q starts with an empty segment", raw)
	}
	return Category(segments), nil
}

// MustCategory is like ParseCategory but panics on error. For tests and
// constants.
func MustCategory(raw string) Category {
	c, err := ParseCategory(raw)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// String joins the path back into its delimited form.
func (c Category) String() string { return strings.Join(c, CategorySeparator) }

// IsZero returns true for a missing category.
func (c Category) IsZero() bool { return len(c) == 0 }

// Clone returns an independent copy of the path.
func (c Category) Clone() Category { return slices.Clone(c) }

// HasPrefix reports whether prefix is an ancestor-or-equal path of c.
// The match is segment-wise: "loan-interest" is a prefix of
// "loan-interest-mortgage1" but not of "loan-interest2".
func (c Category) HasPrefix(prefix Category) bool {
	if len(prefix) > len(c) {
		return false
	}
	return slices.Equal(c[:len(prefix)], prefix)
}
