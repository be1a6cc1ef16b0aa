package model

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category name is not part of the catalog's closed set.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the closed classification of a product.
type Category int

const (
	// Food groups consumable products.
	Food Category = iota
	// Clothing groups wearable products.
	Clothing
)

var categoryNames = [...]string{
	Food:     "Food",
	Clothing: "Clothing",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	all := make([]Category, len(categoryNames))
	for i := range categoryNames {
		all[i] = Category(i)
	}
	return all
}

// IsValid reports whether c is a member of the closed set.
func (c Category) IsValid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory looks up a category by name, ignoring ASCII case only.
// Surrounding whitespace and numeric ordinals do not name a category.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if equalFoldASCII(n, name) {
			return Category(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, text)
	}
	*c = parsed
	return nil
}

// equalFoldASCII compares two strings folding only A-Z/a-z, so non-ASCII
// runes must match byte for byte.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
