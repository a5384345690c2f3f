package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Status is the publication state of an article.
type Status int

const (
	StatusDraft     Status = 1
	StatusPublished Status = 2
)

// Category is the topical classification of an article.
// The zero value means no category was set.
type Category int

const (
	CategoryEconomy Category = 1
	CategorySociety Category = 2
	CategorySport   Category = 3
)

// CategoryURLPrefix is the path under which category listings live.
const CategoryURLPrefix = "/articles/"

const (
	labelDraft     = "Draft"
	labelPublished = "Published"
	labelEconomy   = "Economy"
	labelSociety   = "Society"
	labelSport     = "Sport"
)

// Option is a value/label pair used to fill select boxes and menus.
type Option struct {
	Value int
	Label string
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Label returns the display name of the status.
func (s Status) Label() string {
	return StatusLabel(s)
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c == CategoryEconomy || c == CategorySociety || c == CategorySport
}

// Label returns the display name of the category.
func (c Category) Label() string {
	return CategoryLabel(c)
}

// StatusLabel returns "Draft" for StatusDraft and "Published" for every other value,
// including values that are not valid statuses.
func StatusLabel(s Status) string {
	if s == StatusDraft {
		return labelDraft
	}
	return labelPublished
}

// CategoryLabel returns the display name of c.
// Unset and unknown categories are shown as "Sport".
func CategoryLabel(c Category) string {
	switch c {
	case CategoryEconomy:
		return labelEconomy
	case CategorySociety:
		return labelSociety
	default:
		return labelSport
	}
}

// CategoryIDFromLabel maps a display name back to its category.
// Only the first letter is case-folded ("economy" matches, "ECONOMY" does not);
// every label that matches neither Economy nor Society resolves to CategorySport.
func CategoryIDFromLabel(label string) Category {
	switch upperFirst(label) {
	case labelEconomy:
		return CategoryEconomy
	case labelSociety:
		return CategorySociety
	default:
		return CategorySport
	}
}

// StatusList returns every status in declaration order.
func StatusList() []Option {
	return []Option{
		{Value: int(StatusDraft), Label: labelDraft},
		{Value: int(StatusPublished), Label: labelPublished},
	}
}

// CategoryList returns every category in declaration order.
func CategoryList() []Option {
	return []Option{
		{Value: int(CategoryEconomy), Label: labelEconomy},
		{Value: int(CategorySociety), Label: labelSociety},
		{Value: int(CategorySport), Label: labelSport},
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}
