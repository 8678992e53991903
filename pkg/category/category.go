// Package category defines the closed set of horror sub-genres a movie can be
// filed under.
package category

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Category names the sub-genre of a movie. The underlying type is a string so
// stored records keep free-text semantics for filtering, but the only values
// reachable through the UI are the constants below.
type Category string

const (
	// Slasher is the default category offered by the form.
	Slasher Category = "Slasher"
	// Classic covers the old-school canon.
	Classic Category = "Classic"
	// Psychological covers slow-burn and mind-bending horror.
	Psychological Category = "Psychological"
)

// aliases maps folded spellings, Portuguese labels included, onto the
// canonical categories.
var aliases = map[string]Category{
	"slasher":       Slasher,
	"classic":       Classic,
	"clássico":      Classic,
	"classico":      Classic,
	"psychological": Psychological,
	"psicológico":   Psychological,
	"psicologico":   Psychological,
}

// All returns the supported categories in the order the selector shows them.
func All() []Category {
	return []Category{
		Slasher,
		Classic,
		Psychological,
	}
}

// Default is the category a fresh form starts with.
func Default() Category {
	return All()[0]
}

// Parse converts user text into a Category or returns an error for unknown
// values. Matching ignores case and surrounding whitespace.
func Parse(raw string) (Category, error) {
	key := cases.Fold().String(strings.TrimSpace(raw))
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	return Default(), fmt.Errorf("category: unknown category %q", raw)
}

// Aliases returns the spellings Parse accepts for c, sorted.
func Aliases(c Category) []string {
	var out []string
	for k, v := range aliases {
		if v == c {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Index returns the position of c within All, or -1.
func Index(c Category) int {
	for i, candidate := range All() {
		if candidate == c {
			return i
		}
	}
	return -1
}

// Known reports whether c is one of the enumerated categories.
func (c Category) Known() bool {
	return Index(c) >= 0
}

func (c Category) String() string {
	return string(c)
}
