package scoring

import (
	"fmt"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/normalize"
	"github.com/gzhole/labelshield/internal/profile"
)

// Detector cross-references ingredient tags with the rule table and a
// profile.
type Detector struct {
	catalog Catalog
}

// NewDetector creates a Detector over the given catalog.
func NewDetector(cat Catalog) *Detector {
	return &Detector{catalog: cat}
}

// Detect returns one record per (ingredient position, tag, matching rule),
// plus one unknown record per ingredient position missing from the catalog.
// Repeated ingredients are not deduplicated and nothing is suppressed.
func (d *Detector) Detect(ingredients []string, p profile.Profile) []Conflict {
	sets := p.Normalized()
	conflicts := []Conflict{}

	for _, display := range ingredients {
		ing, ok := d.catalog.Lookup(display)
		if !ok {
			conflicts = append(conflicts, unknownConflict(display))
			continue
		}

		for _, tag := range ing.RiskTags {
			for _, rule := range d.catalog.ConflictsForTag(tag) {
				if !sets.Contains(rule.Dimension, normalize.Name(rule.ProfileValue)) {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Ingredient:   display,
					Dimension:    rule.Dimension,
					ProfileValue: rule.ProfileValue,
					Tag:          tag,
					Weight:       rule.Weight,
					Reason:       rule.Reason,
				})
			}
		}
	}

	return conflicts
}

func unknownConflict(display string) Conflict {
	return Conflict{
		Ingredient: display,
		Dimension:  catalog.DimensionUnknown,
		Weight:     0,
		Reason:     fmt.Sprintf("'%s' is not in our ingredient database", display),
	}
}
