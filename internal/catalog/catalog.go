package catalog

import (
	"fmt"
	"sort"

	"github.com/gzhole/labelshield/internal/normalize"
)

// DefaultPenaltyPoints is used for any dimension without a configured penalty.
const DefaultPenaltyPoints = 10.0

// Catalog is the read-only registry of ingredient metadata and conflict rules.
// It is built once and shared; no method mutates it, so concurrent readers
// need no locking.
type Catalog struct {
	version     string
	ingredients map[string]Ingredient
	rules       map[string][]ConflictRule
	penalties   map[Dimension]float64
}

// New validates a catalog file and builds the registry. Ingredient keys are
// normalized; penalties missing from f fall back to the built-in tiers.
func New(f File) (*Catalog, error) {
	c := &Catalog{
		version:     f.Version,
		ingredients: make(map[string]Ingredient, len(f.Ingredients)),
		rules:       make(map[string][]ConflictRule, len(f.Rules)),
		penalties:   DefaultPenalties(),
	}

	for name, ing := range f.Ingredients {
		key := normalize.Name(name)
		if key == "" {
			return nil, fmt.Errorf("ingredient with empty name")
		}
		c.ingredients[key] = cloneIngredient(ing)
	}

	for tag, rules := range f.Rules {
		for i, r := range rules {
			if err := validateRule(r); err != nil {
				return nil, fmt.Errorf("rule %d for tag %q: %w", i, tag, err)
			}
		}
		c.rules[tag] = append([]ConflictRule(nil), rules...)
	}

	for dim, points := range f.Penalties {
		c.penalties[dim] = points
	}

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(File{
		Version:     "1",
		Ingredients: defaultIngredients(),
		Rules:       defaultRules(),
		Penalties:   DefaultPenalties(),
	})
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// DefaultPenalties returns the tiered base points per dimension. An allergen
// match costs four times a lifestyle-goal mismatch.
func DefaultPenalties() map[Dimension]float64 {
	return map[Dimension]float64{
		DimensionAllergy:            40.0,
		DimensionDietaryRestriction: 25.0,
		DimensionHealthCondition:    20.0,
		DimensionHealthGoal:         10.0,
	}
}

func validateRule(r ConflictRule) error {
	if r.Weight < 0 || r.Weight > 1 {
		return fmt.Errorf("weight %.2f outside [0, 1]", r.Weight)
	}
	if normalize.Name(r.ProfileValue) == "" {
		return fmt.Errorf("empty profile_value")
	}
	return nil
}

// Version returns the catalog version string.
func (c *Catalog) Version() string {
	return c.version
}

// Lookup finds metadata for an ingredient. The name is trimmed and
// lowercased; no other matching is attempted.
func (c *Catalog) Lookup(name string) (Ingredient, bool) {
	ing, ok := c.ingredients[normalize.Name(name)]
	if !ok {
		return Ingredient{}, false
	}
	return cloneIngredient(ing), true
}

// ConflictsForTag returns the rules attached to a risk tag, or nil for an
// unknown tag. The returned slice must not be modified.
func (c *Catalog) ConflictsForTag(tag string) []ConflictRule {
	rules := c.rules[tag]
	return rules[:len(rules):len(rules)]
}

// PenaltyPoints returns the base points for a dimension, DefaultPenaltyPoints
// when the dimension is not configured.
func (c *Catalog) PenaltyPoints(dim Dimension) float64 {
	if points, ok := c.penalties[dim]; ok {
		return points
	}
	return DefaultPenaltyPoints
}

// KnownIngredients returns all ingredient names, sorted.
func (c *Catalog) KnownIngredients() []string {
	names := make([]string, 0, len(c.ingredients))
	for name := range c.ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnownTags returns all risk tags that have rules, sorted.
func (c *Catalog) KnownTags() []string {
	tags := make([]string, 0, len(c.rules))
	for tag := range c.rules {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// File exports the catalog back into its YAML shape.
func (c *Catalog) File() File {
	f := File{
		Version:     c.version,
		Ingredients: make(map[string]Ingredient, len(c.ingredients)),
		Rules:       make(map[string][]ConflictRule, len(c.rules)),
		Penalties:   make(map[Dimension]float64, len(c.penalties)),
	}
	for name, ing := range c.ingredients {
		f.Ingredients[name] = cloneIngredient(ing)
	}
	for tag, rules := range c.rules {
		f.Rules[tag] = append([]ConflictRule(nil), rules...)
	}
	for dim, points := range c.penalties {
		f.Penalties[dim] = points
	}
	return f
}

func cloneIngredient(ing Ingredient) Ingredient {
	clone := ing
	clone.RiskTags = append([]string(nil), ing.RiskTags...)
	return clone
}
