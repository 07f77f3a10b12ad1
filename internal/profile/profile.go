// Package profile holds the user health and dietary profile and its
// normalized set form used by conflict detection.
package profile

import (
	"fmt"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/normalize"
)

// Profile is a user's self-declared health context. Values are free-form
// strings; matching is exact after trim and lowercase.
type Profile struct {
	Allergies           []string `json:"allergies" yaml:"allergies"`
	DietaryRestrictions []string `json:"dietary_restrictions" yaml:"dietary_restrictions"`
	HealthConditions    []string `json:"health_conditions" yaml:"health_conditions"`
	HealthGoals         []string `json:"health_goals" yaml:"health_goals"`
}

// Values returns the raw list for a dimension. Unknown dimensions have none.
func (p Profile) Values(dim catalog.Dimension) []string {
	switch dim {
	case catalog.DimensionAllergy:
		return p.Allergies
	case catalog.DimensionDietaryRestriction:
		return p.DietaryRestrictions
	case catalog.DimensionHealthCondition:
		return p.HealthConditions
	case catalog.DimensionHealthGoal:
		return p.HealthGoals
	default:
		return nil
	}
}

// IsEmpty reports whether no dimension has a value.
func (p Profile) IsEmpty() bool {
	for _, dim := range catalog.Dimensions() {
		if len(normalize.Names(p.Values(dim))) > 0 {
			return false
		}
	}
	return true
}

// Canonical returns a copy with every list normalized, deduplicated and
// never nil. Two profiles that match the same rules have equal canonical
// forms.
func (p Profile) Canonical() Profile {
	canon := func(values []string) []string {
		return normalize.UniqueStrings(normalize.Names(values))
	}
	return Profile{
		Allergies:           canon(p.Allergies),
		DietaryRestrictions: canon(p.DietaryRestrictions),
		HealthConditions:    canon(p.HealthConditions),
		HealthGoals:         canon(p.HealthGoals),
	}
}

// Sets is the normalized form of a profile: one membership set per dimension.
type Sets map[catalog.Dimension]map[string]struct{}

// Normalized builds the per-dimension sets once per analysis.
func (p Profile) Normalized() Sets {
	sets := make(Sets, 4)
	for _, dim := range catalog.Dimensions() {
		set := make(map[string]struct{})
		for _, v := range normalize.Names(p.Values(dim)) {
			set[v] = struct{}{}
		}
		sets[dim] = set
	}
	return sets
}

// Contains reports whether the set for dim holds value. value must already
// be normalized.
func (s Sets) Contains(dim catalog.Dimension, value string) bool {
	_, ok := s[dim][value]
	return ok
}

// Decode converts a loosely-typed profile (as decoded from JSON) into a
// Profile. nil decodes to the empty profile. Anything that is not a mapping
// is an error. A field that is missing or not a list is empty, and list
// items that are not strings are dropped.
func Decode(raw any) (Profile, error) {
	switch v := raw.(type) {
	case nil:
		return Profile{}, nil
	case Profile:
		return v, nil
	case *Profile:
		if v == nil {
			return Profile{}, nil
		}
		return *v, nil
	case map[string]any:
		return Profile{
			Allergies:           stringList(v["allergies"]),
			DietaryRestrictions: stringList(v["dietary_restrictions"]),
			HealthConditions:    stringList(v["health_conditions"]),
			HealthGoals:         stringList(v["health_goals"]),
		}, nil
	default:
		return Profile{}, fmt.Errorf("profile must be a mapping, got %T", raw)
	}
}

func stringList(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
