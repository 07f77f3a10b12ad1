package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gzhole/labelshield/internal/profile"
)

var (
	// ErrInvalidInput is returned when the ingredient list is missing, not a
	// list, or holds no non-blank strings.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidProfile is returned when the profile is not a mapping.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Engine is the single entry point into the scoring pipeline.
type Engine struct {
	catalog  Catalog
	detector *Detector
}

// New creates an Engine over a catalog. The catalog must not change while
// the engine is in use.
func New(cat Catalog) *Engine {
	return &Engine{
		catalog:  cat,
		detector: NewDetector(cat),
	}
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// Analyze scores ingredients against p. Entries are trimmed and blank ones
// dropped; every remaining position counts towards total_ingredients, so a
// repeated ingredient counts twice.
func (e *Engine) Analyze(ingredients []string, p profile.Profile) (*Result, error) {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if s := strings.TrimSpace(ing); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: ingredients must be a non-empty list of names", ErrInvalidInput)
	}

	conflicts := e.detector.Detect(cleaned, p)
	risk := Calculate(conflicts, len(cleaned), e.catalog)
	exp := Explain(conflicts, risk.Severities, len(cleaned))

	return &Result{
		Score:              risk.Score,
		RiskClassification: risk.Classification,
		FlaggedIngredients: exp.Flagged,
		UnknownIngredients: exp.Unknown,
		Summary:            exp.Summary,
		TotalIngredients:   risk.TotalIngredients,
		ConflictCount:      risk.ConflictCount,
	}, nil
}

// AnalyzeRaw is the loosely-typed entry point for decoded JSON. ingredients
// must be a []string or []any; non-string entries are dropped. rawProfile
// must be a mapping or nil.
func (e *Engine) AnalyzeRaw(ingredients any, rawProfile any) (*Result, error) {
	names, err := DecodeIngredients(ingredients)
	if err != nil {
		return nil, err
	}
	p, err := DecodeProfile(rawProfile)
	if err != nil {
		return nil, err
	}
	return e.Analyze(names, p)
}

// DecodeIngredients accepts a []string or []any and keeps the string
// entries. Anything else is ErrInvalidInput.
func DecodeIngredients(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		var names []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%w: ingredients must be a list, got %T", ErrInvalidInput, raw)
	}
}

// DecodeProfile wraps profile.Decode failures in ErrInvalidProfile.
func DecodeProfile(raw any) (profile.Profile, error) {
	p, err := profile.Decode(raw)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return p, nil
}
