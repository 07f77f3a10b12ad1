package catalog

// Dimension is one of the fixed axes of a user profile that a rule checks.
type Dimension string

const (
	DimensionAllergy            Dimension = "allergy"
	DimensionDietaryRestriction Dimension = "dietary_restriction"
	DimensionHealthCondition    Dimension = "health_condition"
	DimensionHealthGoal         Dimension = "health_goal"

	// DimensionUnknown marks a conflict emitted for an ingredient that is
	// not in the knowledge base. It never appears in a rule.
	DimensionUnknown Dimension = "unknown"
)

// Dimensions returns the four profile dimensions in canonical order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionAllergy,
		DimensionDietaryRestriction,
		DimensionHealthCondition,
		DimensionHealthGoal,
	}
}

// ProfileField returns the profile field name a dimension reads from
// ("allergy" → "allergies"), or "" for dimensions without a field.
func (d Dimension) ProfileField() string {
	switch d {
	case DimensionAllergy:
		return "allergies"
	case DimensionDietaryRestriction:
		return "dietary_restrictions"
	case DimensionHealthCondition:
		return "health_conditions"
	case DimensionHealthGoal:
		return "health_goals"
	default:
		return ""
	}
}

// Ingredient is the knowledge-base entry for one normalized ingredient name.
type Ingredient struct {
	Category    string   `yaml:"category" json:"category"`
	RiskTags    []string `yaml:"risk_tags" json:"risk_tags"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// ConflictRule is one potential conflict attached to a risk tag. It fires
// when the profile's set for Dimension contains ProfileValue.
type ConflictRule struct {
	Dimension    Dimension `yaml:"dimension" json:"dimension"`
	ProfileValue string    `yaml:"profile_value" json:"profile_value"`
	Weight       float64   `yaml:"weight" json:"weight"`
	Reason       string    `yaml:"reason" json:"reason"`
}

// File is the on-disk YAML shape of a catalog.
type File struct {
	Version     string                    `yaml:"version"`
	Ingredients map[string]Ingredient     `yaml:"ingredients"`
	Rules       map[string][]ConflictRule `yaml:"rules"`
	Penalties   map[Dimension]float64     `yaml:"penalties"`
}

// Pack extends a catalog with extra ingredients and rules.
type Pack struct {
	Name        string                    `yaml:"name"`
	Description string                    `yaml:"description"`
	PackVersion string                    `yaml:"version"`
	Author      string                    `yaml:"author"`
	Ingredients map[string]Ingredient     `yaml:"ingredients"`
	Rules       map[string][]ConflictRule `yaml:"rules"`
}

// PackInfo is a summary of a pack for listing.
type PackInfo struct {
	Name            string
	Description     string
	Version         string
	Author          string
	Enabled         bool
	Path            string
	IngredientCount int
	RuleCount       int
	Err             error
}
