package profile

// Update is a partial profile change. A nil field is left as is; a non-nil
// field, even an empty one, replaces the stored list.
type Update struct {
	Allergies           *[]string `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	DietaryRestrictions *[]string `json:"dietary_restrictions,omitempty" yaml:"dietary_restrictions,omitempty"`
	HealthConditions    *[]string `json:"health_conditions,omitempty" yaml:"health_conditions,omitempty"`
	HealthGoals         *[]string `json:"health_goals,omitempty" yaml:"health_goals,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	return u.Allergies == nil && u.DietaryRestrictions == nil &&
		u.HealthConditions == nil && u.HealthGoals == nil
}

// Apply returns p with the update's provided fields replaced.
func (u Update) Apply(p Profile) Profile {
	out := p
	if u.Allergies != nil {
		out.Allergies = append([]string{}, *u.Allergies...)
	}
	if u.DietaryRestrictions != nil {
		out.DietaryRestrictions = append([]string{}, *u.DietaryRestrictions...)
	}
	if u.HealthConditions != nil {
		out.HealthConditions = append([]string{}, *u.HealthConditions...)
	}
	if u.HealthGoals != nil {
		out.HealthGoals = append([]string{}, *u.HealthGoals...)
	}
	return out
}

// Replace builds an update that overwrites every field with p's lists.
func Replace(p Profile) Update {
	a, d, c, g := p.Allergies, p.DietaryRestrictions, p.HealthConditions, p.HealthGoals
	return Update{Allergies: &a, DietaryRestrictions: &d, HealthConditions: &c, HealthGoals: &g}
}
