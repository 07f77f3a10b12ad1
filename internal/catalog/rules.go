package catalog

// Weight scale: 1.0 critical (allergen), 0.7+ severe, 0.5 moderate, 0.3 mild.
func defaultRules() map[string][]ConflictRule {
	allergy := func(value, noun, article string) []ConflictRule {
		return []ConflictRule{{
			Dimension:    DimensionAllergy,
			ProfileValue: value,
			Weight:       1.0,
			Reason:       "Contains " + noun + ": you have " + article + " allergy",
		}}
	}

	return map[string][]ConflictRule{
		// ── Allergens ───────────────────────────────────────────────
		"allergen_peanut":    allergy("peanuts", "peanuts", "a peanut"),
		"allergen_tree_nut":  allergy("tree nuts", "tree nuts", "a tree nut"),
		"allergen_milk":      allergy("milk", "milk", "a milk/dairy"),
		"allergen_egg":       allergy("eggs", "egg", "an egg"),
		"allergen_wheat":     allergy("wheat", "wheat", "a wheat"),
		"allergen_soy":       allergy("soy", "soy", "a soy"),
		"allergen_shellfish": allergy("shellfish", "shellfish", "a shellfish"),
		"allergen_fish":      allergy("fish", "fish", "a fish"),
		"allergen_sesame":    allergy("sesame", "sesame", "a sesame"),

		// ── Dietary restrictions ────────────────────────────────────
		"animal_derived": {
			{DimensionDietaryRestriction, "vegan", 0.8, "Animal-derived ingredient: conflicts with vegan diet"},
			{DimensionDietaryRestriction, "vegetarian", 0.7, "Animal-derived ingredient: conflicts with vegetarian diet"},
		},
		"contains_gluten": {
			{DimensionDietaryRestriction, "gluten_free", 0.9, "Contains gluten: conflicts with gluten-free diet"},
		},
		"contains_dairy": {
			{DimensionDietaryRestriction, "dairy_free", 0.8, "Contains dairy: conflicts with dairy-free diet"},
			{DimensionDietaryRestriction, "vegan", 0.8, "Contains dairy: conflicts with vegan diet"},
		},

		// ── Health conditions ───────────────────────────────────────
		"high_glycemic": {
			{DimensionHealthCondition, "diabetes", 0.8, "High glycemic ingredient: may spike blood sugar (diabetes risk)"},
		},
		"high_sugar": {
			{DimensionHealthCondition, "diabetes", 0.9, "High sugar content: dangerous for diabetes management"},
			{DimensionHealthGoal, "weight_loss", 0.5, "High sugar content: works against weight loss goals"},
		},
		"high_sodium": {
			{DimensionHealthCondition, "hypertension", 0.8, "High sodium: dangerous for hypertension/high blood pressure"},
			{DimensionHealthGoal, "heart_health", 0.5, "High sodium: works against heart health goals"},
		},
		"high_saturated_fat": {
			{DimensionHealthCondition, "heart_disease", 0.8, "High in saturated fat: risk factor for heart disease"},
			{DimensionHealthGoal, "heart_health", 0.5, "High in saturated fat: works against heart health goals"},
			{DimensionHealthGoal, "weight_loss", 0.4, "High in saturated fat: works against weight loss goals"},
		},
		"high_cholesterol": {
			{DimensionHealthCondition, "heart_disease", 0.7, "High cholesterol content: risk factor for heart disease"},
		},
		"trans_fat": {
			{DimensionHealthCondition, "heart_disease", 0.9, "Contains trans fats: strongly linked to heart disease"},
			{DimensionHealthGoal, "heart_health", 0.7, "Contains trans fats: strongly works against heart health"},
		},
		"inflammatory": {
			{DimensionHealthCondition, "autoimmune", 0.6, "Inflammatory ingredient: may worsen autoimmune conditions"},
			{DimensionHealthGoal, "heart_health", 0.4, "Inflammatory ingredient: works against heart health goals"},
		},

		// ── Health goals ────────────────────────────────────────────
		"high_calorie": {
			{DimensionHealthGoal, "weight_loss", 0.5, "High calorie ingredient: works against weight loss goals"},
		},
		"high_fat": {
			{DimensionHealthGoal, "weight_loss", 0.4, "High fat content: works against weight loss goals"},
		},

		// ── Artificial and processed ────────────────────────────────
		"artificial_additive": {
			{DimensionHealthGoal, "clean_eating", 0.5, "Artificial additive: conflicts with clean eating goals"},
		},
		"artificial_sweetener": {
			{DimensionHealthGoal, "clean_eating", 0.4, "Artificial sweetener: conflicts with clean eating goals"},
		},
		"artificial_color": {
			{DimensionHealthGoal, "clean_eating", 0.4, "Artificial coloring: conflicts with clean eating goals"},
		},
		"processed": {
			{DimensionHealthGoal, "clean_eating", 0.3, "Highly processed ingredient: conflicts with clean eating goals"},
		},
		"preservative": {
			{DimensionHealthGoal, "clean_eating", 0.2, "Contains preservatives: conflicts with clean eating goals"},
		},
	}
}
