package catalog

// Tag conventions used by the built-in table:
//
//	allergen_*          user allergies
//	animal_derived      vegan, vegetarian
//	contains_gluten     gluten_free
//	contains_dairy      dairy_free, vegan
//	high_glycemic       diabetes
//	high_sodium         hypertension, heart_health
//	high_sugar          diabetes, weight_loss
//	high_saturated_fat  heart_disease, heart_health, weight_loss
//	high_cholesterol    heart_disease
//	high_calorie        weight_loss
//	high_fat            weight_loss
//	trans_fat           heart_disease, heart_health
//	inflammatory        autoimmune, heart_health
//	artificial_*        clean_eating
//	processed           clean_eating
//	preservative        clean_eating
func defaultIngredients() map[string]Ingredient {
	return map[string]Ingredient{
		// ── Major allergens ─────────────────────────────────────────
		"peanuts":       {Category: "allergen", RiskTags: []string{"allergen_peanut"}, Description: "Common allergen; found in many snack foods and sauces."},
		"peanut butter": {Category: "allergen", RiskTags: []string{"allergen_peanut", "high_calorie"}, Description: "Peanut-derived spread; carries peanut allergy risk."},
		"peanut oil":    {Category: "oil", RiskTags: []string{"allergen_peanut", "high_fat"}, Description: "Oil derived from peanuts; may trigger peanut allergies."},
		"almonds":       {Category: "allergen", RiskTags: []string{"allergen_tree_nut"}, Description: "Tree nut; common allergen."},
		"cashews":       {Category: "allergen", RiskTags: []string{"allergen_tree_nut"}, Description: "Tree nut; common allergen."},
		"walnuts":       {Category: "allergen", RiskTags: []string{"allergen_tree_nut"}, Description: "Tree nut; common allergen."},
		"pecans":        {Category: "allergen", RiskTags: []string{"allergen_tree_nut"}, Description: "Tree nut; common allergen."},
		"milk":          {Category: "dairy", RiskTags: []string{"allergen_milk", "animal_derived", "contains_dairy"}, Description: "Dairy product; common allergen."},
		"whey":          {Category: "dairy", RiskTags: []string{"allergen_milk", "animal_derived", "contains_dairy"}, Description: "Milk-derived protein; common in supplements and baked goods."},
		"casein":        {Category: "dairy", RiskTags: []string{"allergen_milk", "animal_derived", "contains_dairy"}, Description: "Milk protein; found in many processed foods and cheeses."},
		"lactose":       {Category: "dairy", RiskTags: []string{"allergen_milk", "contains_dairy"}, Description: "Milk sugar; problematic for lactose-intolerant individuals."},
		"eggs":          {Category: "allergen", RiskTags: []string{"allergen_egg", "animal_derived"}, Description: "Common allergen; found in baked goods, sauces and pastas."},
		"egg whites":    {Category: "allergen", RiskTags: []string{"allergen_egg", "animal_derived"}, Description: "Egg-derived ingredient; still carries allergen risk."},
		"wheat":         {Category: "grain", RiskTags: []string{"allergen_wheat", "contains_gluten", "high_glycemic"}, Description: "Contains gluten; common allergen."},
		"wheat flour":   {Category: "grain", RiskTags: []string{"allergen_wheat", "contains_gluten", "high_glycemic"}, Description: "Refined wheat; contains gluten and spikes blood sugar."},
		"soy lecithin":  {Category: "emulsifier", RiskTags: []string{"allergen_soy"}, Description: "Soy-derived emulsifier; ubiquitous in processed foods."},
		"soybean oil":   {Category: "oil", RiskTags: []string{"allergen_soy", "inflammatory", "high_fat"}, Description: "Soy-derived oil; highly processed and inflammatory."},
		"soy protein":   {Category: "protein", RiskTags: []string{"allergen_soy"}, Description: "Soy-derived protein isolate."},
		"shrimp":        {Category: "allergen", RiskTags: []string{"allergen_shellfish", "animal_derived"}, Description: "Shellfish; major allergen."},
		"crab":          {Category: "allergen", RiskTags: []string{"allergen_shellfish", "animal_derived"}, Description: "Shellfish; major allergen."},
		"lobster":       {Category: "allergen", RiskTags: []string{"allergen_shellfish", "animal_derived"}, Description: "Shellfish; major allergen."},
		"anchovy":       {Category: "allergen", RiskTags: []string{"allergen_fish", "animal_derived"}, Description: "Fish product; common hidden allergen in sauces."},
		"fish oil":      {Category: "oil", RiskTags: []string{"allergen_fish", "animal_derived"}, Description: "Oil derived from fish; allergen risk."},
		"sesame":        {Category: "allergen", RiskTags: []string{"allergen_sesame"}, Description: "Sesame seed; recognized major allergen."},
		"sesame oil":    {Category: "oil", RiskTags: []string{"allergen_sesame"}, Description: "Oil derived from sesame seeds."},

		// ── Sweeteners and sugars ───────────────────────────────────
		"sugar":                    {Category: "sweetener", RiskTags: []string{"high_sugar", "high_glycemic", "high_calorie"}, Description: "Refined sugar; spikes blood glucose."},
		"high fructose corn syrup": {Category: "sweetener", RiskTags: []string{"high_sugar", "high_glycemic", "high_calorie", "processed"}, Description: "Highly processed sweetener linked to obesity and metabolic issues."},
		"corn syrup":               {Category: "sweetener", RiskTags: []string{"high_sugar", "high_glycemic", "high_calorie", "processed"}, Description: "Processed sugar; raises blood glucose quickly."},
		"aspartame":                {Category: "artificial_sweetener", RiskTags: []string{"artificial_sweetener", "artificial_additive"}, Description: "Artificial sweetener; controversial health profile."},
		"sucralose":                {Category: "artificial_sweetener", RiskTags: []string{"artificial_sweetener", "artificial_additive"}, Description: "Artificial sweetener; zero-calorie but synthetic."},
		"acesulfame potassium":     {Category: "artificial_sweetener", RiskTags: []string{"artificial_sweetener", "artificial_additive"}, Description: "Artificial sweetener (Ace-K); often combined with other sweeteners."},
		"stevia":                   {Category: "sweetener", RiskTags: []string{}, Description: "Natural zero-calorie sweetener derived from the stevia plant."},
		"honey":                    {Category: "sweetener", RiskTags: []string{"animal_derived", "high_sugar", "high_glycemic"}, Description: "Bee-produced sweetener; not suitable for strict vegans."},

		// ── Oils and fats ───────────────────────────────────────────
		"palm oil":                   {Category: "oil", RiskTags: []string{"high_saturated_fat", "inflammatory"}, Description: "High in saturated fat; associated with inflammation."},
		"hydrogenated oil":           {Category: "oil", RiskTags: []string{"trans_fat", "high_saturated_fat", "inflammatory", "processed"}, Description: "Contains trans fats; strongly linked to heart disease."},
		"partially hydrogenated oil": {Category: "oil", RiskTags: []string{"trans_fat", "high_saturated_fat", "inflammatory", "processed"}, Description: "Primary dietary source of artificial trans fats."},
		"canola oil":                 {Category: "oil", RiskTags: []string{"processed", "inflammatory"}, Description: "Highly processed seed oil; mildly inflammatory."},
		"lard":                       {Category: "fat", RiskTags: []string{"animal_derived", "high_saturated_fat", "high_calorie"}, Description: "Rendered pig fat; animal-derived and high in saturated fat."},
		"butter":                     {Category: "dairy", RiskTags: []string{"animal_derived", "contains_dairy", "allergen_milk", "high_saturated_fat"}, Description: "Dairy fat; contains milk proteins."},
		"beef tallow":                {Category: "fat", RiskTags: []string{"animal_derived", "high_saturated_fat", "high_cholesterol"}, Description: "Rendered beef fat; high in saturated fat and cholesterol."},
		"chicken fat":                {Category: "fat", RiskTags: []string{"animal_derived", "high_saturated_fat"}, Description: "Rendered poultry fat."},
		"coconut oil":                {Category: "oil", RiskTags: []string{"high_saturated_fat"}, Description: "High in saturated fat but plant-derived."},
		"olive oil":                  {Category: "oil", RiskTags: []string{}, Description: "Heart-healthy monounsaturated oil."},

		// ── Additives and preservatives ─────────────────────────────
		"maltodextrin":         {Category: "additive", RiskTags: []string{"high_glycemic", "processed", "high_sugar"}, Description: "Highly processed carbohydrate; spikes blood sugar rapidly."},
		"monosodium glutamate": {Category: "flavor_enhancer", RiskTags: []string{"artificial_additive", "high_sodium"}, Description: "MSG; flavor enhancer with high sodium content."},
		"msg":                  {Category: "flavor_enhancer", RiskTags: []string{"artificial_additive", "high_sodium"}, Description: "Monosodium glutamate; flavor enhancer."},
		"sodium nitrite":       {Category: "preservative", RiskTags: []string{"preservative", "processed", "high_sodium"}, Description: "Preservative used in cured meats; potential carcinogen."},
		"sodium benzoate":      {Category: "preservative", RiskTags: []string{"preservative", "artificial_additive"}, Description: "Chemical preservative; may form benzene with vitamin C."},
		"potassium sorbate":    {Category: "preservative", RiskTags: []string{"preservative"}, Description: "Common preservative; generally regarded as safe."},
		"bha":                  {Category: "preservative", RiskTags: []string{"preservative", "artificial_additive", "processed"}, Description: "Butylated hydroxyanisole; synthetic antioxidant preservative."},
		"bht":                  {Category: "preservative", RiskTags: []string{"preservative", "artificial_additive", "processed"}, Description: "Butylated hydroxytoluene; synthetic preservative."},
		"tbhq":                 {Category: "preservative", RiskTags: []string{"preservative", "artificial_additive", "processed"}, Description: "Tert-butylhydroquinone; synthetic antioxidant in fried foods."},
		"carrageenan":          {Category: "thickener", RiskTags: []string{"inflammatory", "processed"}, Description: "Seaweed-derived thickener; linked to gut inflammation."},
		"polysorbate 80":       {Category: "emulsifier", RiskTags: []string{"artificial_additive", "processed", "inflammatory"}, Description: "Synthetic emulsifier; may disrupt gut microbiome."},
		"xanthan gum":          {Category: "thickener", RiskTags: []string{}, Description: "Common thickener; generally well tolerated."},

		// ── Artificial colors ───────────────────────────────────────
		"red 40":        {Category: "artificial_color", RiskTags: []string{"artificial_color", "artificial_additive"}, Description: "Synthetic food dye; linked to hyperactivity in children."},
		"yellow 5":      {Category: "artificial_color", RiskTags: []string{"artificial_color", "artificial_additive"}, Description: "Tartrazine; synthetic dye and potential allergen."},
		"yellow 6":      {Category: "artificial_color", RiskTags: []string{"artificial_color", "artificial_additive"}, Description: "Sunset yellow; synthetic food coloring."},
		"blue 1":        {Category: "artificial_color", RiskTags: []string{"artificial_color", "artificial_additive"}, Description: "Brilliant blue; synthetic food coloring."},
		"caramel color": {Category: "coloring", RiskTags: []string{"artificial_additive", "processed"}, Description: "Processed coloring agent; may contain 4-MEI."},

		// ── Animal-derived, non-allergen ────────────────────────────
		"gelatin": {Category: "animal_product", RiskTags: []string{"animal_derived"}, Description: "Derived from animal collagen; not suitable for vegans or vegetarians."},

		// ── Sodium-heavy ────────────────────────────────────────────
		"salt":             {Category: "mineral", RiskTags: []string{"high_sodium"}, Description: "Sodium chloride; excessive intake linked to hypertension."},
		"sodium phosphate": {Category: "additive", RiskTags: []string{"high_sodium", "processed"}, Description: "Sodium-based additive; emulsifier and leavening agent."},

		// ── Generally safe ──────────────────────────────────────────
		"water":       {Category: "base", RiskTags: []string{}, Description: "Water; no risk."},
		"rice":        {Category: "grain", RiskTags: []string{}, Description: "Naturally gluten-free grain."},
		"oats":        {Category: "grain", RiskTags: []string{"contains_gluten"}, Description: "Whole grain; may contain gluten from cross-contamination."},
		"citric acid": {Category: "preservative", RiskTags: []string{}, Description: "Naturally occurring acid; generally safe food additive."},
		"vitamin c":   {Category: "vitamin", RiskTags: []string{}, Description: "Ascorbic acid; essential nutrient."},
		"vitamin d":   {Category: "vitamin", RiskTags: []string{}, Description: "Essential vitamin; often added to fortified foods."},
		"iron":        {Category: "mineral", RiskTags: []string{}, Description: "Essential mineral; commonly added to fortified cereals."},
	}
}
