package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/profile"
	"github.com/gzhole/labelshield/internal/scoring"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Self-test: verify the loaded catalog scores known cases correctly",
	Long: `Run a quick diagnostic that replays a fixed set of analyses against the
loaded catalog (base catalog plus enabled packs) and checks the scoring
guarantees: boundaries, severities, idempotence and the worst-case profile.
Nothing is stored or logged.

  labelshield scan`,
	RunE: scanCommand,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

type scanCase struct {
	label string
	check func(e *scoring.Engine) (bool, string)
}

type scanResult struct {
	Label  string
	Pass   bool
	Detail string
}

func scanCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, _, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
	fmt.Fprintln(out, "  LabelShield Self-Test")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  Catalog: %s (%d ingredients)\n\n", cat.Version(), len(cat.KnownIngredients()))

	results := runScan(cat)
	failed := printScanResults(out, results)
	if failed > 0 {
		return fmt.Errorf("%d self-test case(s) failed", failed)
	}
	return nil
}

func runScan(cat *catalog.Catalog) []scanResult {
	engine := scoring.New(cat)
	results := make([]scanResult, 0, len(scanCases))
	for _, tc := range scanCases {
		pass, detail := tc.check(engine)
		results = append(results, scanResult{Label: tc.label, Pass: pass, Detail: detail})
	}
	return results
}

func printScanResults(out io.Writer, results []scanResult) int {
	fmt.Fprintln(out, "─── Scoring Guarantees ────────────────────────────────")
	failed := 0
	for _, r := range results {
		icon := "✅"
		if !r.Pass {
			icon = "❌"
			failed++
		}
		fmt.Fprintf(out, "  %s  %-30s  %s\n", icon, r.Label, r.Detail)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
	if failed == 0 {
		fmt.Fprintf(out, "  ✅ All %d checks passed\n", len(results))
	} else {
		fmt.Fprintf(out, "  ⚠  %d/%d checks passed, %d failed\n", len(results)-failed, len(results), failed)
		fmt.Fprintln(out, "  Review your catalog and enabled packs.")
	}
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	return failed
}

var worstCaseProfile = profile.Profile{
	Allergies:           []string{"peanuts", "shellfish"},
	DietaryRestrictions: []string{"vegan"},
	HealthConditions:    []string{"diabetes", "hypertension"},
	HealthGoals:         []string{"weight_loss", "clean_eating"},
}

var scanCases = []scanCase{
	{"Neutral ingredients", func(e *scoring.Engine) (bool, string) {
		r, err := e.Analyze([]string{"water", "nonexistentium"}, profile.Profile{})
		if err != nil {
			return false, err.Error()
		}
		return r.Score == 100 && r.RiskClassification == scoring.LowRisk,
			fmt.Sprintf("score %d (%s)", r.Score, r.RiskClassification)
	}},
	{"Classification boundaries", func(e *scoring.Engine) (bool, string) {
		got := []scoring.RiskLevel{scoring.Classify(70), scoring.Classify(69), scoring.Classify(40), scoring.Classify(39)}
		want := []scoring.RiskLevel{scoring.LowRisk, scoring.MediumRisk, scoring.MediumRisk, scoring.HighRisk}
		for i := range want {
			if got[i] != want[i] {
				return false, fmt.Sprintf("70/69/40/39 → %v", got)
			}
		}
		return true, "70/69/40/39 → Low/Medium/Medium/High"
	}},
	{"Allergy severity", func(e *scoring.Engine) (bool, string) {
		r, err := e.Analyze([]string{"peanuts"}, profile.Profile{Allergies: []string{"peanuts"}})
		if err != nil {
			return false, err.Error()
		}
		if len(r.FlaggedIngredients) != 1 {
			return false, fmt.Sprintf("%d flagged", len(r.FlaggedIngredients))
		}
		f := r.FlaggedIngredients[0]
		return f.Ingredient == "peanuts" && f.Severity == 1.0 && f.RiskLevel == scoring.HighRisk,
			fmt.Sprintf("%s severity %.2f (%s)", f.Ingredient, f.Severity, f.RiskLevel)
	}},
	{"Dietary rule matches value", func(e *scoring.Engine) (bool, string) {
		conflicts := scoring.NewDetector(e.Catalog()).Detect([]string{"gelatin"}, profile.Profile{DietaryRestrictions: []string{"vegan"}})
		for _, c := range conflicts {
			if c.ProfileValue != "vegan" {
				return false, fmt.Sprintf("unexpected value %q", c.ProfileValue)
			}
		}
		return len(conflicts) > 0, fmt.Sprintf("%d conflict(s) for vegan", len(conflicts))
	}},
	{"Duplicates counted twice", func(e *scoring.Engine) (bool, string) {
		conflicts := scoring.NewDetector(e.Catalog()).Detect([]string{"peanuts", "peanuts"}, profile.Profile{Allergies: []string{"peanuts"}})
		n := 0
		for _, c := range conflicts {
			if c.Dimension == catalog.DimensionAllergy {
				n++
			}
		}
		return n >= 2, fmt.Sprintf("%d allergy record(s)", n)
	}},
	{"Idempotent output", func(e *scoring.Engine) (bool, string) {
		ingredients := []string{"peanuts", "salt", "red 40", "nonexistentium"}
		first, err1 := e.Analyze(ingredients, worstCaseProfile)
		second, err2 := e.Analyze(ingredients, worstCaseProfile)
		if err1 != nil || err2 != nil {
			return false, "analysis failed"
		}
		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		return bytes.Equal(a, b), fmt.Sprintf("%d bytes", len(a))
	}},
	{"Unknown ingredient is neutral", func(e *scoring.Engine) (bool, string) {
		r, err := e.Analyze([]string{"nonexistentium"}, worstCaseProfile)
		if err != nil {
			return false, err.Error()
		}
		return r.Score == 100, fmt.Sprintf("score %d, unknown %v", r.Score, r.UnknownIngredients)
	}},
	{"Worst-case profile", func(e *scoring.Engine) (bool, string) {
		r, err := e.Analyze([]string{"peanuts", "shrimp", "high fructose corn syrup", "salt", "red 40"}, worstCaseProfile)
		if err != nil {
			return false, err.Error()
		}
		return r.Score < 40 && r.RiskClassification == scoring.HighRisk,
			fmt.Sprintf("score %d (%s)", r.Score, r.RiskClassification)
	}},
}
