package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gzhole/labelshield/internal/scoring"
)

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func riskIcon(level scoring.RiskLevel) string {
	switch level {
	case scoring.LowRisk:
		return "✅"
	case scoring.MediumRisk:
		return "⚠️ "
	case scoring.HighRisk:
		return "🛑"
	default:
		return "❓"
	}
}

func printResult(w io.Writer, r *scoring.Result) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  %s Score: %d/100  (%s)\n", riskIcon(r.RiskClassification), r.Score, r.RiskClassification)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Ingredients: %d   Conflicts: %d\n", r.TotalIngredients, r.ConflictCount)
	fmt.Fprintln(w)

	if len(r.FlaggedIngredients) > 0 {
		fmt.Fprintln(w, "─── Flagged ───────────────────────────────────────────")
		for _, f := range r.FlaggedIngredients {
			fmt.Fprintf(w, "  %-24s severity %.2f (%s)\n", f.Ingredient, f.Severity, f.RiskLevel)
			for _, reason := range f.Reasons {
				fmt.Fprintf(w, "     Reason: %s\n", reason)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.UnknownIngredients) > 0 {
		fmt.Fprintln(w, "─── Not in catalog ────────────────────────────────────")
		fmt.Fprintf(w, "  %s\n", strings.Join(r.UnknownIngredients, ", "))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  %s\n", r.Summary)
}
