package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gzhole/labelshield/internal/logger"
	"github.com/gzhole/labelshield/internal/profile"
	"github.com/gzhole/labelshield/internal/scoring"
	"github.com/gzhole/labelshield/internal/service"
)

var (
	analyzeLabel       string
	analyzeFile        string
	analyzeAllergies   []string
	analyzeDiets       []string
	analyzeConditions  []string
	analyzeGoals       []string
	analyzeProfileFile string
	analyzeUser        string
	analyzeJSON        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ingredient...]",
	Short: "Score an ingredient list against a health profile",
	Long: `Score an ingredient list against a health profile.

Ingredients come from the arguments, from --label (raw label text split on
commas and semicolons) or from --file. The profile comes from the
--allergy/--diet/--condition/--goal flags, a --profile-file, or the stored
profile of --user.

Examples:
  labelshield analyze peanuts sugar water --allergy peanuts
  labelshield analyze --label "Ingredients: wheat flour, milk, salt" --diet vegan
  labelshield analyze --file label.txt --profile-file me.yaml
  labelshield analyze gelatin --user alice --json`,
	RunE: analyzeCommand,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLabel, "label", "", "Raw label text to split into ingredients")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "File containing raw label text")
	analyzeCmd.Flags().StringArrayVar(&analyzeAllergies, "allergy", nil, "Allergy (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeDiets, "diet", nil, "Dietary restriction (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeConditions, "condition", nil, "Health condition (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeGoals, "goal", nil, "Health goal (repeatable)")
	analyzeCmd.Flags().StringVar(&analyzeProfileFile, "profile-file", "", "YAML or JSON profile file")
	analyzeCmd.Flags().StringVar(&analyzeUser, "user", "", "Use the stored profile of this user")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeCommand(cmd *cobra.Command, args []string) error {
	req, err := buildAnalyzeRequest(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := openApp(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	resp, err := a.svc.Analyze(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON || !isTerminal() {
		return printJSON(out, resp.Result)
	}
	printResult(out, resp.Result)
	return nil
}

func buildAnalyzeRequest(args []string) (service.Request, error) {
	req := service.Request{
		Source:      logger.SourceCLI,
		UserID:      analyzeUser,
		Ingredients: args,
		LabelText:   analyzeLabel,
	}

	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return req, fmt.Errorf("failed to read label file: %w", err)
		}
		req.LabelText = string(data)
	}

	p, explicit, err := buildProfile()
	if err != nil {
		return req, err
	}
	if explicit {
		req.Profile = &p
	}
	return req, nil
}

// buildProfile assembles the profile from --profile-file and the per-field
// flags. explicit is false when neither was given, so a stored profile can
// be used instead.
func buildProfile() (p profile.Profile, explicit bool, err error) {
	if analyzeProfileFile != "" {
		p, err = readProfileFile(analyzeProfileFile)
		if err != nil {
			return p, false, err
		}
		explicit = true
	}

	if len(analyzeAllergies)+len(analyzeDiets)+len(analyzeConditions)+len(analyzeGoals) > 0 {
		p.Allergies = append(p.Allergies, analyzeAllergies...)
		p.DietaryRestrictions = append(p.DietaryRestrictions, analyzeDiets...)
		p.HealthConditions = append(p.HealthConditions, analyzeConditions...)
		p.HealthGoals = append(p.HealthGoals, analyzeGoals...)
		explicit = true
	}
	return p, explicit, nil
}

// readProfileFile parses a YAML (or JSON, which is valid YAML) mapping of
// profile fields.
func readProfileFile(path string) (profile.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return profile.Profile{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if raw == nil {
		return profile.Profile{}, nil
	}
	return scoring.DecodeProfile(raw)
}
