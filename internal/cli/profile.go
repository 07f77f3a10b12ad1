package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/profile"
)

var (
	profileAllergies  []string
	profileDiets      []string
	profileConditions []string
	profileGoals      []string
	profileReplace    bool
	profileJSON       bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Read and update stored user profiles",
	Long: `Read and update the health profiles stored in the local database.

Only the fields given on the command line change; pass --replace to clear
the others. An empty value ("--allergy ''") clears a field.

Examples:
  labelshield profile get alice
  labelshield profile set alice --allergy peanuts --allergy milk
  labelshield profile set alice --diet vegan --replace`,
}

var profileGetCmd = &cobra.Command{
	Use:   "get <user>",
	Short: "Show the stored profile of a user",
	Args:  cobra.ExactArgs(1),
	RunE:  profileGet,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <user>",
	Short: "Update the stored profile of a user",
	Args:  cobra.ExactArgs(1),
	RunE:  profileSet,
}

func init() {
	profileCmd.PersistentFlags().BoolVar(&profileJSON, "json", false, "Print as JSON")
	profileSetCmd.Flags().StringArrayVar(&profileAllergies, "allergy", nil, "Allergy (repeatable)")
	profileSetCmd.Flags().StringArrayVar(&profileDiets, "diet", nil, "Dietary restriction (repeatable)")
	profileSetCmd.Flags().StringArrayVar(&profileConditions, "condition", nil, "Health condition (repeatable)")
	profileSetCmd.Flags().StringArrayVar(&profileGoals, "goal", nil, "Health goal (repeatable)")
	profileSetCmd.Flags().BoolVar(&profileReplace, "replace", false, "Replace the whole profile instead of merging")
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func profileGet(cmd *cobra.Command, args []string) error {
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

	p, err := a.svc.Profile(ctx, args[0])
	if err != nil {
		return err
	}
	return writeProfile(cmd.OutOrStdout(), args[0], p)
}

func profileSet(cmd *cobra.Command, args []string) error {
	upd := profileUpdateFromFlags(cmd)
	if upd.IsEmpty() {
		return fmt.Errorf("no profile fields provided")
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

	p, err := a.svc.UpdateProfile(ctx, args[0], upd)
	if err != nil {
		return err
	}
	return writeProfile(cmd.OutOrStdout(), args[0], p)
}

// profileUpdateFromFlags sets only the fields whose flag was passed.
func profileUpdateFromFlags(cmd *cobra.Command) profile.Update {
	var upd profile.Update
	fields := []struct {
		flag   string
		values []string
		dst    **[]string
	}{
		{"allergy", profileAllergies, &upd.Allergies},
		{"diet", profileDiets, &upd.DietaryRestrictions},
		{"condition", profileConditions, &upd.HealthConditions},
		{"goal", profileGoals, &upd.HealthGoals},
	}
	for _, f := range fields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		values := nonBlank(f.values)
		*f.dst = &values
	}

	if profileReplace && !upd.IsEmpty() {
		return profile.Replace(upd.Apply(profile.Profile{}))
	}
	return upd
}

func writeProfile(out io.Writer, userID string, p profile.Profile) error {
	p = p.Canonical()
	if profileJSON || !isTerminal() {
		return printJSON(out, p)
	}

	fmt.Fprintf(out, "Profile: %s\n", userID)
	fmt.Fprintln(out, strings.Repeat("─", 60))
	printProfileField(out, "Allergies", p.Allergies)
	printProfileField(out, "Dietary restrictions", p.DietaryRestrictions)
	printProfileField(out, "Health conditions", p.HealthConditions)
	printProfileField(out, "Health goals", p.HealthGoals)
	return nil
}

func printProfileField(out io.Writer, label string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(out, "  %-22s (none)\n", label+":")
		return
	}
	fmt.Fprintf(out, "  %-22s %s\n", label+":", strings.Join(values, ", "))
}

func nonBlank(values []string) []string {
	out := []string{}
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
