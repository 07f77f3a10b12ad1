package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/normalize"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the ingredient catalog and conflict rules",
	Long: `Inspect the ingredient knowledge base and the conflict rule table that
analyses run against, after enabled packs are merged.

Examples:
  labelshield catalog list          # All known ingredients
  labelshield catalog show gelatin  # One ingredient and its rules
  labelshield catalog tags          # Every risk tag and its rules
  labelshield catalog dump          # Full catalog as YAML`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known ingredients",
	RunE:  catalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <ingredient>",
	Short: "Show one ingredient with the rules its tags carry",
	Args:  cobra.ExactArgs(1),
	RunE:  catalogShow,
}

var catalogTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List risk tags and their conflict rules",
	RunE:  catalogTags,
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the merged catalog as YAML",
	RunE:  catalogDump,
}

func init() {
	catalogCmd.PersistentFlags().BoolVar(&catalogJSON, "json", false, "Print as JSON")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogTagsCmd)
	catalogCmd.AddCommand(catalogDumpCmd)
	rootCmd.AddCommand(catalogCmd)
}

func currentCatalog() (*catalog.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cat, _, err := loadCatalog(cfg)
	return cat, err
}

func catalogList(cmd *cobra.Command, args []string) error {
	cat, err := currentCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	names := cat.KnownIngredients()
	if catalogJSON {
		return printJSON(out, map[string]any{"version": cat.Version(), "ingredients": names})
	}

	fmt.Fprintf(out, "Catalog %s: %d ingredients\n", cat.Version(), len(names))
	fmt.Fprintln(out, strings.Repeat("─", 60))
	for _, name := range names {
		ing, _ := cat.Lookup(name)
		fmt.Fprintf(out, "  %-28s %-18s %s\n", name, ing.Category, strings.Join(ing.RiskTags, ", "))
	}
	return nil
}

func catalogShow(cmd *cobra.Command, args []string) error {
	cat, err := currentCatalog()
	if err != nil {
		return err
	}

	name := normalize.Name(args[0])
	ing, ok := cat.Lookup(name)
	if !ok {
		return fmt.Errorf("ingredient '%s' is not in the catalog", name)
	}

	out := cmd.OutOrStdout()
	if catalogJSON {
		rules := map[string][]catalog.ConflictRule{}
		for _, tag := range ing.RiskTags {
			rules[tag] = cat.ConflictsForTag(tag)
		}
		return printJSON(out, map[string]any{"name": name, "ingredient": ing, "rules": rules})
	}

	fmt.Fprintf(out, "%s\n", name)
	fmt.Fprintf(out, "  Category:    %s\n", ing.Category)
	if ing.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", ing.Description)
	}
	fmt.Fprintln(out)
	for _, tag := range ing.RiskTags {
		printTagRules(out, tag, cat.ConflictsForTag(tag))
	}
	return nil
}

func catalogTags(cmd *cobra.Command, args []string) error {
	cat, err := currentCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tags := cat.KnownTags()
	if catalogJSON {
		rules := make(map[string][]catalog.ConflictRule, len(tags))
		for _, tag := range tags {
			rules[tag] = cat.ConflictsForTag(tag)
		}
		return printJSON(out, rules)
	}

	for _, tag := range tags {
		printTagRules(out, tag, cat.ConflictsForTag(tag))
	}
	fmt.Fprintln(out, "Penalty points:")
	for _, dim := range catalog.Dimensions() {
		fmt.Fprintf(out, "  %-20s %.0f\n", dim, cat.PenaltyPoints(dim))
	}
	return nil
}

func catalogDump(cmd *cobra.Command, args []string) error {
	cat, err := currentCatalog()
	if err != nil {
		return err
	}
	data, err := catalog.Marshal(cat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func printTagRules(out io.Writer, tag string, rules []catalog.ConflictRule) {
	fmt.Fprintf(out, "  [%s]\n", tag)
	if len(rules) == 0 {
		fmt.Fprintln(out, "     (no rules)")
	}
	for _, r := range rules {
		fmt.Fprintf(out, "     %-20s %-22s weight %.2f  %s\n", r.Dimension, r.ProfileValue, r.Weight, r.Reason)
	}
	fmt.Fprintln(out)
}
