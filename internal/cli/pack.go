package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/catalog"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage catalog packs",
	Long: `Manage LabelShield catalog packs.

Catalog packs are YAML files that add ingredients and conflict rules for a
specific domain (regional allergens, supplements, additives). Packs are stored
in ~/.labelshield/packs/ and merged with the base catalog at runtime. A pack
whose file name starts with "_" is disabled.

Examples:
  labelshield pack list                  # List installed packs
  labelshield pack enable sulfites       # Enable a pack
  labelshield pack disable sulfites      # Disable a pack
  labelshield pack show sulfites         # Show pack contents`,
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed catalog packs",
	RunE:  packList,
}

var packEnableCmd = &cobra.Command{
	Use:   "enable <pack-name>",
	Short: "Enable a disabled catalog pack",
	Args:  cobra.ExactArgs(1),
	RunE:  packEnable,
}

var packDisableCmd = &cobra.Command{
	Use:   "disable <pack-name>",
	Short: "Disable a catalog pack (prefix with underscore)",
	Args:  cobra.ExactArgs(1),
	RunE:  packDisable,
}

var packShowCmd = &cobra.Command{
	Use:   "show <pack-name>",
	Short: "Show the contents of a catalog pack",
	Args:  cobra.ExactArgs(1),
	RunE:  packShow,
}

func init() {
	packCmd.AddCommand(packListCmd)
	packCmd.AddCommand(packEnableCmd)
	packCmd.AddCommand(packDisableCmd)
	packCmd.AddCommand(packShowCmd)
	rootCmd.AddCommand(packCmd)
}

func packsDir() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfg.PacksDir, 0700); err != nil {
		return "", err
	}
	return cfg.PacksDir, nil
}

func packList(cmd *cobra.Command, args []string) error {
	dir, err := packsDir()
	if err != nil {
		return err
	}

	_, infos, err := catalog.LoadPacks(dir, catalog.Default())
	if err != nil {
		return fmt.Errorf("failed to load packs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(infos) == 0 {
		fmt.Fprintln(out, "No catalog packs installed.")
		fmt.Fprintf(out, "\nTo install packs, copy YAML files to: %s\n", dir)
		return nil
	}

	fmt.Fprintln(out, "Installed Catalog Packs:")
	fmt.Fprintln(out, strings.Repeat("─", 60))
	for _, info := range infos {
		status := "✅"
		if !info.Enabled {
			status = "❌"
		}
		if info.Err != nil {
			fmt.Fprintf(out, "  ⚠️   %-25s invalid: %v\n", info.Name, info.Err)
			continue
		}
		fmt.Fprintf(out, "  %s  %-25s %s\n", status, info.Name, info.Description)
		if info.Version != "" {
			fmt.Fprintf(out, "       v%s by %s  (%d ingredients, %d rules)\n", info.Version, info.Author, info.IngredientCount, info.RuleCount)
		}
	}
	fmt.Fprintln(out, strings.Repeat("─", 60))
	fmt.Fprintf(out, "\nPacks directory: %s\n", dir)
	return nil
}

func packEnable(cmd *cobra.Command, args []string) error {
	dir, err := packsDir()
	if err != nil {
		return err
	}
	msg, err := setPackEnabled(dir, args[0], true)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func packDisable(cmd *cobra.Command, args []string) error {
	dir, err := packsDir()
	if err != nil {
		return err
	}
	msg, err := setPackEnabled(dir, args[0], false)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

// setPackEnabled renames <name>.yaml to and from _<name>.yaml.
func setPackEnabled(dir, name string, enable bool) (string, error) {
	enabledPath := filepath.Join(dir, name+".yaml")
	disabledPath := filepath.Join(dir, "_"+name+".yaml")

	from, to := disabledPath, enabledPath
	done := fmt.Sprintf("✅ Pack '%s' enabled.", name)
	already := fmt.Sprintf("Pack '%s' is already enabled.", name)
	if !enable {
		from, to = enabledPath, disabledPath
		done = fmt.Sprintf("❌ Pack '%s' disabled.", name)
		already = fmt.Sprintf("Pack '%s' is already disabled.", name)
	}

	if _, err := os.Stat(from); err == nil {
		if err := os.Rename(from, to); err != nil {
			return "", fmt.Errorf("failed to rename pack: %w", err)
		}
		return done, nil
	}

	if _, err := os.Stat(to); err == nil {
		return already, nil
	}

	return "", fmt.Errorf("pack '%s' not found in %s", name, dir)
}

func packShow(cmd *cobra.Command, args []string) error {
	dir, err := packsDir()
	if err != nil {
		return err
	}

	name := args[0]

	// Try enabled, then disabled
	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(dir, "_"+name+".yaml")
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("pack '%s' not found in %s", name, dir)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
