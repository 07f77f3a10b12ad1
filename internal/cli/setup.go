package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/config"
)

var setupForce bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write default config, catalog and an example pack",
	Long: `Initialize ~/.labelshield with editable defaults:

  config.yaml           storage, cache and server settings
  catalog.yaml          the built-in catalog, ready to customize
  packs/_sulfites.yaml  an example catalog pack (disabled)

Existing files are left alone unless --force is given.

  labelshield setup
  labelshield setup --force`,
	RunE: setupCommand,
}

func init() {
	setupCmd.Flags().BoolVar(&setupForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(setupCmd)
}

const defaultConfigYAML = `# LabelShield configuration. Environment variables LABELSHIELD_DB_PATH,
# LABELSHIELD_REDIS_ADDR and LABELSHIELD_ADDR override these values, and
# command-line flags override both.

# catalog_path: ~/.labelshield/catalog.yaml
# packs_dir: ~/.labelshield/packs
# log_path: ~/.labelshield/audit.jsonl
# db_path: ~/.labelshield/labelshield.db
log_redaction: true

server:
  addr: 127.0.0.1:8080

cache:
  backend: sqlite   # sqlite, redis or none
  # redis_addr: 127.0.0.1:6379
  ttl: 24h
`

const examplePackYAML = `name: sulfites
description: Sulfite preservatives for sulfite-sensitive and asthmatic users
version: "1.0"
author: labelshield
ingredients:
  sodium metabisulfite:
    category: preservative
    risk_tags: [sulfite]
  potassium metabisulfite:
    category: preservative
    risk_tags: [sulfite]
  sulfur dioxide:
    category: preservative
    risk_tags: [sulfite]
rules:
  sulfite:
    - dimension: allergy
      profile_value: sulfites
      weight: 1.0
      reason: Contains sulfites, which you are sensitive to
    - dimension: health_condition
      profile_value: asthma
      weight: 0.6
      reason: Sulfites can trigger asthma symptoms
`

func setupCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.PacksDir, 0700); err != nil {
		return fmt.Errorf("failed to create packs dir: %w", err)
	}

	catalogData, err := catalog.Marshal(catalog.Default())
	if err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}

	files := []struct {
		label string
		path  string
		data  []byte
	}{
		{"Config", filepath.Join(cfg.ConfigDir, config.DefaultConfigFile), []byte(defaultConfigYAML)},
		{"Catalog", cfg.CatalogPath, catalogData},
		{"Example pack", filepath.Join(cfg.PacksDir, "_sulfites.yaml"), []byte(examplePackYAML)},
	}

	out := cmd.OutOrStdout()
	for _, f := range files {
		if err := writeDefault(out, f.label, f.path, f.data, setupForce); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  labelshield pack enable sulfites")
	fmt.Fprintln(out, "  labelshield profile set me --allergy peanuts --diet vegan")
	fmt.Fprintln(out, "  labelshield analyze --user me --label \"Ingredients: peanuts, sugar, gelatin\"")
	return nil
}

func writeDefault(out io.Writer, label, path string, data []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "ℹ  %s already present: %s\n", label, path)
		return nil
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(out, "✅ %s written: %s\n", label, path)
	return nil
}
