package cli

import (
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	logPath     string
	dbPath      string
	addr        string
)

var rootCmd = &cobra.Command{
	Use:   "labelshield",
	Short: "LabelShield - ingredient risk scoring against a personal health profile",
	Long: `LabelShield is a local-first ingredient analyzer. It checks a product's
ingredient list against your allergies, dietary restrictions, health
conditions and health goals, and returns a deterministic 0-100 compatibility
score with a plain-language explanation of every conflict it found.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to catalog YAML file (default: ~/.labelshield/catalog.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.labelshield/audit.jsonl)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default: ~/.labelshield/labelshield.db)")
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "Listen address for serve (default: 127.0.0.1:8080)")
}

func Execute() error {
	return rootCmd.Execute()
}
