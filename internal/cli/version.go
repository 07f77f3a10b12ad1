package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/catalog"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print LabelShield version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "LabelShield %s\n", Version)
		fmt.Fprintf(out, "  Commit:  %s\n", GitCommit)
		fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
		fmt.Fprintf(out, "  Catalog: %s (built-in)\n", catalog.Default().Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
