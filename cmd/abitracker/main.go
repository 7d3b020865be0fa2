package main

import (
	"fmt"
	"os"

	"github.com/obentoo/abitracker/internal/common/logger"
	"github.com/obentoo/abitracker/internal/common/output"
	"github.com/obentoo/abitracker/internal/common/version"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "abitracker",
	Short: "Count today's package upgrades versus rebuilds",
	Long: `Read the pacman transaction log and report how many packages upgraded today
were legitimate upgrades (the version changed) versus rebuilds (only the
release number changed, usually because another package broke its ABI).

Run without arguments to print the one-line summary:

  [abitracker]: Packages upgraded today had 3 legitimate upgrades, versus 12 that had to be rebuilt due to other packages

Examples:
  abitracker                        # Summary for today
  abitracker --list                 # List every package before the summary
  abitracker --format json          # Machine-readable report
  abitracker --log ./pacman.log     # Read another log file`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor || !output.IsTerminal() {
			output.NoColor()
		}
	},
	Run: runReport,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate(version.Info())
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/abitracker/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
