// Package cli defines the demosh command-line surface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "demosh",
	Short: "Simulated shell session over a synthetic in-memory filesystem",
	Long: `demosh runs a demo shell session against a purely synthetic filesystem.
Nothing touches the real disk and no real processes are executed; the
session is ephemeral and resets on every start.

The simulated device is configured through an optional demosh.yaml profile
(prompt identity, host label, home path, extra seeded files).

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid session profile`,
	SilenceUsage: true,
	RunE:         runSession,
}

// Execute runs the root command.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
	rootCmd.Flags().StringP("config", "c", "", "Path to the session profile (default ./demosh.yaml)")
	rootCmd.Flags().Bool("plain", false, "Line-oriented output without terminal control sequences")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
