// Package main implements the vardiff CLI: word-level comparison of resume
// text files and move/edit reports for resume bullet lists.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	verbose bool
	plain   bool
)

var rootCmd = &cobra.Command{
	Use:   "vardiff",
	Short: "Compare resume variants against their base version",
	Long: `vardiff compares two versions of resume content: the base document
and an edited variant. It highlights word-level changes inline and reports
which bullets were reordered.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger = zap.NewNop()
		}
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styling, use +/- word markers")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(bulletsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
