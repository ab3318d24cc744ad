// Package cli provides the command-line interface for tiempos.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/tiempos/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors prevents Cobra from printing this
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command. Run without a subcommand
// it behaves like "tiempos report".
func NewRootCommand() *cobra.Command {
	reportCmd := commands.NewReportCommand()

	rootCmd := &cobra.Command{
		Use:   "tiempos",
		Short: "Average benchmark run times and chart them",
		Long: `tiempos reads times.txt, averages the total time of the Sequential, OpenMP
and CUDA benchmark runs and saves the averages as a bar chart.

Run without a subcommand to produce the report.`,
		Args:          cobra.NoArgs,
		RunE:          reportCmd.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Report flags are shared so "tiempos -o json" works without "report".
	rootCmd.Flags().AddFlagSet(reportCmd.Flags())

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
