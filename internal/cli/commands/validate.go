package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/tiempos/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a style configuration file",
		Long: `Validate a tiempos style configuration file without reading any log.

Checks:
  - YAML syntax
  - Required category fields
  - Header and total pattern validity
  - Colors, divisors and chart size
  - Webhook URLs and triggers`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Categories: %d\n", len(cfg.Categories))
	fmt.Fprintf(w, "  Webhooks:   %d\n", len(cfg.Webhooks))

	fmt.Fprintf(w, "\nCategories:\n")
	for i, cat := range cfg.Categories {
		fmt.Fprintf(w, "  %d. %s (%s, %s)\n", i+1, cat.Label, cat.Name, cat.Color)
		if cat.Divisor != 1 {
			fmt.Fprintf(w, "     values divided by %g\n", cat.Divisor)
		}
	}

	fmt.Fprintf(w, "\nChart: %q, %gx%g in\n", cfg.Chart.Title, cfg.Chart.Width, cfg.Chart.Height)

	return nil
}
