package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/tiempos/internal/logging"
	"github.com/ccollicutt/tiempos/pkg/analyzer"
	"github.com/ccollicutt/tiempos/pkg/config"
	"github.com/ccollicutt/tiempos/pkg/display"
	"github.com/ccollicutt/tiempos/pkg/output"
	"github.com/ccollicutt/tiempos/pkg/parser"
	"github.com/ccollicutt/tiempos/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// chartViewer shows a rendered chart.
type chartViewer interface {
	Open(ctx context.Context, path string) error
}

// newViewer is replaced in tests.
var newViewer = func() chartViewer { return display.NewViewer() }

// ReportOptions holds command-line options for the report command.
type ReportOptions struct {
	ConfigFile string
	Output     string
	Categories []string
	Verbose    bool
	Quiet      bool
	NoChart    bool
	NoDisplay  bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Average benchmark times and draw the chart",
		Long: `Read ` + config.LogFile + ` from the current directory, average the total time of
every Sequential, OpenMP and CUDA run, print the averages in seconds and save
a bar chart to ` + config.ChartFile + `.

CUDA totals are logged in milliseconds and are converted to seconds.
A category without runs is reported as 0.000.

Exit codes:
  0 - Report written
  2 - Missing log, malformed value or runtime error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Style configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringSliceVar(&opts.Categories, "category", nil, "Report specific categories only (can be repeated)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show sample counts and debug logging")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Averages only, no heading")
	cmd.Flags().BoolVar(&opts.NoChart, "no-chart", false, "Do not render the chart")
	cmd.Flags().BoolVar(&opts.NoDisplay, "no-display", false, "Do not open the chart in a viewer")

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "always", "When to fire webhook (always|on_missing|never)")

	return cmd
}

func runReport(cmd *cobra.Command, opts *ReportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewOrNop(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(ctx, opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	a, err := analyzer.NewAnalyzer(cfg, analyzer.WithCategoryFilter(opts.Categories))
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	result, err := a.Analyze(ctx, parser.NewFileSource(config.LogFile))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	logger.Debug("timings extracted",
		zap.String("source", result.Metadata.Source),
		zap.Int("samples", result.Metadata.SamplesExtracted),
		zap.Strings("missing", result.MissingCategories()))

	report := output.NewReport(result, opts.ConfigFile)
	if !opts.NoChart {
		report.Metadata.ChartFile = config.ChartFile
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !opts.NoChart {
		renderer := output.NewChartRenderer(cfg.Chart, cfg.Categories)
		if err := renderer.Render(ctx, report, config.ChartFile); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		logger.Debug("chart written", zap.String("path", config.ChartFile))

		if !opts.NoDisplay {
			showChart(ctx, logger, config.ChartFile)
		}
	}

	// Webhook errors are reported but don't fail the run
	sendWebhooks(ctx, cfg, opts, report, cmd.ErrOrStderr())

	return nil
}

func createFormatter(opts *ReportOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// showChart opens the chart when a display is present. It never fails the run.
func showChart(ctx context.Context, logger *zap.Logger, path string) {
	err := newViewer().Open(ctx, path)
	switch {
	case err == nil:
		logger.Debug("chart opened", zap.String("path", path))
	case errors.Is(err, display.ErrHeadless):
		logger.Debug("no display, chart not shown")
	default:
		logger.Debug("could not open chart viewer", zap.Error(err))
	}
}

// sendWebhooks sends the report to all configured webhooks.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *ReportOptions, report *output.Report, w io.Writer) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasMissing()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(w, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(w, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ReportOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerAlways
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire for a report.
func shouldFireWebhook(trigger config.WebhookTrigger, hasMissing bool) bool {
	switch trigger {
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnMissing:
		return hasMissing
	default:
		return true
	}
}
