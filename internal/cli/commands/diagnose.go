package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/tiempos/pkg/config"
	"github.com/ccollicutt/tiempos/pkg/parser"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	ConfigFile string
	Verbose    bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Check the benchmark log for problems",
		Long: `Check ` + config.LogFile + ` before reporting.

This command looks for:
- A missing or empty log file
- Categories with no runs
- Runs whose header has no total line (crashed or killed runs)
- Totals that are not valid numbers

Exits with code 1 when errors are found.

Example:
  tiempos diagnose
  tiempos diagnose -v  # verbose output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd.Context(), cmd.OutOrStdout(), config.LogFile, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Style configuration file (YAML)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, w io.Writer, logPath string, opts *DiagnoseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	results := []DiagnosticResult{}

	cfg, result := checkConfig(ctx, opts.ConfigFile)
	results = append(results, result)
	if result.Status == "error" {
		return finishDiagnostics(w, results, opts)
	}

	result = checkLogExists(logPath)
	results = append(results, result)
	if result.Status == "error" {
		return finishDiagnostics(w, results, opts)
	}

	text, err := parser.NewFileSource(logPath).Read(ctx)
	if err != nil {
		results = append(results, DiagnosticResult{
			Check:   "Log File",
			Status:  "error",
			Message: err.Error(),
		})
		return finishDiagnostics(w, results, opts)
	}

	extractor := parser.NewExtractor(cfg.Categories)
	results = append(results, checkBlocks(cfg, extractor, text)...)
	results = append(results, checkValues(ctx, extractor, text))

	return finishDiagnostics(w, results, opts)
}

func checkConfig(ctx context.Context, path string) (*config.Config, DiagnosticResult) {
	result := DiagnosticResult{Check: "Configuration"}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to load config: %v", err)
		result.Suggests = []string{"Run 'tiempos validate <config-file>' for details"}
		return nil, result
	}

	result.Status = "ok"
	if path == "" {
		result.Message = "Using built-in categories"
	} else {
		result.Message = fmt.Sprintf("Loaded %s", path)
	}
	for _, cat := range cfg.Categories {
		result.Details = append(result.Details, fmt.Sprintf("%s: %s", cat.Label, cat.CompiledPattern()))
	}
	return cfg, result
}

func checkLogExists(path string) DiagnosticResult {
	result := DiagnosticResult{Check: "Log File"}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Log file not found: %s", path)
		result.Suggests = []string{
			"Run tiempos from the directory containing " + config.LogFile,
		}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access log file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "warning"
		result.Message = "Log file is empty; every category will report 0.000"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkBlocks(cfg *config.Config, extractor *parser.Extractor, text *parser.LogText) []DiagnosticResult {
	counts := extractor.CountHeaders(text)
	results := make([]DiagnosticResult, 0, len(counts))

	for i, count := range counts {
		label := cfg.Categories[i].Label
		result := DiagnosticResult{Check: fmt.Sprintf("Category: %s", label)}

		switch {
		case count.Headers == 0:
			result.Status = "warning"
			result.Message = "No runs found; average will be 0.000"
			result.Suggests = []string{fmt.Sprintf("Expected lines matching %q", cfg.Categories[i].Header)}
		case count.Blocks < count.Headers:
			result.Status = "warning"
			result.Message = fmt.Sprintf("%d run(s), %d without a total line", count.Headers, count.Headers-count.Blocks)
			result.Suggests = []string{"Runs without a total are usually crashed or killed benchmarks"}
		default:
			result.Status = "ok"
			result.Message = fmt.Sprintf("%d run(s) with totals", count.Blocks)
		}

		results = append(results, result)
	}

	return results
}

func checkValues(ctx context.Context, extractor *parser.Extractor, text *parser.LogText) DiagnosticResult {
	result := DiagnosticResult{Check: "Values"}

	extraction, err := extractor.Extract(ctx, text)
	if err != nil {
		result.Status = "error"
		result.Message = err.Error()
		if errors.Is(err, parser.ErrParse) {
			result.Suggests = []string{"Fix or remove the malformed total; reporting aborts on it"}
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%d total(s) parsed", extraction.Total())
	for _, set := range extraction.Sets {
		for _, s := range set.Samples {
			result.Details = append(result.Details,
				fmt.Sprintf("%s line %d: %s -> %.3f s", set.Label, s.LineNum, s.Raw, s.Value))
		}
	}
	return result
}

func finishDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) error {
	if printDiagnostics(w, results, opts) > 0 {
		ExitCode = 1
	}
	return nil
}

// printDiagnostics writes the results and returns the number of errors.
func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) int {
	fmt.Fprintln(w, "=== tiempos Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	switch {
	case errCount > 0:
		fmt.Fprintln(w, "\nFix the errors above before reporting.")
	case warnCount > 0:
		fmt.Fprintln(w, "\nThe report will run but some averages may be 0.000 or incomplete.")
	default:
		fmt.Fprintln(w, "\nLog looks good!")
	}

	return errCount
}
