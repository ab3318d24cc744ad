package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func diagnose(t *testing.T, logPath string, opts *DiagnoseOptions) string {
	t.Helper()
	ExitCode = 0
	t.Cleanup(func() { ExitCode = 0 })

	var buf bytes.Buffer
	if err := runDiagnose(context.Background(), &buf, logPath, opts); err != nil {
		t.Fatalf("runDiagnose() error = %v", err)
	}
	return buf.String()
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "times.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDiagnoseCommand(t *testing.T) {
	cmd := NewDiagnoseCommand()
	if cmd.Use != "diagnose" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	for _, flag := range []string{"config", "verbose"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestRunDiagnose_Healthy(t *testing.T) {
	out := diagnose(t, writeLog(t, fixture(t)), &DiagnoseOptions{Verbose: true})

	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
	for _, want := range []string{
		"[PASS] Category: Secuencial",
		"2 run(s) with totals",
		"6 total(s) parsed",
		"CUDA line 28: 150.0 -> 0.150 s",
		"Log looks good!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRunDiagnose_MissingLog(t *testing.T) {
	out := diagnose(t, filepath.Join(t.TempDir(), "times.txt"), &DiagnoseOptions{})

	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
	if !strings.Contains(out, "Log file not found") {
		t.Errorf("output missing not-found message\n%s", out)
	}
}

func TestRunDiagnose_EmptyLog(t *testing.T) {
	out := diagnose(t, writeLog(t, ""), &DiagnoseOptions{})

	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
	if !strings.Contains(out, "Log file is empty") {
		t.Errorf("output missing empty warning\n%s", out)
	}
	if !strings.Contains(out, "No runs found") {
		t.Errorf("output missing no-runs warning\n%s", out)
	}
}

func TestRunDiagnose_HeaderWithoutTotal(t *testing.T) {
	content := "Tiempo 1 para OpenMP\nTiempo de CPU total: 1.000 segundos\n" +
		"Tiempo 2 para OpenMP\nSegmentation fault\n"
	out := diagnose(t, writeLog(t, content), &DiagnoseOptions{})

	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
	if !strings.Contains(out, "[WARN] Category: OpenMP") {
		t.Errorf("output missing OpenMP warning\n%s", out)
	}
	if !strings.Contains(out, "2 run(s), 1 without a total line") {
		t.Errorf("output missing run counts\n%s", out)
	}
}

func TestRunDiagnose_MalformedValue(t *testing.T) {
	content := "Tiempo 1 para Secuencial\nTiempo de CPU total: 2..5 segundos\n"
	out := diagnose(t, writeLog(t, content), &DiagnoseOptions{})

	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
	if !strings.Contains(out, "[FAIL] Values") {
		t.Errorf("output missing values failure\n%s", out)
	}
	if !strings.Contains(out, "line 2") {
		t.Errorf("output missing line number\n%s", out)
	}
}

func TestRunDiagnose_BadConfig(t *testing.T) {
	out := diagnose(t, writeLog(t, fixture(t)), &DiagnoseOptions{ConfigFile: "/nonexistent/style.yaml"})

	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
	if !strings.Contains(out, "[FAIL] Configuration") {
		t.Errorf("output missing configuration failure\n%s", out)
	}
}
