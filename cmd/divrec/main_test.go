package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/divrec/internal/adapter/report"
	"github.com/iho/divrec/internal/infrastructure/config"
)

const holdingsCSV = "isin,record_date,client_number,product_code,account_number,shares\n" +
	"GB00TEST0001,2026-01-01,12345678,22,1234567822,100\n"

func testConfig() *config.Config {
	return &config.Config{
		ResidualTolerance:  "0.01",
		MetricsJob:         "divrec",
		MetricsPushTimeout: time.Second,
	}
}

func setRunFlags(t *testing.T, internal, crest, outDir string) {
	t.Helper()

	flagISIN = "GB00TEST0001"
	flagRecordDate = "2026-01-01"
	flagPayDate = "2026-01-15"
	flagRate = "0.1"
	flagInternal = internal
	flagCrest = crest
	flagOutDir = outDir
	flagRunID = "RUN1"
	flagTolerance = ""
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	return path
}

func TestExecuteRunSettles(t *testing.T) {
	crest := "isin,record_date,pay_date,crest_bucket,shares,dividend_per_share,cash_credited\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,ISA,100,0.1,10.00\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,SIPP,0,0.1,0.00\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,GIA,0,0.1,0.00\n"

	outDir := t.TempDir()
	setRunFlags(t,
		writeInput(t, "holdings.csv", holdingsCSV),
		writeInput(t, "crest.csv", crest),
		outDir,
	)

	code := executeRun(context.Background(), testConfig(), zerolog.Nop())
	if code != exitSettled {
		t.Fatalf("expected exit %d for settled run, got %d", exitSettled, code)
	}

	runDir := filepath.Join(outDir, "GB00TEST0001", "2026-01-01_2026-01-15", "RUN1")
	for _, name := range []string{report.FileCredit, report.FileRecon, report.FileSummary, report.FileChecksums} {
		if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(runDir, report.FileBreaks)); !os.IsNotExist(err) {
		t.Fatalf("expected no break report for settled run")
	}
}

func TestExecuteRunFailsWithBreaks(t *testing.T) {
	crest := "isin,record_date,pay_date,crest_bucket,shares,dividend_per_share,cash_credited\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,ISA,150,0.1,15.00\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,SIPP,0,0.1,0.00\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,GIA,0,0.1,0.00\n"

	outDir := t.TempDir()
	setRunFlags(t,
		writeInput(t, "holdings.csv", holdingsCSV),
		writeInput(t, "crest.csv", crest),
		outDir,
	)

	code := executeRun(context.Background(), testConfig(), zerolog.Nop())
	if code != exitFailed {
		t.Fatalf("expected exit %d for failed run, got %d", exitFailed, code)
	}

	runDir := filepath.Join(outDir, "GB00TEST0001", "2026-01-01_2026-01-15", "RUN1")
	if _, err := os.Stat(filepath.Join(runDir, report.FileBreaks)); err != nil {
		t.Fatalf("expected break report: %v", err)
	}
	if _, err := os.Stat(filepath.Join(runDir, report.FileCredit)); !os.IsNotExist(err) {
		t.Fatalf("expected no credit file for failed run")
	}
}

func TestExecuteRunInputError(t *testing.T) {
	bad := "isin,record_date,client_number,product_code,account_number,shares\n" +
		"GB00TEST0001,2026-01-01,123,22,12322,100\n"

	crest := "isin,record_date,pay_date,crest_bucket,shares,dividend_per_share,cash_credited\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,ISA,100,0.1,10.00\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,SIPP,0,0.1,0.00\n" +
		"GB00TEST0001,2026-01-01,2026-01-15,GIA,0,0.1,0.00\n"

	setRunFlags(t,
		writeInput(t, "holdings.csv", bad),
		writeInput(t, "crest.csv", crest),
		t.TempDir(),
	)

	code := executeRun(context.Background(), testConfig(), zerolog.Nop())
	if code != exitInputError {
		t.Fatalf("expected exit %d for input error, got %d", exitInputError, code)
	}
}

func TestExecuteRunRejectsBadRate(t *testing.T) {
	setRunFlags(t,
		writeInput(t, "holdings.csv", holdingsCSV),
		writeInput(t, "crest.csv", "x\n"),
		t.TempDir(),
	)
	flagRate = "not-a-number"

	code := executeRun(context.Background(), testConfig(), zerolog.Nop())
	if code != exitInputError {
		t.Fatalf("expected exit %d for bad rate, got %d", exitInputError, code)
	}
}

func TestExecuteRunRejectsNegativeTolerance(t *testing.T) {
	setRunFlags(t,
		writeInput(t, "holdings.csv", holdingsCSV),
		writeInput(t, "crest.csv", "x\n"),
		t.TempDir(),
	)
	flagTolerance = "-0.01"

	code := executeRun(context.Background(), testConfig(), zerolog.Nop())
	if code != exitInputError {
		t.Fatalf("expected exit %d for negative tolerance, got %d", exitInputError, code)
	}
}
