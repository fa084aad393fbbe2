package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/divrec/internal/adapter/csvio"
	"github.com/iho/divrec/internal/adapter/report"
	"github.com/iho/divrec/internal/domain"
	"github.com/iho/divrec/internal/infrastructure/audit"
	"github.com/iho/divrec/internal/infrastructure/config"
	"github.com/iho/divrec/internal/infrastructure/logger"
	"github.com/iho/divrec/internal/infrastructure/metrics"
	"github.com/iho/divrec/internal/infrastructure/runid"
	"github.com/iho/divrec/internal/usecase"
)

// Exit codes. Schedulers branch on these, so they are part of the contract.
const (
	exitSettled    = 0
	exitFailed     = 2
	exitInputError = 3
)

var (
	flagISIN       string
	flagRecordDate string
	flagPayDate    string
	flagRate       string
	flagInternal   string
	flagCrest      string
	flagOutDir     string
	flagRunID      string
	flagTolerance  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return exitInputError
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	exitCode := exitSettled

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one dividend crediting and reconciliation run",
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = executeRun(cmd.Context(), cfg, log)
			return nil
		},
	}

	runCmd.Flags().StringVar(&flagISIN, "isin", "", "ISIN of the dividend event")
	runCmd.Flags().StringVar(&flagRecordDate, "record-date", "", "Record date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&flagPayDate, "pay-date", "", "Pay date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&flagRate, "dividend-per-share", "", "Declared dividend per share")
	runCmd.Flags().StringVar(&flagInternal, "internal", "", "Path to the internal holdings CSV")
	runCmd.Flags().StringVar(&flagCrest, "crest", "", "Path to the CREST settlement snapshot CSV")
	runCmd.Flags().StringVar(&flagOutDir, "outdir", "out", "Root directory for run artifacts")
	runCmd.Flags().StringVar(&flagRunID, "run-id", "", "Run ID (generated when empty)")
	runCmd.Flags().StringVar(&flagTolerance, "tolerance", "", "Residual tolerance per bucket (defaults from RESIDUAL_TOLERANCE)")

	for _, name := range []string{"isin", "record-date", "pay-date", "dividend-per-share", "internal", "crest"} {
		if err := runCmd.MarkFlagRequired(name); err != nil {
			fmt.Fprintf(os.Stderr, "mark flag required: %v\n", err)
			return exitInputError
		}
	}

	rootCmd := &cobra.Command{
		Use:           "divrec",
		Short:         "Dividend crediting and reconciliation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInputError
	}
	return exitCode
}

func executeRun(ctx context.Context, cfg *config.Config, log zerolog.Logger) int {
	rate, err := decimal.NewFromString(flagRate)
	if err != nil {
		log.Error().Err(err).Str("dividend_per_share", flagRate).Msg("invalid dividend per share")
		return exitInputError
	}

	toleranceStr := flagTolerance
	if toleranceStr == "" {
		toleranceStr = cfg.ResidualTolerance
	}
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil || tolerance.IsNegative() {
		log.Error().Str("tolerance", toleranceStr).Msg("invalid residual tolerance")
		return exitInputError
	}

	m := metrics.New()
	m.RunsStarted.Inc()
	started := time.Now()

	uc := usecase.NewRunUseCase(
		csvio.NewHoldingsReader(),
		csvio.NewSnapshotReader(),
		report.NewWriter(),
		func(dir string) (usecase.AuditLog, error) { return audit.Open(dir) },
		runid.NewULIDGenerator(),
		log,
	)

	result, err := uc.Execute(ctx, usecase.RunInput{
		RunID:        flagRunID,
		ISIN:         flagISIN,
		RecordDate:   flagRecordDate,
		PayDate:      flagPayDate,
		Rate:         rate,
		HoldingsPath: flagInternal,
		SnapshotPath: flagCrest,
		OutDir:       flagOutDir,
		Tolerance:    tolerance,
	})

	m.RunDuration.Observe(time.Since(started).Seconds())

	code := exitSettled
	switch {
	case err != nil:
		m.InputErrors.Inc()
		if errCode := domain.Code(err); errCode != "" {
			log.Error().Err(err).Str("code", errCode).Msg("run rejected")
		} else {
			log.Error().Err(err).Msg("run failed on IO")
		}
		code = exitInputError
	case !result.Outcome.Passed:
		m.RunsFailed.Inc()
		for _, b := range result.Breaks {
			m.BreaksRecorded.WithLabelValues(string(b.Type)).Inc()
		}
		log.Warn().
			Str("run_id", result.RunID).
			Str("dir", result.Dir).
			Strs("fail_reasons", result.Outcome.FailReasons).
			Msg("run failed reconciliation")
		code = exitFailed
	default:
		m.RunsSettled.Inc()
		m.PostingsWritten.Add(float64(len(result.Postings)))
		log.Info().
			Str("run_id", result.RunID).
			Str("dir", result.Dir).
			Int("postings", len(result.Postings)).
			Msg("run settled")
	}

	pushCtx, cancel := context.WithTimeout(context.Background(), cfg.MetricsPushTimeout)
	defer cancel()
	if err := m.Push(pushCtx, cfg.MetricsPushgatewayURL, cfg.MetricsJob); err != nil {
		log.Warn().Err(err).Msg("metrics push failed")
	}

	return code
}
