package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/divrec/internal/domain"
)

// RunStatus is the end state of a run as recorded in the run summary.
type RunStatus string

const (
	StatusSettled    RunStatus = "SETTLED"
	StatusFailed     RunStatus = "FAILED"
	StatusInputError RunStatus = "INPUT_ERROR"
)

// RunSummary is the machine-readable digest written alongside the reports.
type RunSummary struct {
	RunID       string    `json:"run_id"`
	ISIN        string    `json:"isin"`
	RecordDate  string    `json:"record_date"`
	PayDate     string    `json:"pay_date"`
	Status      RunStatus `json:"status"`
	ErrorCode   string    `json:"error_code,omitempty"`
	Holdings    int       `json:"holdings"`
	Postings    int       `json:"postings"`
	Breaks      int       `json:"breaks"`
	FailReasons []string  `json:"fail_reasons,omitempty"`
	Tolerance   string    `json:"residual_tolerance"`
}

// RunInput identifies one crediting run and its input files.
type RunInput struct {
	RunID        string // generated when empty
	ISIN         string
	RecordDate   string
	PayDate      string
	Rate         decimal.Decimal
	HoldingsPath string
	SnapshotPath string
	OutDir       string
	Tolerance    decimal.Decimal
}

// RunResult is the in-memory outcome of a completed reconciliation. A result
// with Outcome.Passed == false is a business failure, not an error: the run
// finished and reported its breaks.
type RunResult struct {
	RunID    string
	Dir      string
	Outcome  domain.RunOutcome
	Postings []domain.Posting
	Breaks   []domain.Break
}

// RunUseCase orchestrates one dividend crediting and reconciliation run:
// read, validate, compute, reconcile, report. All file handling lives in the
// injected collaborators.
type RunUseCase struct {
	holdings  HoldingsReader
	snapshot  SnapshotReader
	reports   ReportWriter
	openAudit AuditOpenerFunc
	idGen     IDGenerator
	log       zerolog.Logger
}

// NewRunUseCase creates a new RunUseCase.
func NewRunUseCase(
	holdings HoldingsReader,
	snapshot SnapshotReader,
	reports ReportWriter,
	openAudit AuditOpenerFunc,
	idGen IDGenerator,
	log zerolog.Logger,
) *RunUseCase {
	return &RunUseCase{
		holdings:  holdings,
		snapshot:  snapshot,
		reports:   reports,
		openAudit: openAudit,
		idGen:     idGen,
		log:       log,
	}
}

// Execute performs one run. It returns an error only for input/validation
// failures (or report IO failures); reconciliation breaks are reported
// through the result. The audit log and run summary are written for every
// end state.
func (uc *RunUseCase) Execute(ctx context.Context, in RunInput) (*RunResult, error) {
	runID := in.RunID
	if runID == "" {
		runID = uc.idGen.Generate()
	}

	dir := filepath.Join(in.OutDir, in.ISIN, fmt.Sprintf("%s_%s", in.RecordDate, in.PayDate), runID)

	audit, err := uc.openAudit(dir)
	if err != nil {
		return nil, err
	}
	defer audit.Close()

	log := uc.log.With().Str("run_id", runID).Str("isin", in.ISIN).Logger()
	log.Info().
		Str("record_date", in.RecordDate).
		Str("pay_date", in.PayDate).
		Str("rate", in.Rate.String()).
		Msg("run started")

	audit.Event("run_started", map[string]any{
		"run_id":      runID,
		"isin":        in.ISIN,
		"record_date": in.RecordDate,
		"pay_date":    in.PayDate,
		"rate":        in.Rate.String(),
		"tolerance":   in.Tolerance.String(),
	})

	inputError := func(stage string, holdingsCount int, cause error) (*RunResult, error) {
		code := domain.Code(cause)
		if code == "" {
			code = "IO_ERROR"
		}

		log.Error().Err(cause).Str("stage", stage).Str("code", code).Msg("run aborted on input error")
		audit.Event("validation_failed", map[string]any{
			"stage": stage,
			"code":  code,
			"error": cause.Error(),
		})
		if werr := uc.reports.WriteRunSummary(ctx, dir, RunSummary{
			RunID:      runID,
			ISIN:       in.ISIN,
			RecordDate: in.RecordDate,
			PayDate:    in.PayDate,
			Status:     StatusInputError,
			ErrorCode:  code,
			Holdings:   holdingsCount,
			Tolerance:  in.Tolerance.String(),
		}); werr != nil {
			log.Error().Err(werr).Msg("failed to write run summary")
		}
		return nil, cause
	}

	holdings, err := uc.holdings.ReadHoldings(ctx, in.HoldingsPath)
	if err != nil {
		return inputError("read_holdings", 0, err)
	}
	audit.Event("holdings_loaded", map[string]any{"count": len(holdings), "path": in.HoldingsPath})

	rows, err := uc.snapshot.ReadSnapshot(ctx, in.SnapshotPath)
	if err != nil {
		return inputError("read_snapshot", len(holdings), err)
	}
	audit.Event("snapshot_loaded", map[string]any{"rows": len(rows), "path": in.SnapshotPath})

	if err := domain.ValidateHoldings(holdings); err != nil {
		return inputError("validate_holdings", len(holdings), err)
	}
	if err := domain.ValidateSnapshot(rows); err != nil {
		return inputError("validate_snapshot", len(holdings), err)
	}

	clientPostings, err := domain.ComputeClientPostings(holdings, runID, in.ISIN, in.RecordDate, in.PayDate, in.Rate)
	if err != nil {
		return inputError("compute_entitlements", len(holdings), err)
	}

	outcome, finalPostings, breaks, err := domain.Reconcile(domain.ReconcileInput{
		RunID:          runID,
		ISIN:           in.ISIN,
		RecordDate:     in.RecordDate,
		PayDate:        in.PayDate,
		Rate:           in.Rate,
		Holdings:       holdings,
		Snapshot:       rows,
		ClientPostings: clientPostings,
		Tolerance:      in.Tolerance,
	})
	if err != nil {
		return inputError("reconcile", len(holdings), err)
	}

	audit.Event("reconciliation_completed", map[string]any{
		"pass_run": outcome.Passed,
		"breaks":   len(breaks),
	})

	if err := uc.reports.WriteReconReport(ctx, dir, outcome); err != nil {
		return nil, err
	}
	if len(breaks) > 0 {
		if err := uc.reports.WriteBreakReport(ctx, dir, breaks); err != nil {
			return nil, err
		}
	}

	summary := RunSummary{
		RunID:       runID,
		ISIN:        in.ISIN,
		RecordDate:  in.RecordDate,
		PayDate:     in.PayDate,
		Holdings:    len(holdings),
		Postings:    len(finalPostings),
		Breaks:      len(breaks),
		FailReasons: outcome.FailReasons,
		Tolerance:   in.Tolerance.String(),
	}

	if outcome.Passed {
		if err := uc.reports.WritePostings(ctx, dir, finalPostings); err != nil {
			return nil, err
		}
		summary.Status = StatusSettled
		audit.Event("run_settled", map[string]any{"postings": len(finalPostings)})
		log.Info().Int("postings", len(finalPostings)).Msg("run settled")
	} else {
		summary.Status = StatusFailed
		audit.Event("run_failed", map[string]any{"fail_reasons": outcome.FailReasons})
		log.Warn().Strs("fail_reasons", outcome.FailReasons).Msg("run failed with breaks")
	}

	if err := uc.reports.WriteRunSummary(ctx, dir, summary); err != nil {
		return nil, err
	}
	if err := uc.reports.WriteChecksums(ctx, dir); err != nil {
		return nil, err
	}

	return &RunResult{
		RunID:    runID,
		Dir:      dir,
		Outcome:  outcome,
		Postings: finalPostings,
		Breaks:   breaks,
	}, nil
}
