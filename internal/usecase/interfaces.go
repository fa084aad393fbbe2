package usecase

import (
	"context"

	"github.com/iho/divrec/internal/domain"
)

// HoldingsReader loads the internal holdings snapshot from a tabular source.
type HoldingsReader interface {
	ReadHoldings(ctx context.Context, path string) ([]domain.Holding, error)
}

// SnapshotReader loads the authoritative settlement snapshot.
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, path string) ([]domain.SnapshotRow, error)
}

// ReportWriter persists run artifacts into the run directory. The writer owns
// the persisted representation; the engine only guarantees the outputs it
// hands over are mutually consistent.
type ReportWriter interface {
	WritePostings(ctx context.Context, dir string, postings []domain.Posting) error
	WriteReconReport(ctx context.Context, dir string, outcome domain.RunOutcome) error
	WriteBreakReport(ctx context.Context, dir string, breaks []domain.Break) error
	WriteRunSummary(ctx context.Context, dir string, summary RunSummary) error
	WriteChecksums(ctx context.Context, dir string) error
}

// AuditLog appends structured audit events for one run.
type AuditLog interface {
	Event(event string, fields map[string]any)
	Close() error
}

// AuditOpenerFunc opens an audit log rooted in the run directory.
type AuditOpenerFunc func(dir string) (AuditLog, error)

// IDGenerator produces run identifiers when the caller does not supply one.
type IDGenerator interface {
	Generate() string
}
