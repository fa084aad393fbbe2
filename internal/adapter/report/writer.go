// Package report persists the run artifacts: settlement file, reconciliation
// report, break report, run summary and a checksum manifest.
package report

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iho/divrec/internal/domain"
	"github.com/iho/divrec/internal/usecase"
)

// Artifact file names inside a run directory.
const (
	FileCredit    = "credit_file.csv"
	FileRecon     = "recon_report.csv"
	FileBreaks    = "break_report.csv"
	FileSummary   = "run_summary.json"
	FileAudit     = "audit_log.jsonl"
	FileChecksums = "checksums.sha256"
)

var creditColumns = []string{
	"run_id",
	"isin",
	"record_date",
	"pay_date",
	"client_number",
	"product_code",
	"account_number",
	"crest_bucket",
	"shares",
	"dividend_per_share",
	"cash_credited",
	"line_type",
}

var reconColumns = []string{
	"run_id",
	"isin",
	"record_date",
	"pay_date",
	"crest_bucket",
	"crest_shares",
	"internal_shares",
	"shares_diff",
	"crest_cash",
	"internal_cash_pre_residual",
	"residual_to_house",
	"internal_cash_post_residual",
	"cash_diff_post_residual",
	"pass_bucket",
	"pass_run",
}

var breakColumns = []string{
	"run_id",
	"isin",
	"crest_bucket",
	"break_type",
	"details",
	"crest_value",
	"internal_value",
}

// Writer implements usecase.ReportWriter on the local filesystem.
type Writer struct{}

// NewWriter creates a new report Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WritePostings writes the settlement (credit) file.
func (w *Writer) WritePostings(ctx context.Context, dir string, postings []domain.Posting) error {
	rows := make([][]string, 0, len(postings))
	for _, p := range postings {
		rows = append(rows, []string{
			p.RunID,
			p.ISIN,
			p.RecordDate,
			p.PayDate,
			p.ClientNumber,
			strconv.Itoa(p.ProductCode),
			p.AccountNumber,
			string(p.Bucket),
			strconv.FormatInt(p.Shares, 10),
			p.Rate.String(),
			p.Cash.StringFixed(2),
			string(p.Kind),
		})
	}
	return writeCSV(filepath.Join(dir, FileCredit), creditColumns, rows)
}

// WriteReconReport writes the per-bucket reconciliation report.
func (w *Writer) WriteReconReport(ctx context.Context, dir string, outcome domain.RunOutcome) error {
	passRun := strconv.FormatBool(outcome.Passed)

	rows := make([][]string, 0, len(outcome.Buckets))
	for _, b := range outcome.Buckets {
		rows = append(rows, []string{
			outcome.RunID,
			outcome.ISIN,
			outcome.RecordDate,
			outcome.PayDate,
			string(b.Bucket),
			strconv.FormatInt(b.AuthoritativeShares, 10),
			strconv.FormatInt(b.InternalShares, 10),
			strconv.FormatInt(b.SharesDiff, 10),
			b.AuthoritativeCash.StringFixed(2),
			b.InternalCashPre.StringFixed(2),
			b.ResidualToHouse.StringFixed(2),
			b.InternalCashPost.StringFixed(2),
			b.CashDiffPost.StringFixed(2),
			strconv.FormatBool(b.Passed),
			passRun,
		})
	}
	return writeCSV(filepath.Join(dir, FileRecon), reconColumns, rows)
}

// WriteBreakReport writes the break report.
func (w *Writer) WriteBreakReport(ctx context.Context, dir string, breaks []domain.Break) error {
	rows := make([][]string, 0, len(breaks))
	for _, b := range breaks {
		rows = append(rows, []string{
			b.RunID,
			b.ISIN,
			string(b.Bucket),
			string(b.Type),
			b.Details,
			b.AuthoritativeValue,
			b.InternalValue,
		})
	}
	return writeCSV(filepath.Join(dir, FileBreaks), breakColumns, rows)
}

// WriteRunSummary writes the machine-readable run digest.
func (w *Writer) WriteRunSummary(ctx context.Context, dir string, summary usecase.RunSummary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(dir, FileSummary), data, 0o644); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}
	return nil
}

// WriteChecksums writes a SHA-256 manifest covering every artifact present in
// the run directory, in coreutils "sha256sum" format.
func (w *Writer) WriteChecksums(ctx context.Context, dir string) error {
	names := []string{FileCredit, FileRecon, FileBreaks, FileSummary, FileAudit}

	var manifest []byte
	for _, name := range names {
		sum, err := fileSHA256(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		manifest = append(manifest, fmt.Sprintf("%s  %s\n", sum, name)...)
	}

	if err := os.WriteFile(filepath.Join(dir, FileChecksums), manifest, 0o644); err != nil {
		return fmt.Errorf("write checksums: %w", err)
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", filepath.Base(path), err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
