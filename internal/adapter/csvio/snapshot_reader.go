package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iho/divrec/internal/domain"
)

var snapshotColumns = []string{
	"isin",
	"record_date",
	"pay_date",
	"crest_bucket",
	"shares",
	"dividend_per_share",
	"cash_credited",
}

// SnapshotReader reads the authoritative settlement snapshot CSV.
type SnapshotReader struct{}

// NewSnapshotReader creates a new SnapshotReader.
func NewSnapshotReader() *SnapshotReader {
	return &SnapshotReader{}
}

// ReadSnapshot parses path into snapshot rows. Bucket tags are carried as-is
// and validated later.
func (r *SnapshotReader) ReadSnapshot(ctx context.Context, path string) ([]domain.SnapshotRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}

	cols, err := columnIndex(header, snapshotColumns)
	if err != nil {
		return nil, err
	}

	var rows []domain.SnapshotRow
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read snapshot row: %w", err)
		}

		shares, err := strconv.ParseInt(field(record, cols["shares"]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: shares %q", domain.ErrBadShares, field(record, cols["shares"]))
		}

		rate, err := decimal.NewFromString(field(record, cols["dividend_per_share"]))
		if err != nil {
			return nil, fmt.Errorf("%w: dividend_per_share %q", domain.ErrBadRate, field(record, cols["dividend_per_share"]))
		}

		cash, err := decimal.NewFromString(field(record, cols["cash_credited"]))
		if err != nil {
			return nil, fmt.Errorf("%w: cash_credited %q", domain.ErrBadCash, field(record, cols["cash_credited"]))
		}

		rows = append(rows, domain.SnapshotRow{
			ISIN:       field(record, cols["isin"]),
			RecordDate: field(record, cols["record_date"]),
			PayDate:    field(record, cols["pay_date"]),
			Bucket:     domain.Bucket(field(record, cols["crest_bucket"])),
			Shares:     shares,
			Rate:       rate,
			Cash:       cash,
		})
	}

	return rows, nil
}
