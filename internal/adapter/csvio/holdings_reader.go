// Package csvio reads the inbound CSV feeds into domain records. Only column
// presence and field parsing happen here; business rules are enforced by the
// validation layer before the core runs.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iho/divrec/internal/domain"
)

var holdingsColumns = []string{
	"isin",
	"record_date",
	"client_number",
	"product_code",
	"account_number",
	"shares",
}

// HoldingsReader reads the internal holdings snapshot CSV.
type HoldingsReader struct{}

// NewHoldingsReader creates a new HoldingsReader.
func NewHoldingsReader() *HoldingsReader {
	return &HoldingsReader{}
}

// ReadHoldings parses path into holdings, preserving file order.
func (r *HoldingsReader) ReadHoldings(ctx context.Context, path string) ([]domain.Holding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open holdings file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read holdings header: %w", err)
	}

	cols, err := columnIndex(header, holdingsColumns)
	if err != nil {
		return nil, err
	}

	var holdings []domain.Holding
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read holdings row: %w", err)
		}

		productCode, err := strconv.Atoi(field(record, cols["product_code"]))
		if err != nil {
			return nil, fmt.Errorf("%w: product_code %q", domain.ErrUnknownProductCode, field(record, cols["product_code"]))
		}

		shares, err := strconv.ParseInt(field(record, cols["shares"]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: shares %q", domain.ErrBadShares, field(record, cols["shares"]))
		}

		holdings = append(holdings, domain.Holding{
			ISIN:          field(record, cols["isin"]),
			RecordDate:    field(record, cols["record_date"]),
			ClientNumber:  field(record, cols["client_number"]),
			ProductCode:   productCode,
			AccountNumber: field(record, cols["account_number"]),
			Shares:        shares,
		})
	}

	return holdings, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, name)
		}
	}
	return index, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
