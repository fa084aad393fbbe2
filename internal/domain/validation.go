package domain

import "fmt"

type holdingKey struct {
	isin    string
	client  string
	product int
}

// ValidateHoldings enforces the inbound holding rules in input order. The
// first violation aborts immediately; no partial validation report is
// produced.
func ValidateHoldings(holdings []Holding) error {
	seen := make(map[holdingKey]struct{}, len(holdings))

	for i, h := range holdings {
		if !isClientNumber(h.ClientNumber) {
			return fmt.Errorf("%w: row %d client %q", ErrBadClientNumber, i, h.ClientNumber)
		}

		if _, err := BucketFor(h.ProductCode); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		if expected := AccountNumber(h.ClientNumber, h.ProductCode); h.AccountNumber != expected {
			return fmt.Errorf("%w: row %d got %q want %q", ErrBadAccountNumber, i, h.AccountNumber, expected)
		}

		if h.Shares < 1 {
			return fmt.Errorf("%w: row %d shares %d", ErrBadShares, i, h.Shares)
		}

		key := holdingKey{h.ISIN, h.ClientNumber, h.ProductCode}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: row %d (%s, %s, %d)", ErrDuplicateKey, i, h.ISIN, h.ClientNumber, h.ProductCode)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// ValidateSnapshot enforces the authoritative snapshot rules: one isin, valid
// unique bucket tags, nonnegative quantities, all three buckets present and a
// single rate across them. First violation wins.
func ValidateSnapshot(rows []SnapshotRow) error {
	isins := make(map[string]struct{}, 1)
	for _, r := range rows {
		isins[r.ISIN] = struct{}{}
	}
	if len(isins) > 1 {
		return fmt.Errorf("%w: %d distinct isins", ErrMultiISIN, len(isins))
	}

	type rowKey struct {
		isin   string
		bucket Bucket
	}
	seen := make(map[rowKey]struct{}, len(rows))

	for i, r := range rows {
		if !ValidBucket(r.Bucket) {
			return fmt.Errorf("%w: row %d bucket %q", ErrBadBucket, i, r.Bucket)
		}

		key := rowKey{r.ISIN, r.Bucket}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: row %d bucket %s", ErrDuplicateBucketRow, i, r.Bucket)
		}
		seen[key] = struct{}{}

		if r.Shares < 0 {
			return fmt.Errorf("%w: row %d shares %d", ErrBadShares, i, r.Shares)
		}
		if r.Rate.IsNegative() {
			return fmt.Errorf("%w: row %d rate %s", ErrBadRate, i, r.Rate)
		}
		if r.Cash.IsNegative() {
			return fmt.Errorf("%w: row %d cash %s", ErrBadCash, i, r.Cash)
		}
	}

	if len(rows) == 0 {
		return fmt.Errorf("%w: empty snapshot", ErrMissingBucket)
	}
	for _, b := range AllBuckets {
		if _, ok := seen[rowKey{rows[0].ISIN, b}]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingBucket, b)
		}
	}

	rate := rows[0].Rate
	for i, r := range rows[1:] {
		if !r.Rate.Equal(rate) {
			return fmt.Errorf("%w: row %d rate %s vs %s", ErrRateMismatch, i+1, r.Rate, rate)
		}
	}

	return nil
}

func isClientNumber(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
