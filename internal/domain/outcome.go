package domain

import "github.com/shopspring/decimal"

// BreakType categorizes a recorded reconciliation discrepancy.
type BreakType string

const (
	BreakSharesMismatch           BreakType = "SHARES_MISMATCH"
	BreakResidualExceedsTolerance BreakType = "RESIDUAL_EXCEEDS_TOLERANCE"
)

// Break is a recorded discrepancy for a bucket. Breaks are data, not errors:
// they block settlement but never abort the reconciliation pass.
type Break struct {
	RunID              string
	ISIN               string
	Bucket             Bucket
	Type               BreakType
	Details            string
	AuthoritativeValue string
	InternalValue      string
}

// BucketOutcome is the per-bucket comparison result.
type BucketOutcome struct {
	Bucket              Bucket
	AuthoritativeShares int64
	InternalShares      int64
	SharesDiff          int64
	AuthoritativeCash   decimal.Decimal
	InternalCashPre     decimal.Decimal
	ResidualToHouse     decimal.Decimal
	InternalCashPost    decimal.Decimal
	CashDiffPost        decimal.Decimal
	Passed              bool
}

// RunOutcome is the full reconciliation decision for one run, with bucket
// outcomes in fixed ISA, SIPP, GIA order.
type RunOutcome struct {
	RunID       string
	ISIN        string
	RecordDate  string
	PayDate     string
	Buckets     []BucketOutcome
	Passed      bool
	FailReasons []string
}
