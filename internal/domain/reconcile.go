package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultResidualTolerance is the inclusive cap on the absolute cash residual
// a bucket may carry and still settle.
var DefaultResidualTolerance = decimal.New(1, -2)

// ReconcileInput carries everything one reconciliation run needs. Holdings,
// snapshot rows and client postings must already have passed validation.
type ReconcileInput struct {
	RunID          string
	ISIN           string
	RecordDate     string
	PayDate        string
	Rate           decimal.Decimal
	Holdings       []Holding
	Snapshot       []SnapshotRow
	ClientPostings []Posting
	Tolerance      decimal.Decimal
}

// Reconcile compares aggregated internal figures against the authoritative
// snapshot and settles or reports.
//
// Phase 1 always runs to completion: every bucket is compared, breaks are
// collected as data and a RunOutcome is produced with bucket results in fixed
// ISA, SIPP, GIA order. Phase 2 is a function of phase 1: on a passed run the
// final posting set is the client postings followed by one HOUSE_ROUNDING
// posting per bucket with nonzero residual; on a failed run the posting set
// is empty. Settlement is all-or-nothing across buckets.
func Reconcile(in ReconcileInput) (RunOutcome, []Posting, []Break, error) {
	byBucket := make(map[Bucket]SnapshotRow, len(in.Snapshot))
	for _, r := range in.Snapshot {
		byBucket[r.Bucket] = r
	}
	for _, b := range AllBuckets {
		if _, ok := byBucket[b]; !ok {
			return RunOutcome{}, nil, nil, fmt.Errorf("%w: %s", ErrMissingBucket, b)
		}
	}

	intShares, err := SharesByBucket(in.Holdings)
	if err != nil {
		return RunOutcome{}, nil, nil, err
	}
	intCashPre := CashByBucket(in.ClientPostings)

	outcomes := make([]BucketOutcome, 0, len(AllBuckets))
	var breaks []Break
	var failReasons []string

	for _, bucket := range AllBuckets {
		row := byBucket[bucket]

		sharesDiff := intShares[bucket] - row.Shares
		residual := row.Cash.Sub(intCashPre[bucket])
		eligible := residual.Abs().Cmp(in.Tolerance) <= 0

		cashPost := intCashPre[bucket]
		if eligible {
			cashPost = cashPost.Add(residual)
		}

		outcomes = append(outcomes, BucketOutcome{
			Bucket:              bucket,
			AuthoritativeShares: row.Shares,
			InternalShares:      intShares[bucket],
			SharesDiff:          sharesDiff,
			AuthoritativeCash:   row.Cash,
			InternalCashPre:     intCashPre[bucket],
			ResidualToHouse:     residual,
			InternalCashPost:    cashPost,
			CashDiffPost:        row.Cash.Sub(cashPost),
			Passed:              sharesDiff == 0 && eligible,
		})

		if sharesDiff != 0 {
			breaks = append(breaks, Break{
				RunID:              in.RunID,
				ISIN:               in.ISIN,
				Bucket:             bucket,
				Type:               BreakSharesMismatch,
				Details:            fmt.Sprintf("shares_diff=%d", sharesDiff),
				AuthoritativeValue: strconv.FormatInt(row.Shares, 10),
				InternalValue:      strconv.FormatInt(intShares[bucket], 10),
			})
			failReasons = append(failReasons, fmt.Sprintf("%s:%s", BreakSharesMismatch, bucket))
		}

		if !eligible {
			breaks = append(breaks, Break{
				RunID:              in.RunID,
				ISIN:               in.ISIN,
				Bucket:             bucket,
				Type:               BreakResidualExceedsTolerance,
				Details:            fmt.Sprintf("residual=%s tolerance=%s", residual, in.Tolerance),
				AuthoritativeValue: row.Cash.StringFixed(2),
				InternalValue:      intCashPre[bucket].StringFixed(2),
			})
			failReasons = append(failReasons, fmt.Sprintf("%s:%s", BreakResidualExceedsTolerance, bucket))
		}
	}

	passed := true
	for _, o := range outcomes {
		if !o.Passed {
			passed = false
			break
		}
	}

	outcome := RunOutcome{
		RunID:       in.RunID,
		ISIN:        in.ISIN,
		RecordDate:  in.RecordDate,
		PayDate:     in.PayDate,
		Buckets:     outcomes,
		Passed:      passed,
		FailReasons: failReasons,
	}

	if !passed {
		return outcome, nil, breaks, nil
	}

	final := make([]Posting, 0, len(in.ClientPostings)+len(AllBuckets))
	final = append(final, in.ClientPostings...)

	for i, bucket := range AllBuckets {
		residual := outcomes[i].ResidualToHouse
		if residual.IsZero() {
			continue
		}

		final = append(final, Posting{
			RunID:         in.RunID,
			ISIN:          in.ISIN,
			RecordDate:    in.RecordDate,
			PayDate:       in.PayDate,
			ClientNumber:  HouseClientNumber,
			ProductCode:   HouseProductFor(bucket),
			AccountNumber: HouseAccountFor(bucket),
			Bucket:        bucket,
			Shares:        0,
			Rate:          in.Rate,
			Cash:          residual,
			Kind:          PostingHouseRounding,
		})
	}

	return outcome, final, breaks, nil
}
