package domain

import "github.com/shopspring/decimal"

// SharesByBucket sums holding shares per derived bucket. All three bucket
// keys are always present in the result, defaulting to zero.
func SharesByBucket(holdings []Holding) (map[Bucket]int64, error) {
	totals := make(map[Bucket]int64, len(AllBuckets))
	for _, b := range AllBuckets {
		totals[b] = 0
	}

	for _, h := range holdings {
		bucket, err := BucketFor(h.ProductCode)
		if err != nil {
			return nil, err
		}
		totals[bucket] += h.Shares
	}

	return totals, nil
}

// CashByBucket sums posting cash per bucket, counting CLIENT postings only.
// All three bucket keys are always present, defaulting to 0.00.
func CashByBucket(postings []Posting) map[Bucket]decimal.Decimal {
	totals := make(map[Bucket]decimal.Decimal, len(AllBuckets))
	for _, b := range AllBuckets {
		totals[b] = decimal.New(0, -2)
	}

	for _, p := range postings {
		if p.Kind != PostingClient {
			continue
		}
		totals[p.Bucket] = totals[p.Bucket].Add(p.Cash)
	}

	return totals
}
