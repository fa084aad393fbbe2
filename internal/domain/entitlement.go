package domain

import "github.com/shopspring/decimal"

// ComputeClientPostings converts holdings into CLIENT postings, one per
// holding in input order, with cash = round(shares * rate, 2) and the bucket
// derived from the product code. Pure; no aggregation happens here.
func ComputeClientPostings(holdings []Holding, runID, isin, recordDate, payDate string, rate decimal.Decimal) ([]Posting, error) {
	postings := make([]Posting, 0, len(holdings))

	for _, h := range holdings {
		bucket, err := BucketFor(h.ProductCode)
		if err != nil {
			return nil, err
		}

		cash := Round(decimal.NewFromInt(h.Shares).Mul(rate), 2)

		postings = append(postings, Posting{
			RunID:         runID,
			ISIN:          isin,
			RecordDate:    recordDate,
			PayDate:       payDate,
			ClientNumber:  h.ClientNumber,
			ProductCode:   h.ProductCode,
			AccountNumber: h.AccountNumber,
			Bucket:        bucket,
			Shares:        h.Shares,
			Rate:          rate,
			Cash:          cash,
			Kind:          PostingClient,
		})
	}

	return postings, nil
}
