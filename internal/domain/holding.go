package domain

import "github.com/shopspring/decimal"

// Holding is one client position on the record date. The bucket is never
// stored on the holding; it is always derived from the product code so the
// two can never diverge.
type Holding struct {
	ISIN          string
	RecordDate    string // YYYY-MM-DD
	ClientNumber  string
	ProductCode   int
	AccountNumber string
	Shares        int64
}

// SnapshotRow is one authoritative settlement-system row for a bucket.
type SnapshotRow struct {
	ISIN       string
	RecordDate string
	PayDate    string
	Bucket     Bucket
	Shares     int64
	Rate       decimal.Decimal
	Cash       decimal.Decimal
}

// PostingKind distinguishes client entitlements from house residue postings.
type PostingKind string

const (
	PostingClient        PostingKind = "CLIENT"
	PostingHouseRounding PostingKind = "HOUSE_ROUNDING"
)

// Posting is one cash credit line in the settlement file.
type Posting struct {
	RunID         string
	ISIN          string
	RecordDate    string
	PayDate       string
	ClientNumber  string
	ProductCode   int
	AccountNumber string
	Bucket        Bucket
	Shares        int64
	Rate          decimal.Decimal
	Cash          decimal.Decimal
	Kind          PostingKind
}
