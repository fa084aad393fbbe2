package domain

import "errors"

// Validation errors. Each one carries a stable categorized code (see Code)
// used in audit events, run summaries and exit-code mapping. Callers wrap
// them with %w to attach row-level context.
var (
	// Holdings
	ErrBadClientNumber    = errors.New("client number must be exactly 8 digits")
	ErrUnknownProductCode = errors.New("product code outside allowed set")
	ErrBadAccountNumber   = errors.New("account number does not match derived value")
	ErrBadShares          = errors.New("invalid shares quantity")
	ErrDuplicateKey       = errors.New("duplicate (isin, client, product) key")

	// Authoritative snapshot
	ErrMultiISIN          = errors.New("snapshot spans more than one isin")
	ErrBadBucket          = errors.New("unknown bucket tag")
	ErrDuplicateBucketRow = errors.New("duplicate bucket row")
	ErrBadRate            = errors.New("invalid dividend rate")
	ErrBadCash            = errors.New("invalid cash amount")
	ErrMissingBucket      = errors.New("snapshot missing a required bucket")
	ErrRateMismatch       = errors.New("rate differs across bucket rows")

	// Inbound files
	ErrMissingColumn = errors.New("required column missing")
)

var errorCodes = map[string]error{
	"BAD_CLIENT_NUMBER":            ErrBadClientNumber,
	"UNKNOWN_PRODUCT_CODE":         ErrUnknownProductCode,
	"BAD_ACCOUNT_NUMBER":           ErrBadAccountNumber,
	"BAD_SHARES":                   ErrBadShares,
	"DUPLICATE_INTERNAL_KEY":       ErrDuplicateKey,
	"MULTI_ISIN":                   ErrMultiISIN,
	"BAD_BUCKET":                   ErrBadBucket,
	"DUPLICATE_BUCKET_ROW":         ErrDuplicateBucketRow,
	"BAD_RATE":                     ErrBadRate,
	"BAD_CASH":                     ErrBadCash,
	"MISSING_BUCKET":               ErrMissingBucket,
	"RATE_MISMATCH_ACROSS_BUCKETS": ErrRateMismatch,
	"MISSING_COLUMN":               ErrMissingColumn,
}

// Code returns the categorized code for a validation error, or "" when err is
// not part of the validation taxonomy.
func Code(err error) string {
	for code, sentinel := range errorCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
