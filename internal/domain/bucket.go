package domain

import "fmt"

// Bucket is an account wrapper category. Every product code maps to exactly
// one bucket and reconciliation runs per bucket.
type Bucket string

const (
	BucketISA  Bucket = "ISA"
	BucketSIPP Bucket = "SIPP"
	BucketGIA  Bucket = "GIA"
)

// AllBuckets is the fixed processing order for reports and postings.
var AllBuckets = [3]Bucket{BucketISA, BucketSIPP, BucketGIA}

// HouseClientNumber is the firm's suspense client that absorbs rounding
// residue.
const HouseClientNumber = "55555555"

var productToBucket = map[int]Bucket{
	22: BucketISA,
	24: BucketISA,
	25: BucketISA,
	70: BucketSIPP,
	71: BucketSIPP,
	97: BucketGIA,
}

var houseProductByBucket = map[Bucket]int{
	BucketISA:  22,
	BucketSIPP: 70,
	BucketGIA:  97,
}

// BucketFor maps a product code to its bucket.
func BucketFor(productCode int) (Bucket, error) {
	b, ok := productToBucket[productCode]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownProductCode, productCode)
	}
	return b, nil
}

// ValidBucket reports whether tag is a known bucket.
func ValidBucket(tag Bucket) bool {
	_, ok := houseProductByBucket[tag]
	return ok
}

// HouseProductFor returns the house product code used for rounding postings
// in the given bucket.
func HouseProductFor(b Bucket) int {
	return houseProductByBucket[b]
}

// AccountNumber derives the account number: client number followed by the
// zero-padded two-digit product code.
func AccountNumber(clientNumber string, productCode int) string {
	return fmt.Sprintf("%s%02d", clientNumber, productCode)
}

// HouseAccountFor returns the house suspense account for a bucket.
func HouseAccountFor(b Bucket) string {
	return AccountNumber(HouseClientNumber, HouseProductFor(b))
}
