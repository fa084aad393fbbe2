package domain

import "github.com/shopspring/decimal"

// Round quantizes value to places fractional digits using half-up rounding:
// a tie rounds away from zero, preserving sign, so -0.005 becomes -0.01.
// decimal.Decimal keeps the arithmetic in exact base 10, which is what lets
// ties like 0.005 be detected at all. Rounding an already-rounded value to
// the same precision is a no-op.
func Round(value decimal.Decimal, places int32) decimal.Decimal {
	return value.Round(places)
}
