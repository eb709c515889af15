package fees

import (
	"math"

	"ticketing-service/config"
)

// Policy computes the admin fee charged on top of the ticket price.
// Amounts are IDR minor units. The fee is Rate of the price with a
// Minimum floor, rounded up to the nearest 100 so the gateway never
// sees an odd gross amount.
type Policy struct {
	rateBasisPoints int64
	minimum         int64
}

func NewPolicy(cfg *config.FeeConfig) Policy {
	return Policy{
		rateBasisPoints: int64(math.Round(cfg.Rate * 10000)),
		minimum:         cfg.Minimum,
	}
}

// AdminFee is pure and exact: the percentage is applied in integer
// basis points so float rounding can never move the fee across a
// 100-unit boundary.
func (p Policy) AdminFee(price int64) int64 {
	if price <= 0 {
		return 0
	}

	// fee in 1/10000 minor units
	raw := price * p.rateBasisPoints
	if raw < p.minimum*10000 {
		raw = p.minimum * 10000
	}

	// round up to the nearest 100 minor units
	const hundred = 100 * 10000
	return (raw + hundred - 1) / hundred * 100
}

// GrossAmount is what the participant actually pays.
func (p Policy) GrossAmount(price int64) int64 {
	if price <= 0 {
		return 0
	}
	return price + p.AdminFee(price)
}
