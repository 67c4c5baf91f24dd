// Package pricing converts stored tee-time and listing prices into the
// per-golfer amounts shown to buyers.
//
// Tee-time fees are stored in minor units (cents); listing prices are
// stored in major units. Every function here returns major units.
package pricing

import "github.com/shopspring/decimal"

const (
	// DefaultFeePercent applies when a course has no buyer or seller fee.
	DefaultFeePercent = 1.0

	// UnlistedMultiplier is applied to the green fee to suggest a price for
	// bookings whose owner has not listed them.
	UnlistedMultiplier = 1.3
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Round2 rounds to two decimal places, half away from zero, on the
// shortest decimal form of v.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func percent(fee *float64) decimal.Decimal {
	return decimal.NewFromFloat(FeeOrDefault(fee)).Div(hundred)
}

func major(minor int) decimal.Decimal {
	return decimal.NewFromInt(int64(minor)).Div(hundred)
}

// FeeOrDefault returns the course fee percentage or DefaultFeePercent when unset.
func FeeOrDefault(fee *float64) float64 {
	if fee == nil {
		return DefaultFeePercent
	}
	return *fee
}

// FirstHand is the price per golfer for a tee time sold by the course:
// greenFee/100 plus markup/100. A nil markup adds nothing.
func FirstHand(greenFee int, markup *int) float64 {
	price := major(greenFee)
	if markup != nil {
		price = price.Add(major(*markup))
	}
	return money(price)
}

// Listed is the price per golfer a buyer pays for a resale listing.
func Listed(listPrice float64, buyerFee *float64) float64 {
	return money(decimal.NewFromFloat(listPrice).Mul(one.Add(percent(buyerFee))))
}

// Unlisted is the suggested make-an-offer price for a booking that is not
// for sale. It is a display value only and is never charged.
func Unlisted(greenFee int) float64 {
	return money(major(greenFee).Mul(decimal.NewFromFloat(UnlistedMultiplier)))
}

// SellerPayout is what the owner of a listing receives per golfer after
// the course's seller fee.
func SellerPayout(listPrice float64, sellerFee *float64) float64 {
	return money(decimal.NewFromFloat(listPrice).Mul(one.Sub(percent(sellerFee))))
}

// Minor converts a stored minor-unit amount to major units.
func Minor(v int) float64 {
	return major(v).InexactFloat64()
}
