package pricing

import "github.com/shopspring/decimal"

// EffectivePrice is the one price the storefront charges for a product.
// An offer only counts when it is positive and actually below the display
// price (or there is no display price). Otherwise display, then OAmt, then 0.
func EffectivePrice(display, offer, oamt decimal.Decimal) decimal.Decimal {
	if offerCounts(display, offer) {
		return offer
	}
	if display.IsPositive() {
		return display
	}
	if oamt.IsPositive() {
		return oamt
	}
	return decimal.Zero
}

// HasDiscount reports whether the offer is shown struck against a display price.
func HasDiscount(display, offer decimal.Decimal) bool {
	return display.IsPositive() && offerCounts(display, offer)
}

func offerCounts(display, offer decimal.Decimal) bool {
	if !offer.IsPositive() {
		return false
	}
	return !display.IsPositive() || offer.LessThan(display)
}

// Line is anything with a price and a quantity.
type Line interface {
	Prices() (display, offer, oamt decimal.Decimal)
	Qty() int
}

// Subtotal sums EffectivePrice × quantity. Non-positive quantities contribute nothing.
func Subtotal[L Line](lines []L) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		q := l.Qty()
		if q <= 0 {
			continue
		}
		sum = sum.Add(EffectivePrice(l.Prices()).Mul(decimal.NewFromInt(int64(q))))
	}
	return sum
}

var taxRate = decimal.RequireFromString("0.015")

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	Total    decimal.Decimal `json:"total"`
}

// OrderTotals applies 1.5% CGST and 1.5% SGST. Nothing is rounded.
func OrderTotals[L Line](lines []L) Totals {
	sub := Subtotal(lines)
	cgst := sub.Mul(taxRate)
	sgst := sub.Mul(taxRate)
	return Totals{
		Subtotal: sub,
		CGST:     cgst,
		SGST:     sgst,
		Total:    sub.Add(cgst).Add(sgst),
	}
}
