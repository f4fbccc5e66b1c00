// Package pricing computes sale prices and margins for products and
// services. Like the allocation engine it is pure: no I/O, no state.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMarginTooHigh       = errors.New("the margin must be below 100%")
	ErrFeeTooHigh          = errors.New("the payment fee must be below 100%")
	ErrInstallmentsInvalid = errors.New("the number of installments must be at least 1")
)

var hundred = decimal.New(100, 0)

// SalePrice returns the price that yields the given margin over the cost.
//
// Margin is calculated on the sale price: price = cost / (1 - margin/100).
// A margin of 100% or more has no finite price and is rejected.
func SalePrice(cost, marginPercent decimal.Decimal) (decimal.Decimal, error) {
	if marginPercent.GreaterThanOrEqual(hundred) {
		return decimal.Zero, ErrMarginTooHigh
	}

	divisor := decimal.New(1, 0).Sub(marginPercent.Div(hundred))
	return cost.Div(divisor).Round(2), nil
}

// SalePriceMarkup returns the price for a markup on the cost:
// price = cost * (1 + markup/100).
func SalePriceMarkup(cost, markupPercent decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.New(1, 0).Add(markupPercent.Div(hundred))).Round(2)
}

// Margin returns the margin percentage realized by selling at the given
// price: margin = (price - cost) / price * 100. A zero price yields zero.
func Margin(cost, price decimal.Decimal) decimal.Decimal {
	if price.IsZero() {
		return decimal.Zero
	}

	return price.Sub(cost).Div(price).Mul(hundred).Round(2)
}

// Markup returns the markup percentage realized by selling at the given
// price: markup = (price - cost) / cost * 100. A zero cost yields zero.
func Markup(cost, price decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}

	return price.Sub(cost).Div(cost).Mul(hundred).Round(2)
}

// WithPaymentFee grosses a price up so that the seller still nets the target
// price after the payment method deducts its percentage and fixed fees:
// charged = (price + fixedFee) / (1 - feePercent/100).
func WithPaymentFee(price, feePercent, fixedFee decimal.Decimal) (decimal.Decimal, error) {
	if feePercent.GreaterThanOrEqual(hundred) {
		return decimal.Zero, ErrFeeTooHigh
	}

	divisor := decimal.New(1, 0).Sub(feePercent.Div(hundred))
	return price.Add(fixedFee).Div(divisor).Round(2), nil
}

// Installments splits a total into n installments of 2 decimal places.
// The first installment absorbs the rounding remainder so that the
// installments always sum to the exact total.
func Installments(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, ErrInstallmentsInvalid
	}

	installment := total.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	remainder := total.Sub(installment.Mul(decimal.NewFromInt(int64(n))))

	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = installment
	}
	out[0] = out[0].Add(remainder)

	return out, nil
}
