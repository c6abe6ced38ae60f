package domain

import "github.com/shopspring/decimal"

var (
	// StampDutyThreshold is the taxable amount above which the €2 stamp duty applies.
	StampDutyThreshold = decimal.RequireFromString("77.47")
	// StampDutyAmount is the fixed stamp duty charged on documents above the threshold.
	StampDutyAmount = decimal.NewFromInt(2)

	hundred = decimal.NewFromInt(100)
)

// LineItem is a single row of an invoice or quote.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"` // percent, optional
}

// Net returns quantity × price with the line discount applied.
func (l LineItem) Net() decimal.Decimal {
	gross := l.Quantity.Mul(l.Price)
	if l.Discount.IsZero() {
		return gross
	}
	return gross.Mul(hundred.Sub(l.Discount)).Div(hundred)
}

// Totals is the breakdown of a document's amounts.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Taxable   decimal.Decimal `json:"taxable"`
	StampDuty decimal.Decimal `json:"stampDuty"`
	Total     decimal.Decimal `json:"total"`
}

// CalculateTotals sums the lines, applies the global discount percent and, when the
// flag is set, adds the stamp duty.
func CalculateTotals(items []LineItem, globalDiscount decimal.Decimal, hasStampDuty bool) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Net())
	}
	taxable := subtotal
	if !globalDiscount.IsZero() {
		taxable = subtotal.Mul(hundred.Sub(globalDiscount)).Div(hundred)
	}
	taxable = taxable.Round(2)

	t := Totals{
		Subtotal:  subtotal.Round(2),
		Taxable:   taxable,
		StampDuty: decimal.Zero,
		Total:     taxable,
	}
	if hasStampDuty {
		t.StampDuty = StampDutyAmount
		t.Total = taxable.Add(StampDutyAmount)
	}
	return t
}

// RequiresStampDuty reports whether a taxable amount exceeds the legal threshold.
func RequiresStampDuty(taxable decimal.Decimal) bool {
	return taxable.GreaterThan(StampDutyThreshold)
}

// SplitStampDuty breaks a duty-inclusive amount, such as a payment, into the taxable part
// and the duty flag, so that CalculateTotals over a single line at the taxable price
// returns the amount again. Amounts whose taxable part would not exceed the threshold
// carry no duty.
func SplitStampDuty(gross decimal.Decimal) (decimal.Decimal, bool) {
	taxable := gross.Sub(StampDutyAmount)
	if RequiresStampDuty(taxable) {
		return taxable, true
	}
	return gross, false
}
