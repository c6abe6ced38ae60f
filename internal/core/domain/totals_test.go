package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name           string
		items          []domain.LineItem
		globalDiscount decimal.Decimal
		stamp          bool
		wantTaxable    string
		wantTotal      string
	}{
		{
			name:        "single line no discounts",
			items:       []domain.LineItem{{Quantity: dec("2"), Price: dec("30")}},
			wantTaxable: "60",
			wantTotal:   "60",
		},
		{
			name: "line discount and global discount",
			items: []domain.LineItem{
				{Quantity: dec("1"), Price: dec("100"), Discount: dec("10")},
				{Quantity: dec("4"), Price: dec("12.50")},
			},
			globalDiscount: dec("5"),
			wantTaxable:    "133",
			wantTotal:      "133",
		},
		{
			name:        "stamp duty added",
			items:       []domain.LineItem{{Quantity: dec("1"), Price: dec("150")}},
			stamp:       true,
			wantTaxable: "150",
			wantTotal:   "152",
		},
		{
			name:        "rounded to cents",
			items:       []domain.LineItem{{Quantity: dec("3"), Price: dec("10"), Discount: dec("33.333")}},
			wantTaxable: "20",
			wantTotal:   "20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CalculateTotals(tt.items, tt.globalDiscount, tt.stamp)
			assert.True(t, dec(tt.wantTaxable).Equal(got.Taxable), "taxable: got %s", got.Taxable)
			assert.True(t, dec(tt.wantTotal).Equal(got.Total), "total: got %s", got.Total)
		})
	}
}

func TestRequiresStampDuty(t *testing.T) {
	assert.False(t, domain.RequiresStampDuty(dec("77.47")))
	assert.True(t, domain.RequiresStampDuty(dec("77.48")))
	assert.False(t, domain.RequiresStampDuty(dec("50")))
}

func TestSplitStampDuty(t *testing.T) {
	tests := []struct {
		gross   string
		taxable string
		duty    bool
	}{
		{gross: "100", taxable: "98", duty: true},
		{gross: "79.48", taxable: "77.48", duty: true},
		{gross: "79.47", taxable: "79.47", duty: false},
		{gross: "50", taxable: "50", duty: false},
		{gross: "0", taxable: "0", duty: false},
	}
	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			taxable, duty := domain.SplitStampDuty(dec(tt.gross))
			assert.True(t, taxable.Equal(dec(tt.taxable)), "taxable %s", taxable)
			assert.Equal(t, tt.duty, duty)

			totals := domain.CalculateTotals([]domain.LineItem{{Quantity: dec("1"), Price: taxable}}, decimal.Zero, duty)
			assert.True(t, totals.Total.Equal(dec(tt.gross)), "total %s", totals.Total)
		})
	}
}

func TestQuote_InstallmentWarnings(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	q := domain.Quote{
		Items: []domain.LineItem{{Quantity: dec("1"), Price: dec("300")}},
		Installments: []domain.Installment{
			{Description: "first", Amount: dec("150"), DueDate: &due, PaymentTermDays: 10, TriggerType: domain.TriggerFixedDate},
			{Description: "at lesson 5", Amount: dec("100"), TriggerType: domain.TriggerLessonN, TriggerLesson: 5},
		},
	}
	q.Recalculate()

	warnings := q.InstallmentWarnings()
	assert.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningInstallmentMismatch, warnings[0].Code)

	assert.NotNil(t, q.Installments[0].CollectionDate)
	assert.Equal(t, due.AddDate(0, 0, 10), *q.Installments[0].CollectionDate)
	assert.Nil(t, q.Installments[1].CollectionDate)

	q.Installments[1].Amount = dec("150")
	assert.Empty(t, q.InstallmentWarnings())
}
