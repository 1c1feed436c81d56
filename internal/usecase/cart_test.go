package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	totals := Aggregate(nil)

	assert.Equal(t, int64(0), totals.TotalItems)
	assert.Equal(t, int64(0), totals.SubtotalCents)
	assert.Equal(t, int64(0), totals.TaxCents)
	assert.Equal(t, int64(0), totals.TotalCents)
}

func TestAggregate_SingleRounding(t *testing.T) {
	// Две штуки по 9.99 с налогом 10%: подытог 19.98, налог 2.00 (округление
	// один раз после суммирования), итог 21.98.
	totals := Aggregate([]CartItem{
		{PriceCents: 999, Quantity: 2, TaxBP: 1000},
	})

	assert.Equal(t, int64(2), totals.TotalItems)
	assert.Equal(t, int64(1998), totals.SubtotalCents)
	assert.Equal(t, int64(200), totals.TaxCents)
	assert.Equal(t, int64(2198), totals.TotalCents)
}

func TestAggregate_MixedTaxRates(t *testing.T) {
	totals := Aggregate([]CartItem{
		{PriceCents: 1500, Quantity: 1, TaxBP: 825}, // 1500 * 8.25% = 123.75
		{PriceCents: 500, Quantity: 3, TaxBP: 0},    // без налога
		{PriceCents: 333, Quantity: 1, TaxBP: 2000}, // 333 * 20% = 66.6
	})

	assert.Equal(t, int64(5), totals.TotalItems)
	assert.Equal(t, int64(3333), totals.SubtotalCents)
	// 123.75 + 66.6 = 190.35 -> 190 после единственного округления.
	assert.Equal(t, int64(190), totals.TaxCents)
	assert.Equal(t, totals.SubtotalCents+totals.TaxCents, totals.TotalCents)
}

func TestAggregate_TotalIsSubtotalPlusTax(t *testing.T) {
	totals := Aggregate([]CartItem{
		{PriceCents: 101, Quantity: 7, TaxBP: 725},
		{PriceCents: 9999, Quantity: 2, TaxBP: 1875},
	})

	assert.Equal(t, totals.SubtotalCents+totals.TaxCents, totals.TotalCents)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(1), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	assert.Equal(t, int64(5), TotalPages(41, 10))
}
