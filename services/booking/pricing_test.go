package booking

import (
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
)

func testEngine() *PricingEngine {
	return &PricingEngine{TaxRatePercent: 18, SchedulingFee: 5000, Currency: "INR"}
}

func cartItem(price int64, qty int) models.CartItem {
	return models.CartItem{
		Offering: models.ServiceOffering{ID: "svc", Name: "svc", Category: "car", BasePrice: price},
		Quantity: qty,
	}
}

func assertTotalIdentity(t *testing.T, r models.PricingResult) {
	t.Helper()
	assert.Equal(t, r.Subtotal-r.Discount+r.Tax+r.Fees, r.Total)
	assert.LessOrEqual(t, r.Discount, r.Subtotal)
	assert.GreaterOrEqual(t, r.Discount, int64(0))
}

func TestQuoteNoOffer(t *testing.T) {
	r := testEngine().Quote([]models.CartItem{cartItem(50000, 2)}, nil, false)

	assert.Equal(t, int64(100000), r.Subtotal)
	assert.Equal(t, int64(0), r.Discount)
	assert.Equal(t, models.DiscountReasonNoOffer, r.DiscountReason)
	assert.Equal(t, int64(18000), r.Tax)
	assert.Equal(t, int64(0), r.Fees)
	assert.Equal(t, int64(118000), r.Total)
	assertTotalIdentity(t, r)
}

func TestQuoteSchedulingFeeOnlyWhenScheduled(t *testing.T) {
	pe := testEngine()
	items := []models.CartItem{cartItem(50000, 1)}

	immediate := pe.Quote(items, nil, false)
	scheduled := pe.Quote(items, nil, true)

	assert.Equal(t, int64(0), immediate.Fees)
	assert.Equal(t, int64(5000), scheduled.Fees)
	assert.Equal(t, immediate.Total+5000, scheduled.Total)
	assertTotalIdentity(t, scheduled)
}

func TestQuotePercentageDiscount(t *testing.T) {
	offer := &models.Offer{Code: "WELCOME30", DiscountType: models.DiscountPercentage, DiscountValue: 30, MinAmount: 100000}

	r := testEngine().Quote([]models.CartItem{cartItem(50000, 2)}, offer, false)

	assert.Equal(t, int64(30000), r.Discount)
	assert.Equal(t, "WELCOME30", r.OfferCode)
	assert.Equal(t, models.DiscountReasonApplied, r.DiscountReason)
	// Tax applies to the discounted subtotal.
	assert.Equal(t, int64(12600), r.Tax)
	assertTotalIdentity(t, r)
}

func TestQuotePercentageDiscountRoundsHalfUp(t *testing.T) {
	// 33% of 99999 = 32999.67, rounds to 33000.
	offer := &models.Offer{Code: "PESTCOMBO", DiscountType: models.DiscountPercentage, DiscountValue: 33}

	r := testEngine().Quote([]models.CartItem{cartItem(99999, 1)}, offer, false)
	assert.Equal(t, int64(33000), r.Discount)
	assertTotalIdentity(t, r)
}

func TestQuoteFixedDiscountAtExactMinimum(t *testing.T) {
	// Subtotal 1000 with a fixed-100 offer gated at 1000: discount applies.
	offer := &models.Offer{Code: "FLAT100", DiscountType: models.DiscountFixed, DiscountValue: 10000, MinAmount: 100000}

	r := testEngine().Quote([]models.CartItem{cartItem(100000, 1)}, offer, false)
	assert.Equal(t, int64(10000), r.Discount)
	assertTotalIdentity(t, r)

	// Subtotal 999 with the same offer: silent no-op, not an error.
	r = testEngine().Quote([]models.CartItem{cartItem(99900, 1)}, offer, false)
	assert.Equal(t, int64(0), r.Discount)
	assert.Equal(t, models.DiscountReasonMinAmount, r.DiscountReason)
	assert.Equal(t, "FLAT100", r.OfferCode)
	assertTotalIdentity(t, r)
}

func TestQuotePercentageDiscountClampedToSubtotal(t *testing.T) {
	// A percentage over 100 must not drive the discount past the subtotal,
	// or tax and total would go negative.
	offer := &models.Offer{Code: "OVER", DiscountType: models.DiscountPercentage, DiscountValue: 150}

	r := testEngine().Quote([]models.CartItem{cartItem(10000, 1)}, offer, false)
	assert.Equal(t, int64(10000), r.Discount)
	assert.Equal(t, int64(0), r.Tax)
	assert.Equal(t, int64(0), r.Total)
	assertTotalIdentity(t, r)
}

func TestQuoteFixedDiscountClampedToSubtotal(t *testing.T) {
	offer := &models.Offer{Code: "BIG", DiscountType: models.DiscountFixed, DiscountValue: 500000}

	r := testEngine().Quote([]models.CartItem{cartItem(20000, 1)}, offer, false)
	assert.Equal(t, int64(20000), r.Discount)
	assert.Equal(t, int64(0), r.Tax)
	assert.Equal(t, int64(0), r.Total)
	assertTotalIdentity(t, r)
}

func TestQuoteEmptyCart(t *testing.T) {
	r := testEngine().Quote(nil, nil, false)
	assert.Equal(t, int64(0), r.Subtotal)
	assert.Equal(t, int64(0), r.Total)
	assertTotalIdentity(t, r)
}

func TestMulDivHalfUp(t *testing.T) {
	cases := []struct {
		amount, num, den, want int64
	}{
		{100, 18, 100, 18},
		{99999, 33, 100, 33000}, // .67 rounds up
		{101, 25, 100, 25},      // 25.25 rounds down
		{102, 25, 100, 26},      // 25.5 rounds up
		{0, 18, 100, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mulDivHalfUp(tc.amount, tc.num, tc.den))
	}
}
