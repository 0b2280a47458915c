package booking

import (
	"homeserve/config"
	"homeserve/models"
)

// PricingEngine computes the amount due for a cart. All arithmetic is on
// integer minor units; derived lines round half-up exactly once, when the
// line value is produced.
type PricingEngine struct {
	TaxRatePercent int
	SchedulingFee  int64
	Currency       string
}

// NewPricingEngine builds an engine from the loaded configuration.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{
		TaxRatePercent: config.AppConfig.TaxRatePercent,
		SchedulingFee:  config.AppConfig.SchedulingFee,
		Currency:       config.AppConfig.Currency,
	}
}

// Subtotal sums basePrice x quantity over the cart.
func (pe *PricingEngine) Subtotal(items []models.CartItem) int64 {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Offering.BasePrice * int64(it.Quantity)
	}
	return subtotal
}

// Quote prices the cart with at most one offer applied. A missing or
// under-minimum offer degrades to a zero discount with a reason code; it is
// never an error. The scheduling fee applies only when the booking carries
// an explicit schedule.
func (pe *PricingEngine) Quote(items []models.CartItem, offer *models.Offer, scheduled bool) models.PricingResult {
	subtotal := pe.Subtotal(items)

	result := models.PricingResult{
		Subtotal: subtotal,
		Currency: pe.Currency,
	}

	switch {
	case offer == nil:
		result.DiscountReason = models.DiscountReasonNoOffer
	case subtotal < offer.MinAmount:
		result.OfferCode = offer.Code
		result.DiscountReason = models.DiscountReasonMinAmount
	case offer.IsPercentage():
		result.OfferCode = offer.Code
		result.Discount = mulDivHalfUp(subtotal, offer.DiscountValue, 100)
	default:
		result.OfferCode = offer.Code
		result.Discount = offer.DiscountValue
	}

	// Clamp whatever the offer produced so the payable line never goes
	// negative, a percentage over 100 included.
	if result.Discount > subtotal {
		result.Discount = subtotal
	}
	if result.Discount < 0 {
		result.Discount = 0
	}

	result.Tax = mulDivHalfUp(subtotal-result.Discount, int64(pe.TaxRatePercent), 100)
	if scheduled {
		result.Fees = pe.SchedulingFee
	}
	result.Total = subtotal - result.Discount + result.Tax + result.Fees

	return result
}

// mulDivHalfUp computes amount*num/den rounded half-up. Inputs are
// non-negative minor-unit amounts.
func mulDivHalfUp(amount, num, den int64) int64 {
	return (amount*num + den/2) / den
}
