package models

// Reason codes explaining why an applied offer produced no discount. These
// are normal computed states surfaced to the client, not errors.
const (
	DiscountReasonApplied     = ""
	DiscountReasonNoOffer     = "no_offer"
	DiscountReasonMinAmount   = "min_amount_not_met"
	DiscountReasonExpired     = "offer_expired"
	DiscountReasonCategory    = "category_not_in_cart"
)

// PricingResult is the computed amount due for a cart. All values are
// non-negative integer minor units and satisfy
// Total = Subtotal - Discount + Tax + Fees, with Discount <= Subtotal.
type PricingResult struct {
	Subtotal       int64  `bson:"subtotal" json:"subtotal"`
	Discount       int64  `bson:"discount" json:"discount"`
	DiscountReason string `bson:"discount_reason,omitempty" json:"discount_reason,omitempty"`
	OfferCode      string `bson:"offer_code,omitempty" json:"offer_code,omitempty"`
	Tax            int64  `bson:"tax" json:"tax"`
	Fees           int64  `bson:"fees" json:"fees"`
	Total          int64  `bson:"total" json:"total"`
	Currency       string `bson:"currency" json:"currency"`
}
