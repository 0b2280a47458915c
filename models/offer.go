package models

// Discount types supported by promotional offers.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Offer represents a promotional code. Codes are case-significant. At most
// one offer may be applied to a single pricing computation.
type Offer struct {
	ID            string `bson:"id" json:"id"`
	Title         string `bson:"title" json:"title"`
	Description   string `bson:"description" json:"description"`
	Code          string `bson:"code" json:"code"`                       // Unique promotional code
	DiscountValue int64  `bson:"discount_value" json:"discount_value"`   // Percent for "percentage", minor units for "fixed"
	DiscountType  string `bson:"discount_type" json:"discount_type"`     // "percentage" or "fixed"
	MinAmount     int64  `bson:"min_amount" json:"min_amount"`           // Minimum subtotal (minor units) for eligibility
	Category      string `bson:"category,omitempty" json:"category,omitempty"` // Empty means universally applicable
	ExpiryDate    string `bson:"expiry_date" json:"expiry_date"`         // ISO date; inactive strictly after this day
	Terms         string `bson:"terms,omitempty" json:"terms,omitempty"`
}

// IsPercentage reports whether the offer discounts by percentage of subtotal.
func (o *Offer) IsPercentage() bool {
	return o.DiscountType == DiscountPercentage
}
