package offers

import (
	"errors"
	"time"

	"homeserve/models"
)

// ErrOfferNotFound is returned when no offer carries the requested code.
var ErrOfferNotFound = errors.New("offer not found")

const expiryLayout = "2006-01-02"

// Registry holds the promotional offers known to the platform. Offers are
// immutable once loaded; expired offers remain retrievable by code for
// display and history, but are never eligible.
type Registry struct {
	offers []models.Offer
	byCode map[string]*models.Offer
}

// NewRegistry builds a registry over the given offers.
func NewRegistry(list []models.Offer) *Registry {
	r := &Registry{
		offers: list,
		byCode: make(map[string]*models.Offer, len(list)),
	}
	for i := range r.offers {
		r.byCode[r.offers[i].Code] = &r.offers[i]
	}
	return r
}

// FindByCode looks up an offer by its promotional code. Codes are
// case-significant.
func (r *Registry) FindByCode(code string) (*models.Offer, error) {
	offer, ok := r.byCode[code]
	if !ok {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// List returns the offers matching the category, or all offers when the
// category is empty. Universal ("all") offers match every category.
func (r *Registry) List(category string) []models.Offer {
	if category == "" {
		return r.offers
	}
	var out []models.Offer
	for _, o := range r.offers {
		if o.Category == category || o.Category == "" || o.Category == "all" {
			out = append(out, o)
		}
	}
	return out
}

// ExpiringSoon returns offers that expire within the given number of days
// from today, excluding already-expired ones.
func (r *Registry) ExpiringSoon(today time.Time, days int) []models.Offer {
	var out []models.Offer
	for _, o := range r.offers {
		expiry, err := time.Parse(expiryLayout, o.ExpiryDate)
		if err != nil {
			continue
		}
		left := expiry.Sub(today.Truncate(24 * time.Hour))
		if left > 0 && left <= time.Duration(days)*24*time.Hour {
			out = append(out, o)
		}
	}
	return out
}

// Eligible checks whether the offer may discount a cart: it must not be
// expired, its category (if restricted) must appear in the cart, and the
// subtotal must meet the minimum. When ineligible, the returned reason code
// explains why no discount applied.
func Eligible(offer *models.Offer, subtotal int64, cartCategories []string, today time.Time) (bool, string) {
	expiry, err := time.Parse(expiryLayout, offer.ExpiryDate)
	if err != nil || !expiry.After(today.Truncate(24*time.Hour)) {
		return false, models.DiscountReasonExpired
	}

	if offer.Category != "" && offer.Category != "all" {
		found := false
		for _, c := range cartCategories {
			if c == offer.Category {
				found = true
				break
			}
		}
		if !found {
			return false, models.DiscountReasonCategory
		}
	}

	if subtotal < offer.MinAmount {
		return false, models.DiscountReasonMinAmount
	}

	return true, models.DiscountReasonApplied
}
