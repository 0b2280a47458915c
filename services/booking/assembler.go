package booking

import (
	"regexp"
	"time"

	"homeserve/models"

	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// AssembleBooking combines an available, priced cart into an immutable
// booking record. Line items carry a snapshot of the price at booking time,
// not a live catalog reference, so later catalog changes never retroactively
// alter the record.
//
// Assembly fails with a Precondition error when the joint verdict is false
// or the contact phone is not a 10-digit number.
func AssembleBooking(items []models.CartItem, verdict models.AvailabilityVerdict, pricing models.PricingResult, contact models.ContactInfo) (*models.BookingRecord, error) {
	if !verdict.Joint {
		return nil, NewPreconditionError("cart is not jointly available for %s %s", verdict.Date, verdict.Slot)
	}
	if len(items) == 0 {
		return nil, NewPreconditionError("cannot assemble a booking from an empty cart")
	}
	if !phonePattern.MatchString(contact.Phone) {
		return nil, NewPreconditionError("contact phone must be a 10-digit number")
	}

	lineItems := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, models.LineItem{
			ServiceID: it.Offering.ID,
			Name:      it.Offering.Name,
			Category:  it.Offering.Category,
			UnitPrice: it.Offering.BasePrice,
			Quantity:  it.Quantity,
		})
	}

	return &models.BookingRecord{
		ID:        uuid.New().String(),
		Date:      verdict.Date,
		Slot:      verdict.Slot,
		Items:     lineItems,
		Pricing:   pricing,
		Contact:   contact,
		Status:    models.StatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}
