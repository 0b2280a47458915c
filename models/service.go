package models

// ServiceOffering is a bookable catalog entry. Offerings are immutable for
// the duration of a booking session; prices are integer minor units (paise).
type ServiceOffering struct {
	ID                 string   `bson:"id" json:"id"`                                       // Stable identifier, unique within the catalog
	Name               string   `bson:"name" json:"name"`                                   // Display label
	Category           string   `bson:"category" json:"category"`                           // e.g. "car", "bike", "ac", "cleaning"
	BasePrice          int64    `bson:"base_price" json:"base_price"`                       // Price per unit in minor units
	DurationMinutes    int      `bson:"duration_minutes" json:"duration_minutes"`           // Indicative visit duration
	AvailableSlots     []string `bson:"available_slots" json:"available_slots"`             // Ordered start-time labels, e.g. "09:00"
	UnavailableDates   []string `bson:"unavailable_dates" json:"unavailable_dates"`         // ISO dates the service cannot be booked at all
	MaxBookingsPerSlot int      `bson:"max_bookings_per_slot" json:"max_bookings_per_slot"` // Capacity ceiling per (date, slot) pair
}

// OffersSlot reports whether the given slot label is one of the offering's
// bookable start times.
func (s *ServiceOffering) OffersSlot(slot string) bool {
	for _, l := range s.AvailableSlots {
		if l == slot {
			return true
		}
	}
	return false
}

// UnavailableOn reports whether the offering is closed for the whole of the
// given calendar date, regardless of slot.
func (s *ServiceOffering) UnavailableOn(date string) bool {
	for _, d := range s.UnavailableDates {
		if d == date {
			return true
		}
	}
	return false
}
