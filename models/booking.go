package models

import "time"

// Booking statuses. Confirmed may move to Cancelled or Completed; both of
// those are terminal.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// CanTransition reports whether a booking status change is permitted.
func CanTransition(from, to string) bool {
	return from == StatusConfirmed && (to == StatusCancelled || to == StatusCompleted)
}

// LineItem is a priced cart line frozen at booking time. The unit price is a
// snapshot, not a live catalog reference: later catalog changes never alter
// historical bookings.
type LineItem struct {
	ServiceID string `bson:"service_id" json:"service_id"`
	Name      string `bson:"name" json:"name"`
	Category  string `bson:"category" json:"category"`
	UnitPrice int64  `bson:"unit_price" json:"unit_price"` // Minor units at time of booking
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// ContactInfo is the customer contact a booking is assembled with.
type ContactInfo struct {
	Phone   string `bson:"phone" json:"phone"` // Exactly 10 digits
	Address string `bson:"address" json:"address"`
}

// BookingRecord is the immutable result of a successful
// availability+pricing+assembly sequence.
type BookingRecord struct {
	ID        string        `bson:"id" json:"id"` // UUID
	Date      string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slot      string        `bson:"slot" json:"slot"` // Opaque start-time label
	Items     []LineItem    `bson:"items" json:"items"`
	Pricing   PricingResult `bson:"pricing" json:"pricing"`
	Contact   ContactInfo   `bson:"contact" json:"contact"`
	Status    string        `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// IsTerminal reports whether the booking can no longer change status.
func (b *BookingRecord) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}
