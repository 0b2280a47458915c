package models

import "time"

// BookingSession is the server-side snapshot of an in-progress booking,
// cached between the quote and confirm phases. The verdict and quote it
// carries are recomputed on every update and re-validated at confirm time;
// they are never trusted across a change to date, slot, or selections.
type BookingSession struct {
	ID         string              `json:"id"`
	Selections []CartSelection     `json:"selections"`
	Date       string              `json:"date,omitempty"`
	Slot       string              `json:"slot,omitempty"`
	OfferCode  string              `json:"offer_code,omitempty"`
	Verdict    *AvailabilityVerdict `json:"verdict,omitempty"`
	Quote      *PricingResult      `json:"quote,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}
