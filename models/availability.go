package models

// Reasons a service can be unavailable for a (date, slot) pair.
const (
	ReasonDateUnavailable = "date_unavailable"
	ReasonSlotNotOffered  = "slot_not_offered"
	ReasonFullyBooked     = "fully_booked"
)

// ServiceAvailability is the per-service part of an availability verdict.
type ServiceAvailability struct {
	ServiceID string `json:"service_id"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // Set only when unavailable
}

// AvailabilityVerdict is the computed availability of a cart for one exact
// (date, slot) pair. It is never stored and never cached across changes to
// date, slot, or cart membership.
type AvailabilityVerdict struct {
	Date     string                `json:"date"`
	Slot     string                `json:"slot"`
	Services []ServiceAvailability `json:"services"`
	Joint    bool                  `json:"joint"` // True iff every evaluated service is available
}

// SlotStatus pairs a candidate slot label with its joint availability, for
// presenting selectable slots to the user.
type SlotStatus struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

// SlotUsage is an existing reservation count against a (date, service, slot)
// bucket. Entries are append-only inputs to the availability computation;
// cancellation releases capacity through a status change in the store, never
// by mutating an entry handed to the evaluator.
type SlotUsage struct {
	Date      string `bson:"date" json:"date"`
	ServiceID string `bson:"service_id" json:"service_id"`
	Slot      string `bson:"slot" json:"slot"`
	Count     int    `bson:"count" json:"count"` // Units consumed by this entry
}
