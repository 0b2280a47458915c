package booking

import (
	"sort"
	"time"

	"homeserve/models"
)

// DateLayout is the canonical calendar-date form used throughout the engine.
const DateLayout = "2006-01-02"

// NormalizeDate canonicalizes a calendar date to "YYYY-MM-DD". It accepts
// the canonical form itself or an RFC 3339 timestamp.
func NormalizeDate(date string) (string, error) {
	if t, err := time.Parse(DateLayout, date); err == nil {
		return t.Format(DateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return "", NewPreconditionError("invalid date %q, want YYYY-MM-DD", date)
	}
	return t.Format(DateLayout), nil
}

// EvaluateAvailability decides per-service and joint availability of a cart
// for one exact (date, slot) pair. Existing usage is supplied by the caller
// on every invocation; nothing is cached here, and commit-time re-validation
// belongs to the storage layer.
//
// An empty cart yields a vacuously true joint verdict with zero evaluated
// services; rejecting empty carts is the caller's precondition.
func EvaluateAvailability(cart []models.ServiceOffering, usage []models.SlotUsage, date, slot string) (models.AvailabilityVerdict, error) {
	day, err := NormalizeDate(date)
	if err != nil {
		return models.AvailabilityVerdict{}, err
	}

	verdict := models.AvailabilityVerdict{
		Date:  day,
		Slot:  slot,
		Joint: true,
	}

	for _, svc := range cart {
		sa := models.ServiceAvailability{ServiceID: svc.ID, Available: true}

		switch {
		case svc.UnavailableOn(day):
			// Closed for the whole day, regardless of slot.
			sa.Available = false
			sa.Reason = models.ReasonDateUnavailable
		case !svc.OffersSlot(slot):
			sa.Available = false
			sa.Reason = models.ReasonSlotNotOffered
		case bookedUnits(usage, day, svc.ID, slot) >= svc.MaxBookingsPerSlot:
			sa.Available = false
			sa.Reason = models.ReasonFullyBooked
		}

		if !sa.Available {
			verdict.Joint = false
		}
		verdict.Services = append(verdict.Services, sa)
	}

	return verdict, nil
}

// bookedUnits sums usage counts over entries matching (date, serviceID, slot).
func bookedUnits(usage []models.SlotUsage, date, serviceID, slot string) int {
	total := 0
	for _, u := range usage {
		if u.Date == date && u.ServiceID == serviceID && u.Slot == slot {
			total += u.Count
		}
	}
	return total
}

// CandidateSlots returns the sorted union of slot labels offered by any
// service in the cart. The union is for display; callers gate selection by
// per-slot joint availability before presenting a slot as selectable.
func CandidateSlots(cart []models.ServiceOffering) []string {
	seen := make(map[string]bool)
	var slots []string
	for _, svc := range cart {
		for _, label := range svc.AvailableSlots {
			if !seen[label] {
				seen[label] = true
				slots = append(slots, label)
			}
		}
	}
	sort.Strings(slots)
	return slots
}
