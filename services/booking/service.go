package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "homeserve/database/repository/booking"
	catalogRepo "homeserve/database/repository/catalog"
	usageRepo "homeserve/database/repository/usage"
	"homeserve/models"
	"homeserve/services/offers"
	"homeserve/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = 10 * time.Minute

func sessionKey(id string) string {
	return fmt.Sprintf("bookingsession:%s", id)
}

// resolveCart materializes and validates draft selections. Empty carts and
// non-positive quantities are caller preconditions, rejected here before the
// engine ever runs.
func (s *DefaultBookingSessionService) resolveCart(ctx context.Context, selections []models.CartSelection) ([]models.CartItem, error) {
	if len(selections) == 0 {
		return nil, NewPreconditionError("cart is empty")
	}
	for _, sel := range selections {
		if sel.Quantity < 1 {
			return nil, NewPreconditionError("quantity for service %s must be at least 1", sel.ServiceID)
		}
	}
	items, err := s.Catalog.ResolveSelections(ctx, selections)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
			return nil, NewNotFoundError("unknown service in cart: %v", err)
		}
		return nil, err
	}
	return items, nil
}

// evaluateCart runs the availability evaluator over a resolved cart with
// fresh usage data. Verdicts are recomputed on every call, never carried
// across changes to date, slot, or cart membership.
func (s *DefaultBookingSessionService) evaluateCart(ctx context.Context, items []models.CartItem, date, slot string) (models.AvailabilityVerdict, error) {
	day, err := NormalizeDate(date)
	if err != nil {
		return models.AvailabilityVerdict{}, err
	}

	cart := make([]models.ServiceOffering, 0, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		cart = append(cart, it.Offering)
		ids = append(ids, it.Offering.ID)
	}

	usage, err := s.UsageRepo.ForDate(ctx, day, ids)
	if err != nil {
		return models.AvailabilityVerdict{}, err
	}
	return EvaluateAvailability(cart, usage, day, slot)
}

// quoteCart prices a resolved cart, resolving the offer code through the
// registry first. An unknown code is an explicit NotFound; a known but
// ineligible offer degrades to a zero discount with a reason code.
func (s *DefaultBookingSessionService) quoteCart(items []models.CartItem, offerCode string, scheduled bool) (models.PricingResult, error) {
	if offerCode == "" {
		return s.Pricing.Quote(items, nil, scheduled), nil
	}

	offer, err := s.Offers.FindByCode(offerCode)
	if err != nil {
		return models.PricingResult{}, NewNotFoundError("offer code %q not found", offerCode)
	}

	subtotal := s.Pricing.Subtotal(items)
	if ok, reason := offers.Eligible(offer, subtotal, models.Categories(items), time.Now()); !ok {
		quote := s.Pricing.Quote(items, nil, scheduled)
		quote.OfferCode = offer.Code
		quote.DiscountReason = reason
		return quote, nil
	}
	return s.Pricing.Quote(items, offer, scheduled), nil
}

// SlotStatuses returns the union of candidate slot labels across the given
// services for a date, each flagged with its joint availability. The union
// is what gets displayed; the flag is what gates selection.
func (s *DefaultBookingSessionService) SlotStatuses(ctx context.Context, serviceIDs []string, date string) ([]models.SlotStatus, error) {
	selections := make([]models.CartSelection, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		selections = append(selections, models.CartSelection{ServiceID: id, Quantity: 1})
	}
	items, err := s.resolveCart(ctx, selections)
	if err != nil {
		return nil, err
	}

	cart := make([]models.ServiceOffering, 0, len(items))
	for _, it := range items {
		cart = append(cart, it.Offering)
	}

	statuses := make([]models.SlotStatus, 0)
	for _, slot := range CandidateSlots(cart) {
		verdict, err := s.evaluateCart(ctx, items, date, slot)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, models.SlotStatus{Slot: slot, Available: verdict.Joint})
	}
	return statuses, nil
}

// Quote prices a draft without creating a session.
func (s *DefaultBookingSessionService) Quote(ctx context.Context, draft Draft) (models.PricingResult, error) {
	items, err := s.resolveCart(ctx, draft.Selections)
	if err != nil {
		return models.PricingResult{}, err
	}
	return s.quoteCart(items, draft.OfferCode, draft.Date != "" && draft.Slot != "")
}

// InitiateSession creates a booking session from a draft and caches it.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, draft Draft) (*models.BookingSession, error) {
	session := &models.BookingSession{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.applyDraft(ctx, session, draft); err != nil {
		return nil, err
	}
	if err := s.storeSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession replaces the draft state of an existing session and
// recomputes its verdict and quote.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, sessionID string, draft Draft) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.applyDraft(ctx, session, draft); err != nil {
		return nil, err
	}
	if err := s.storeSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// applyDraft recomputes the session's verdict and quote from the draft. The
// availability verdict exists only once both a date and a slot are chosen.
func (s *DefaultBookingSessionService) applyDraft(ctx context.Context, session *models.BookingSession, draft Draft) error {
	items, err := s.resolveCart(ctx, draft.Selections)
	if err != nil {
		return err
	}

	session.Selections = draft.Selections
	session.Date = draft.Date
	session.Slot = draft.Slot
	session.OfferCode = draft.OfferCode
	session.Verdict = nil

	scheduled := draft.Date != "" && draft.Slot != ""
	if scheduled {
		verdict, err := s.evaluateCart(ctx, items, draft.Date, draft.Slot)
		if err != nil {
			return err
		}
		session.Verdict = &verdict
		session.Date = verdict.Date
	}

	quote, err := s.quoteCart(items, draft.OfferCode, scheduled)
	if err != nil {
		return err
	}
	session.Quote = &quote
	return nil
}

// ConfirmSession finalizes a session into a persisted booking record. The
// verdict is recomputed from fresh usage data, and capacity is consumed
// through the storage layer's atomic increment-and-check, so two concurrent
// confirmations cannot both take the last unit.
func (s *DefaultBookingSessionService) ConfirmSession(ctx context.Context, sessionID string, contact models.ContactInfo) (*models.BookingRecord, error) {
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Date == "" || session.Slot == "" {
		return nil, NewPreconditionError("session %s has no date and slot selected", sessionID)
	}

	items, err := s.resolveCart(ctx, session.Selections)
	if err != nil {
		return nil, err
	}

	verdict, err := s.evaluateCart(ctx, items, session.Date, session.Slot)
	if err != nil {
		return nil, err
	}

	quote, err := s.quoteCart(items, session.OfferCode, true)
	if err != nil {
		return nil, err
	}

	record, err := AssembleBooking(items, verdict, quote, contact)
	if err != nil {
		return nil, err
	}

	// Commit-time re-validation: consume capacity bucket by bucket, rolling
	// back on the first conflict.
	reserved := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		err := s.UsageRepo.Reserve(ctx, verdict.Date, it.Offering.ID, verdict.Slot, it.Quantity, it.Offering.MaxBookingsPerSlot)
		if err != nil {
			s.releaseAll(ctx, reserved, verdict.Date, verdict.Slot)
			if errors.Is(err, usageRepo.ErrCapacityExhausted) {
				return nil, NewConflictError("slot %s on %s filled up for service %s", verdict.Slot, verdict.Date, it.Offering.ID)
			}
			return nil, err
		}
		reserved = append(reserved, it)
	}

	if err := s.BookingRepo.Create(ctx, record); err != nil {
		s.releaseAll(ctx, reserved, verdict.Date, verdict.Slot)
		return nil, err
	}

	if err := s.Sessions.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.Warn("failed to drop confirmed booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Sugar().Infof("Booking %s confirmed for %s %s (%d services)", record.ID, record.Date, record.Slot, len(record.Items))
	return record, nil
}

func (s *DefaultBookingSessionService) releaseAll(ctx context.Context, items []models.CartItem, date, slot string) {
	for _, it := range items {
		if err := s.UsageRepo.Release(ctx, date, it.Offering.ID, slot, it.Quantity); err != nil {
			utils.GetLogger().Error("failed to release reserved capacity",
				zap.String("serviceID", it.Offering.ID), zap.Error(err))
		}
	}
}

// GetBooking retrieves a booking record by id.
func (s *DefaultBookingSessionService) GetBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	record, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, NewNotFoundError("booking %s not found", id)
		}
		return nil, err
	}
	return record, nil
}

// ListBookings returns the booking history for a phone number.
func (s *DefaultBookingSessionService) ListBookings(ctx context.Context, phone string) ([]models.BookingRecord, error) {
	return s.BookingRepo.ListByPhone(ctx, phone)
}

// CancelBooking moves a booking to cancelled and releases its capacity.
// Only the owning phone may cancel.
func (s *DefaultBookingSessionService) CancelBooking(ctx context.Context, id, phone string) (*models.BookingRecord, error) {
	record, err := s.getOwnedBooking(ctx, id, phone)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, record, models.StatusCancelled)
}

// CompleteBooking moves a booking to completed. Like cancellation it is
// owner-only; completing someone else's booking would lock them out of
// cancelling it.
func (s *DefaultBookingSessionService) CompleteBooking(ctx context.Context, id, phone string) (*models.BookingRecord, error) {
	record, err := s.getOwnedBooking(ctx, id, phone)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, record, models.StatusCompleted)
}

// getOwnedBooking loads a booking and masks ownership mismatches as NotFound
// so callers cannot probe other users' booking ids.
func (s *DefaultBookingSessionService) getOwnedBooking(ctx context.Context, id, phone string) (*models.BookingRecord, error) {
	record, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Contact.Phone != phone {
		return nil, NewNotFoundError("booking %s not found", id)
	}
	return record, nil
}

func (s *DefaultBookingSessionService) transition(ctx context.Context, record *models.BookingRecord, to string) (*models.BookingRecord, error) {
	if !models.CanTransition(record.Status, to) {
		return nil, NewPreconditionError("booking %s cannot move from %s to %s", record.ID, record.Status, to)
	}
	if err := s.BookingRepo.UpdateStatus(ctx, record.ID, to); err != nil {
		return nil, err
	}
	record.Status = to

	if to == models.StatusCancelled {
		for _, item := range record.Items {
			if err := s.UsageRepo.Release(ctx, record.Date, item.ServiceID, record.Slot, item.Quantity); err != nil {
				utils.GetLogger().Error("failed to release capacity on cancellation",
					zap.String("bookingID", record.ID), zap.Error(err))
			}
		}
	}
	return record, nil
}

func (s *DefaultBookingSessionService) storeSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Sessions.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Sessions.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, NewNotFoundError("booking session %s not found or expired", sessionID)
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
