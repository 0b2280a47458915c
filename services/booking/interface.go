package booking

import (
	"context"
	"time"

	bookingRepo "homeserve/database/repository/booking"
	usageRepo "homeserve/database/repository/usage"
	"homeserve/models"
	"homeserve/services/catalog"
	"homeserve/services/offers"

	"github.com/go-redis/redis/v8"
)

// SessionStore is the slice of the Redis client API the session service
// needs. *redis.Client satisfies it.
type SessionStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Draft is the client-supplied state of an in-progress booking: cart
// selections plus the single shared (date, slot) schedule for the whole
// cart, and at most one offer code.
type Draft struct {
	Selections []models.CartSelection `json:"selections"`
	Date       string                 `json:"date,omitempty"`
	Slot       string                 `json:"slot,omitempty"`
	OfferCode  string                 `json:"offer_code,omitempty"`
}

// BookingService defines the interface for managing a stateful booking
// session and the finalized records it produces.
type BookingService interface {
	SlotStatuses(ctx context.Context, serviceIDs []string, date string) ([]models.SlotStatus, error)
	Quote(ctx context.Context, draft Draft) (models.PricingResult, error)
	InitiateSession(ctx context.Context, draft Draft) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID string, draft Draft) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, sessionID string, contact models.ContactInfo) (*models.BookingRecord, error)
	GetBooking(ctx context.Context, id string) (*models.BookingRecord, error)
	ListBookings(ctx context.Context, phone string) ([]models.BookingRecord, error)
	CancelBooking(ctx context.Context, id, phone string) (*models.BookingRecord, error)
	CompleteBooking(ctx context.Context, id, phone string) (*models.BookingRecord, error)
}

// DefaultBookingSessionService implements BookingService.
type DefaultBookingSessionService struct {
	Catalog     catalog.Service
	Offers      *offers.Registry
	Pricing     *PricingEngine
	BookingRepo bookingRepo.BookingRepository
	UsageRepo   usageRepo.UsageRepository
	Sessions    SessionStore
}
