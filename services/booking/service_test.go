package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	bookingRepoPkg "homeserve/database/repository/booking"
	catalogRepo "homeserve/database/repository/catalog"
	usageRepoPkg "homeserve/database/repository/usage"
	"homeserve/models"
	"homeserve/services/offers"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	offerings map[string]models.ServiceOffering
}

func (f *fakeCatalog) GetOffering(_ context.Context, id string) (*models.ServiceOffering, error) {
	o, ok := f.offerings[id]
	if !ok {
		return nil, catalogRepo.ErrOfferingNotFound
	}
	return &o, nil
}

func (f *fakeCatalog) ListOfferings(_ context.Context, _ string) ([]models.ServiceOffering, error) {
	var out []models.ServiceOffering
	for _, o := range f.offerings {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeCatalog) ResolveSelections(ctx context.Context, selections []models.CartSelection) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0, len(selections))
	for _, sel := range selections {
		offering, err := f.GetOffering(ctx, sel.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("resolving selection %s: %w", sel.ServiceID, err)
		}
		items = append(items, models.CartItem{Offering: *offering, Quantity: sel.Quantity})
	}
	return items, nil
}

type fakeUsageRepo struct {
	usage       []models.SlotUsage
	failService string
	reserved    []string
	released    []string
}

func (f *fakeUsageRepo) ForDate(_ context.Context, _ string, _ []string) ([]models.SlotUsage, error) {
	return f.usage, nil
}

func (f *fakeUsageRepo) Reserve(_ context.Context, _, serviceID, _ string, _, _ int) error {
	if serviceID == f.failService {
		return usageRepoPkg.ErrCapacityExhausted
	}
	f.reserved = append(f.reserved, serviceID)
	return nil
}

func (f *fakeUsageRepo) Release(_ context.Context, _, serviceID, _ string, _ int) error {
	f.released = append(f.released, serviceID)
	return nil
}

type fakeBookingStore struct {
	records map[string]*models.BookingRecord
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{records: make(map[string]*models.BookingRecord)}
}

func (f *fakeBookingStore) Create(_ context.Context, record *models.BookingRecord) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id string) (*models.BookingRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, bookingRepoPkg.ErrBookingNotFound
	}
	return record, nil
}

func (f *fakeBookingStore) ListByPhone(_ context.Context, phone string) ([]models.BookingRecord, error) {
	var out []models.BookingRecord
	for _, r := range f.records {
		if r.Contact.Phone == phone {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id, status string) error {
	record, ok := f.records[id]
	if !ok {
		return bookingRepoPkg.ErrBookingNotFound
	}
	record.Status = status
	return nil
}

type fakeSessionStore struct {
	data map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string]string)}
}

func (f *fakeSessionStore) Get(_ context.Context, key string) *redis.StringCmd {
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeSessionStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeSessionStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func newTestService(usage *fakeUsageRepo, store *fakeBookingStore) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Catalog: &fakeCatalog{offerings: map[string]models.ServiceOffering{
			"ac-1": {
				ID: "ac-1", Name: "AC Service", Category: "ac", BasePrice: 49900,
				AvailableSlots: []string{"10:00", "13:00"}, MaxBookingsPerSlot: 2,
			},
			"car-1": {
				ID: "car-1", Name: "Car Wash", Category: "car", BasePrice: 29900,
				AvailableSlots: []string{"10:00", "13:00"}, MaxBookingsPerSlot: 2,
			},
		}},
		Offers:      offers.NewRegistry(nil),
		Pricing:     testEngine(),
		BookingRepo: store,
		UsageRepo:   usage,
		Sessions:    newFakeSessionStore(),
	}
}

func scheduledDraft() Draft {
	return Draft{
		Selections: []models.CartSelection{
			{ServiceID: "ac-1", Quantity: 1},
			{ServiceID: "car-1", Quantity: 1},
		},
		Date: "2026-09-05",
		Slot: "10:00",
	}
}

func TestConfirmSessionCreatesBookingAndDropsSession(t *testing.T) {
	usage := &fakeUsageRepo{}
	store := newFakeBookingStore()
	svc := newTestService(usage, store)
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, scheduledDraft())
	require.NoError(t, err)
	require.NotNil(t, session.Verdict)
	require.True(t, session.Verdict.Joint)

	record, err := svc.ConfirmSession(ctx, session.ID, models.ContactInfo{Phone: "9876543210", Address: "12 Lake Rd"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, record.Status)
	assert.Equal(t, []string{"ac-1", "car-1"}, usage.reserved)
	assert.Equal(t, int64(5000), record.Pricing.Fees)
	assert.Contains(t, store.records, record.ID)

	// The session is single-use.
	_, err = svc.ConfirmSession(ctx, session.ID, models.ContactInfo{Phone: "9876543210"})
	assert.True(t, IsNotFound(err))
}

func TestConfirmSessionCapacityConflictRollsBack(t *testing.T) {
	// The second reserve loses the capacity race; the first must be undone
	// and no booking persisted.
	usage := &fakeUsageRepo{failService: "car-1"}
	store := newFakeBookingStore()
	svc := newTestService(usage, store)
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, scheduledDraft())
	require.NoError(t, err)

	_, err = svc.ConfirmSession(ctx, session.ID, models.ContactInfo{Phone: "9876543210"})
	require.True(t, IsConflict(err))

	assert.Equal(t, []string{"ac-1"}, usage.reserved)
	assert.Equal(t, []string{"ac-1"}, usage.released)
	assert.Empty(t, store.records)

	// The session survives a failed confirmation and can be retried.
	_, err = svc.UpdateSession(ctx, session.ID, scheduledDraft())
	assert.NoError(t, err)
}

func TestConfirmSessionRequiresSchedule(t *testing.T) {
	usage := &fakeUsageRepo{}
	svc := newTestService(usage, newFakeBookingStore())
	ctx := context.Background()

	draft := scheduledDraft()
	draft.Date, draft.Slot = "", ""
	session, err := svc.InitiateSession(ctx, draft)
	require.NoError(t, err)
	assert.Nil(t, session.Verdict)

	_, err = svc.ConfirmSession(ctx, session.ID, models.ContactInfo{Phone: "9876543210"})
	assert.True(t, IsPrecondition(err))
	assert.Empty(t, usage.reserved)
}

func TestCompleteBookingOwnerOnly(t *testing.T) {
	usage := &fakeUsageRepo{}
	store := newFakeBookingStore()
	svc := newTestService(usage, store)
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, scheduledDraft())
	require.NoError(t, err)
	record, err := svc.ConfirmSession(ctx, session.ID, models.ContactInfo{Phone: "9876543210"})
	require.NoError(t, err)

	// A different caller must not be able to push the booking terminal.
	_, err = svc.CompleteBooking(ctx, record.ID, "0000000000")
	require.True(t, IsNotFound(err))
	assert.Equal(t, models.StatusConfirmed, store.records[record.ID].Status)

	completed, err := svc.CompleteBooking(ctx, record.ID, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
}

func TestCancelBookingReleasesCapacity(t *testing.T) {
	usage := &fakeUsageRepo{}
	store := newFakeBookingStore()
	svc := newTestService(usage, store)
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, scheduledDraft())
	require.NoError(t, err)
	record, err := svc.ConfirmSession(ctx, session.ID, models.ContactInfo{Phone: "9876543210"})
	require.NoError(t, err)
	usage.released = nil

	cancelled, err := svc.CancelBooking(ctx, record.ID, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.ElementsMatch(t, []string{"ac-1", "car-1"}, usage.released)

	// Terminal: a second transition is rejected.
	_, err = svc.CancelBooking(ctx, record.ID, "9876543210")
	assert.True(t, IsPrecondition(err))
}
