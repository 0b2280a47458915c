package booking

import (
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOffering(id string, maxPerSlot int, slots []string, unavailable []string) models.ServiceOffering {
	return models.ServiceOffering{
		ID:                 id,
		Name:               "offering " + id,
		Category:           "car",
		BasePrice:          50000,
		AvailableSlots:     slots,
		UnavailableDates:   unavailable,
		MaxBookingsPerSlot: maxPerSlot,
	}
}

func TestEvaluateAvailabilityUnavailableDateWinsOverEverything(t *testing.T) {
	svc := testOffering("a", 5, []string{"09:00", "13:00"}, []string{"2026-09-01"})

	verdict, err := EvaluateAvailability([]models.ServiceOffering{svc}, nil, "2026-09-01", "09:00")
	require.NoError(t, err)

	require.Len(t, verdict.Services, 1)
	assert.False(t, verdict.Services[0].Available)
	assert.Equal(t, models.ReasonDateUnavailable, verdict.Services[0].Reason)
	assert.False(t, verdict.Joint)

	// Any slot on that day, offered or not, stays unavailable.
	verdict, err = EvaluateAvailability([]models.ServiceOffering{svc}, nil, "2026-09-01", "13:00")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonDateUnavailable, verdict.Services[0].Reason)
}

func TestEvaluateAvailabilitySlotNotOffered(t *testing.T) {
	svc := testOffering("a", 5, []string{"09:00"}, nil)

	verdict, err := EvaluateAvailability([]models.ServiceOffering{svc}, nil, "2026-09-01", "10:00")
	require.NoError(t, err)
	assert.False(t, verdict.Joint)
	assert.Equal(t, models.ReasonSlotNotOffered, verdict.Services[0].Reason)
}

func TestEvaluateAvailabilityCapacityEnforcedPerSlotNotPerDay(t *testing.T) {
	svc := testOffering("a", 2, []string{"09:00", "13:00"}, nil)
	usage := []models.SlotUsage{
		{Date: "2026-09-01", ServiceID: "a", Slot: "09:00", Count: 2},
	}

	// 09:00 is fully booked.
	verdict, err := EvaluateAvailability([]models.ServiceOffering{svc}, usage, "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.False(t, verdict.Joint)
	assert.Equal(t, models.ReasonFullyBooked, verdict.Services[0].Reason)

	// The 13:00 slot on the same day is untouched.
	verdict, err = EvaluateAvailability([]models.ServiceOffering{svc}, usage, "2026-09-01", "13:00")
	require.NoError(t, err)
	assert.True(t, verdict.Joint)
}

func TestEvaluateAvailabilitySumsUsageAcrossEntries(t *testing.T) {
	svc := testOffering("a", 3, []string{"09:00"}, nil)
	usage := []models.SlotUsage{
		{Date: "2026-09-01", ServiceID: "a", Slot: "09:00", Count: 1},
		{Date: "2026-09-01", ServiceID: "a", Slot: "09:00", Count: 2},
		{Date: "2026-09-02", ServiceID: "a", Slot: "09:00", Count: 1}, // other day, ignored
		{Date: "2026-09-01", ServiceID: "b", Slot: "09:00", Count: 1}, // other service, ignored
	}

	verdict, err := EvaluateAvailability([]models.ServiceOffering{svc}, usage, "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonFullyBooked, verdict.Services[0].Reason)
}

func TestEvaluateAvailabilityJointIsANDOverServices(t *testing.T) {
	free := testOffering("free", 5, []string{"09:00"}, nil)
	full := testOffering("full", 1, []string{"09:00"}, nil)
	usage := []models.SlotUsage{
		{Date: "2026-09-01", ServiceID: "full", Slot: "09:00", Count: 1},
	}

	verdict, err := EvaluateAvailability([]models.ServiceOffering{free, full}, usage, "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.True(t, verdict.Services[0].Available)
	assert.False(t, verdict.Services[1].Available)
	assert.False(t, verdict.Joint)

	// Dropping the blocking service widens the joint verdict.
	verdict, err = EvaluateAvailability([]models.ServiceOffering{free}, usage, "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.True(t, verdict.Joint)
}

func TestEvaluateAvailabilityEmptyCartIsVacuouslyTrue(t *testing.T) {
	verdict, err := EvaluateAvailability(nil, nil, "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.True(t, verdict.Joint)
	assert.Empty(t, verdict.Services)
}

func TestEvaluateAvailabilityNormalizesDates(t *testing.T) {
	svc := testOffering("a", 2, []string{"09:00"}, []string{"2026-09-01"})

	verdict, err := EvaluateAvailability([]models.ServiceOffering{svc}, nil, "2026-09-01T15:04:05Z", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", verdict.Date)
	assert.Equal(t, models.ReasonDateUnavailable, verdict.Services[0].Reason)

	_, err = EvaluateAvailability([]models.ServiceOffering{svc}, nil, "01/09/2026", "09:00")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
}

func TestCandidateSlotsIsSortedUnionNotIntersection(t *testing.T) {
	a := testOffering("a", 2, []string{"13:00", "09:00"}, nil)
	b := testOffering("b", 2, []string{"09:00", "17:00"}, nil)

	slots := CandidateSlots([]models.ServiceOffering{a, b})
	assert.Equal(t, []string{"09:00", "13:00", "17:00"}, slots)

	assert.Empty(t, CandidateSlots(nil))
}

func TestFullyBookedScenario(t *testing.T) {
	// ServiceA: price 500, slots 09:00/13:00, max 2 per slot.
	svc := testOffering("A", 2, []string{"09:00", "13:00"}, nil)
	usage := []models.SlotUsage{
		{Date: "2026-08-30", ServiceID: "A", Slot: "09:00", Count: 2},
	}

	verdict, err := EvaluateAvailability([]models.ServiceOffering{svc}, usage, "2026-08-30", "09:00")
	require.NoError(t, err)
	assert.False(t, verdict.Joint, "09:00 should be fully booked")

	verdict, err = EvaluateAvailability([]models.ServiceOffering{svc}, usage, "2026-08-30", "13:00")
	require.NoError(t, err)
	assert.True(t, verdict.Joint, "13:00 should remain available")
}
