package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
	assert.True(t, CanTransition(StatusConfirmed, StatusCompleted))

	// Cancelled and completed are terminal.
	assert.False(t, CanTransition(StatusCancelled, StatusConfirmed))
	assert.False(t, CanTransition(StatusCancelled, StatusCompleted))
	assert.False(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.False(t, CanTransition(StatusCompleted, StatusConfirmed))

	assert.False(t, CanTransition(StatusConfirmed, StatusConfirmed))
	assert.False(t, CanTransition("", StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, (&BookingRecord{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&BookingRecord{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&BookingRecord{Status: StatusCompleted}).IsTerminal())
}

func TestCategories(t *testing.T) {
	items := []CartItem{
		{Offering: ServiceOffering{ID: "a", Category: "ac"}},
		{Offering: ServiceOffering{ID: "b", Category: "plumbing"}},
		{Offering: ServiceOffering{ID: "c", Category: "ac"}},
		{Offering: ServiceOffering{ID: "d"}},
	}
	assert.Equal(t, []string{"ac", "plumbing"}, Categories(items))
	assert.Empty(t, Categories(nil))
}
