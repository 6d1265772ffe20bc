package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalStatusTransitions(t *testing.T) {
	cases := []struct {
		from    RentalStatus
		to      RentalStatus
		allowed bool
	}{
		{RentalStatusReserved, RentalStatusPending, true},
		{RentalStatusPending, RentalStatusActive, true},
		{RentalStatusActive, RentalStatusCompleted, true},
		{RentalStatusReserved, RentalStatusCancelled, true},
		{RentalStatusPending, RentalStatusCancelled, true},

		{RentalStatusActive, RentalStatusCancelled, false},
		{RentalStatusReserved, RentalStatusActive, false},
		{RentalStatusReserved, RentalStatusCompleted, false},
		{RentalStatusPending, RentalStatusCompleted, false},
		{RentalStatusCompleted, RentalStatusCancelled, false},
		{RentalStatusCompleted, RentalStatusActive, false},
		{RentalStatusCancelled, RentalStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestRentalStatusTerminal(t *testing.T) {
	assert.True(t, RentalStatusCompleted.IsTerminal())
	assert.True(t, RentalStatusCancelled.IsTerminal())
	assert.False(t, RentalStatusReserved.IsTerminal())
	assert.False(t, RentalStatusPending.IsTerminal())
	assert.False(t, RentalStatusActive.IsTerminal())
}

func TestRentalStatusBlocking(t *testing.T) {
	// reserved, pending and active all block the booking calendar
	assert.True(t, RentalStatusReserved.BlocksCalendar())
	assert.True(t, RentalStatusPending.BlocksCalendar())
	assert.True(t, RentalStatusActive.BlocksCalendar())
	assert.False(t, RentalStatusCompleted.BlocksCalendar())
	assert.False(t, RentalStatusCancelled.BlocksCalendar())

	// only active physically blocks the bike
	assert.True(t, RentalStatusActive.BlocksBike())
	assert.False(t, RentalStatusReserved.BlocksBike())
	assert.False(t, RentalStatusPending.BlocksBike())
}
