package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatusCheckedOut))

	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCheckedOut))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusReturned))

	assert.True(t, BookingStatusCheckedOut.CanTransitionTo(BookingStatusReturned))
	assert.False(t, BookingStatusCheckedOut.CanTransitionTo(BookingStatusCancelled))

	assert.False(t, BookingStatusReturned.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusPending))
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, BookingStatusReturned.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.False(t, BookingStatusCheckedOut.IsTerminal())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, BookingStatusPending.IsValid())
	assert.False(t, BookingStatus("UNKNOWN").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBooking_EffectiveWindow(t *testing.T) {
	event := &Event{
		StartDate: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC),
	}
	from := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no explicit window falls back to event dates", func(t *testing.T) {
		b := &Booking{}
		w := b.EffectiveWindow(event)
		assert.Equal(t, event.StartDate, w.From)
		assert.Equal(t, event.EndDate, w.Until)
	})

	t.Run("explicit window is authoritative", func(t *testing.T) {
		b := &Booking{ReservedFrom: &from, ReservedUntil: &until}
		w := b.EffectiveWindow(event)
		assert.Equal(t, from, w.From)
		assert.Equal(t, until, w.Until)
	})

	t.Run("each side falls back independently", func(t *testing.T) {
		b := &Booking{ReservedFrom: &from}
		w := b.EffectiveWindow(event)
		assert.Equal(t, from, w.From)
		assert.Equal(t, event.EndDate, w.Until)

		b = &Booking{ReservedUntil: &until}
		w = b.EffectiveWindow(event)
		assert.Equal(t, event.StartDate, w.From)
		assert.Equal(t, until, w.Until)
	})
}

func TestUnitStatus_Tiers(t *testing.T) {
	for _, s := range []UnitStatus{UnitStatusAvailable, UnitStatusReserved, UnitStatusInUse} {
		assert.Equal(t, TierAutomatic, s.Tier(), string(s))
		assert.False(t, s.Manual(), string(s))
	}
	for _, s := range []UnitStatus{UnitStatusDamaged, UnitStatusUnderRepair, UnitStatusLost, UnitStatusRetired} {
		assert.Equal(t, TierManual, s.Tier(), string(s))
		assert.True(t, s.Manual(), string(s))
	}
}

func TestUnitStatus_IsValid(t *testing.T) {
	assert.True(t, UnitStatusAvailable.IsValid())
	assert.True(t, UnitStatusRetired.IsValid())
	assert.False(t, UnitStatus("BROKEN").IsValid())
	assert.False(t, UnitStatus("").IsValid())
}
