package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusReturned   BookingStatus = "RETURNED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// ActiveStatuses are the booking statuses that hold a unit and take part in
// overlap checks.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedOut,
}

// validTransitions defines the state machine for booking status transitions.
// RETURNED from CONFIRMED happens only on window expiry during reconciliation.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusReturned},
	BookingStatusCheckedOut: {BookingStatusReturned},
	BookingStatusReturned:   {},
	BookingStatusCancelled:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	return exists && len(allowed) == 0
}

// Booking reserves one equipment unit for one event. ReservedFrom/ReservedUntil
// override the event's dates when set; either side may be overridden on its own.
type Booking struct {
	ID            string        `json:"id"`
	UnitID        string        `json:"unit_id"`
	EventID       string        `json:"event_id"`
	ReservedFrom  *time.Time    `json:"reserved_from,omitempty"`
	ReservedUntil *time.Time    `json:"reserved_until,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// EffectiveWindow resolves the booking's window, falling back to the event's
// dates for any side not set explicitly on the booking.
func (b *Booking) EffectiveWindow(event *Event) Window {
	w := Window{From: event.StartDate, Until: event.EndDate}
	if b.ReservedFrom != nil {
		w.From = *b.ReservedFrom
	}
	if b.ReservedUntil != nil {
		w.Until = *b.ReservedUntil
	}
	return w
}

type BookInput struct {
	UnitID        string
	EventID       string
	ReservedFrom  *time.Time
	ReservedUntil *time.Time
	Notes         string
}

// UnitAvailability is the per-unit outcome of an availability check.
type UnitAvailability struct {
	UnitID    string `json:"unit_id"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
