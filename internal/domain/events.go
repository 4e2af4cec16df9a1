package domain

import "time"

// Lifecycle event types pushed to the event sink. Routing keys on the broker
// side match these verbatim.
const (
	EventBookingCreated      = "equipment.booking.created"
	EventBookingConfirmed    = "equipment.booking.confirmed"
	EventBookingCancelled    = "equipment.booking.cancelled"
	EventBookingCheckedOut   = "equipment.booking.checked_out"
	EventBookingReturned     = "equipment.booking.returned"
	EventUnitStatusChanged   = "equipment.unit.status_changed"
	EventMaintenanceRequired = "equipment.unit.maintenance_required"
	EventReservationExpired  = "equipment.reservation.expired"
	EventStarted             = "equipment.event.in_progress"
)

type BookingEventPayload struct {
	BookingID string        `json:"booking_id"`
	UnitID    string        `json:"unit_id"`
	EventID   string        `json:"event_id"`
	Status    BookingStatus `json:"status"`
}

type UnitStatusPayload struct {
	UnitID         string     `json:"unit_id"`
	PreviousStatus UnitStatus `json:"previous_status"`
	NewStatus      UnitStatus `json:"new_status"`
	Reason         string     `json:"reason,omitempty"`
}

type ReservationExpiredPayload struct {
	BookingID     string    `json:"booking_id"`
	UnitID        string    `json:"unit_id"`
	EventID       string    `json:"event_id"`
	ReservedUntil time.Time `json:"reserved_until"`
}

type EventStartedPayload struct {
	EventID string `json:"event_id"`
}
