package ports

import (
	"context"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	// FindOverlapping returns active bookings of the unit whose effective
	// window intersects w (inclusive bounds). Bookings of excludeEventID are
	// skipped when it is non-empty.
	FindOverlapping(ctx context.Context, unitID string, w domain.Window, excludeEventID string) ([]*domain.Booking, error)
	// FindActiveForUnit returns the unit's active bookings, newest first.
	FindActiveForUnit(ctx context.Context, unitID string) ([]*domain.Booking, error)
	// UpdateStatus advances a booking from -> to and fails with
	// domain.ErrInvalidTransition if the booking moved away from from.
	UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus) error
	// ConfirmPending confirms every PENDING booking of the event and returns
	// the ones actually transitioned, making repeat calls no-ops.
	ConfirmPending(ctx context.Context, eventID string) ([]*domain.Booking, error)
	// ListStarting returns CONFIRMED bookings whose effective window covers
	// now and whose event is CONFIRMED or IN_PROGRESS.
	ListStarting(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	// ListExpired returns CONFIRMED and CHECKED_OUT bookings whose effective
	// window ended before now and whose event is not CANCELLED.
	ListExpired(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
