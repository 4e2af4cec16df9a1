package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Reconciler derives booking, unit and event statuses from the current time.
// Each pass is stateless: a missed or failed pass self-corrects on the next
// one, because every transition is guarded by the expected current state.
type Reconciler struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	recomputer  *StatusRecomputer
	sink        ports.EventSink
	clock       ports.Clock
	logger      logger.Logger

	// single-flight: only one pass at a time, whether it was started by the
	// scheduler or by the manual trigger.
	mu sync.Mutex
}

func NewReconciler(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	recomputer *StatusRecomputer,
	sink ports.EventSink,
	clock ports.Clock,
	logger logger.Logger,
) *Reconciler {
	return &Reconciler{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		recomputer:  recomputer,
		sink:        sink,
		clock:       clock,
		logger:      logger,
	}
}

// ReconcileNow runs one pass at the injected clock's current time.
func (r *Reconciler) ReconcileNow(ctx context.Context) (*domain.ReconcileResult, error) {
	return r.Reconcile(ctx, r.clock.Now())
}

// Reconcile runs one pass at the given instant. Failures on individual
// bookings are collected in the result instead of aborting the batch; only a
// failure to read the batches themselves is returned as an error.
func (r *Reconciler) Reconcile(ctx context.Context, now time.Time) (*domain.ReconcileResult, error) {
	if !r.mu.TryLock() {
		return nil, domain.ErrReconcileInProgress
	}
	defer r.mu.Unlock()

	result := &domain.ReconcileResult{}

	if err := r.startEvents(ctx, now, result); err != nil {
		return nil, err
	}
	if err := r.expireBookings(ctx, now, result); err != nil {
		return nil, err
	}

	return result, nil
}

// startEvents moves CONFIRMED events whose reserved windows have opened to
// IN_PROGRESS. The event write is guarded by the expected current status, so
// several bookings of one event (or a rerun at the same instant) transition it
// at most once.
func (r *Reconciler) startEvents(ctx context.Context, now time.Time, result *domain.ReconcileResult) error {
	starting, err := r.bookingRepo.ListStarting(ctx, now)
	if err != nil {
		return fmt.Errorf("list starting bookings: %w", err)
	}

	seen := make(map[string]bool)
	for _, b := range starting {
		result.Processed++
		if seen[b.EventID] {
			continue
		}
		seen[b.EventID] = true

		event, err := r.eventRepo.GetByID(ctx, b.EventID)
		if err != nil {
			result.Failures = append(result.Failures, domain.ReconcileFailure{BookingID: b.ID, UnitID: b.UnitID, Err: err})
			continue
		}
		if event.Status != domain.EventStatusConfirmed || event.StartDate.After(now) {
			continue
		}

		err = r.eventRepo.UpdateStatus(ctx, event.ID, domain.EventStatusConfirmed, domain.EventStatusInProgress)
		if err != nil {
			result.Failures = append(result.Failures, domain.ReconcileFailure{BookingID: b.ID, UnitID: b.UnitID, Err: err})
			continue
		}
		result.Transitioned++

		r.logger.Info("event started",
			logger.String("event_id", event.ID),
		)
		r.sink.Emit(ctx, domain.EventStarted, domain.EventStartedPayload{EventID: event.ID})
	}

	return nil
}

// expireBookings returns CONFIRMED bookings whose windows have lapsed without
// a checkout. Physically checked-out gear is never auto-returned; it waits for
// an explicit checkin.
func (r *Reconciler) expireBookings(ctx context.Context, now time.Time, result *domain.ReconcileResult) error {
	expired, err := r.bookingRepo.ListExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("list expired bookings: %w", err)
	}

	for _, b := range expired {
		result.Processed++

		if b.Status == domain.BookingStatusCheckedOut {
			r.logger.Debug("checked-out booking past its window, awaiting checkin",
				logger.String("booking_id", b.ID),
				logger.String("unit_id", b.UnitID),
			)
			continue
		}

		err := r.bookingRepo.UpdateStatus(ctx, b.ID, domain.BookingStatusConfirmed, domain.BookingStatusReturned)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				// Someone checked out or cancelled between the scan and the
				// write; the next pass sees the new state.
				continue
			}
			result.Failures = append(result.Failures, domain.ReconcileFailure{BookingID: b.ID, UnitID: b.UnitID, Err: err})
			continue
		}
		result.Transitioned++

		if _, _, err = r.recomputer.Recompute(ctx, b.UnitID); err != nil {
			result.Failures = append(result.Failures, domain.ReconcileFailure{BookingID: b.ID, UnitID: b.UnitID, Err: err})
		}

		r.logger.Info("reservation expired without checkout",
			logger.String("booking_id", b.ID),
			logger.String("unit_id", b.UnitID),
			logger.String("event_id", b.EventID),
		)

		until := now
		if w, err := r.effectiveUntil(ctx, b); err == nil {
			until = w
		}
		r.sink.Emit(ctx, domain.EventReservationExpired, domain.ReservationExpiredPayload{
			BookingID:     b.ID,
			UnitID:        b.UnitID,
			EventID:       b.EventID,
			ReservedUntil: until,
		})
		r.sink.Emit(ctx, domain.EventBookingReturned, domain.BookingEventPayload{
			BookingID: b.ID,
			UnitID:    b.UnitID,
			EventID:   b.EventID,
			Status:    domain.BookingStatusReturned,
		})
	}

	return nil
}

func (r *Reconciler) effectiveUntil(ctx context.Context, b *domain.Booking) (time.Time, error) {
	if b.ReservedUntil != nil {
		return *b.ReservedUntil, nil
	}
	event, err := r.eventRepo.GetByID(ctx, b.EventID)
	if err != nil {
		return time.Time{}, err
	}
	return event.EndDate, nil
}
