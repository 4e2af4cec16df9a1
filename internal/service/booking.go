package service

import (
	"context"
	"fmt"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type availabilityChecker interface {
	CheckAvailability(ctx context.Context, unitIDs []string, w domain.Window, excludeEventID string) ([]domain.UnitAvailability, error)
}

// BookingService owns the booking lifecycle. Unit status never gets written
// here directly; every status effect goes through the recomputer.
type BookingService struct {
	bookingRepo   ports.BookingRepo
	equipmentRepo ports.EquipmentRepo
	eventRepo     ports.EventRepo
	availability  availabilityChecker
	recomputer    *StatusRecomputer
	sink          ports.EventSink
	clock         ports.Clock
	logger        logger.Logger

	locks unitLocks
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	equipmentRepo ports.EquipmentRepo,
	eventRepo ports.EventRepo,
	availability availabilityChecker,
	recomputer *StatusRecomputer,
	sink ports.EventSink,
	clock ports.Clock,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		eventRepo:     eventRepo,
		availability:  availability,
		recomputer:    recomputer,
		sink:          sink,
		clock:         clock,
		logger:        logger,
	}
}

// Book reserves the unit for the event's effective window. The availability
// check and the insert form one critical section per unit: a concurrent Book
// for the same unit waits here and then sees the first booking as a conflict.
func (s *BookingService) Book(ctx context.Context, input domain.BookInput) (*domain.Booking, error) {
	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if _, err = s.equipmentRepo.GetByID(ctx, input.UnitID); err != nil {
		return nil, fmt.Errorf("check unit: %w", err)
	}

	now := s.clock.Now()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UnitID:        input.UnitID,
		EventID:       input.EventID,
		ReservedFrom:  input.ReservedFrom,
		ReservedUntil: input.ReservedUntil,
		Notes:         input.Notes,
		Status:        domain.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	window := booking.EffectiveWindow(event)
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: reservation window end precedes start", domain.ErrValidation)
	}

	unlock := s.locks.lock(input.UnitID)
	defer unlock()

	checked, err := s.availability.CheckAvailability(ctx, []string{input.UnitID}, window, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !checked[0].Available {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingConflict, checked[0].Reason)
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// The booking row is the source of truth at this point. If deriving the
	// unit status fails, the next reconciliation pass re-derives it, so the
	// booking is still reported back to the caller.
	if _, _, err = s.recomputer.Recompute(ctx, input.UnitID); err != nil {
		s.logger.Warn("recompute unit status after booking",
			logger.String("booking_id", booking.ID),
			logger.String("unit_id", input.UnitID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("unit_id", input.UnitID),
		logger.String("event_id", input.EventID),
	)

	go s.sink.Emit(context.WithoutCancel(ctx), domain.EventBookingCreated, domain.BookingEventPayload{
		BookingID: booking.ID,
		UnitID:    booking.UnitID,
		EventID:   booking.EventID,
		Status:    booking.Status,
	})

	return booking, nil
}

// Cancel releases a booking that has not been checked out yet.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if !booking.Status.CanTransitionTo(domain.BookingStatusCancelled) {
		return fmt.Errorf("%w: cannot cancel a %s booking", domain.ErrInvalidTransition, booking.Status)
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, domain.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	if _, _, err = s.recomputer.Recompute(ctx, booking.UnitID); err != nil {
		return fmt.Errorf("recompute unit status: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("unit_id", booking.UnitID),
	)

	go s.sink.Emit(context.WithoutCancel(ctx), domain.EventBookingCancelled, domain.BookingEventPayload{
		BookingID: booking.ID,
		UnitID:    booking.UnitID,
		EventID:   booking.EventID,
		Status:    domain.BookingStatusCancelled,
	})

	return nil
}

// ConfirmAll confirms every pending booking of the event. Already-confirmed
// bookings are untouched, so repeating the call is harmless.
func (s *BookingService) ConfirmAll(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	confirmed, err := s.bookingRepo.ConfirmPending(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("confirm pending: %w", err)
	}

	if len(confirmed) > 0 {
		s.logger.Info("bookings confirmed",
			logger.String("event_id", eventID),
			logger.Int("count", len(confirmed)),
		)
	}

	for _, b := range confirmed {
		go s.sink.Emit(context.WithoutCancel(ctx), domain.EventBookingConfirmed, domain.BookingEventPayload{
			BookingID: b.ID,
			UnitID:    b.UnitID,
			EventID:   b.EventID,
			Status:    domain.BookingStatusConfirmed,
		})
	}

	return confirmed, nil
}

// Checkout hands the gear over: CONFIRMED -> CHECKED_OUT, unit goes IN_USE.
func (s *BookingService) Checkout(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusConfirmed {
		return fmt.Errorf("%w: cannot check out a %s booking", domain.ErrInvalidTransition, booking.Status)
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, domain.BookingStatusCheckedOut); err != nil {
		return fmt.Errorf("checkout booking: %w", err)
	}

	if _, _, err = s.recomputer.Recompute(ctx, booking.UnitID); err != nil {
		return fmt.Errorf("recompute unit status: %w", err)
	}

	s.logger.Info("booking checked out",
		logger.String("booking_id", bookingID),
		logger.String("unit_id", booking.UnitID),
	)

	go s.sink.Emit(context.WithoutCancel(ctx), domain.EventBookingCheckedOut, domain.BookingEventPayload{
		BookingID: booking.ID,
		UnitID:    booking.UnitID,
		EventID:   booking.EventID,
		Status:    domain.BookingStatusCheckedOut,
	})

	return nil
}

// Checkin takes the gear back. A damaged condition moves the unit to DAMAGED
// through the manual status path and flags it for the maintenance collaborator;
// otherwise the unit status is recomputed from its remaining bookings.
func (s *BookingService) Checkin(ctx context.Context, bookingID string, condition domain.UnitCondition) error {
	if !condition.IsValid() {
		return fmt.Errorf("%w: unknown condition %q", domain.ErrValidation, condition)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusCheckedOut {
		return fmt.Errorf("%w: cannot check in a %s booking", domain.ErrInvalidTransition, booking.Status)
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, domain.BookingStatusReturned); err != nil {
		return fmt.Errorf("checkin booking: %w", err)
	}

	if condition == domain.ConditionDamaged {
		unit, err := s.equipmentRepo.GetByID(ctx, booking.UnitID)
		if err != nil {
			return fmt.Errorf("get unit: %w", err)
		}
		err = s.equipmentRepo.UpdateStatus(ctx, booking.UnitID, unit.CurrentStatus, domain.UnitStatusDamaged,
			fmt.Sprintf("returned damaged on booking %s", bookingID), systemActor)
		if err != nil {
			return fmt.Errorf("flag unit damaged: %w", err)
		}

		go s.sink.Emit(context.WithoutCancel(ctx), domain.EventMaintenanceRequired, domain.UnitStatusPayload{
			UnitID:         booking.UnitID,
			PreviousStatus: unit.CurrentStatus,
			NewStatus:      domain.UnitStatusDamaged,
			Reason:         "returned damaged",
		})
	} else if _, _, err = s.recomputer.Recompute(ctx, booking.UnitID); err != nil {
		return fmt.Errorf("recompute unit status: %w", err)
	}

	s.logger.Info("booking returned",
		logger.String("booking_id", bookingID),
		logger.String("unit_id", booking.UnitID),
		logger.String("condition", string(condition)),
	)

	go s.sink.Emit(context.WithoutCancel(ctx), domain.EventBookingReturned, domain.BookingEventPayload{
		BookingID: booking.ID,
		UnitID:    booking.UnitID,
		EventID:   booking.EventID,
		Status:    domain.BookingStatusReturned,
	})

	return nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByEvent(ctx, eventID)
}
