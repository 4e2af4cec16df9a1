package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EquipmentService struct {
	equipmentRepo ports.EquipmentRepo
	bookingRepo   ports.BookingRepo
	sink          ports.EventSink
	clock         ports.Clock
	logger        logger.Logger
}

func NewEquipmentService(
	equipmentRepo ports.EquipmentRepo,
	bookingRepo ports.BookingRepo,
	sink ports.EventSink,
	clock ports.Clock,
	logger logger.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		sink:          sink,
		clock:         clock,
		logger:        logger,
	}
}

func (s *EquipmentService) Register(ctx context.Context, input domain.RegisterUnitInput) (*domain.EquipmentUnit, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.SerialNumber == "" {
		return nil, fmt.Errorf("%w: serial_number is required", domain.ErrValidation)
	}

	now := s.clock.Now()
	unit := &domain.EquipmentUnit{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Category:      input.Category,
		SerialNumber:  input.SerialNumber,
		CurrentStatus: domain.UnitStatusAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.equipmentRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("create unit: %w", err)
	}

	s.logger.Info("unit registered",
		logger.String("unit_id", unit.ID),
		logger.String("category", unit.Category),
	)

	return unit, nil
}

// SetStatus is the manual status-change operation. People may park a unit in
// any manual-tier status or bring it back to AVAILABLE; RESERVED and IN_USE
// are derived from bookings and cannot be set by hand.
func (s *EquipmentService) SetStatus(ctx context.Context, unitID string, status domain.UnitStatus, reason, actor string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	if !status.Manual() && status != domain.UnitStatusAvailable {
		return fmt.Errorf("%w: status %s is derived automatically", domain.ErrValidation, status)
	}
	if reason == "" {
		return fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}
	if actor == "" {
		return fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}

	const maxAttempts = 3

	var unit *domain.EquipmentUnit
	for attempt := 1; ; attempt++ {
		var err error
		unit, err = s.equipmentRepo.GetByID(ctx, unitID)
		if err != nil {
			return fmt.Errorf("get unit: %w", err)
		}
		if unit.CurrentStatus == status {
			return nil
		}

		err = s.equipmentRepo.UpdateStatus(ctx, unitID, unit.CurrentStatus, status, reason, actor)
		if err == nil {
			break
		}
		// A write that lost to the reconciler needs a fresh read; the manual
		// target itself is settable from any state.
		if errors.Is(err, domain.ErrStatusRace) && attempt < maxAttempts {
			continue
		}
		return fmt.Errorf("update unit status: %w", err)
	}

	s.logger.Info("unit status set manually",
		logger.String("unit_id", unitID),
		logger.String("from", string(unit.CurrentStatus)),
		logger.String("to", string(status)),
		logger.String("actor", actor),
	)

	go s.sink.Emit(context.WithoutCancel(ctx), domain.EventUnitStatusChanged, domain.UnitStatusPayload{
		UnitID:         unitID,
		PreviousStatus: unit.CurrentStatus,
		NewStatus:      status,
		Reason:         reason,
	})

	return nil
}

func (s *EquipmentService) List(ctx context.Context, filter domain.UnitFilter) ([]*domain.EquipmentUnit, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.equipmentRepo.List(ctx, filter)
}

func (s *EquipmentService) Details(ctx context.Context, unitID string) (*domain.UnitDetails, error) {
	unit, err := s.equipmentRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	active, err := s.bookingRepo.FindActiveForUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("find active bookings: %w", err)
	}

	history, err := s.equipmentRepo.History(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("load status history: %w", err)
	}

	details := &domain.UnitDetails{Unit: *unit}
	details.ActiveBookings = make([]domain.Booking, len(active))
	for i, b := range active {
		details.ActiveBookings[i] = *b
	}
	details.History = make([]domain.StatusHistoryEntry, len(history))
	for i, h := range history {
		details.History[i] = *h
	}

	return details, nil
}
