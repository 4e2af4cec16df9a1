package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityService struct {
	equipmentRepo ports.EquipmentRepo
	bookingRepo   ports.BookingRepo
	logger        logger.Logger
}

func NewAvailabilityService(
	equipmentRepo ports.EquipmentRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		logger:        logger,
	}
}

// CheckAvailability reports per unit whether it can be booked for the window.
// Unknown unit ids come back as unavailable rather than failing the batch;
// excludeEventID keeps an event's own bookings from counting as conflicts.
func (s *AvailabilityService) CheckAvailability(
	ctx context.Context,
	unitIDs []string,
	w domain.Window,
	excludeEventID string,
) ([]domain.UnitAvailability, error) {
	if !w.IsValid() {
		return nil, fmt.Errorf("%w: window end precedes start", domain.ErrValidation)
	}

	results := make([]domain.UnitAvailability, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		res, err := s.checkUnit(ctx, unitID, w, excludeEventID)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// FindAvailable narrows candidate units down to the bookable ones.
func (s *AvailabilityService) FindAvailable(
	ctx context.Context,
	unitIDs []string,
	w domain.Window,
	excludeEventID string,
) ([]string, error) {
	checked, err := s.CheckAvailability(ctx, unitIDs, w, excludeEventID)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, len(checked))
	for _, res := range checked {
		if res.Available {
			available = append(available, res.UnitID)
		}
	}

	return available, nil
}

func (s *AvailabilityService) checkUnit(ctx context.Context, unitID string, w domain.Window, excludeEventID string) (domain.UnitAvailability, error) {
	unit, err := s.equipmentRepo.GetByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, domain.ErrUnitNotFound) {
			return domain.UnitAvailability{UnitID: unitID, Reason: "not found"}, nil
		}
		return domain.UnitAvailability{}, fmt.Errorf("get unit %s: %w", unitID, err)
	}

	if unit.CurrentStatus != domain.UnitStatusAvailable {
		// RESERVED/IN_USE may derive from the excluded event's own booking, so
		// with an exclusion in play only the overlap check can tell. Manual
		// statuses always block.
		if excludeEventID == "" || unit.CurrentStatus.Manual() {
			return domain.UnitAvailability{
				UnitID: unitID,
				Reason: fmt.Sprintf("unit status is %s", unit.CurrentStatus),
			}, nil
		}
	}

	conflicts, err := s.bookingRepo.FindOverlapping(ctx, unitID, w, excludeEventID)
	if err != nil {
		return domain.UnitAvailability{}, fmt.Errorf("find overlapping bookings for %s: %w", unitID, err)
	}
	if len(conflicts) > 0 {
		return domain.UnitAvailability{
			UnitID: unitID,
			Reason: fmt.Sprintf("conflicting booking %s", conflicts[0].ID),
		}, nil
	}

	return domain.UnitAvailability{UnitID: unitID, Available: true}, nil
}
