package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const systemActor = "system"

// StatusRecomputer derives a unit's automatic status from its booking history.
// It is the single write path for automatic statuses: both the booking manager
// and the reconciler go through it, which is what keeps manual overrides safe.
type StatusRecomputer struct {
	equipmentRepo ports.EquipmentRepo
	bookingRepo   ports.BookingRepo
	sink          ports.EventSink
	logger        logger.Logger
}

func NewStatusRecomputer(
	equipmentRepo ports.EquipmentRepo,
	bookingRepo ports.BookingRepo,
	sink ports.EventSink,
	logger logger.Logger,
) *StatusRecomputer {
	return &StatusRecomputer{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		sink:          sink,
		logger:        logger,
	}
}

// Recompute derives and, when it differs, writes the unit's status. It returns
// the resulting status and whether a write happened. Manual-tier statuses are
// never touched.
func (r *StatusRecomputer) Recompute(ctx context.Context, unitID string) (domain.UnitStatus, bool, error) {
	unit, err := r.equipmentRepo.GetByID(ctx, unitID)
	if err != nil {
		return "", false, fmt.Errorf("get unit: %w", err)
	}

	if unit.CurrentStatus.Manual() {
		return unit.CurrentStatus, false, nil
	}

	active, err := r.bookingRepo.FindActiveForUnit(ctx, unitID)
	if err != nil {
		return "", false, fmt.Errorf("find active bookings: %w", err)
	}

	target := domain.UnitStatusAvailable
	if len(active) > 0 {
		// Most recently created active booking decides.
		if active[0].Status == domain.BookingStatusCheckedOut {
			target = domain.UnitStatusInUse
		} else {
			target = domain.UnitStatusReserved
		}
	}

	if target == unit.CurrentStatus {
		return target, false, nil
	}

	err = r.equipmentRepo.UpdateStatus(ctx, unitID, unit.CurrentStatus, target, "derived from booking activity", systemActor)
	if err != nil {
		// A concurrent writer (operator or another pass) won; its status
		// stands and the next pass re-derives from the fresh row.
		if errors.Is(err, domain.ErrStatusRace) {
			return unit.CurrentStatus, false, nil
		}
		return "", false, fmt.Errorf("update unit status: %w", err)
	}

	r.logger.Info("unit status recomputed",
		logger.String("unit_id", unitID),
		logger.String("from", string(unit.CurrentStatus)),
		logger.String("to", string(target)),
	)

	r.sink.Emit(ctx, domain.EventUnitStatusChanged, domain.UnitStatusPayload{
		UnitID:         unitID,
		PreviousStatus: unit.CurrentStatus,
		NewStatus:      target,
		Reason:         "derived from booking activity",
	})

	return target, true, nil
}
