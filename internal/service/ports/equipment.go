package ports

import (
	"context"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
)

type EquipmentRepo interface {
	Create(ctx context.Context, unit *domain.EquipmentUnit) error
	GetByID(ctx context.Context, id string) (*domain.EquipmentUnit, error)
	List(ctx context.Context, filter domain.UnitFilter) ([]*domain.EquipmentUnit, error)
	// UpdateStatus writes the new status and its history entry only while the
	// unit still has status from; a lost race returns ErrStatusRace so each
	// caller can decide between retrying and standing down.
	UpdateStatus(ctx context.Context, unitID string, from, to domain.UnitStatus, reason, actor string) error
	History(ctx context.Context, unitID string) ([]*domain.StatusHistoryEntry, error)
}
