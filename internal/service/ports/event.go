package ports

import (
	"context"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
)

// EventRepo is read-mostly: events belong to the surrounding system. The one
// write is the delegated CONFIRMED -> IN_PROGRESS transition, guarded by the
// expected current status.
type EventRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	UpdateStatus(ctx context.Context, eventID string, from, to domain.EventStatus) error
}
