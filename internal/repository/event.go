package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db        *dbpg.DB
	strategy  retry.Strategy
	opTimeout time.Duration
}

func NewEventRepo(db *dbpg.DB, opTimeout time.Duration) *EventRepository {
	return &EventRepository{
		db:        db,
		strategy:  defaultStrategy,
		opTimeout: opTimeout,
	}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT id, name, start_date, end_date, status
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", storage(err))
	}

	var e domain.Event
	if err = row.Scan(&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", storage(err))
	}

	return &e, nil
}

// UpdateStatus performs the delegated event transition. A row that already
// moved past from is treated as done, which keeps reconciliation reruns quiet.
func (r *EventRepository) UpdateStatus(ctx context.Context, eventID string, from, to domain.EventStatus) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `UPDATE events
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, from, to)
	if err != nil {
		return fmt.Errorf("update event status: %w", storage(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", storage(err))
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, eventID)
		if err != nil {
			return fmt.Errorf("check event: %w", storage(err))
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan event check: %w", storage(err))
		}
		if !exists {
			return domain.ErrEventNotFound
		}
	}

	return nil
}
