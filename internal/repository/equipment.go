package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EquipmentRepository struct {
	db        *dbpg.DB
	strategy  retry.Strategy
	opTimeout time.Duration
}

func NewEquipmentRepo(db *dbpg.DB, opTimeout time.Duration) *EquipmentRepository {
	return &EquipmentRepository{
		db:        db,
		strategy:  defaultStrategy,
		opTimeout: opTimeout,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, unit *domain.EquipmentUnit) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", storage(err))
	}
	defer tx.Rollback()

	query := `INSERT INTO equipment_units (id, name, category, serial_number, current_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, unit.ID, unit.Name, unit.Category,
		unit.SerialNumber, unit.CurrentStatus, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateSerial
		}
		return fmt.Errorf("insert unit: %w", storage(err))
	}

	historyQuery := `INSERT INTO status_history (unit_id, previous_status, new_status, reason, actor, created_at)
					 VALUES ($1, NULL, $2, $3, $4, $5)`
	_, err = tx.ExecContext(ctx, historyQuery, unit.ID, unit.CurrentStatus, "unit registered", "system", unit.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert history: %w", storage(err))
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", storage(err))
	}
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.EquipmentUnit, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT id, name, category, serial_number, current_status, created_at, updated_at
			  FROM equipment_units
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", storage(err))
	}

	var u domain.EquipmentUnit
	if err = row.Scan(&u.ID, &u.Name, &u.Category, &u.SerialNumber, &u.CurrentStatus, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("scan unit: %w", storage(err))
	}

	return &u, nil
}

func (r *EquipmentRepository) List(ctx context.Context, filter domain.UnitFilter) ([]*domain.EquipmentUnit, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT id, name, category, serial_number, current_status, created_at, updated_at
			  FROM equipment_units
			  WHERE ($1 = '' OR category = $1)
			    AND ($2 = '' OR current_status = $2)
			  ORDER BY category, name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.Category, string(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("list units: %w", storage(err))
	}
	defer rows.Close()

	var res []*domain.EquipmentUnit
	for rows.Next() {
		var u domain.EquipmentUnit
		if err = rows.Scan(&u.ID, &u.Name, &u.Category, &u.SerialNumber, &u.CurrentStatus, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", storage(err))
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

// UpdateStatus writes the status and its history row only while the unit still
// carries from. A row that moved on is left alone and reported as
// ErrStatusRace: the recomputer stands down, the manual path re-reads and
// tries again.
func (r *EquipmentRepository) UpdateStatus(ctx context.Context, unitID string, from, to domain.UnitStatus, reason, actor string) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", storage(err))
	}
	defer tx.Rollback()

	query := `UPDATE equipment_units
			  SET current_status = $3, updated_at = now()
			  WHERE id = $1 AND current_status = $2`
	res, err := tx.ExecContext(ctx, query, unitID, from, to)
	if err != nil {
		return fmt.Errorf("update unit status: %w", storage(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unit rows affected: %w", storage(err))
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM equipment_units WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, checkQuery, unitID).Scan(&exists); err != nil {
			return fmt.Errorf("check unit: %w", storage(err))
		}
		if !exists {
			return domain.ErrUnitNotFound
		}
		return fmt.Errorf("%w: unit %s is no longer %s", domain.ErrStatusRace, unitID, from)
	}

	historyQuery := `INSERT INTO status_history (unit_id, previous_status, new_status, reason, actor, created_at)
					 VALUES ($1, $2, $3, $4, $5, now())`
	if _, err = tx.ExecContext(ctx, historyQuery, unitID, from, to, reason, actor); err != nil {
		return fmt.Errorf("insert history: %w", storage(err))
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", storage(err))
	}
	return nil
}

func (r *EquipmentRepository) History(ctx context.Context, unitID string) ([]*domain.StatusHistoryEntry, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT id, unit_id, COALESCE(previous_status, ''), new_status, reason, actor, created_at
			  FROM status_history
			  WHERE unit_id = $1
			  ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, unitID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", storage(err))
	}
	defer rows.Close()

	var res []*domain.StatusHistoryEntry
	for rows.Next() {
		var h domain.StatusHistoryEntry
		if err = rows.Scan(&h.ID, &h.UnitID, &h.PreviousStatus, &h.NewStatus, &h.Reason, &h.Actor, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", storage(err))
		}
		res = append(res, &h)
	}

	return res, rows.Err()
}
