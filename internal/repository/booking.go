package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.unit_id, b.event_id, b.reserved_from, b.reserved_until,
		  b.notes, b.status, b.created_at, b.updated_at`

type BookingRepository struct {
	db        *dbpg.DB
	strategy  retry.Strategy
	opTimeout time.Duration
}

func NewBookingRepo(db *dbpg.DB, opTimeout time.Duration) *BookingRepository {
	return &BookingRepository{
		db:        db,
		strategy:  defaultStrategy,
		opTimeout: opTimeout,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `INSERT INTO bookings (id, unit_id, event_id, reserved_from, reserved_until, notes, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.UnitID, b.EventID, b.ReservedFrom, b.ReservedUntil,
		b.Notes, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23P01": // exclusion constraint on overlapping active windows
				return domain.ErrBookingConflict
			case "23503":
				if strings.Contains(pgErr.Constraint, "unit") {
					return domain.ErrUnitNotFound
				}
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert booking: %w", storage(err))
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", storage(err))
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", storage(err))
	}

	return b, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.event_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", storage(err))
	}
	return collectBookings(rows)
}

// FindOverlapping applies the inclusive-overlap predicate over effective
// windows: a missing explicit bound falls back to the event's dates.
func (r *BookingRepository) FindOverlapping(ctx context.Context, unitID string, w domain.Window, excludeEventID string) ([]*domain.Booking, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.unit_id = $1
			    AND b.status = ANY($2)
			    AND COALESCE(b.reserved_from, e.start_date) <= $4
			    AND COALESCE(b.reserved_until, e.end_date) >= $3
			    AND ($5 = '' OR b.event_id::text <> $5)
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, unitID, pq.Array(domain.ActiveStatuses), w.From, w.Until, excludeEventID)
	if err != nil {
		return nil, fmt.Errorf("find overlapping bookings: %w", storage(err))
	}
	return collectBookings(rows)
}

func (r *BookingRepository) FindActiveForUnit(ctx context.Context, unitID string) ([]*domain.Booking, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.unit_id = $1 AND b.status = ANY($2)
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, unitID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("find active bookings: %w", storage(err))
	}
	return collectBookings(rows)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", storage(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", storage(err))
	}
	if rows == 0 {
		// Find out whether the booking is gone or just moved on.
		var current domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, bookingID)
		if err != nil {
			return fmt.Errorf("check booking: %w", storage(err))
		}
		if err = row.Scan(&current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("scan booking status: %w", storage(err))
		}
		return fmt.Errorf("%w: booking is %s, expected %s", domain.ErrInvalidTransition, current, from)
	}

	return nil
}

func (r *BookingRepository) ConfirmPending(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `UPDATE bookings b
			  SET status = $3, updated_at = now()
			  WHERE b.event_id = $1 AND b.status = $2
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.BookingStatusPending, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirm pending bookings: %w", storage(err))
	}
	return collectBookings(rows)
}

func (r *BookingRepository) ListStarting(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.status = $1
			    AND e.status = ANY($2)
			    AND COALESCE(b.reserved_from, e.start_date) <= $3
			    AND COALESCE(b.reserved_until, e.end_date) >= $3
			  ORDER BY b.created_at`

	eventStatuses := []domain.EventStatus{domain.EventStatusConfirmed, domain.EventStatusInProgress}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed, pq.Array(eventStatuses), now)
	if err != nil {
		return nil, fmt.Errorf("list starting bookings: %w", storage(err))
	}
	return collectBookings(rows)
}

func (r *BookingRepository) ListExpired(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.status = ANY($1)
			    AND e.status <> $2
			    AND COALESCE(b.reserved_until, e.end_date) < $3
			  ORDER BY b.created_at`

	statuses := []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusCheckedOut}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(statuses), domain.EventStatusCancelled, now)
	if err != nil {
		return nil, fmt.Errorf("list expired bookings: %w", storage(err))
	}
	return collectBookings(rows)
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	err := scan(
		&b.ID, &b.UnitID, &b.EventID, &b.ReservedFrom, &b.ReservedUntil,
		&b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", storage(err))
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
