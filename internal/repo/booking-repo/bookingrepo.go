package bookingrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

const bookingColumns = `id, court_id, member_id, start_time, end_time, total_price, transaction_id, status, hold_until, is_recurring, recurrence_rule, parent_booking_id`

// CalendarEntry is a booking joined with the names shown on the public calendar.
type CalendarEntry struct {
	domain.Booking
	CourtName  string
	MemberName string
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.CourtID, &b.MemberID, &b.StartTime, &b.EndTime, &b.TotalPrice,
		&b.TransactionID, &b.Status, &b.HoldUntil, &b.IsRecurring, &b.RecurrenceRule, &b.ParentBookingID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query := `
        INSERT INTO bookings (court_id, member_id, start_time, end_time, total_price, transaction_id, status, hold_until, is_recurring, recurrence_rule, parent_booking_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + bookingColumns
	created, err := scanBooking(r.db.QueryRow(ctx, query,
		b.CourtID, b.MemberID, b.StartTime, b.EndTime, b.TotalPrice, b.TransactionID,
		b.Status, b.HoldUntil, b.IsRecurring, b.RecurrenceRule, b.ParentBookingID))
	if err != nil {
		zap.L().Error("failed to create booking", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find booking", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

// GetForUpdate locks the booking row so that confirm, release, cancel and the
// hold reaper resolve their races on the row lock.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock booking row", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	query := `
        UPDATE bookings
        SET status = $1, hold_until = $2, transaction_id = $3, total_price = $4, parent_booking_id = $5
        WHERE id = $6
    `
	if _, err := r.db.Exec(ctx, query, b.Status, b.HoldUntil, b.TransactionID, b.TotalPrice, b.ParentBookingID, b.ID); err != nil {
		zap.L().Error("failed to update booking", zap.Error(err))
		return err
	}
	return nil
}

// ListBlocking returns the bookings on a court that can block a future slot:
// Cancelled rows never block, Holding rows block only while their hold is
// unexpired, Confirmed and Completed rows always block. Rows already ended
// before now are skipped since new bookings cannot start in the past.
func (r *Repository) ListBlocking(ctx context.Context, courtID int, now time.Time) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE court_id = $1
          AND status <> 'Cancelled'
          AND (status <> 'Holding' OR (hold_until IS NOT NULL AND hold_until > $2))
          AND end_time > $2
    `
	rows, err := r.db.Query(ctx, query, courtID, now)
	if err != nil {
		zap.L().Error("failed to list blocking bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *Repository) Calendar(ctx context.Context, from, to, now time.Time) ([]CalendarEntry, error) {
	query := `
        SELECT b.id, b.court_id, b.member_id, b.start_time, b.end_time, b.total_price, b.transaction_id,
               b.status, b.hold_until, b.is_recurring, b.recurrence_rule, b.parent_booking_id,
               c.name, m.full_name
        FROM bookings b
        JOIN courts c ON c.id = b.court_id
        JOIN members m ON m.id = b.member_id
        WHERE b.start_time >= $1 AND b.end_time <= $2
          AND b.status <> 'Cancelled'
          AND (b.status <> 'Holding' OR b.hold_until IS NULL OR b.hold_until > $3)
        ORDER BY b.start_time
    `
	rows, err := r.db.Query(ctx, query, from, to, now)
	if err != nil {
		zap.L().Error("failed to load calendar", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []CalendarEntry
	for rows.Next() {
		var e CalendarEntry
		err := rows.Scan(&e.ID, &e.CourtID, &e.MemberID, &e.StartTime, &e.EndTime, &e.TotalPrice,
			&e.TransactionID, &e.Status, &e.HoldUntil, &e.IsRecurring, &e.RecurrenceRule,
			&e.ParentBookingID, &e.CourtName, &e.MemberName)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) FindByMember(ctx context.Context, memberID int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE member_id = $1 ORDER BY start_time DESC`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("failed to list member bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// CancelExpiredHolds flips every expired hold to Cancelled, at most limit rows
// per call. SKIP LOCKED keeps the sweep from queueing behind an in-flight
// confirm on the same row.
func (r *Repository) CancelExpiredHolds(ctx context.Context, now time.Time, limit int) (int64, error) {
	query := `
        UPDATE bookings
        SET status = 'Cancelled', hold_until = NULL
        WHERE id IN (
            SELECT id FROM bookings
            WHERE status = 'Holding' AND hold_until IS NOT NULL AND hold_until < $1
            LIMIT $2
            FOR UPDATE SKIP LOCKED
        )
    `
	tag, err := r.db.Exec(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("failed to cancel expired holds", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
