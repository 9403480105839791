package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const bookingCols = `id, location, section_id, patient_name, to_char(date, 'YYYY-MM-DD'), slot_time, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.Location, &b.SectionID, &b.PatientName, &b.Date, &b.Time, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Booking) error {
	b.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO booking (id, location, section_id, patient_name, date, slot_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Location, b.SectionID, b.PatientName, b.Date, b.Time, b.Status)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return scanBooking(r.pool.QueryRow(ctx, `SELECT `+bookingCols+` FROM booking WHERE id = $1`, id))
}

func (r *repoPG) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE booking SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status <> $2`, id, StatusCancelled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListByDay(ctx context.Context, location, date string, limit, offset int) ([]*Booking, int, error) {
	where := ` FROM booking WHERE location = $1 AND date = $2::date`
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+where, location, date).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingCols+where+` ORDER BY slot_time LIMIT $3 OFFSET $4`,
		location, date, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, nil
}

func (r *repoPG) FindBookedTimes(ctx context.Context, q BookedTimesQuery) (map[string]bool, error) {
	if len(q.Times) == 0 {
		return map[string]bool{}, nil
	}
	// date is a DATE column, so equality already covers the whole calendar
	// day without timezone arithmetic.
	query := `SELECT slot_time FROM booking
		WHERE location = $1 AND date = $2::date AND status = $3 AND slot_time = ANY($4)`
	args := []interface{}{q.Location, q.Date, StatusBooked, q.Times}
	switch {
	case q.SectionID != nil:
		query += fmt.Sprintf(` AND section_id = $%d`, len(args)+1)
		args = append(args, *q.SectionID)
	case !q.AnySection:
		query += ` AND section_id IS NULL`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make(map[string]bool)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		booked[t] = true
	}
	return booked, rows.Err()
}
