package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) GetSectionSchedule(ctx context.Context, sectionID uuid.UUID, location string) (*SectionSchedule, error) {
	var s SectionSchedule
	err := r.pool.QueryRow(ctx, `
		SELECT id, section_id, location, slot_interval, created_at, updated_at
		FROM section_schedule WHERE section_id = $1 AND location = $2`,
		sectionID, location).
		Scan(&s.ID, &s.SectionID, &s.Location, &s.SlotInterval, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Days, err = r.loadDays(ctx, "section_schedule_slot", s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) GetLocationSchedule(ctx context.Context, location string) (*LocationSchedule, error) {
	var s LocationSchedule
	err := r.pool.QueryRow(ctx, `
		SELECT id, location, created_at, updated_at
		FROM location_schedule WHERE location = $1`, location).
		Scan(&s.ID, &s.Location, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Days, err = r.loadDays(ctx, "location_schedule_slot", s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) loadDays(ctx context.Context, table string, scheduleID uuid.UUID) (WeekMap, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT weekday, slot_time, slot_date FROM %s
		WHERE schedule_id = $1 ORDER BY weekday, slot_time, slot_date`, table), scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(WeekMap)
	for rows.Next() {
		var day int
		var spec SlotSpec
		if err := rows.Scan(&day, &spec.Time, &spec.Date); err != nil {
			return nil, err
		}
		spec.Default = spec.Date == DefaultDate
		days[Weekday(day)] = append(days[Weekday(day)], spec)
	}
	return days, rows.Err()
}

func (r *repoPG) ReplaceSectionDay(ctx context.Context, sectionID uuid.UUID, location string, day Weekday, interval int, slots []SlotSpec) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var scheduleID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO section_schedule (id, section_id, location, slot_interval)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (section_id, location)
		DO UPDATE SET slot_interval = EXCLUDED.slot_interval, updated_at = NOW()
		RETURNING id`,
		uuid.New(), sectionID, location, interval).Scan(&scheduleID)
	if err != nil {
		return err
	}
	if err := r.replaceDay(ctx, tx, "section_schedule_slot", scheduleID, day, slots); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *repoPG) ReplaceLocationDay(ctx context.Context, location string, day Weekday, slots []SlotSpec) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var scheduleID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO location_schedule (id, location)
		VALUES ($1, $2)
		ON CONFLICT (location) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		uuid.New(), location).Scan(&scheduleID)
	if err != nil {
		return err
	}
	if err := r.replaceDay(ctx, tx, "location_schedule_slot", scheduleID, day, slots); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *repoPG) replaceDay(ctx context.Context, tx pgx.Tx, table string, scheduleID uuid.UUID, day Weekday, slots []SlotSpec) error {
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE schedule_id = $1 AND weekday = $2`, table), scheduleID, int(day)); err != nil {
		return err
	}
	for _, spec := range slots {
		_, err := tx.Exec(ctx, fmt.Sprintf(`
			INSERT INTO %s (id, schedule_id, weekday, slot_time, slot_date)
			VALUES ($1, $2, $3, $4, $5)`, table),
			uuid.New(), scheduleID, int(day), spec.Time, spec.Date)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) DeleteSectionDay(ctx context.Context, sectionID uuid.UUID, location string, day Weekday) error {
	var scheduleID uuid.UUID
	err := r.pool.QueryRow(ctx, `
		SELECT id FROM section_schedule WHERE section_id = $1 AND location = $2`,
		sectionID, location).Scan(&scheduleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `DELETE FROM section_schedule_slot WHERE schedule_id = $1 AND weekday = $2`, scheduleID, int(day))
	return err
}
