package section

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

const sectionCols = `id, name, location, active, created_at, updated_at`

func scanSection(row pgx.Row) (*Section, error) {
	var s Section
	err := row.Scan(&s.ID, &s.Name, &s.Location, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Section) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO section (id, name, location, active)
		VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.Location, s.Active)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Section, error) {
	return scanSection(r.pool.QueryRow(ctx, `SELECT `+sectionCols+` FROM section WHERE id = $1`, id))
}

func (r *repoPG) GetByName(ctx context.Context, name, location string) (*Section, error) {
	return scanSection(r.pool.QueryRow(ctx,
		`SELECT `+sectionCols+` FROM section WHERE name = $1 AND location = $2`, name, location))
}

func (r *repoPG) List(ctx context.Context, location string, limit, offset int) ([]*Section, int, error) {
	query := `SELECT ` + sectionCols + ` FROM section WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM section WHERE 1=1`
	var args []interface{}
	idx := 1

	if location != "" {
		query += fmt.Sprintf(` AND location = $%d`, idx)
		countQuery += fmt.Sprintf(` AND location = $%d`, idx)
		args = append(args, location)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}
