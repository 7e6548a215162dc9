package postgres

import (
	"context"
	"errors"
	"fmt"

	"lionscars-service/internal/domain/lookup"
	xerrors "lionscars-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LookupRepository holds the brand and color selection lists.
type LookupRepository struct {
	db *pgxpool.Pool
}

func NewLookupRepository(db *pgxpool.Pool) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) ListBrands(ctx context.Context) ([]lookup.Brand, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var out []lookup.Brand
	for rows.Next() {
		var b lookup.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *LookupRepository) CreateBrand(ctx context.Context, b *lookup.Brand) error {
	err := r.db.QueryRow(ctx, `INSERT INTO brands (name) VALUES ($1) RETURNING id`, b.Name).Scan(&b.ID)
	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *LookupRepository) DeleteBrand(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

func (r *LookupRepository) ListColors(ctx context.Context) ([]lookup.Color, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, hex FROM colors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	var out []lookup.Color
	for rows.Next() {
		var c lookup.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.Hex); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *LookupRepository) CreateColor(ctx context.Context, c *lookup.Color) error {
	err := r.db.QueryRow(ctx, `INSERT INTO colors (name, hex) VALUES ($1, $2) RETURNING id`, c.Name, c.Hex).Scan(&c.ID)
	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create color: %w", err)
	}
	return nil
}

func (r *LookupRepository) DeleteColor(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM colors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete color: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
