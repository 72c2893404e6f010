package postgres

import (
	"context"
	"errors"
	"fmt"
	"fxconvert/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConversionRepository struct {
	pool *pgxpool.Pool
}

func (r *ConversionRepository) Save(ctx context.Context, c domain.Conversion) error {
	const q = `
		insert into conversions (id, source, target, amount, rate, converted, created_at)
		values ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.pool.Exec(ctx, q, c.ID, c.Source, c.Target, c.Amount, c.Rate, c.Converted, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save conversion %q: %w", c.ID, err)
	}
	return nil
}

func (r *ConversionRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Conversion, error) {
	const q = `
		select id, source, target, amount, rate, converted, created_at
		from conversions
		where id = $1;
	`

	c, err := scanConversion(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Conversion{}, domain.ErrConversionNotFound
		}
		return domain.Conversion{}, fmt.Errorf("failed to select conversion %q: %w", id, err)
	}
	return c, nil
}

func (r *ConversionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Conversion, error) {
	const q = `
		select id, source, target, amount, rate, converted, created_at
		from conversions
		order by created_at desc, id
		limit $1;
	`

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent conversions: %w", err)
	}
	defer rows.Close()

	conversions := make([]domain.Conversion, 0, limit)
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		conversions = append(conversions, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversions: %w", err)
	}
	return conversions, nil
}

func (r *ConversionRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `delete from conversions where created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete conversions older than %s: %w", before.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}

func scanConversion(row pgx.Row) (domain.Conversion, error) {
	var c domain.Conversion
	err := row.Scan(&c.ID, &c.Source, &c.Target, &c.Amount, &c.Rate, &c.Converted, &c.CreatedAt)
	return c, err
}

func NewConversionRepository(pool *pgxpool.Pool) *ConversionRepository {
	return &ConversionRepository{pool: pool}
}
