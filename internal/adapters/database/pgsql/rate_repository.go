package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// pgxRateRepository implements repositories.RateRepositoryFacade using pgxpool.
// Rate rows are append-only: nothing here ever updates or deletes a row.
type pgxRateRepository struct {
	pool *pgxpool.Pool
}

func newPgxRateRepository(pool *pgxpool.Pool) *pgxRateRepository {
	return &pgxRateRepository{pool: pool}
}

// FindLatestRates retrieves all rate rows for the maximum stored rate date.
// An empty store yields an empty slice, not an error; the service layer
// decides what an empty snapshot means.
func (r *pgxRateRepository) FindLatestRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `
		SELECT currency_code, rate, rate_date, created_at
		FROM currency_rates
		WHERE rate_date = (SELECT MAX(rate_date) FROM currency_rates)
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.CurrencyRate{}
	for rows.Next() {
		var rate domain.CurrencyRate
		if err := rows.Scan(&rate.CurrencyCode, &rate.Rate, &rate.RateDate, &rate.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rate row: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate rows: %w", err)
	}

	return rates, nil
}

// ExistsForDate reports whether any rate row is stored for the given date.
func (r *pgxRateRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM currency_rates WHERE rate_date = $1);`
	if err := r.pool.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check rates for date %s: %w", date.Format("2006-01-02"), err)
	}
	return exists, nil
}

// SaveRates appends a snapshot's rows within a DB transaction. Rows that
// collide with an existing (currency_code, rate_date) pair are skipped, so a
// concurrent append of the same date degrades to a benign no-op.
func (r *pgxRateRepository) SaveRates(ctx context.Context, rates []domain.CurrencyRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO currency_rates (currency_code, rate, rate_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code, rate_date) DO NOTHING;
	`
	for _, rate := range rates {
		batch.Queue(query, rate.CurrencyCode, rate.Rate, rate.RateDate)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute rate insert batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rate snapshot: %w", err)
	}

	return nil
}
