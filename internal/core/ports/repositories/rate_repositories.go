package repositories

import (
	"context"
	"time"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// RateReader defines read operations for persisted currency rates
type RateReader interface {
	// FindLatestRates retrieves all rate rows sharing the maximum stored
	// rate date. It returns an empty slice when the store holds no rates.
	FindLatestRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// ExistsForDate reports whether any rate row is stored for the given date.
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
}

// RateWriter defines write operations for persisted currency rates
type RateWriter interface {
	// SaveRates appends a snapshot's rows in a single transaction. Rows that
	// collide with an existing (currencyCode, rateDate) pair are skipped, so
	// a concurrent append of the same date is benign.
	SaveRates(ctx context.Context, rates []domain.CurrencyRate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
