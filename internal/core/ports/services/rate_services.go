package services

import (
	"context"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// RateReaderSvc defines read operations for the latest rate snapshot
type RateReaderSvc interface {
	// GetLatestSnapshot returns the most recently persisted snapshot, served
	// through the process cache, with the base currency injected at rate 1.
	// It fails with apperrors.ErrNoRatesAvailable when the store is empty.
	GetLatestSnapshot(ctx context.Context) (domain.RateSnapshot, error)
}

// RateRefresherSvc defines the idempotent refresh operation triggered by the
// scheduler (or manually through the API).
type RateRefresherSvc interface {
	// RefreshLatestRates fetches the latest snapshot from the external feed
	// and appends it to the store unless rows for its publication date
	// already exist. It reports whether new rows were stored.
	RefreshLatestRates(ctx context.Context) (bool, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateRefresherSvc
}
