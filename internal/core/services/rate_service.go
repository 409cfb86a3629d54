package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
	"github.com/vporfyris/wallet_rates_app/internal/core/ports"
	portsrepo "github.com/vporfyris/wallet_rates_app/internal/core/ports/repositories"
	portssvc "github.com/vporfyris/wallet_rates_app/internal/core/ports/services"
	"github.com/vporfyris/wallet_rates_app/internal/middleware"
	"github.com/vporfyris/wallet_rates_app/internal/platform/ratecache"
)

type rateService struct {
	rateRepo     portsrepo.RateRepositoryFacade
	source       ports.RateSource
	cache        *ratecache.Cache
	baseCurrency string
}

// NewRateService creates the rate service. baseCurrency is the pivot currency
// the feed expresses every rate against; it is injected into each snapshot at
// rate 1 here, in the single read path, so conversion call sites never have
// to remember to do it themselves.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, source ports.RateSource, cache *ratecache.Cache, baseCurrency string) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:     rateRepo,
		source:       source,
		cache:        cache,
		baseCurrency: baseCurrency,
	}
}

// GetLatestSnapshot returns the most recently persisted rate snapshot,
// served from the process cache when fresh.
func (s *rateService) GetLatestSnapshot(ctx context.Context) (domain.RateSnapshot, error) {
	if snapshot, ok := s.cache.Get(); ok {
		return snapshot, nil
	}

	rows, err := s.rateRepo.FindLatestRates(ctx)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("failed to load latest rates: %w", err)
	}
	if len(rows) == 0 {
		return domain.RateSnapshot{}, apperrors.ErrNoRatesAvailable
	}

	snapshot := domain.NewRateSnapshot(rows).WithBase(s.baseCurrency)
	s.cache.Set(snapshot)
	return snapshot, nil
}

// RefreshLatestRates fetches the feed's latest snapshot and appends it unless
// its publication date is already stored. The whole operation is idempotent:
// two refreshes presented with the same upstream snapshot store one row-set.
func (s *rateService) RefreshLatestRates(ctx context.Context) (bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rates, err := s.source.FetchLatest(ctx)
	if err != nil {
		return false, err
	}
	if len(rates) == 0 {
		logger.Warn("Rate feed returned no rates, skipping refresh")
		return false, nil
	}

	rateDate := rates[0].RateDate
	exists, err := s.rateRepo.ExistsForDate(ctx, rateDate)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing rates: %w", err)
	}
	if exists {
		logger.Info("Rates already stored for date, skipping", slog.Time("rate_date", rateDate))
		return false, nil
	}

	if err := s.rateRepo.SaveRates(ctx, rates); err != nil {
		return false, fmt.Errorf("failed to store rate snapshot: %w", err)
	}

	// Rate rows are immutable, so a stale cached snapshot is never wrong,
	// just old. Dropping it lets the next read pick up the new date at once.
	s.cache.Drop()

	logger.Info("Stored new rate snapshot",
		slog.Int("count", len(rates)),
		slog.Time("rate_date", rateDate),
	)
	return true, nil
}
