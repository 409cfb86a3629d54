package services

import (
	"github.com/vporfyris/wallet_rates_app/internal/core/ports"
	portsrepo "github.com/vporfyris/wallet_rates_app/internal/core/ports/repositories"
	portssvc "github.com/vporfyris/wallet_rates_app/internal/core/ports/services"
	"github.com/vporfyris/wallet_rates_app/internal/platform/config"
	"github.com/vporfyris/wallet_rates_app/internal/platform/ratecache"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, source ports.RateSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate cache is owned here: one snapshot per process, shared by every
	// caller of the rate service.
	cache := ratecache.New(cfg.RateCacheTTL)

	container.Rate = NewRateService(repos.RateRepo, source, cache, cfg.BaseCurrency)
	container.Wallet = NewWalletService(repos.WalletRepo, container.Rate)

	return container
}
