package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vporfyris/wallet_rates_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WalletRepo: newPgxWalletRepository(dbPool),
		RateRepo:   newPgxRateRepository(dbPool),
	}
}

// Compile-time interface checks
var (
	_ portsrepo.WalletRepositoryFacade = (*pgxWalletRepository)(nil)
	_ portsrepo.RateRepositoryFacade   = (*pgxRateRepository)(nil)
)
