package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByID retrieves a specific wallet by its unique identifier.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// SaveWallet persists a new wallet.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// AdjustWalletBalance applies a signed delta to a wallet balance as one
	// atomic read-check-write: the row is locked for the duration, the
	// resulting balance is checked against zero unless allowNegative is set,
	// and the version column is bumped. It fails with
	// apperrors.ErrInsufficientFunds when the check is violated, leaving the
	// balance untouched, and apperrors.ErrNotFound for an unknown wallet.
	AdjustWalletBalance(ctx context.Context, walletID string, delta decimal.Decimal, allowNegative bool, now time.Time) (*domain.Wallet, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
