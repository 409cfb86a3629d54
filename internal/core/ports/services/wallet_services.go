package services

import (
	"context"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
	"github.com/vporfyris/wallet_rates_app/internal/dto"
)

// WalletReaderSvc defines read operations for wallet data
type WalletReaderSvc interface {
	// GetWalletByID retrieves a specific wallet by its unique identifier.
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// GetDisplayBalance returns a wallet's balance, converted into
	// targetCurrency when it is non-empty and differs from the wallet's own.
	// Converted balances are rounded to 2 decimal places, half away from zero.
	GetDisplayBalance(ctx context.Context, walletID string, targetCurrency string) (*domain.WalletBalance, error)
}

// WalletWriterSvc defines write operations for wallet data
type WalletWriterSvc interface {
	// CreateWallet persists a new wallet with an initial balance and a fixed currency.
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error)

	// AdjustBalance applies a credit, debit, or forced debit to a wallet,
	// converting the amount into the wallet's currency first when needed.
	AdjustBalance(ctx context.Context, walletID string, req dto.AdjustBalanceRequest) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
