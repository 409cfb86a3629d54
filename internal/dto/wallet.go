package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// CreateWalletRequest defines the data needed to create a new wallet.
// InitialBalance has no binding tag so that an explicit zero passes; the
// service rejects negative values.
type CreateWalletRequest struct {
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Currency       string          `json:"currency" binding:"required,currencycode"`
}

// AdjustBalanceRequest defines the data for a balance adjustment. Amount is
// always expressed in Currency, never assumed to be in the wallet's currency.
type AdjustBalanceRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,currencycode"`
	Strategy string          `json:"strategy" binding:"required"`
}

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID      string          `json:"walletID"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// WalletBalanceResponse defines the data returned for a balance query,
// possibly converted into a display currency.
type WalletBalanceResponse struct {
	WalletID string          `json:"walletID"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:      w.WalletID,
		Balance:       w.Balance,
		Currency:      w.Currency,
		Version:       w.Version,
		CreatedAt:     w.CreatedAt,
		LastUpdatedAt: w.LastUpdatedAt,
	}
}

// ToWalletBalanceResponse converts a domain.WalletBalance to WalletBalanceResponse DTO
func ToWalletBalanceResponse(b *domain.WalletBalance) WalletBalanceResponse {
	return WalletBalanceResponse{
		WalletID: b.WalletID,
		Balance:  b.Balance,
		Currency: b.Currency,
	}
}
