package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
)

// Wallet represents a single-currency monetary balance.
// Currency is fixed at creation; Balance is mutated only through the
// wallet service's adjust operation.
type Wallet struct {
	WalletID string          `json:"walletID"` // Primary Key (UUID)
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"` // 3-letter uppercase ISO code
	Version  int64           `json:"version"`  // Concurrency token, bumped on every balance write
	AuditFields
}

// WalletBalance is a wallet balance as presented to a caller, possibly
// converted into a currency other than the wallet's own.
type WalletBalance struct {
	WalletID string          `json:"walletID"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// AdjustmentStrategy is the kind of balance mutation requested for an adjustment.
// The set is closed; anything else fails parsing with apperrors.ErrInvalidStrategy.
type AdjustmentStrategy string

const (
	StrategyAddFunds           AdjustmentStrategy = "ADD_FUNDS"
	StrategySubtractFunds      AdjustmentStrategy = "SUBTRACT_FUNDS"
	StrategyForceSubtractFunds AdjustmentStrategy = "FORCE_SUBTRACT_FUNDS"
)

// ParseAdjustmentStrategy parses the wire representation of a strategy, case-insensitively.
func ParseAdjustmentStrategy(s string) (AdjustmentStrategy, error) {
	switch AdjustmentStrategy(strings.ToUpper(s)) {
	case StrategyAddFunds:
		return StrategyAddFunds, nil
	case StrategySubtractFunds:
		return StrategySubtractFunds, nil
	case StrategyForceSubtractFunds:
		return StrategyForceSubtractFunds, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStrategy, s)
	}
}
