package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
	portsrepo "github.com/vporfyris/wallet_rates_app/internal/core/ports/repositories"
	portssvc "github.com/vporfyris/wallet_rates_app/internal/core/ports/services"
	"github.com/vporfyris/wallet_rates_app/internal/dto"
	"github.com/vporfyris/wallet_rates_app/internal/middleware"
	"github.com/vporfyris/wallet_rates_app/internal/utils/conversion"
)

type walletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
	rateSvc    portssvc.RateReaderSvc
}

// NewWalletService creates the wallet service. The rate service is consumed
// through its reader facade only; wallets never trigger a feed refresh.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, rateSvc portssvc.RateReaderSvc) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo: walletRepo,
		rateSvc:    rateSvc,
	}
}

// CreateWallet persists a new wallet. The currency is normalized to uppercase
// and the initial balance must be non-negative.
func (s *walletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency, err := normalizeCurrencyCode(req.Currency)
	if err != nil {
		return nil, err
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	wallet := domain.Wallet{
		WalletID: uuid.NewString(),
		Balance:  req.InitialBalance,
		Currency: currency,
		Version:  1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		logger.Error("Failed to save wallet in repository", slog.String("error", err.Error()), slog.String("wallet_id", wallet.WalletID))
		return nil, err
	}

	logger.Info("Wallet created successfully", slog.String("wallet_id", wallet.WalletID), slog.String("currency", wallet.Currency))
	return &wallet, nil
}

// GetWalletByID retrieves a wallet by its unique identifier.
func (s *walletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find wallet by ID in repository", slog.String("error", err.Error()), slog.String("wallet_id", walletID))
		}
		return nil, err
	}
	return wallet, nil
}

// GetDisplayBalance returns a wallet's balance for display. With an empty or
// same-currency target the raw balance is returned untouched; otherwise the
// balance is converted out of the wallet's currency frame and rounded to
// 2 decimal places, half away from zero.
func (s *walletService) GetDisplayBalance(ctx context.Context, walletID string, targetCurrency string) (*domain.WalletBalance, error) {
	wallet, err := s.GetWalletByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	walletCurrency := strings.ToUpper(wallet.Currency)
	if targetCurrency == "" {
		return &domain.WalletBalance{WalletID: wallet.WalletID, Balance: wallet.Balance, Currency: walletCurrency}, nil
	}

	target, err := normalizeCurrencyCode(targetCurrency)
	if err != nil {
		return nil, err
	}
	if target == walletCurrency {
		return &domain.WalletBalance{WalletID: wallet.WalletID, Balance: wallet.Balance, Currency: walletCurrency}, nil
	}

	snapshot, err := s.rateSvc.GetLatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Wallet -> target direction, the inverse of the adjustment conversion.
	factor, err := conversion.Factor(snapshot, walletCurrency, target)
	if err != nil {
		return nil, err
	}

	return &domain.WalletBalance{
		WalletID: wallet.WalletID,
		Balance:  wallet.Balance.Mul(factor).Round(2),
		Currency: target,
	}, nil
}

// AdjustBalance applies one credit, debit, or forced debit to a wallet.
// All validation happens before any state is read; the read-check-write of
// the balance itself is delegated to the repository, which serializes it per
// wallet.
func (s *walletService) AdjustBalance(ctx context.Context, walletID string, req dto.AdjustBalanceRequest) (*domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}
	strategy, err := domain.ParseAdjustmentStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}
	amountCurrency, err := normalizeCurrencyCode(req.Currency)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	walletCurrency := strings.ToUpper(wallet.Currency)

	convertedAmount := req.Amount
	if amountCurrency != walletCurrency {
		snapshot, err := s.rateSvc.GetLatestSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		// Into the wallet's currency: factor = rate(wallet) / rate(incoming).
		convertedAmount, err = conversion.Convert(req.Amount, snapshot, amountCurrency, walletCurrency)
		if err != nil {
			return nil, err
		}
	}

	var delta decimal.Decimal
	var allowNegative bool
	switch strategy {
	case domain.StrategyAddFunds:
		delta = convertedAmount
	case domain.StrategySubtractFunds:
		delta = convertedAmount.Neg()
	case domain.StrategyForceSubtractFunds:
		delta = convertedAmount.Neg()
		allowNegative = true
	}

	updated, err := s.walletRepo.AdjustWalletBalance(ctx, walletID, delta, allowNegative, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientFunds) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to adjust wallet balance in repository", slog.String("error", err.Error()), slog.String("wallet_id", walletID))
		}
		return nil, err
	}

	logger.Info("Wallet balance adjusted",
		slog.String("wallet_id", walletID),
		slog.String("strategy", string(strategy)),
		slog.String("amount", req.Amount.String()),
		slog.String("amount_currency", amountCurrency),
		slog.String("converted_amount", convertedAmount.String()),
	)
	return updated, nil
}

// normalizeCurrencyCode uppercases a currency code, rejecting anything that
// is not exactly 3 ASCII letters.
func normalizeCurrencyCode(code string) (string, error) {
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
		}
	}
	return strings.ToUpper(code), nil
}
