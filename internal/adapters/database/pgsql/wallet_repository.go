package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// pgxWalletRepository implements repositories.WalletRepositoryFacade using pgxpool.
type pgxWalletRepository struct {
	pool *pgxpool.Pool
}

func newPgxWalletRepository(pool *pgxpool.Pool) *pgxWalletRepository {
	return &pgxWalletRepository{pool: pool}
}

// SaveWallet persists a new wallet.
func (r *pgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
		INSERT INTO wallets (wallet_id, balance, currency, version, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		wallet.WalletID,
		wallet.Balance,
		wallet.Currency,
		wallet.Version,
		wallet.CreatedAt,
		wallet.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet %s: %w", wallet.WalletID, err)
	}
	return nil
}

// FindWalletByID retrieves a wallet by its ID.
func (r *pgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, balance, currency, version, created_at, last_updated_at
		FROM wallets
		WHERE wallet_id = $1;
	`
	var wallet domain.Wallet
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&wallet.WalletID,
		&wallet.Balance,
		&wallet.Currency,
		&wallet.Version,
		&wallet.CreatedAt,
		&wallet.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet by ID %s: %w", walletID, err)
	}
	return &wallet, nil
}

// AdjustWalletBalance applies a signed delta to one wallet balance inside a
// single transaction, holding a row lock for the read-check-write so that
// two concurrent debits cannot both pass the sufficient-funds check against
// a stale balance. The write either commits fully or not at all.
func (r *pgxWalletRepository) AdjustWalletBalance(ctx context.Context, walletID string, delta decimal.Decimal, allowNegative bool, now time.Time) (*domain.Wallet, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // No-op after a successful commit
	}()

	var wallet domain.Wallet
	selectQuery := `
		SELECT wallet_id, balance, currency, version, created_at, last_updated_at
		FROM wallets
		WHERE wallet_id = $1
		FOR UPDATE;
	`
	err = tx.QueryRow(ctx, selectQuery, walletID).Scan(
		&wallet.WalletID,
		&wallet.Balance,
		&wallet.Currency,
		&wallet.Version,
		&wallet.CreatedAt,
		&wallet.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet %s: %w", walletID, err)
	}

	newBalance := wallet.Balance.Add(delta)
	if !allowNegative && newBalance.IsNegative() {
		return nil, apperrors.ErrInsufficientFunds
	}

	updateQuery := `
		UPDATE wallets
		SET balance = $2, version = version + 1, last_updated_at = $3
		WHERE wallet_id = $1
		RETURNING version;
	`
	if err := tx.QueryRow(ctx, updateQuery, walletID, newBalance, now).Scan(&wallet.Version); err != nil {
		return nil, fmt.Errorf("failed to update balance for wallet %s: %w", walletID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit balance adjustment for wallet %s: %w", walletID, err)
	}

	wallet.Balance = newBalance
	wallet.LastUpdatedAt = now
	return &wallet, nil
}
