package ports

import (
	"context"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// RateSource fetches the latest published rate snapshot from an external feed.
// Implementations are pure translation: one fetch yields the rows of a single
// publication date, with no retry or persistence of their own.
type RateSource interface {
	// FetchLatest calls the external feed and parses its document into rate
	// rows, all sharing one publication date. It fails with
	// apperrors.ErrSourceUnavailable on transport failure and
	// apperrors.ErrMalformedSource when the document cannot be parsed.
	FetchLatest(ctx context.Context) ([]domain.CurrencyRate, error)
}
