package conversion

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// Factor computes the dimensionless multiplier that converts an amount in
// fromCurrency to toCurrency through the base-currency pivot. Every published
// rate is "units of currency per 1 base unit", so any pair's factor is a
// single division: rate(to) / rate(from). Codes are compared case-insensitively.
//
// A same-currency conversion is exactly 1 and performs no lookup, so it works
// even for currencies absent from the snapshot.
func Factor(snapshot domain.RateSnapshot, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	fromRate, ok := snapshot.Rate(from)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrRateNotFound, from)
	}
	toRate, ok := snapshot.Rate(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrRateNotFound, to)
	}

	return toRate.Div(fromRate), nil
}

// Convert applies Factor to an amount. No rounding is applied here; rounding
// policy belongs to the caller.
func Convert(amount decimal.Decimal, snapshot domain.RateSnapshot, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	factor, err := Factor(snapshot, fromCurrency, toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(factor), nil
}
