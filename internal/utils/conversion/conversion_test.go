package conversion_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
	"github.com/vporfyris/wallet_rates_app/internal/utils/conversion"
)

func testSnapshot() domain.RateSnapshot {
	return domain.RateSnapshot{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.NewFromInt(1),
			"USD": decimal.NewFromInt(2),
			"GBP": decimal.RequireFromString("0.85"),
			"JPY": decimal.RequireFromString("161.25"),
		},
	}
}

func TestFactor_SameCurrencyIsOne(t *testing.T) {
	snapshot := testSnapshot()

	factor, err := conversion.Factor(snapshot, "USD", "USD")
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(1)))

	// Holds even for a currency the snapshot has never heard of.
	factor, err = conversion.Factor(snapshot, "XYZ", "xyz")
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(1)))
}

func TestFactor_PivotsThroughBase(t *testing.T) {
	snapshot := testSnapshot()

	// EUR -> USD: rate(USD)/rate(EUR) = 2
	factor, err := conversion.Factor(snapshot, "EUR", "USD")
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(2)), "got %s", factor)

	// USD -> EUR: rate(EUR)/rate(USD) = 0.5
	factor, err = conversion.Factor(snapshot, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.RequireFromString("0.5")), "got %s", factor)
}

func TestFactor_CaseInsensitiveLookup(t *testing.T) {
	snapshot := testSnapshot()

	factor, err := conversion.Factor(snapshot, "usd", "gbp")
	require.NoError(t, err)
	expected := decimal.RequireFromString("0.85").Div(decimal.NewFromInt(2))
	assert.True(t, factor.Equal(expected), "got %s", factor)
}

func TestFactor_InverseProperty(t *testing.T) {
	snapshot := testSnapshot()
	codes := []string{"EUR", "USD", "GBP", "JPY"}
	one := decimal.NewFromInt(1)
	tolerance := decimal.RequireFromString("0.0000000001")

	for _, from := range codes {
		for _, to := range codes {
			forward, err := conversion.Factor(snapshot, from, to)
			require.NoError(t, err)
			backward, err := conversion.Factor(snapshot, to, from)
			require.NoError(t, err)

			product := forward.Mul(backward)
			assert.True(t, product.Sub(one).Abs().LessThan(tolerance),
				"%s<->%s round trip drifted: %s", from, to, product)
		}
	}
}

func TestFactor_UnknownCurrency(t *testing.T) {
	snapshot := testSnapshot()

	_, err := conversion.Factor(snapshot, "XYZ", "EUR")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	assert.Contains(t, err.Error(), "XYZ")

	_, err = conversion.Factor(snapshot, "EUR", "ABC")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	assert.Contains(t, err.Error(), "ABC")
}

func TestConvert(t *testing.T) {
	snapshot := testSnapshot()

	// 10 USD into EUR at factor 0.5 -> 5 EUR, no rounding applied.
	converted, err := conversion.Convert(decimal.NewFromInt(10), snapshot, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, converted.Equal(decimal.NewFromInt(5)), "got %s", converted)

	_, err = conversion.Convert(decimal.NewFromInt(10), snapshot, "XYZ", "EUR")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}
