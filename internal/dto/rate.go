package dto

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// CurrencyRateResponse is one currency's rate within the latest snapshot.
type CurrencyRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
}

// RatesResponse is the latest snapshot: one publication date and its rates.
type RatesResponse struct {
	RateDate time.Time              `json:"rateDate"`
	Rates    []CurrencyRateResponse `json:"rates"`
}

// RefreshRatesResponse reports the outcome of a manual refresh trigger.
type RefreshRatesResponse struct {
	Updated bool `json:"updated"`
}

// ToRatesResponse converts a domain.RateSnapshot to a RatesResponse DTO,
// with rates sorted by currency code for a stable wire order.
func ToRatesResponse(s domain.RateSnapshot) RatesResponse {
	rates := make([]CurrencyRateResponse, 0, len(s.Rates))
	for code, rate := range s.Rates {
		rates = append(rates, CurrencyRateResponse{CurrencyCode: code, Rate: rate})
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].CurrencyCode < rates[j].CurrencyCode })
	return RatesResponse{RateDate: s.Date, Rates: rates}
}
