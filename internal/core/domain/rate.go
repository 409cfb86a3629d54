package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is one published conversion rate: units of CurrencyCode per
// 1 unit of the base currency, valid for RateDate. Rows are immutable once
// written; a new date never overwrites an old one.
type CurrencyRate struct {
	CurrencyCode string          `json:"currencyCode"` // Unique per RateDate
	Rate         decimal.Decimal `json:"rate"`         // Always positive
	RateDate     time.Time       `json:"rateDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// RateSnapshot is the complete set of rates published for a single date,
// keyed by uppercase currency code.
type RateSnapshot struct {
	Date  time.Time
	Rates map[string]decimal.Decimal
}

// NewRateSnapshot builds a snapshot from persisted rate rows. All rows are
// expected to share the same RateDate.
func NewRateSnapshot(rows []CurrencyRate) RateSnapshot {
	s := RateSnapshot{Rates: make(map[string]decimal.Decimal, len(rows))}
	for _, r := range rows {
		s.Rates[strings.ToUpper(r.CurrencyCode)] = r.Rate
		s.Date = r.RateDate
	}
	return s
}

// Rate looks up the rate for a currency code, case-insensitively.
func (s RateSnapshot) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := s.Rates[strings.ToUpper(code)]
	return rate, ok
}

// WithBase returns a copy of the snapshot with the base currency present at
// rate 1. The upstream feed expresses every rate relative to the base and
// omits the base itself, so conversion lookups need this synthetic entry.
func (s RateSnapshot) WithBase(baseCurrency string) RateSnapshot {
	out := RateSnapshot{Date: s.Date, Rates: make(map[string]decimal.Decimal, len(s.Rates)+1)}
	for code, rate := range s.Rates {
		out.Rates[code] = rate
	}
	base := strings.ToUpper(baseCurrency)
	if _, ok := out.Rates[base]; !ok {
		out.Rates[base] = decimal.NewFromInt(1)
	}
	return out
}
