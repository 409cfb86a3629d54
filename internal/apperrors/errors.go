package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Validation sub-kinds. They wrap ErrValidation so transport code can keep a
// single errors.Is(err, ErrValidation) check while tests assert the exact kind.
var (
	// ErrInvalidAmount indicates a non-positive adjustment amount.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)

	// ErrInvalidCurrency indicates a currency code that is not 3 letters.
	ErrInvalidCurrency = fmt.Errorf("%w: currency code must be 3 letters", ErrValidation)

	// ErrInvalidStrategy indicates an unrecognized balance adjustment strategy.
	ErrInvalidStrategy = fmt.Errorf("%w: invalid adjustment strategy", ErrValidation)
)

// ErrInsufficientFunds indicates a debit larger than the wallet balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrRateNotFound indicates that the latest snapshot has no rate for a currency.
// Callers wrap it with the offending code: fmt.Errorf("%w: %s", ErrRateNotFound, code).
var ErrRateNotFound = errors.New("currency rate not found")

// ErrNoRatesAvailable indicates that no rate snapshot has been persisted yet.
var ErrNoRatesAvailable = errors.New("no currency rates available")

// ErrSourceUnavailable indicates the external rate feed could not be reached.
var ErrSourceUnavailable = errors.New("rate source unavailable")

// ErrMalformedSource indicates the external rate feed returned an unparsable document.
var ErrMalformedSource = errors.New("rate source returned malformed document")
