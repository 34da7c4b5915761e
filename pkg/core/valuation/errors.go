package valuation

import "errors"

// Validation errors. All of them are caller-input errors, raised
// synchronously by Validate and never retriable. ErrMissingField is returned
// wrapped with the name of the first absent field (errors.Is still matches).
var (
	ErrNilInput          = errors.New("valuation input cannot be nil")
	ErrMissingField      = errors.New("one or more input parameters are missing")
	ErrNonPositiveShares = errors.New("shares outstanding must be greater than zero")
	ErrDegenerateRate    = errors.New("discount rate and terminal growth rate cannot be equal")
)
