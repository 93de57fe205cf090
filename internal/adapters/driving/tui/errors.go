package tui

import "errors"

// ErrMissingBalanceService is returned when the balance service is not provided.
var ErrMissingBalanceService = errors.New("tui: balance service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
