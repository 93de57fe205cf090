// Package httpapi provides the JSON-over-HTTP adapter for chembalance.
//
// Routes:
//
//	POST   /balance   {"equation": "H2 + O2 = H2O"} -> {"balanced": "2 H2 + 1 O2 = 2 H2O"}
//	GET    /history   list of past balances, oldest first
//	DELETE /history   clear the history
//	GET    /health    liveness
//
// Every response passes through panic recovery, request IDs, CORS and an
// optional token-bucket rate limiter.
package httpapi

import "errors"

// ErrMissingBalanceService is returned when the balance service is not provided.
var ErrMissingBalanceService = errors.New("httpapi: balance service is required")
