// Package mcp provides an MCP (Model Context Protocol) server adapter for chembalance.
// It lets AI assistants balance equations and read the balance history.
package mcp

import "errors"

// ErrMissingBalanceService is returned when the balance service is not provided.
var ErrMissingBalanceService = errors.New("mcp: balance service is required")
