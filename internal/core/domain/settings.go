package domain

import (
	"fmt"
	"math"
)

const unknownDescription = "Unknown"

// SolutionPolicy decides what happens when the null space has more than
// one dimension, i.e. the equation admits independent balancings.
type SolutionPolicy string

// Available solution policies.
const (
	// SolutionPolicyFirst picks the basis vector of the first free column.
	SolutionPolicyFirst SolutionPolicy = "first"

	// SolutionPolicyReject fails with ErrUnderdetermined.
	SolutionPolicyReject SolutionPolicy = "reject"

	// SolutionPolicySum adds every basis vector before normalising.
	SolutionPolicySum SolutionPolicy = "sum"
)

// IsValid returns true if the policy is recognised.
func (p SolutionPolicy) IsValid() bool {
	switch p {
	case SolutionPolicyFirst, SolutionPolicyReject, SolutionPolicySum:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p SolutionPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p SolutionPolicy) Description() string {
	switch p {
	case SolutionPolicyFirst:
		return "First (pick the first basis vector)"
	case SolutionPolicyReject:
		return "Reject (fail on multiple independent solutions)"
	case SolutionPolicySum:
		return "Sum (combine all basis vectors)"
	default:
		return unknownDescription
	}
}

// HistoryBackend selects the history store implementation.
type HistoryBackend string

// Available history backends.
const (
	// HistoryBackendMemory keeps history in a Go slice.
	HistoryBackendMemory HistoryBackend = "memory"

	// HistoryBackendSQLite keeps history in a process-lifetime SQLite database.
	HistoryBackendSQLite HistoryBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b HistoryBackend) IsValid() bool {
	switch b {
	case HistoryBackendMemory, HistoryBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b HistoryBackend) String() string {
	return string(b)
}

// BalanceSettings configures the balancing core.
type BalanceSettings struct {
	// MultipleSolutions is the policy for null-space dimension > 1.
	MultipleSolutions SolutionPolicy

	// MaxCoefficient bounds every output coefficient.
	MaxCoefficient int64

	// MaxCompounds bounds the number of compounds per equation.
	MaxCompounds int

	// MaxInputLength bounds the equation text length in bytes.
	MaxInputLength int
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string

	// RateLimit is the sustained request rate per second (0 disables).
	RateLimit int

	// RateBurst is the token bucket size when RateLimit is set.
	RateBurst int
}

// HistorySettings configures the history store.
type HistorySettings struct {
	Backend HistoryBackend
}

// Settings holds all application configuration.
type Settings struct {
	Balance BalanceSettings
	Server  ServerSettings
	History HistorySettings
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Balance: BalanceSettings{
			MultipleSolutions: SolutionPolicyFirst,
			MaxCoefficient:    math.MaxInt64,
			MaxCompounds:      32,
			MaxInputLength:    1024,
		},
		Server: ServerSettings{
			Addr:           ":8000",
			AllowedOrigins: []string{"*"},
			RateLimit:      0,
			RateBurst:      10,
		},
		History: HistorySettings{
			Backend: HistoryBackendMemory,
		},
	}
}

// Validate checks that settings are usable.
func (s *Settings) Validate() error {
	if !s.Balance.MultipleSolutions.IsValid() {
		return fmt.Errorf("%w: unknown multiple_solutions policy %q", ErrInvalidInput, s.Balance.MultipleSolutions)
	}
	if s.Balance.MaxCoefficient <= 0 {
		return fmt.Errorf("%w: max_coefficient must be positive", ErrInvalidInput)
	}
	if s.Balance.MaxCompounds < 2 {
		return fmt.Errorf("%w: max_compounds must be at least 2", ErrInvalidInput)
	}
	if s.Balance.MaxInputLength <= 0 {
		return fmt.Errorf("%w: max_input_length must be positive", ErrInvalidInput)
	}
	if s.Server.Addr == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidInput)
	}
	if s.Server.RateLimit < 0 || s.Server.RateBurst < 0 {
		return fmt.Errorf("%w: rate limit values must not be negative", ErrInvalidInput)
	}
	if !s.History.Backend.IsValid() {
		return fmt.Errorf("%w: unknown history backend %q", ErrInvalidInput, s.History.Backend)
	}
	return nil
}

// AllowsAnyOrigin reports whether CORS is open to every origin.
func (s ServerSettings) AllowsAnyOrigin() bool {
	for _, o := range s.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
