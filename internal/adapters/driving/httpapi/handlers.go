package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/logger"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// balanceRequest is the POST /balance body.
type balanceRequest struct {
	Equation string `json:"equation"`
}

// balanceResponse is the POST /balance success body.
type balanceResponse struct {
	Balanced string `json:"balanced"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// historyEntry is one element of the GET /history body.
type historyEntry struct {
	ID        string    `json:"id"`
	Original  string    `json:"original"`
	Balanced  string    `json:"balanced"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req balanceRequest
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, errorResponse{Error: fmt.Sprintf("invalid JSON: %v", err), Code: "invalid_request"})
		return
	}
	if dec.More() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: trailing data", Code: "invalid_request"})
		return
	}

	result, err := s.ports.Balance.Balance(r.Context(), req.Equation)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balanced: result.Text})
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		http.NotFound(w, r)
		return
	}
	entries, err := s.ports.History.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	body := make([]historyEntry, len(entries))
	for i, e := range entries {
		body[i] = historyEntry{ID: e.ID, Original: e.Original, Balanced: e.Balanced, CreatedAt: e.CreatedAt}
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		http.NotFound(w, r)
		return
	}
	if err := s.ports.History.Clear(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParse),
		errors.Is(err, domain.ErrSingularSystem),
		errors.Is(err, domain.ErrBalance),
		errors.Is(err, domain.ErrArithmeticOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with its code. Internal errors are logged and
// replaced with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorResponse{Error: err.Error(), Code: domain.ErrorCode(err)}
	if status == http.StatusInternalServerError {
		logger.Error("[%s] %s %s: %v", RequestIDFrom(r.Context()), r.Method, r.URL.Path, err)
		body.Error = "internal server error"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
