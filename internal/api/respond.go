package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps domain sentinels to HTTP status codes
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logging.Logger.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()),
			"error", err)
	}
	writeJSON(w, code, errorBody{Error: err.Error(), RequestID: RequestIDFrom(r.Context())})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidTimezone),
		errors.Is(err, domain.ErrInvalidWindowBounds):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrGoalExists),
		errors.Is(err, domain.ErrInvalidPauseTransition),
		errors.Is(err, domain.ErrNoActiveDefinition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}

// timeRange parses the required start and end query parameters (RFC 3339)
func timeRange(r *http.Request) (time.Time, time.Time, error) {
	start, err := timeParam(r, "start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := timeParam(r, "end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidWindowBounds
	}
	return start, end, nil
}

func timeParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, invalid("missing query parameter " + name)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, invalid(name + " must be an RFC 3339 timestamp")
	}
	return t.UTC(), nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, invalid(name + " must be a non-negative integer")
	}
	return n, nil
}

func goalID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("goal id must be a positive integer")
	}
	return id, nil
}
