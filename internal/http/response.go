package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"kupa/internal/core"
	"kupa/internal/services"
)

// Response envelopes. Mutations carry the data version so a polling
// client can tell fresh state from stale, and a warning whenever the
// in-memory state is ahead of disk (failed persistence flush).

type transactionResponse struct {
	Transaction core.Transaction `json:"transaction"`
	Version     int64            `json:"version"`
	Warning     string           `json:"warning,omitempty"`
}

type deleteResponse struct {
	DeletedID int64  `json:"deletedId"`
	Version   int64  `json:"version"`
	Warning   string `json:"warning,omitempty"`
}

type listResponse struct {
	Transactions []services.EnrichedTransaction `json:"transactions"`
	Version      int64                          `json:"version"`
}

type summaryResponse struct {
	services.Summary
	Reference string `json:"reference"` // YYYY-MM the figures are for
	Version   int64  `json:"version"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFieldErrors reports a blocked write with one reason per field.
func writeFieldErrors(w http.ResponseWriter, fe core.FieldErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:  "validation failed",
		Fields: fe,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// flushWarning renders the store's current persistence divergence, if
// any, for inclusion in a mutation response.
func flushWarning(err error) string {
	if err == nil {
		return ""
	}
	return "saved in memory only, persistence failed: " + err.Error()
}
