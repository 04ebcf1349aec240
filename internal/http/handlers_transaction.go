package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"kupa/internal/core"
	"kupa/internal/log"
	"kupa/internal/middleware/trace"
	"kupa/internal/store"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleUpsertTransaction(w, r, 0)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "transaction id must be a positive integer")
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPost:
		s.handleUpsertTransaction(w, r, id)
	case http.MethodDelete:
		s.handleDeleteTransaction(w, r, id)
	default:
		methodNotAllowed(w, "PUT, POST, DELETE")
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{
		Transactions: s.svc.List(),
		Version:      s.version(),
	})
}

// handleUpsertTransaction is the form layer's single submit action:
// id zero creates, a matching id updates. All contract checks happen
// here; the store trusts what it is handed.
func (s *Server) handleUpsertTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	if !s.allowMutation(w, r) {
		return
	}

	payload, err := parseTransactionPayload(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Malformed transaction payload",
			log.FieldRequestID, trace.GetRequestID(r.Context()),
			log.FieldError, err, log.FieldMethod, r.Method, log.FieldPath, r.URL.Path)
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	in, fe := buildInput(payload, id)
	if fe == nil {
		fe = core.FieldErrors{}
	}

	// Account and payment-method membership depend on resolver state,
	// so they are enforced at this boundary, not inside the store.
	switch {
	case in.AccountID == "":
		fe["accountId"] = "is required"
	default:
		if _, ok := s.store.FindAccount(in.AccountID); !ok {
			fe["accountId"] = "does not reference a known account"
		} else if !containsMethod(s.svc.ResolveMethods(in.AccountID), in.PaymentMethod) {
			fe["paymentMethod"] = "is not a valid payment method for this account"
		}
	}

	if len(fe) > 0 {
		slog.WarnContext(r.Context(), "Transaction rejected by validation",
			log.FieldRequestID, trace.GetRequestID(r.Context()),
			log.FieldOperation, log.OpUpsert, "fields", fe)
		writeFieldErrors(w, fe)
		return
	}

	tx := s.store.UpsertTransaction(r.Context(), in)

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, transactionResponse{
		Transaction: tx,
		Version:     s.version(),
		Warning:     flushWarning(s.store.FlushError()),
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	if !s.allowMutation(w, r) {
		return
	}

	if err := s.store.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no transaction with that id")
			return
		}
		slog.ErrorContext(r.Context(), "Delete failed",
			log.FieldError, err, log.FieldTransactionID, id)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{
		DeletedID: id,
		Version:   s.version(),
		Warning:   flushWarning(s.store.FlushError()),
	})
}

func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}
