package http

import (
	"net/http"
	"strings"

	"kupa/internal/core"
)

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"accounts": s.store.Accounts(),
		"version":  s.version(),
	})
}

// handleAccountMethods serves the dependent dropdown: the payment
// methods valid for the selected account. An unknown account is not an
// error: the UI renders "no methods available" from the empty list.
func (s *Server) handleAccountMethods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/accounts/")
	accountID, found := strings.CutSuffix(rest, "/methods")
	if !found || accountID == "" || strings.Contains(accountID, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"accountId": accountID,
		"methods":   s.svc.ResolveMethods(accountID),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": core.DefaultCategories(),
	})
}
