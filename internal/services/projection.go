package services

import (
	"sort"

	"kupa/internal/core"
)

// UnknownAccountName is the placeholder for a transaction whose
// accountId no longer resolves. The record itself is never dropped.
const UnknownAccountName = "unknown"

// EnrichedTransaction is a display-ready row: the stored record plus the
// resolved account name and the sign implied by the type. Currency
// symbols and locale grouping stay with the presentation layer.
type EnrichedTransaction struct {
	core.Transaction
	AccountName string `json:"accountName,omitempty"`
	Sign        string `json:"sign"`
}

// Project orders transactions for display: date descending, then id
// descending (ids are creation timestamps, so larger means newer). The
// order is total because ids are unique, so no two rows compare equal.
func Project(transactions []core.Transaction, accounts []core.Account) []EnrichedTransaction {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	out := make([]EnrichedTransaction, len(transactions))
	for i, tx := range transactions {
		row := EnrichedTransaction{Transaction: tx, Sign: "-"}
		if tx.Type == core.Income {
			row.Sign = "+"
		}
		if tx.AccountID != "" {
			if name, ok := names[tx.AccountID]; ok {
				row.AccountName = name
			} else {
				row.AccountName = UnknownAccountName
			}
		}
		out[i] = row
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c > 0
		}
		return out[i].ID > out[j].ID
	})
	return out
}
