package services

import (
	"golang.org/x/text/collate"

	"kupa/internal/core"
)

// ResolveMethods computes the ordered payment methods for an account:
// the account's intrinsic methods plus the name of every card linked to
// it, sorted with locale-aware collation. The sort is applied on every
// call, never conditionally, and nothing is cached: card linkage is
// allowed to change between calls within a session.
//
// An unknown accountID yields an empty list: "no methods available" is a
// UI state, not an error.
func ResolveMethods(accounts []core.Account, cards []core.CreditCard, accountID string, collator *collate.Collator) []string {
	var account *core.Account
	for i := range accounts {
		if accounts[i].ID == accountID {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return []string{}
	}

	methods := make([]string, 0, len(account.Methods)+len(cards))
	methods = append(methods, account.Methods...)
	for _, card := range cards {
		if card.LinkedAccountID == accountID {
			methods = append(methods, card.Name)
		}
	}

	if collator != nil {
		collator.SortStrings(methods)
	}
	return methods
}
