package services

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kupa/internal/core"
	"kupa/internal/store"
)

// Service computes the derived views the presentation layer renders:
// payment methods per account, summary aggregates, and the display list.
// Every call re-reads current store state; nothing here is cached, so
// the render trigger always observes fresh data.
type Service struct {
	store    *store.Store
	collator *collate.Collator
}

// New builds a Service sorting payment methods with the given locale.
// An unparsable locale falls back to Hebrew, the app's display locale.
func New(st *store.Store, locale string) *Service {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Hebrew
	}
	return &Service{store: st, collator: collate.New(tag)}
}

// ResolveMethods returns the valid payment methods for an account.
func (s *Service) ResolveMethods(accountID string) []string {
	return ResolveMethods(s.store.Accounts(), s.store.Cards(), accountID, s.collator)
}

// Summary aggregates the current transaction collection against ref.
func (s *Service) Summary(ref core.Date) Summary {
	return Summarize(s.store.Transactions(), ref)
}

// List projects the current transaction collection into display order.
func (s *Service) List() []EnrichedTransaction {
	return Project(s.store.Transactions(), s.store.Accounts())
}
