package services

import (
	"reflect"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kupa/internal/core"
)

func testCollator() *collate.Collator {
	return collate.New(language.English)
}

func TestResolveMethodsIntrinsicOnly(t *testing.T) {
	accounts := []core.Account{{ID: "A", Name: "A", Methods: []string{"Cash"}}}
	got := ResolveMethods(accounts, nil, "A", nil)
	if !reflect.DeepEqual(got, []string{"Cash"}) {
		t.Fatalf("account with no cards must yield its intrinsic methods: %v", got)
	}
}

func TestResolveMethodsWithLinkedCard(t *testing.T) {
	accounts := []core.Account{{ID: "A", Methods: []string{"Cash"}}}
	cards := []core.CreditCard{{ID: "C1", Name: "Visa", LinkedAccountID: "A"}}
	got := ResolveMethods(accounts, cards, "A", testCollator())
	if !reflect.DeepEqual(got, []string{"Cash", "Visa"}) {
		t.Fatalf("expected [Cash Visa], got %v", got)
	}
}

func TestResolveMethodsSortsConsistently(t *testing.T) {
	accounts := []core.Account{{ID: "A", Methods: []string{"Wire", "Cash"}}}
	cards := []core.CreditCard{
		{ID: "C1", Name: "Visa", LinkedAccountID: "A"},
		{ID: "C2", Name: "Amex", LinkedAccountID: "A"},
	}
	got := ResolveMethods(accounts, cards, "A", testCollator())
	want := []string{"Amex", "Cash", "Visa", "Wire"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("locale sort must apply on every call: got %v, want %v", got, want)
	}
}

func TestResolveMethodsIgnoresOtherAccountsCards(t *testing.T) {
	accounts := []core.Account{
		{ID: "A", Methods: []string{"Cash"}},
		{ID: "B", Methods: []string{"Transfer"}},
	}
	cards := []core.CreditCard{{ID: "C1", Name: "Visa", LinkedAccountID: "B"}}
	got := ResolveMethods(accounts, cards, "A", testCollator())
	if !reflect.DeepEqual(got, []string{"Cash"}) {
		t.Fatalf("card linked elsewhere leaked in: %v", got)
	}
}

func TestResolveMethodsUnknownAccount(t *testing.T) {
	accounts := []core.Account{{ID: "A", Methods: []string{"Cash"}}}
	got := ResolveMethods(accounts, nil, "missing", testCollator())
	if got == nil || len(got) != 0 {
		t.Fatalf("unknown account must yield an empty (non-nil) list, got %#v", got)
	}
}

func TestResolveMethodsSeesLinkageChanges(t *testing.T) {
	// No caching: a card relinked between calls changes the result.
	accounts := []core.Account{{ID: "A", Methods: []string{"Cash"}}}
	cards := []core.CreditCard{{ID: "C1", Name: "Visa", LinkedAccountID: "B"}}

	before := ResolveMethods(accounts, cards, "A", testCollator())
	cards[0].LinkedAccountID = "A"
	after := ResolveMethods(accounts, cards, "A", testCollator())

	if !reflect.DeepEqual(before, []string{"Cash"}) {
		t.Fatalf("before relink: %v", before)
	}
	if !reflect.DeepEqual(after, []string{"Cash", "Visa"}) {
		t.Fatalf("after relink: %v", after)
	}
}
