package core

// Seed data used when the persisted state is missing or unreadable.
// Accounts and cards have no editor UI: this fixed set is the whole
// universe until a settings screen exists.

func DefaultAccounts() []Account {
	return []Account{
		{
			ID:      "checking",
			Name:    "Main Checking",
			Methods: []string{"Cash", "Debit Card", "Bank Transfer"},
		},
		{
			ID:      "savings",
			Name:    "Savings",
			Methods: []string{"Bank Transfer"},
		},
	}
}

func DefaultCards() []CreditCard {
	return []CreditCard{
		{ID: "visa", Name: "Visa", LinkedAccountID: "checking"},
		{ID: "mastercard", Name: "Mastercard", LinkedAccountID: "checking"},
	}
}

// DefaultCategories is the fixed expense category set offered by the
// form layer.
func DefaultCategories() []string {
	return []string{
		"Food",
		"Housing",
		"Transport",
		"Entertainment",
		"Bills & Subscriptions",
		"Other",
	}
}
