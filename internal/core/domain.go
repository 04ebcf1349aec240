package core

import "errors"

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Transaction is a single recorded income or expense entry.
	// Amount is always non-negative; the sign is derived from Type and
	// never stored. AccountID may be empty on records written before
	// accounts existed.
	Transaction struct {
		ID            int64           `json:"id"`
		Type          TransactionType `json:"type"`
		Amount        Money           `json:"amount"`
		Description   string          `json:"description"`
		Category      string          `json:"category"`
		Date          Date            `json:"date"`
		AccountID     string          `json:"accountId,omitempty"`
		PaymentMethod string          `json:"paymentMethod,omitempty"`
	}

	// Account is a named payment source with its own intrinsic payment
	// methods. Accounts are seeded at first start and immutable at
	// runtime.
	Account struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Methods []string `json:"methods"`
	}

	// CreditCard links to exactly one Account and contributes its Name
	// as an additional payment method of that account.
	CreditCard struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		LinkedAccountID string `json:"linkedAccountId"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Signed returns the amount in cents with the sign implied by the
// transaction type.
func (t Transaction) Signed() int64 {
	if t.Type == Expense {
		return -t.Amount.Cents
	}
	return t.Amount.Cents
}
