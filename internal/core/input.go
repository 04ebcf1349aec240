package core

import (
	"fmt"
	"sort"
	"strings"
)

// TransactionInput is the typed form payload accepted by the store.
// ID zero means "create"; a matching non-zero ID means "update".
type TransactionInput struct {
	ID            int64
	Type          TransactionType
	Amount        Money
	Description   string
	Category      string
	Date          Date
	AccountID     string
	PaymentMethod string
}

// FieldErrors maps a field name to a human-readable reason. Validation
// reports every failing field, not just the first one.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + fe[f]
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Validate checks the store's input contract. Account and payment-method
// membership are the caller's responsibility: they depend on resolver
// state the input itself cannot see.
func (in *TransactionInput) Validate() error {
	fe := FieldErrors{}
	if !in.Type.Valid() {
		fe["type"] = fmt.Sprintf("must be %q or %q", Income, Expense)
	}
	if in.Amount.Cents <= 0 {
		fe["amount"] = "must be a positive amount"
	}
	if strings.TrimSpace(in.Description) == "" {
		fe["description"] = "must not be empty"
	}
	if strings.TrimSpace(in.Category) == "" {
		fe["category"] = "must not be empty"
	}
	if err := in.Date.Validate(); err != nil {
		fe["date"] = err.Error()
	}
	if len(fe) > 0 {
		return fe
	}
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	return nil
}
