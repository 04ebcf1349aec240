package core

import (
	"strings"
	"testing"
)

func validInput() TransactionInput {
	return TransactionInput{
		Type:          Expense,
		Amount:        Money{Cents: 4200},
		Description:   "groceries",
		Category:      "Food",
		Date:          NewDate(2024, 3, 15),
		AccountID:     "checking",
		PaymentMethod: "Cash",
	}
}

func TestTransactionInputValidate(t *testing.T) {
	in := validInput()
	if err := in.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*TransactionInput)
		field  string
	}{
		{"bad type", func(in *TransactionInput) { in.Type = "transfer" }, "type"},
		{"zero amount", func(in *TransactionInput) { in.Amount = Money{} }, "amount"},
		{"negative amount", func(in *TransactionInput) { in.Amount = Money{Cents: -5} }, "amount"},
		{"blank description", func(in *TransactionInput) { in.Description = "   " }, "description"},
		{"blank category", func(in *TransactionInput) { in.Category = "" }, "category"},
		{"missing date", func(in *TransactionInput) { in.Date = Date{} }, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			fe, ok := err.(FieldErrors)
			if !ok {
				t.Fatalf("expected FieldErrors, got %T", err)
			}
			if _, present := fe[tc.field]; !present {
				t.Fatalf("expected a reason for field %q, got %v", tc.field, fe)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	in := TransactionInput{Type: "nope", Description: " "}
	err := in.Validate()
	fe, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	for _, field := range []string{"type", "amount", "description", "category", "date"} {
		if _, present := fe[field]; !present {
			t.Fatalf("missing reason for %q in %v", field, fe)
		}
	}
	if !strings.Contains(fe.Error(), "amount") {
		t.Fatalf("Error() should name failing fields: %q", fe.Error())
	}
}

func TestValidateTrimsFields(t *testing.T) {
	in := validInput()
	in.Description = "  rent  "
	in.PaymentMethod = " Visa "
	if err := in.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Description != "rent" {
		t.Fatalf("description not trimmed: %q", in.Description)
	}
	if in.PaymentMethod != "Visa" {
		t.Fatalf("payment method not trimmed: %q", in.PaymentMethod)
	}
}
