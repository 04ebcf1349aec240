package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{".5", 50, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestSigned(t *testing.T) {
	in := Transaction{Type: Income, Amount: Money{Cents: 1500}}
	out := Transaction{Type: Expense, Amount: Money{Cents: 1500}}
	if in.Signed() != 1500 {
		t.Fatalf("income Signed() = %d", in.Signed())
	}
	if out.Signed() != -1500 {
		t.Fatalf("expense Signed() = %d", out.Signed())
	}
	// stored amount itself stays non-negative either way
	if out.Amount.Cents < 0 {
		t.Fatal("amount must never be stored negative")
	}
}
