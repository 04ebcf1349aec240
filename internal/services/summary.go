package services

import "kupa/internal/core"

// Summary is the aggregate view over a transaction collection: lifetime
// totals plus the slice of the reference date's calendar month. All
// values are integer cents; balance may be negative.
type Summary struct {
	BalanceCents        int64 `json:"balanceCents"`
	MonthlyIncomeCents  int64 `json:"monthlyIncomeCents"`
	MonthlyExpenseCents int64 `json:"monthlyExpenseCents"`
	TotalIncomeCents    int64 `json:"totalIncomeCents"`
	TotalExpenseCents   int64 `json:"totalExpenseCents"`
}

// Summarize computes the aggregates in one pass. Month membership
// compares the stored date's literal year and month against ref, as
// plain integers, so no timezone interpretation can shift a transaction
// across a month boundary. Output is independent of iteration order.
func Summarize(transactions []core.Transaction, ref core.Date) Summary {
	var s Summary
	for _, tx := range transactions {
		inMonth := tx.Date.SameMonth(ref)
		switch tx.Type {
		case core.Income:
			s.TotalIncomeCents += tx.Amount.Cents
			if inMonth {
				s.MonthlyIncomeCents += tx.Amount.Cents
			}
		case core.Expense:
			s.TotalExpenseCents += tx.Amount.Cents
			if inMonth {
				s.MonthlyExpenseCents += tx.Amount.Cents
			}
		default:
			// Unknown types survive load but never count.
		}
	}
	s.BalanceCents = s.TotalIncomeCents - s.TotalExpenseCents
	return s
}
