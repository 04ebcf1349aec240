package store

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"kupa/internal/core"
	"kupa/internal/log"
)

// Wire types for the persisted JSON payloads. Decoding is deliberately
// permissive: this is recovery of whatever an earlier session (or an
// earlier schema version) left behind, not validation of new input.

type storedTransaction struct {
	ID            int64      `json:"id"`
	Type          string     `json:"type"`
	AmountCents   looseCents `json:"amountCents,omitempty"`
	Amount        looseUnits `json:"amount,omitempty"` // legacy schema: decimal currency units
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Date          string     `json:"date"`
	AccountID     string     `json:"accountId,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
}

// looseCents coerces any JSON scalar to integer cents. Values that fail
// numeric coercion become 0; decoding never fails on a single field.
type looseCents int64

func (c *looseCents) UnmarshalJSON(b []byte) error {
	*c = 0
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*c = looseCents(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*c = looseCents(math.Round(f))
	}
	return nil
}

func (c looseCents) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(c), 10), nil
}

// looseUnits coerces a legacy decimal amount; unparsable values become 0.
type looseUnits float64

func (u *looseUnits) UnmarshalJSON(b []byte) error {
	*u = 0
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*u = looseUnits(f)
	}
	return nil
}

func (u looseUnits) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(u))
}

func decodeTransactions(payload []byte, logger *log.Logger) []core.Transaction {
	if payload == nil {
		return []core.Transaction{}
	}
	var stored []storedTransaction
	if err := json.Unmarshal(payload, &stored); err != nil || stored == nil {
		logger.Warn("Transactions payload unreadable, starting empty",
			log.FieldCollection, collectionTransactions, log.FieldError, errString(err))
		return []core.Transaction{}
	}

	out := make([]core.Transaction, 0, len(stored))
	for _, st := range stored {
		cents := int64(st.AmountCents)
		if cents == 0 && st.Amount != 0 {
			// Legacy payloads carry decimal units, not cents.
			cents = int64(math.Round(float64(st.Amount) * 100))
		}
		if cents < 0 {
			logger.Warn("Negative stored amount coerced to zero",
				log.FieldTransactionID, st.ID, log.FieldAmountCents, cents)
			cents = 0
		}

		date, err := core.ParseDate(st.Date)
		if err != nil {
			logger.Warn("Stored transaction has unreadable date",
				log.FieldTransactionID, st.ID, log.FieldDate, st.Date)
			date = core.Date{}
		}

		out = append(out, core.Transaction{
			ID:            st.ID,
			Type:          core.TransactionType(st.Type),
			Amount:        core.Money{Cents: cents},
			Description:   st.Description,
			Category:      st.Category,
			Date:          date,
			AccountID:     st.AccountID,
			PaymentMethod: st.PaymentMethod,
		})
	}
	return out
}

func encodeTransactions(ts []core.Transaction) []byte {
	stored := make([]storedTransaction, len(ts))
	for i, t := range ts {
		stored[i] = storedTransaction{
			ID:            t.ID,
			Type:          string(t.Type),
			AmountCents:   looseCents(t.Amount.Cents),
			Description:   t.Description,
			Category:      t.Category,
			Date:          t.Date.String(),
			AccountID:     t.AccountID,
			PaymentMethod: t.PaymentMethod,
		}
	}
	payload, _ := json.Marshal(stored)
	return payload
}

func decodeAccounts(payload []byte, logger *log.Logger) []core.Account {
	if payload == nil {
		return core.DefaultAccounts()
	}
	var accounts []core.Account
	if err := json.Unmarshal(payload, &accounts); err != nil || accounts == nil {
		logger.Warn("Accounts payload unreadable, using seed set",
			log.FieldCollection, collectionAccounts, log.FieldError, errString(err))
		return core.DefaultAccounts()
	}
	return accounts
}

func encodeAccounts(accounts []core.Account) []byte {
	payload, _ := json.Marshal(accounts)
	return payload
}

func decodeCards(payload []byte, logger *log.Logger) []core.CreditCard {
	if payload == nil {
		return core.DefaultCards()
	}
	var cards []core.CreditCard
	if err := json.Unmarshal(payload, &cards); err != nil || cards == nil {
		logger.Warn("Cards payload unreadable, using seed set",
			log.FieldCollection, collectionCards, log.FieldError, errString(err))
		return core.DefaultCards()
	}
	return cards
}

func encodeCards(cards []core.CreditCard) []byte {
	payload, _ := json.Marshal(cards)
	return payload
}

func errString(err error) string {
	if err == nil {
		return "null payload"
	}
	return err.Error()
}
