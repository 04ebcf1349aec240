package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"kupa/internal/core"
)

// transactionPayload is the raw field map a form submit delivers, before
// any typing. Amount and date stay strings until parsed so a malformed
// value yields a field-level reason instead of a decode failure.
type transactionPayload struct {
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Date          string `json:"date"`
	AccountID     string `json:"accountId"`
	PaymentMethod string `json:"paymentMethod"`
}

// parseTransactionPayload reads the body as JSON or form-encoded data,
// whichever the client sent.
func parseTransactionPayload(r *http.Request) (transactionPayload, error) {
	var p transactionPayload

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return p, fmt.Errorf("read body: %w", err)
		}
		// JSON clients may send the amount as a string or a number.
		if err := json.Unmarshal(body, &p); err == nil {
			return p, nil
		}
		var loose struct {
			Type          string      `json:"type"`
			Amount        json.Number `json:"amount"`
			Description   string      `json:"description"`
			Category      string      `json:"category"`
			Date          string      `json:"date"`
			AccountID     string      `json:"accountId"`
			PaymentMethod string      `json:"paymentMethod"`
		}
		if err := json.Unmarshal(body, &loose); err != nil {
			return p, fmt.Errorf("parse json body: %w", err)
		}
		return transactionPayload{
			Type:          loose.Type,
			Amount:        loose.Amount.String(),
			Description:   loose.Description,
			Category:      loose.Category,
			Date:          loose.Date,
			AccountID:     loose.AccountID,
			PaymentMethod: loose.PaymentMethod,
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return p, fmt.Errorf("parse form: %w", err)
	}
	return payloadFromValues(r.Form), nil
}

func payloadFromValues(values url.Values) transactionPayload {
	return transactionPayload{
		Type:          strings.TrimSpace(values.Get("type")),
		Amount:        strings.TrimSpace(values.Get("amount")),
		Description:   values.Get("description"),
		Category:      values.Get("category"),
		Date:          strings.TrimSpace(values.Get("date")),
		AccountID:     strings.TrimSpace(values.Get("accountId")),
		PaymentMethod: values.Get("paymentMethod"),
	}
}

// buildInput types the payload and validates the store's input contract,
// collecting one reason per failing field. The parse-specific reasons
// for amount and date win over the generic ones Validate would emit.
func buildInput(p transactionPayload, id int64) (core.TransactionInput, core.FieldErrors) {
	in := core.TransactionInput{
		ID:            id,
		Type:          core.TransactionType(p.Type),
		Description:   p.Description,
		Category:      p.Category,
		AccountID:     p.AccountID,
		PaymentMethod: p.PaymentMethod,
	}

	parseErrs := core.FieldErrors{}
	if cents, err := core.ParseDecimalToCents(p.Amount); err != nil {
		parseErrs["amount"] = "must be a positive decimal amount"
	} else {
		in.Amount = core.Money{Cents: cents}
	}
	if p.Date == "" {
		parseErrs["date"] = "is required"
	} else if date, err := core.ParseDate(p.Date); err != nil {
		parseErrs["date"] = "must be a calendar date in YYYY-MM-DD form"
	} else {
		in.Date = date
	}

	fe := core.FieldErrors{}
	if err := in.Validate(); err != nil {
		fe = err.(core.FieldErrors)
	}
	for field, reason := range parseErrs {
		fe[field] = reason
	}
	if len(fe) > 0 {
		return in, fe
	}
	return in, nil
}
