package invoices

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is an invoice amount that accepts a JSON number or a numeric
// string. The coercion is explicit here rather than delegated to the store's
// implicit cast.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("amt must be a number or a numeric string")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("amt %q is not numeric", s)
	}
	*a = Amount(f)
	return nil
}

// CreateInvoiceRequest is the body of POST /invoices.
type CreateInvoiceRequest struct {
	CompCode string  `json:"comp_code" validate:"required"`
	Amt      *Amount `json:"amt" validate:"required"`
}

// UpdateInvoiceRequest is the body of PUT /invoices/{id}. An absent paid
// field counts as false and clears paid_date.
type UpdateInvoiceRequest struct {
	Amt  *Amount `json:"amt" validate:"required"`
	Paid bool    `json:"paid"`
}

// ListInvoicesResponse is the envelope of GET /invoices.
type ListInvoicesResponse struct {
	Invoices []Invoice `json:"invoices"`
}

// InvoiceResponse is the envelope of create and update responses.
type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

// InvoiceDetailResponse is the envelope of GET /invoices/{id}.
type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}
