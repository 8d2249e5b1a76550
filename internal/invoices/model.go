// Package invoices implements CRUD for invoices, including the denormalized
// owning-company lookup on the detail view.
package invoices

import "time"

// Invoice is a row in the invoices relation.
type Invoice struct {
	ID       int64      `json:"id" db:"id"`
	CompCode string     `json:"comp_code" db:"comp_code"`
	Amt      float64    `json:"amt" db:"amt"`
	Paid     bool       `json:"paid" db:"paid"`
	AddDate  time.Time  `json:"add_date" db:"add_date"`
	PaidDate *time.Time `json:"paid_date" db:"paid_date"`
}

// InvoiceCompany is the owning company as embedded in the invoice detail view.
type InvoiceCompany struct {
	Code        string  `json:"code" db:"code"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// InvoiceDetail replaces the flat comp_code with the embedded company.
type InvoiceDetail struct {
	ID       int64          `json:"id"`
	Amt      float64        `json:"amt"`
	Paid     bool           `json:"paid"`
	AddDate  time.Time      `json:"add_date"`
	PaidDate *time.Time     `json:"paid_date"`
	Company  InvoiceCompany `json:"company"`
}
