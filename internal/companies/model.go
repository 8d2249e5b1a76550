// Package companies implements CRUD and lookup for companies, including the
// joined industry name and the company's invoices on the detail view.
package companies

import "time"

// Company is a row in the companies relation.
type Company struct {
	Code        string  `json:"code" db:"code"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// CompanyDetail is the company row joined with the linked industry name.
// Industry is nil when the company has no industry link.
type CompanyDetail struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
}

// CompanyInvoice is an invoice row as embedded in the company detail view.
type CompanyInvoice struct {
	ID       int64      `json:"id" db:"id"`
	CompCode string     `json:"comp_code" db:"comp_code"`
	Amt      float64    `json:"amt" db:"amt"`
	Paid     bool       `json:"paid" db:"paid"`
	AddDate  time.Time  `json:"add_date" db:"add_date"`
	PaidDate *time.Time `json:"paid_date" db:"paid_date"`
}
