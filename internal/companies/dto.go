package companies

// CreateCompanyRequest is the body of POST /companies. The code is caller
// supplied and stored as given.
type CreateCompanyRequest struct {
	Code        string  `json:"code" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest is the body of PUT /companies/{code}. A full replace
// of name and description.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// ListCompaniesResponse is the envelope of GET /companies.
type ListCompaniesResponse struct {
	Companies []Company `json:"companies"`
}

// CompanyDetailResponse is the envelope of GET /companies/{code}. Invoices is
// a single-element outer array holding the company's invoice rows; existing
// clients depend on the double nesting.
type CompanyDetailResponse struct {
	Companies CompanyDetail      `json:"companies"`
	Invoices  [][]CompanyInvoice `json:"invoices"`
}

// CreateCompanyResponse is the envelope of POST /companies.
type CreateCompanyResponse struct {
	Company Company `json:"company"`
}
