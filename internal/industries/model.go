// Package industries implements industry creation and the grouped listing of
// industries with their linked company codes.
package industries

// Industry is a row in the industries relation.
type Industry struct {
	Code     string `json:"code" db:"code"`
	Industry string `json:"industry" db:"industry"`
}

// IndustryCompanyRow is one row of the flat left-join result: an industry
// name and an optional linked company code.
type IndustryCompanyRow struct {
	Industry string
	CompCode *string
}

// IndustryCompanies is one element of the grouped listing.
type IndustryCompanies struct {
	Industry  string   `json:"industry"`
	CompCodes []string `json:"comp_codes"`
}
