package industries

// CreateIndustryRequest is the body of POST /industries. Fields stay
// pointers so a missing field reaches the store as NULL and fails there;
// the request is deliberately not pre-validated.
type CreateIndustryRequest struct {
	Industry *string `json:"industry"`
	Code     *string `json:"code"`
}

// CreateIndustryResponse is the envelope of POST /industries.
type CreateIndustryResponse struct {
	Industry Industry `json:"industry"`
}
