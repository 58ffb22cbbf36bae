package models

// CompanyProfile is the contractor identity printed on quote documents.
type CompanyProfile struct {
	Name            string `json:"name"`
	FullName        string `json:"fullName"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	AdditionalPhone string `json:"additionalPhone"`
	Email           string `json:"email"`
	PaymentTerms    string `json:"paymentTerms"`
	Warranty        string `json:"warranty"`
}
