package models

type Company struct {
	Code        string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
}

// CompanyInfo is the public shape of a company row.
type CompanyInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail adds the labels of the company's industries and the ids of
// its invoices.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Industries  []string `json:"industries"`
	Invoices    []int64  `json:"invoices"`
}

func (c Company) Info() CompanyInfo {
	return CompanyInfo{Code: c.Code, Name: c.Name, Description: c.Description}
}
