package models

type Industry struct {
	Code     string `gorm:"primaryKey" json:"code"`
	Industry string `gorm:"not null" json:"industry"`
}

// CompanyIndustry associates a company with an industry. The pair is the
// primary key, so an association exists at most once.
type CompanyIndustry struct {
	CompCode     string   `gorm:"primaryKey" json:"comp_code"`
	IndustryCode string   `gorm:"primaryKey" json:"industry_code"`
	Company      Company  `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
	Industry     Industry `gorm:"foreignKey:IndustryCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}

// IndustryListing is an industry together with the codes of its companies.
type IndustryListing struct {
	Code         string   `json:"code"`
	Industry     string   `json:"industry"`
	CompanyCodes []string `json:"company_codes"`
}

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{&Company{}, &Industry{}, &Invoice{}, &CompanyIndustry{}}
}
