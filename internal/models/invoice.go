package models

import (
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

type Invoice struct {
	ID       int64          `gorm:"primaryKey;autoIncrement"`
	CompCode string         `gorm:"not null;index"`
	Company  Company        `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE"`
	Amt      float64        `gorm:"type:numeric(12,2);not null"`
	Paid     bool           `gorm:"not null;default:false"`
	AddDate  datatypes.Date `gorm:"not null;default:CURRENT_DATE"`
	PaidDate *datatypes.Date
}

// InvoiceRow is the flat invoice shape returned by create and update.
type InvoiceRow struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

// InvoiceSummary is one entry of the invoice list.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail nests the owning company instead of its code.
type InvoiceDetail struct {
	ID       int64       `json:"id"`
	Amt      float64     `json:"amt"`
	Paid     bool        `json:"paid"`
	AddDate  string      `json:"add_date"`
	PaidDate *string     `json:"paid_date"`
	Company  CompanyInfo `json:"company"`
}

func (inv Invoice) Row() InvoiceRow {
	return InvoiceRow{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  FormatDate(inv.AddDate),
		PaidDate: FormatNullDate(inv.PaidDate),
	}
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func FormatNullDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}
