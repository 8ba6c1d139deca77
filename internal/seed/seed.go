// Package seed loads the sample BizTime data set.
package seed

import (
	"context"
	"fmt"

	"biztime-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var companies = []models.Company{
	{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."},
	{Code: "ibm", Name: "IBM", Description: "Big blue."},
}

var industries = []models.Industry{
	{Code: "acct", Industry: "Accounting"},
	{Code: "tech", Industry: "Technology"},
}

var links = []models.CompanyIndustry{
	{CompCode: "apple", IndustryCode: "tech"},
	{CompCode: "ibm", IndustryCode: "tech"},
	{CompCode: "ibm", IndustryCode: "acct"},
}

type invoiceSeed struct {
	compCode string
	amt      float64
	paid     bool
	paidDate any
}

var invoices = []invoiceSeed{
	{"apple", 100, false, nil},
	{"apple", 200, false, nil},
	{"apple", 300, true, "2018-01-01"},
	{"ibm", 400, false, nil},
}

// Run inserts the sample rows. Rows that already exist are left alone, and
// invoices are only added for companies that have none.
func Run(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ignore := clause.OnConflict{DoNothing: true}
		if err := tx.Clauses(ignore).Create(&companies).Error; err != nil {
			return fmt.Errorf("seed companies: %w", err)
		}
		if err := tx.Clauses(ignore).Create(&industries).Error; err != nil {
			return fmt.Errorf("seed industries: %w", err)
		}
		if err := tx.Clauses(ignore).Omit(clause.Associations).Create(&links).Error; err != nil {
			return fmt.Errorf("seed company industries: %w", err)
		}

		for _, c := range companies {
			var n int64
			if err := tx.Raw("SELECT COUNT(*) FROM invoices WHERE comp_code = ?", c.Code).Scan(&n).Error; err != nil {
				return fmt.Errorf("count invoices for %s: %w", c.Code, err)
			}
			if n > 0 {
				continue
			}
			for _, inv := range invoices {
				if inv.compCode != c.Code {
					continue
				}
				err := tx.Exec("INSERT INTO invoices (comp_code, amt, paid, paid_date) VALUES (?, ?, ?, ?)",
					inv.compCode, inv.amt, inv.paid, inv.paidDate).Error
				if err != nil {
					return fmt.Errorf("seed invoice for %s: %w", inv.compCode, err)
				}
			}
		}
		return nil
	})
}
