package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"biztime-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const invoiceColumns = "id, comp_code, amt, paid, add_date, paid_date"

// markPaidSQL applies the payment transition in one statement. The CASE reads
// the row's paid value from before the update: paying an unpaid invoice stamps
// today's date, un-paying clears it, and paying a paid invoice keeps it.
const markPaidSQL = `UPDATE invoices SET amt = ?, paid = ?,
	paid_date = CASE
		WHEN ? AND NOT paid THEN CURRENT_DATE
		WHEN NOT ? THEN NULL
		ELSE paid_date
	END
	WHERE id = ? RETURNING id`

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// List returns id and company code of every invoice.
func (r *InvoiceRepository) List(ctx context.Context) ([]models.InvoiceSummary, error) {
	invoices := []models.InvoiceSummary{}
	err := r.db.WithContext(ctx).
		Raw("SELECT id, comp_code FROM invoices ORDER BY id").
		Scan(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// GetDetail fetches an invoice joined with its company.
func (r *InvoiceRepository) GetDetail(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	row := r.db.WithContext(ctx).Raw(`SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date,
			c.code, c.name, c.description
		FROM invoices AS i INNER JOIN companies AS c ON i.comp_code = c.code
		WHERE i.id = ?`, id).Row()

	var (
		detail      models.InvoiceDetail
		addDate     datatypes.Date
		paidDate    *datatypes.Date
		description sql.NullString
	)
	err := row.Scan(&detail.ID, &detail.Amt, &detail.Paid, &addDate, &paidDate,
		&detail.Company.Code, &detail.Company.Name, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get invoice %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice %d: %w", id, err)
	}
	detail.AddDate = models.FormatDate(addDate)
	detail.PaidDate = models.FormatNullDate(paidDate)
	detail.Company.Description = description.String
	return &detail, nil
}

// Create inserts an unpaid invoice. paid, add_date and paid_date take their
// column defaults; the stored row is read back in the same transaction.
func (r *InvoiceRepository) Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error) {
	var invoice *models.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var id int64
		if err := tx.Raw("INSERT INTO invoices (comp_code, amt) VALUES (?, ?) RETURNING id", compCode, amt).
			Scan(&id).Error; err != nil {
			return translate(err)
		}
		var err error
		invoice, err = getInvoice(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create invoice for %q: %w", compCode, err)
	}
	return invoice, nil
}

// Update sets amount and paid flag and moves paid_date per the payment
// transition in markPaidSQL.
func (r *InvoiceRepository) Update(ctx context.Context, id int64, amt float64, paid bool) (*models.Invoice, error) {
	var invoice *models.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Raw(markPaidSQL, amt, paid, paid, paid, id).Scan(&id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		var err error
		invoice, err = getInvoice(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update invoice %d: %w", id, err)
	}
	return invoice, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM invoices WHERE id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete invoice %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete invoice %d: %w", id, ErrNotFound)
	}
	return nil
}

func getInvoice(db *gorm.DB, id int64) (*models.Invoice, error) {
	var inv models.Invoice
	row := db.Raw("SELECT "+invoiceColumns+" FROM invoices WHERE id = ?", id).Row()
	err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
