package repository

import (
	"context"
	"fmt"

	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// List returns code and name of every company.
func (r *CompanyRepository) List(ctx context.Context) ([]models.CompanySummary, error) {
	companies := []models.CompanySummary{}
	err := r.db.WithContext(ctx).
		Raw("SELECT code, name FROM companies ORDER BY code").
		Scan(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// GetByCode fetches a single company.
func (r *CompanyRepository) GetByCode(ctx context.Context, code string) (*models.Company, error) {
	var company models.Company
	res := r.db.WithContext(ctx).
		Raw("SELECT code, name, description FROM companies WHERE code = ?", code).
		Scan(&company)
	if res.Error != nil {
		return nil, fmt.Errorf("get company %q: %w", code, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("get company %q: %w", code, ErrNotFound)
	}
	return &company, nil
}

func (r *CompanyRepository) Exists(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM companies WHERE code = ?", code).
		Scan(&n).Error
	if err != nil {
		return false, fmt.Errorf("check company %q: %w", code, err)
	}
	return n > 0, nil
}

// InvoiceIDs returns the ids of the company's invoices in ascending order.
func (r *CompanyRepository) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Raw("SELECT id FROM invoices WHERE comp_code = ? ORDER BY id", code).
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("invoice ids for %q: %w", code, err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// IndustryLabels returns the industry labels joined through company_industries.
func (r *CompanyRepository) IndustryLabels(ctx context.Context, code string) ([]string, error) {
	labels := []string{}
	err := r.db.WithContext(ctx).
		Raw(`SELECT i.industry FROM industries i
			JOIN company_industries ci ON i.code = ci.industry_code
			WHERE ci.comp_code = ? ORDER BY i.industry`, code).
		Scan(&labels).Error
	if err != nil {
		return nil, fmt.Errorf("industries for %q: %w", code, err)
	}
	if labels == nil {
		labels = []string{}
	}
	return labels, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c models.Company) (*models.Company, error) {
	var created models.Company
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO companies (code, name, description) VALUES (?, ?, ?)
			RETURNING code, name, description`, c.Code, c.Name, c.Description).
		Scan(&created).Error
	if err != nil {
		return nil, fmt.Errorf("create company %q: %w", c.Code, translate(err))
	}
	return &created, nil
}

// Update replaces name and description of the company with the given code.
func (r *CompanyRepository) Update(ctx context.Context, code, name, description string) (*models.Company, error) {
	var updated models.Company
	res := r.db.WithContext(ctx).
		Raw(`UPDATE companies SET name = ?, description = ? WHERE code = ?
			RETURNING code, name, description`, name, description, code).
		Scan(&updated)
	if res.Error != nil {
		return nil, fmt.Errorf("update company %q: %w", code, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update company %q: %w", code, ErrNotFound)
	}
	return &updated, nil
}

// Delete removes the company. Its invoices and industry associations go
// with it through ON DELETE CASCADE.
func (r *CompanyRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM companies WHERE code = ?", code)
	if res.Error != nil {
		return fmt.Errorf("delete company %q: %w", code, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete company %q: %w", code, ErrNotFound)
	}
	return nil
}
