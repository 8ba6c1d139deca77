package repository

import (
	"context"
	"fmt"

	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type IndustryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

type industryCompanyRow struct {
	Code     string
	Industry string
	CompCode *string
}

// List returns every industry with the codes of its companies. The outer
// join keeps industries that have no company; their code list is empty.
func (r *IndustryRepository) List(ctx context.Context) ([]models.IndustryListing, error) {
	var rows []industryCompanyRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT i.code, i.industry, ci.comp_code
			FROM industries i
			LEFT JOIN company_industries ci ON i.code = ci.industry_code
			ORDER BY i.code, ci.comp_code`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}

	industries := []models.IndustryListing{}
	for _, row := range rows {
		n := len(industries)
		if n == 0 || industries[n-1].Code != row.Code {
			industries = append(industries, models.IndustryListing{
				Code:         row.Code,
				Industry:     row.Industry,
				CompanyCodes: []string{},
			})
			n++
		}
		if row.CompCode != nil {
			industries[n-1].CompanyCodes = append(industries[n-1].CompanyCodes, *row.CompCode)
		}
	}
	return industries, nil
}

func (r *IndustryRepository) Exists(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM industries WHERE code = ?", code).
		Scan(&n).Error
	if err != nil {
		return false, fmt.Errorf("check industry %q: %w", code, err)
	}
	return n > 0, nil
}

func (r *IndustryRepository) Create(ctx context.Context, ind models.Industry) (*models.Industry, error) {
	var created models.Industry
	err := r.db.WithContext(ctx).
		Raw("INSERT INTO industries (code, industry) VALUES (?, ?) RETURNING code, industry",
			ind.Code, ind.Industry).
		Scan(&created).Error
	if err != nil {
		return nil, fmt.Errorf("create industry %q: %w", ind.Code, translate(err))
	}
	return &created, nil
}

func (r *IndustryRepository) AssociationExists(ctx context.Context, compCode, industryCode string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM company_industries WHERE comp_code = ? AND industry_code = ?",
			compCode, industryCode).
		Scan(&n).Error
	if err != nil {
		return false, fmt.Errorf("check association %q/%q: %w", compCode, industryCode, err)
	}
	return n > 0, nil
}

// Associate links a company to an industry.
func (r *IndustryRepository) Associate(ctx context.Context, compCode, industryCode string) (*models.CompanyIndustry, error) {
	var link models.CompanyIndustry
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO company_industries (comp_code, industry_code) VALUES (?, ?)
			RETURNING comp_code, industry_code`, compCode, industryCode).
		Scan(&link).Error
	if err != nil {
		return nil, fmt.Errorf("associate %q with %q: %w", compCode, industryCode, translate(err))
	}
	return &link, nil
}
