package handler

import (
	"errors"
	"net/http"

	"biztime-backend/internal/apperror"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"
	"biztime-backend/internal/slug"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companies  *repository.CompanyRepository
	industries *repository.IndustryRepository
}

func NewCompanyHandler(companies *repository.CompanyRepository, industries *repository.IndustryRepository) *CompanyHandler {
	return &CompanyHandler{companies: companies, industries: industries}
}

type companyPayload struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get returns the company with its industry labels and invoice ids. The three
// lookups are not wrapped in a transaction.
func (h *CompanyHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Param("code")

	company, err := h.companies.GetByCode(ctx, code)
	if err != nil {
		_ = c.Error(notFound(err, "Company with code %s not found", code))
		return
	}
	invoices, err := h.companies.InvoiceIDs(ctx, code)
	if err != nil {
		_ = c.Error(err)
		return
	}
	industries, err := h.companies.IndustryLabels(ctx, code)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": models.CompanyDetail{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Industries:  industries,
		Invoices:    invoices,
	}})
}

// Create derives the company code from its name.
func (h *CompanyHandler) Create(c *gin.Context) {
	var payload companyPayload
	if err := bindJSON(c, &payload); err != nil {
		_ = c.Error(err)
		return
	}

	code := slug.Make(payload.Name)
	if code == "" {
		_ = c.Error(apperror.BadRequest("name must contain a letter or digit"))
		return
	}

	ctx := c.Request.Context()
	exists, err := h.companies.Exists(ctx, code)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if exists {
		_ = c.Error(apperror.Conflict("Company with code %s already exists", code))
		return
	}

	company, err := h.companies.Create(ctx, models.Company{
		Code:        code,
		Name:        payload.Name,
		Description: payload.Description,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		_ = c.Error(apperror.Conflict("Company with code %s already exists", code))
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company.Info()})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	code := c.Param("code")
	var payload companyPayload
	if err := bindJSON(c, &payload); err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companies.Update(c.Request.Context(), code, payload.Name, payload.Description)
	if err != nil {
		_ = c.Error(notFound(err, "Company with code %s not found", code))
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company.Info()})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	code := c.Param("code")
	if err := h.companies.Delete(c.Request.Context(), code); err != nil {
		_ = c.Error(notFound(err, "Company with code %s not found", code))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListIndustries answers 404 only when the company is missing; a company
// without industries gets an empty list.
func (h *CompanyHandler) ListIndustries(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Param("code")

	exists, err := h.companies.Exists(ctx, code)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !exists {
		_ = c.Error(apperror.NotFound("Company with code %s not found", code))
		return
	}

	industries, err := h.companies.IndustryLabels(ctx, code)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"industries": industries})
}

// AddIndustry associates an industry with a company. The company code comes
// from the body when present, else from the path.
func (h *CompanyHandler) AddIndustry(c *gin.Context) {
	var payload struct {
		Code         string `json:"code"`
		IndustryCode string `json:"industryCode" binding:"required"`
	}
	if err := bindJSON(c, &payload); err != nil {
		_ = c.Error(err)
		return
	}
	code := payload.Code
	if code == "" {
		code = c.Param("code")
	}

	ctx := c.Request.Context()
	exists, err := h.companies.Exists(ctx, code)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !exists {
		_ = c.Error(apperror.NotFound("Company with code %s not found", code))
		return
	}

	exists, err = h.industries.Exists(ctx, payload.IndustryCode)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !exists {
		_ = c.Error(apperror.NotFound("Industry with code %s not found", payload.IndustryCode))
		return
	}

	linked, err := h.industries.AssociationExists(ctx, code, payload.IndustryCode)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if linked {
		_ = c.Error(apperror.Conflict("Company %s is already associated with industry %s", code, payload.IndustryCode))
		return
	}

	link, err := h.industries.Associate(ctx, code, payload.IndustryCode)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		_ = c.Error(apperror.Conflict("Company %s is already associated with industry %s", code, payload.IndustryCode))
		return
	case errors.Is(err, repository.ErrMissingReference):
		_ = c.Error(apperror.NotFound("Company with code %s not found", code))
		return
	case err != nil:
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company_industry": link})
}
