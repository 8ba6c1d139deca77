package handler

import (
	"errors"
	"net/http"

	"biztime-backend/internal/apperror"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoices  *repository.InvoiceRepository
	companies *repository.CompanyRepository
}

func NewInvoiceHandler(invoices *repository.InvoiceRepository, companies *repository.CompanyRepository) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, companies: companies}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoices.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := parseInvoiceID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	invoice, err := h.invoices.GetDetail(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(notFound(err, "Invoice with ID %d not found", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// Create adds an unpaid invoice for an existing company.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		CompCode string   `json:"comp_code" binding:"required"`
		Amt      *float64 `json:"amt" binding:"required"`
	}
	if err := bindJSON(c, &payload); err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	exists, err := h.companies.Exists(ctx, payload.CompCode)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !exists {
		_ = c.Error(apperror.NotFound("Company with code %s not found", payload.CompCode))
		return
	}

	invoice, err := h.invoices.Create(ctx, payload.CompCode, *payload.Amt)
	if errors.Is(err, repository.ErrMissingReference) {
		_ = c.Error(apperror.NotFound("Company with code %s not found", payload.CompCode))
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": invoice.Row()})
}

// Update changes amount and paid flag. paid_date is stamped when an unpaid
// invoice becomes paid, cleared when it becomes unpaid, and kept otherwise.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := parseInvoiceID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var payload struct {
		Amt  *float64 `json:"amt" binding:"required"`
		Paid *bool    `json:"paid" binding:"required"`
	}
	if err := bindJSON(c, &payload); err != nil {
		_ = c.Error(err)
		return
	}

	invoice, err := h.invoices.Update(c.Request.Context(), id, *payload.Amt, *payload.Paid)
	if err != nil {
		_ = c.Error(notFound(err, "Invoice with ID %d not found", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice.Row()})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := parseInvoiceID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.invoices.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(notFound(err, "Invoice with ID %d not found", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
