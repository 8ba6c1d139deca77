package handler

import (
	"errors"
	"net/http"

	"biztime-backend/internal/apperror"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type IndustryHandler struct {
	industries *repository.IndustryRepository
}

func NewIndustryHandler(industries *repository.IndustryRepository) *IndustryHandler {
	return &IndustryHandler{industries: industries}
}

// List returns every industry with the codes of its companies.
func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.industries.List(c.Request.Context())
	if err != nil {
		_ = c.Error(apperror.Internal(err, "Unable to retrieve industries"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"industries": industries})
}

func (h *IndustryHandler) Create(c *gin.Context) {
	var payload struct {
		Code     string `json:"code" binding:"required"`
		Industry string `json:"industry" binding:"required"`
	}
	if err := bindJSON(c, &payload); err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	exists, err := h.industries.Exists(ctx, payload.Code)
	if err != nil {
		_ = c.Error(apperror.Internal(err, "Unable to add industry"))
		return
	}
	if exists {
		_ = c.Error(apperror.Conflict("Industry with code %s already exists", payload.Code))
		return
	}

	industry, err := h.industries.Create(ctx, models.Industry{Code: payload.Code, Industry: payload.Industry})
	if errors.Is(err, repository.ErrDuplicate) {
		_ = c.Error(apperror.Conflict("Industry with code %s already exists", payload.Code))
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err, "Unable to add industry"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"industry": industry})
}
