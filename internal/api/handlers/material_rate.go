package handlers

import (
	"errors"
	"net/http"

	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaterialRateHandler handles HTTP requests for the material rate catalog
type MaterialRateHandler struct {
	service *service.MaterialRateService
}

// NewMaterialRateHandler creates a new material rate handler
func NewMaterialRateHandler(service *service.MaterialRateService) *MaterialRateHandler {
	return &MaterialRateHandler{service: service}
}

// CreateMaterialRate handles POST /api/v1/material-rates
// @Summary Create a material rate
// @Description Add a material with its rate to the organization's catalog
// @Tags material-rates
// @Accept json
// @Produce json
// @Param rate body service.CreateMaterialRateRequest true "Material rate data"
// @Success 201 {object} service.MaterialRateResponse "Successfully created material rate"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Material already in catalog"
// @Security BearerAuth
// @Router /material-rates [post]
func (h *MaterialRateHandler) CreateMaterialRate(c *gin.Context) {
	var req service.CreateMaterialRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	rate, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMaterialRateExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrOrganizationNotFound),
			errors.Is(err, apperrors.ErrNegativeRate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material rate", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, rate)
}

// GetMaterialRate handles GET /api/v1/material-rates/:id
// @Summary Get material rate by ID
// @Tags material-rates
// @Accept json
// @Produce json
// @Param id path string true "Material rate ID (UUID)"
// @Success 200 {object} service.MaterialRateResponse "Successfully retrieved material rate"
// @Failure 404 {object} map[string]interface{} "Material rate not found"
// @Security BearerAuth
// @Router /material-rates/{id} [get]
func (h *MaterialRateHandler) GetMaterialRate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material rate ID: invalid UUID format"})
		return
	}

	rate, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMaterialRateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get material rate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rate)
}

// GetMaterialRatesByOrganization handles GET /api/v1/organizations/:id/material-rates
// @Summary List an organization's material rate catalog
// @Description Get all material rates for an organization ordered by material type
// @Tags material-rates
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.MaterialRateResponse "Successfully retrieved material rates"
// @Security BearerAuth
// @Router /organizations/{id}/material-rates [get]
func (h *MaterialRateHandler) GetMaterialRatesByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	rates, err := h.service.GetByOrganization(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list material rates", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rates)
}

// UpdateMaterialRate handles PUT /api/v1/material-rates/:id
// @Summary Update a material rate
// @Description Update a material rate's price, unit type and active flag
// @Tags material-rates
// @Accept json
// @Produce json
// @Param id path string true "Material rate ID (UUID)"
// @Param rate body service.UpdateMaterialRateRequest true "Material rate data"
// @Success 200 {object} service.MaterialRateResponse "Successfully updated material rate"
// @Failure 404 {object} map[string]interface{} "Material rate not found"
// @Security BearerAuth
// @Router /material-rates/{id} [put]
func (h *MaterialRateHandler) UpdateMaterialRate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material rate ID: invalid UUID format"})
		return
	}

	var req service.UpdateMaterialRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	rate, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMaterialRateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNegativeRate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material rate", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, rate)
}

// DeleteMaterialRate handles DELETE /api/v1/material-rates/:id
// @Summary Delete a material rate
// @Description Delete a material rate. Fails while bridge mappings still reference it.
// @Tags material-rates
// @Accept json
// @Produce json
// @Param id path string true "Material rate ID (UUID)"
// @Success 204 "Successfully deleted material rate"
// @Failure 404 {object} map[string]interface{} "Material rate not found"
// @Failure 409 {object} map[string]interface{} "Material rate still referenced"
// @Security BearerAuth
// @Router /material-rates/{id} [delete]
func (h *MaterialRateHandler) DeleteMaterialRate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material rate ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrMaterialRateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to delete material rate", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
