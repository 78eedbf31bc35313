package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TruckEntryHandler handles HTTP requests for the truck entry ledger
type TruckEntryHandler struct {
	service *service.TruckEntryService
}

// NewTruckEntryHandler creates a new truck entry handler
func NewTruckEntryHandler(service *service.TruckEntryService) *TruckEntryHandler {
	return &TruckEntryHandler{service: service}
}

// CreateTruckEntry handles POST /api/v1/truck-entries
// @Summary Record a truck entry
// @Description Record a sales or raw-stone transaction. Sales entries must name a material mapped to the Sales entry type.
// @Tags truck-entries
// @Accept json
// @Produce json
// @Param entry body service.CreateTruckEntryRequest true "Truck entry data"
// @Success 201 {object} service.TruckEntryResponse "Successfully recorded truck entry"
// @Failure 400 {object} map[string]interface{} "Invalid entry"
// @Failure 404 {object} map[string]interface{} "Material rate not found"
// @Security BearerAuth
// @Router /truck-entries [post]
func (h *TruckEntryHandler) CreateTruckEntry(c *gin.Context) {
	var req service.CreateTruckEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMaterialRateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidEntryType),
			errors.Is(err, apperrors.ErrMaterialTypeRequired),
			errors.Is(err, apperrors.ErrMaterialTypeNotAllowed),
			errors.Is(err, apperrors.ErrMaterialNotMappedForEntry),
			errors.Is(err, apperrors.ErrNegativeRate),
			apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record truck entry", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetTruckEntry handles GET /api/v1/truck-entries/:id
// @Summary Get truck entry by ID
// @Tags truck-entries
// @Accept json
// @Produce json
// @Param id path string true "Truck entry ID (UUID)"
// @Success 200 {object} service.TruckEntryResponse "Successfully retrieved truck entry"
// @Failure 404 {object} map[string]interface{} "Truck entry not found"
// @Security BearerAuth
// @Router /truck-entries/{id} [get]
func (h *TruckEntryHandler) GetTruckEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck entry ID: invalid UUID format"})
		return
	}

	entry, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTruckEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get truck entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetTruckEntriesByOrganization handles GET /api/v1/organizations/:id/truck-entries
// @Summary List an organization's truck entries
// @Description Get truck entries newest first with pagination support
// @Tags truck-entries
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TruckEntryListResponse "Successfully retrieved truck entries"
// @Security BearerAuth
// @Router /organizations/{id}/truck-entries [get]
func (h *TruckEntryHandler) GetTruckEntriesByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	entries, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list truck entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateTruckEntryStatus handles PATCH /api/v1/truck-entries/:id/status
// @Summary Update a truck entry's status
// @Description Transition a truck entry between active, completed and cancelled
// @Tags truck-entries
// @Accept json
// @Produce json
// @Param id path string true "Truck entry ID (UUID)"
// @Success 200 {object} service.TruckEntryResponse "Successfully updated truck entry"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Truck entry not found"
// @Security BearerAuth
// @Router /truck-entries/{id}/status [patch]
func (h *TruckEntryHandler) UpdateTruckEntryStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck entry ID: invalid UUID format"})
		return
	}

	var req struct {
		Status models.EntryStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTruckEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidEntryStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update truck entry", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteTruckEntry handles DELETE /api/v1/truck-entries/:id
// @Summary Delete a truck entry
// @Tags truck-entries
// @Accept json
// @Produce json
// @Param id path string true "Truck entry ID (UUID)"
// @Success 204 "Successfully deleted truck entry"
// @Failure 404 {object} map[string]interface{} "Truck entry not found"
// @Security BearerAuth
// @Router /truck-entries/{id} [delete]
func (h *TruckEntryHandler) DeleteTruckEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck entry ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTruckEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete truck entry", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
