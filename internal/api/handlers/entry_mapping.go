package handlers

import (
	"errors"
	"net/http"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EntryMappingHandler handles HTTP requests for the entry-type/material bridge
type EntryMappingHandler struct {
	service *service.EntryMappingService
}

// NewEntryMappingHandler creates a new entry mapping handler
func NewEntryMappingHandler(service *service.EntryMappingService) *EntryMappingHandler {
	return &EntryMappingHandler{service: service}
}

// AddMappingRequest represents the request to map a material to an entry type
type AddMappingRequest struct {
	OrganizationID uuid.UUID        `json:"organization_id" binding:"required"`
	EntryType      models.EntryType `json:"entry_type" binding:"required"`
	MaterialRateID uuid.UUID        `json:"material_rate_id" binding:"required"`
}

// AddMapping handles POST /api/v1/entry-mappings
// @Summary Map a material to an entry type
// @Description Insert a bridge row allowing the material for the entry type. Adding the same mapping twice is a no-op.
// @Tags entry-mappings
// @Accept json
// @Produce json
// @Param mapping body AddMappingRequest true "Mapping data"
// @Success 201 {object} service.MappingResponse "Mapping in place"
// @Failure 400 {object} map[string]interface{} "Invalid entry type or material rate"
// @Failure 404 {object} map[string]interface{} "Material rate not found"
// @Security BearerAuth
// @Router /entry-mappings [post]
func (h *EntryMappingHandler) AddMapping(c *gin.Context) {
	var req AddMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	mapping, err := h.service.AddMapping(req.OrganizationID, req.EntryType, req.MaterialRateID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMaterialRateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidEntryType),
			errors.Is(err, apperrors.ErrMaterialRateWrongOrg),
			errors.Is(err, apperrors.ErrMaterialRateInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add mapping", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, mapping)
}

// ListMappings handles GET /api/v1/organizations/:id/entry-mappings
// @Summary List an organization's entry-type mappings
// @Description Get bridge rows ordered by entry type then material type, optionally filtered by entry type
// @Tags entry-mappings
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param entry_type query string false "Filter by entry type (Sales or RawStone)"
// @Success 200 {array} service.MappingResponse "Successfully retrieved mappings"
// @Failure 400 {object} map[string]interface{} "Invalid entry type"
// @Security BearerAuth
// @Router /organizations/{id}/entry-mappings [get]
func (h *EntryMappingHandler) ListMappings(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var entryType *models.EntryType
	if raw := c.Query("entry_type"); raw != "" {
		et := models.EntryType(raw)
		entryType = &et
	}

	mappings, err := h.service.ListMappings(orgID, entryType)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidEntryType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list mappings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mappings)
}

// RemoveMapping handles DELETE /api/v1/entry-mappings
// @Summary Remove a mapping
// @Description Delete a single bridge row identified by its (organization, entry type, material rate) triple
// @Tags entry-mappings
// @Accept json
// @Produce json
// @Param mapping body AddMappingRequest true "Mapping triple"
// @Success 204 "Successfully removed mapping"
// @Failure 404 {object} map[string]interface{} "Mapping not found"
// @Security BearerAuth
// @Router /entry-mappings [delete]
func (h *EntryMappingHandler) RemoveMapping(c *gin.Context) {
	var req AddMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.RemoveMapping(req.OrganizationID, req.EntryType, req.MaterialRateID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEntryTypeMaterialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidEntryType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove mapping", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearMappings handles DELETE /api/v1/organizations/:id/entry-mappings
// @Summary Clear all mappings for an organization
// @Description Remove every bridge row for the organization, freeing its material rates for deletion
// @Tags entry-mappings
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Successfully cleared mappings"
// @Security BearerAuth
// @Router /organizations/{id}/entry-mappings [delete]
func (h *EntryMappingHandler) ClearMappings(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	if err := h.service.ClearOrganization(orgID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear mappings", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
