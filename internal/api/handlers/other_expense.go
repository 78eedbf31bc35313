package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OtherExpenseHandler handles HTTP requests for miscellaneous expenses
type OtherExpenseHandler struct {
	service *service.OtherExpenseService
}

// NewOtherExpenseHandler creates a new expense handler
func NewOtherExpenseHandler(service *service.OtherExpenseService) *OtherExpenseHandler {
	return &OtherExpenseHandler{service: service}
}

// CreateExpense handles POST /api/v1/expenses
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body service.CreateExpenseRequest true "Expense data"
// @Success 201 {object} service.ExpenseResponse "Successfully recorded expense"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /expenses [post]
func (h *OtherExpenseHandler) CreateExpense(c *gin.Context) {
	var req service.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	expense, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpense handles GET /api/v1/expenses/:id
// @Summary Get expense by ID
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 200 {object} service.ExpenseResponse "Successfully retrieved expense"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *OtherExpenseHandler) GetExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID: invalid UUID format"})
		return
	}

	expense, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOtherExpenseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get expense", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// GetExpensesByOrganization handles GET /api/v1/organizations/:id/expenses
// @Summary List an organization's expenses
// @Description Get expenses newest first with pagination support
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ExpenseListResponse "Successfully retrieved expenses"
// @Security BearerAuth
// @Router /organizations/{id}/expenses [get]
func (h *OtherExpenseHandler) GetExpensesByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	expenses, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
// @Summary Delete an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 204 "Successfully deleted expense"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *OtherExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrOtherExpenseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
