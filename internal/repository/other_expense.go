package repository

import (
	"stone-ledger-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OtherExpenseRepository handles database operations for miscellaneous expenses
type OtherExpenseRepository struct {
	db *gorm.DB
}

// NewOtherExpenseRepository creates a new expense repository
func NewOtherExpenseRepository(db *gorm.DB) *OtherExpenseRepository {
	return &OtherExpenseRepository{db: db}
}

// Create creates a new expense record
func (r *OtherExpenseRepository) Create(expense *models.OtherExpense) error {
	return r.db.Create(expense).Error
}

// GetByID retrieves an expense by ID
func (r *OtherExpenseRepository) GetByID(id uuid.UUID) (*models.OtherExpense, error) {
	var expense models.OtherExpense
	err := r.db.First(&expense, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetByOrganizationID retrieves expenses for an organization with pagination,
// most recent first
func (r *OtherExpenseRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OtherExpense, int64, error) {
	var expenses []models.OtherExpense
	var total int64

	query := r.db.Model(&models.OtherExpense{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// Update updates an expense record
func (r *OtherExpenseRepository) Update(expense *models.OtherExpense) error {
	return r.db.Save(expense).Error
}

// Delete deletes an expense record
func (r *OtherExpenseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OtherExpense{}, "id = ?", id).Error
}

// Count returns the total number of expense records
func (r *OtherExpenseRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.OtherExpense{}).Count(&total).Error
	return total, err
}
