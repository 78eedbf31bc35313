package repository

import (
	"stone-ledger-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialRateRepository handles database operations for the per-organization
// material rate catalog
type MaterialRateRepository struct {
	db *gorm.DB
}

// NewMaterialRateRepository creates a new material rate repository
func NewMaterialRateRepository(db *gorm.DB) *MaterialRateRepository {
	return &MaterialRateRepository{db: db}
}

// Create creates a new material rate
func (r *MaterialRateRepository) Create(rate *models.MaterialRate) error {
	return r.db.Create(rate).Error
}

// GetByID retrieves a material rate by ID
func (r *MaterialRateRepository) GetByID(id uuid.UUID) (*models.MaterialRate, error) {
	var rate models.MaterialRate
	err := r.db.First(&rate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// GetByMaterialType retrieves a material rate by its material type within an organization
func (r *MaterialRateRepository) GetByMaterialType(orgID uuid.UUID, materialType string) (*models.MaterialRate, error) {
	var rate models.MaterialRate
	err := r.db.First(&rate, "organization_id = ? AND material_type = ?", orgID, materialType).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// GetByOrganizationID retrieves all material rates for an organization,
// ordered by material type for deterministic display
func (r *MaterialRateRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.MaterialRate, error) {
	var rates []models.MaterialRate
	err := r.db.Where("organization_id = ?", orgID).Order("material_type ASC").Find(&rates).Error
	return rates, err
}

// GetAll retrieves all material rates ordered by material type
func (r *MaterialRateRepository) GetAll() ([]models.MaterialRate, error) {
	var rates []models.MaterialRate
	err := r.db.Order("material_type ASC").Find(&rates).Error
	return rates, err
}

// Update updates a material rate
func (r *MaterialRateRepository) Update(rate *models.MaterialRate) error {
	return r.db.Save(rate).Error
}

// Delete deletes a material rate. Fails with a constraint error while bridge
// rows still reference it.
func (r *MaterialRateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaterialRate{}, "id = ?", id).Error
}

// DeleteByOrganization deletes all material rates for an organization
func (r *MaterialRateRepository) DeleteByOrganization(orgID uuid.UUID) error {
	return r.db.Where("organization_id = ?", orgID).Delete(&models.MaterialRate{}).Error
}

// Count returns the total number of material rates
func (r *MaterialRateRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.MaterialRate{}).Count(&total).Error
	return total, err
}
