package repository

import (
	"stone-ledger-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TruckEntryRepository handles database operations for truck entries
type TruckEntryRepository struct {
	db *gorm.DB
}

// NewTruckEntryRepository creates a new truck entry repository
func NewTruckEntryRepository(db *gorm.DB) *TruckEntryRepository {
	return &TruckEntryRepository{db: db}
}

// Create creates a new truck entry
func (r *TruckEntryRepository) Create(entry *models.TruckEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a truck entry by ID
func (r *TruckEntryRepository) GetByID(id uuid.UUID) (*models.TruckEntry, error) {
	var entry models.TruckEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByOrganizationID retrieves truck entries for an organization with
// pagination, most recent first
func (r *TruckEntryRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.TruckEntry, int64, error) {
	var entries []models.TruckEntry
	var total int64

	query := r.db.Model(&models.TruckEntry{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).
		Order("entry_date DESC").
		Order("entry_time DESC").
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Update updates a truck entry
func (r *TruckEntryRepository) Update(entry *models.TruckEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes a truck entry
func (r *TruckEntryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TruckEntry{}, "id = ?", id).Error
}

// Count returns the total number of truck entries
func (r *TruckEntryRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.TruckEntry{}).Count(&total).Error
	return total, err
}
