package repository

import (
	"stone-ledger-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryTypeMaterialRepository handles database operations for the
// entry-type-to-material bridge table
type EntryTypeMaterialRepository struct {
	db *gorm.DB
}

// NewEntryTypeMaterialRepository creates a new entry-type material repository
func NewEntryTypeMaterialRepository(db *gorm.DB) *EntryTypeMaterialRepository {
	return &EntryTypeMaterialRepository{db: db}
}

// Upsert inserts a mapping unless the (organization, entry type, material
// rate) triple already exists, in which case it is a no-op. Safe to call
// repeatedly. Returns true when a row was created.
func (r *EntryTypeMaterialRepository) Upsert(mapping *models.EntryTypeMaterial) (bool, error) {
	result := r.db.Where(
		"organization_id = ? AND entry_type = ? AND material_rate_id = ?",
		mapping.OrganizationID, mapping.EntryType, mapping.MaterialRateID,
	).FirstOrCreate(mapping)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists checks if a mapping exists for the given triple
func (r *EntryTypeMaterialRepository) Exists(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.EntryTypeMaterial{}).
		Where("organization_id = ? AND entry_type = ? AND material_rate_id = ?", orgID, entryType, materialRateID).
		Count(&count).Error
	return count > 0, err
}

// ListByOrganization retrieves the mappings for an organization, optionally
// filtered by entry type, ordered by entry type and then by the mapped
// material's type so listings are deterministic.
func (r *EntryTypeMaterialRepository) ListByOrganization(orgID uuid.UUID, entryType *models.EntryType) ([]models.EntryTypeMaterial, error) {
	var mappings []models.EntryTypeMaterial
	query := r.db.
		Select("entry_type_materials.*").
		Joins("JOIN material_rates ON material_rates.id = entry_type_materials.material_rate_id").
		Where("entry_type_materials.organization_id = ?", orgID)
	if entryType != nil {
		query = query.Where("entry_type_materials.entry_type = ?", *entryType)
	}
	err := query.
		Order("entry_type_materials.entry_type ASC").
		Order("material_rates.material_type ASC").
		Preload("MaterialRate").
		Find(&mappings).Error
	return mappings, err
}

// ListAll retrieves every mapping in the store with the same deterministic ordering
func (r *EntryTypeMaterialRepository) ListAll() ([]models.EntryTypeMaterial, error) {
	var mappings []models.EntryTypeMaterial
	err := r.db.
		Select("entry_type_materials.*").
		Joins("JOIN material_rates ON material_rates.id = entry_type_materials.material_rate_id").
		Order("entry_type_materials.entry_type ASC").
		Order("material_rates.material_type ASC").
		Preload("MaterialRate").
		Find(&mappings).Error
	return mappings, err
}

// Count returns the total number of mappings
func (r *EntryTypeMaterialRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.EntryTypeMaterial{}).Count(&total).Error
	return total, err
}

// CountByEntryType returns mapping counts grouped by entry type
func (r *EntryTypeMaterialRepository) CountByEntryType() (map[models.EntryType]int64, error) {
	type row struct {
		EntryType models.EntryType
		Total     int64
	}
	var rows []row
	err := r.db.Model(&models.EntryTypeMaterial{}).
		Select("entry_type, COUNT(*) AS total").
		Group("entry_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.EntryType]int64, len(rows))
	for _, r := range rows {
		counts[r.EntryType] = r.Total
	}
	return counts, nil
}

// Delete removes a single mapping
func (r *EntryTypeMaterialRepository) Delete(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) error {
	return r.db.
		Where("organization_id = ? AND entry_type = ? AND material_rate_id = ?", orgID, entryType, materialRateID).
		Delete(&models.EntryTypeMaterial{}).Error
}

// DeleteByOrganization deletes all bridge rows for an organization. Must run
// before the material rates they reference are deleted.
func (r *EntryTypeMaterialRepository) DeleteByOrganization(orgID uuid.UUID) error {
	return r.db.Where("organization_id = ?", orgID).Delete(&models.EntryTypeMaterial{}).Error
}
