package models

import (
	"github.com/google/uuid"
)

// EntryTypeMaterial is the bridge between the entry-type enumeration and the
// material-rate catalog, scoped per organization. A row means "this material
// rate is a legal choice when recording a transaction of this entry type for
// this organization". The (organization, entry type, material rate) triple is
// unique; the RESTRICT constraint on MaterialRate forces bridge rows to be
// removed before the rates they reference.
type EntryTypeMaterial struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_entry_type_materials_org_type_rate" validate:"required"`
	EntryType      EntryType `json:"entry_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_entry_type_materials_org_type_rate" validate:"required"`
	MaterialRateID uuid.UUID `json:"material_rate_id" gorm:"type:uuid;not null;uniqueIndex:idx_entry_type_materials_org_type_rate" validate:"required"`

	MaterialRate MaterialRate `json:"material_rate,omitempty" gorm:"foreignKey:MaterialRateID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for EntryTypeMaterial
func (EntryTypeMaterial) TableName() string {
	return "entry_type_materials"
}
