package models

import (
	"github.com/google/uuid"
)

// Organization represents the root entity for multi-tenancy. Every catalog
// and ledger row below it is scoped to exactly one organization.
//
// OwnerID references the owning user. The back-reference
// (User.OrganizationID) is nullable and is patched after the organization
// exists, so the user/organization cycle never needs both sides at insert
// time. Dependent relationships use RESTRICT so an out-of-order delete fails
// with a constraint error instead of cascading.
type Organization struct {
	BaseModel
	Name    string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	MaterialRates      []MaterialRate      `json:"material_rates,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT"`
	EntryTypeMaterials []EntryTypeMaterial `json:"entry_type_materials,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT"`
	TruckEntries       []TruckEntry        `json:"truck_entries,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT"`
	OtherExpenses      []OtherExpense      `json:"other_expenses,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
