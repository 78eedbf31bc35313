package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialRate is a per-organization catalog row: the price of one material
// per unit. MaterialType is unique within an organization.
type MaterialRate struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_material_rates_org_type" validate:"required"`
	MaterialType   string          `json:"material_type" gorm:"not null;size:100;uniqueIndex:idx_material_rates_org_type" validate:"required,min=1,max=100"`
	RatePerUnit    decimal.Decimal `json:"rate_per_unit" gorm:"type:numeric(14,2);not null"`
	UnitType       string          `json:"unit_type" gorm:"not null;size:20" validate:"required,max=20"`
	IsActive       bool            `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for MaterialRate
func (MaterialRate) TableName() string {
	return "material_rates"
}
