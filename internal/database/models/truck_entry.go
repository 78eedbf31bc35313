package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TruckEntry is a ledger row for one truck transaction. MaterialType is
// required for Sales entries and must be nil for RawStone entries (raw stone
// has no material subtype). TotalAmount is always Units * RatePerUnit, exact.
type TruckEntry struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	TruckNumber    string          `json:"truck_number" gorm:"not null;size:20" validate:"required,max=20"`
	TruckName      string          `json:"truck_name" gorm:"size:100" validate:"max=100"`
	EntryType      EntryType       `json:"entry_type" gorm:"type:varchar(20);not null;index" validate:"required"`
	MaterialType   *string         `json:"material_type,omitempty" gorm:"size:100"`
	Units          decimal.Decimal `json:"units" gorm:"type:numeric(10,2);not null"`
	RatePerUnit    decimal.Decimal `json:"rate_per_unit" gorm:"type:numeric(14,2);not null"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:numeric(14,2);not null"`
	EntryDate      time.Time       `json:"entry_date" gorm:"type:date;not null;index"`
	EntryTime      string          `json:"entry_time" gorm:"size:5;not null"`
	Status         EntryStatus     `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Notes          string          `json:"notes" gorm:"type:text"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TruckEntry
func (TruckEntry) TableName() string {
	return "truck_entries"
}
