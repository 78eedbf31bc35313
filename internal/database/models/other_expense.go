package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OtherExpense is a miscellaneous expense record scoped to one organization.
type OtherExpense struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ExpensesName   string          `json:"expenses_name" gorm:"not null;size:100" validate:"required,max=100"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`
	Others         string          `json:"others" gorm:"type:text"`
	Date           time.Time       `json:"date" gorm:"type:date;not null;index"`
	IsActive       bool            `json:"is_active" gorm:"not null;default:true"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for OtherExpense
func (OtherExpense) TableName() string {
	return "other_expenses"
}
