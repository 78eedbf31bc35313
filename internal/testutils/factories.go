package testutils

import (
	"time"

	"stone-ledger-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Each user gets a unique
// username so the unique index never trips across factory calls.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user-" + id.String()[:8],
		Email:        "user-" + id.String()[:8] + "@test.local",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         models.UserRoleUser,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithOrganization sets the organization for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization owned by the given user
func (f *OrganizationFactory) Create(ownerID uuid.UUID) *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Quarry " + id.String()[:8],
		OwnerID: ownerID,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(ownerID uuid.UUID, name string) *models.Organization {
	org := f.Create(ownerID)
	org.Name = name
	return org
}

// MaterialRateFactory provides methods to create test MaterialRate data
type MaterialRateFactory struct{}

// NewMaterialRateFactory creates a new MaterialRateFactory
func NewMaterialRateFactory() *MaterialRateFactory {
	return &MaterialRateFactory{}
}

// Create creates a test MaterialRate for the given organization
func (f *MaterialRateFactory) Create(orgID uuid.UUID) *models.MaterialRate {
	id := uuid.New()
	return &models.MaterialRate{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		MaterialType:   "Material " + id.String()[:8],
		RatePerUnit:    decimal.NewFromInt(1000),
		UnitType:       "load",
		IsActive:       true,
	}
}

// WithMaterialType sets a custom material type
func (f *MaterialRateFactory) WithMaterialType(orgID uuid.UUID, materialType string) *models.MaterialRate {
	rate := f.Create(orgID)
	rate.MaterialType = materialType
	return rate
}

// WithRate sets a custom rate per unit
func (f *MaterialRateFactory) WithRate(orgID uuid.UUID, rate decimal.Decimal) *models.MaterialRate {
	mr := f.Create(orgID)
	mr.RatePerUnit = rate
	return mr
}

// EntryTypeMaterialFactory provides methods to create test bridge rows
type EntryTypeMaterialFactory struct{}

// NewEntryTypeMaterialFactory creates a new EntryTypeMaterialFactory
func NewEntryTypeMaterialFactory() *EntryTypeMaterialFactory {
	return &EntryTypeMaterialFactory{}
}

// Create creates a test mapping for the given triple
func (f *EntryTypeMaterialFactory) Create(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) *models.EntryTypeMaterial {
	return &models.EntryTypeMaterial{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		EntryType:      entryType,
		MaterialRateID: materialRateID,
	}
}

// TruckEntryFactory provides methods to create test TruckEntry data
type TruckEntryFactory struct{}

// NewTruckEntryFactory creates a new TruckEntryFactory
func NewTruckEntryFactory() *TruckEntryFactory {
	return &TruckEntryFactory{}
}

// Create creates a test raw-stone TruckEntry for the given organization and user
func (f *TruckEntryFactory) Create(orgID, userID uuid.UUID) *models.TruckEntry {
	units := decimal.NewFromInt(5)
	rate := decimal.NewFromInt(6000)
	return &models.TruckEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		TruckNumber:    "TN00XX0000",
		TruckName:      "Test Transport",
		EntryType:      models.EntryTypeRawStone,
		Units:          units,
		RatePerUnit:    rate,
		TotalAmount:    units.Mul(rate),
		EntryDate:      time.Now(),
		EntryTime:      "10:30",
		Status:         models.EntryStatusActive,
	}
}

// Sales creates a test sales TruckEntry naming a material
func (f *TruckEntryFactory) Sales(orgID, userID uuid.UUID, materialType string) *models.TruckEntry {
	entry := f.Create(orgID, userID)
	entry.EntryType = models.EntryTypeSales
	entry.MaterialType = &materialType
	return entry
}

// FactorySet provides access to all factories
type FactorySet struct {
	User              *UserFactory
	Organization      *OrganizationFactory
	MaterialRate      *MaterialRateFactory
	EntryTypeMaterial *EntryTypeMaterialFactory
	TruckEntry        *TruckEntryFactory
	OtherExpense      *OtherExpenseFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:              NewUserFactory(),
		Organization:      NewOrganizationFactory(),
		MaterialRate:      NewMaterialRateFactory(),
		EntryTypeMaterial: NewEntryTypeMaterialFactory(),
		TruckEntry:        NewTruckEntryFactory(),
		OtherExpense:      NewOtherExpenseFactory(),
	}
}

// OtherExpenseFactory provides methods to create test OtherExpense data
type OtherExpenseFactory struct{}

// NewOtherExpenseFactory creates a new OtherExpenseFactory
func NewOtherExpenseFactory() *OtherExpenseFactory {
	return &OtherExpenseFactory{}
}

// Create creates a test OtherExpense for the given organization and user
func (f *OtherExpenseFactory) Create(orgID, userID uuid.UUID) *models.OtherExpense {
	return &models.OtherExpense{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		ExpensesName:   "Diesel",
		Amount:         decimal.NewFromInt(1500),
		Others:         "Generator fuel",
		Date:           time.Now(),
		IsActive:       true,
	}
}
