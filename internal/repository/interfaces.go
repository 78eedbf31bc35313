package repository

import (
	"stone-ledger-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	SetOrganization(userID, orgID uuid.UUID) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// MaterialRateRepositoryInterface defines the interface for material rate repository operations
type MaterialRateRepositoryInterface interface {
	Create(rate *models.MaterialRate) error
	GetByID(id uuid.UUID) (*models.MaterialRate, error)
	GetByMaterialType(orgID uuid.UUID, materialType string) (*models.MaterialRate, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.MaterialRate, error)
	GetAll() ([]models.MaterialRate, error)
	Update(rate *models.MaterialRate) error
	Delete(id uuid.UUID) error
	DeleteByOrganization(orgID uuid.UUID) error
	Count() (int64, error)
}

// EntryTypeMaterialRepositoryInterface defines the interface for the
// entry-type/material bridge table
type EntryTypeMaterialRepositoryInterface interface {
	Upsert(mapping *models.EntryTypeMaterial) (bool, error)
	Exists(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) (bool, error)
	ListByOrganization(orgID uuid.UUID, entryType *models.EntryType) ([]models.EntryTypeMaterial, error)
	ListAll() ([]models.EntryTypeMaterial, error)
	Count() (int64, error)
	CountByEntryType() (map[models.EntryType]int64, error)
	Delete(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) error
	DeleteByOrganization(orgID uuid.UUID) error
}

// TruckEntryRepositoryInterface defines the interface for truck entry repository operations
type TruckEntryRepositoryInterface interface {
	Create(entry *models.TruckEntry) error
	GetByID(id uuid.UUID) (*models.TruckEntry, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.TruckEntry, int64, error)
	Update(entry *models.TruckEntry) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// OtherExpenseRepositoryInterface defines the interface for expense repository operations
type OtherExpenseRepositoryInterface interface {
	Create(expense *models.OtherExpense) error
	GetByID(id uuid.UUID) (*models.OtherExpense, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OtherExpense, int64, error)
	Update(expense *models.OtherExpense) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}
