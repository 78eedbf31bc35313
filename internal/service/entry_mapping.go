package service

import (
	"errors"
	"fmt"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryMappingService maintains the entry-type-to-material bridge and
// guarantees it only ever points at live catalog rows. The entry-type
// enumeration is closed here; the service never creates a material rate on
// the caller's behalf.
type EntryMappingService struct {
	mappings repository.EntryTypeMaterialRepositoryInterface
	rates    repository.MaterialRateRepositoryInterface
}

// NewEntryMappingService creates a new entry mapping service
func NewEntryMappingService(
	mappings repository.EntryTypeMaterialRepositoryInterface,
	rates repository.MaterialRateRepositoryInterface,
) *EntryMappingService {
	return &EntryMappingService{
		mappings: mappings,
		rates:    rates,
	}
}

// MappingResponse represents one bridge row with its resolved material
type MappingResponse struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	EntryType      models.EntryType `json:"entry_type"`
	MaterialRateID uuid.UUID        `json:"material_rate_id"`
	MaterialType   string           `json:"material_type"`
	RatePerUnit    decimal.Decimal  `json:"rate_per_unit"`
	UnitType       string           `json:"unit_type"`
}

// AddMapping inserts a mapping unless it already exists. Invalid entry types
// are rejected at this boundary, and the referenced material rate must exist,
// be active, and belong to the same organization.
func (s *EntryMappingService) AddMapping(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) (*MappingResponse, error) {
	if !entryType.IsValid() {
		return nil, apperrors.ErrInvalidEntryType
	}

	rate, err := s.rates.GetByID(materialRateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaterialRateNotFound
		}
		return nil, fmt.Errorf("failed to get material rate: %w", err)
	}
	if rate.OrganizationID != orgID {
		return nil, apperrors.ErrMaterialRateWrongOrg
	}
	if !rate.IsActive {
		return nil, apperrors.ErrMaterialRateInactive
	}

	mapping := &models.EntryTypeMaterial{
		OrganizationID: orgID,
		EntryType:      entryType,
		MaterialRateID: materialRateID,
	}
	if _, err := s.mappings.Upsert(mapping); err != nil {
		return nil, fmt.Errorf("failed to upsert mapping: %w", err)
	}

	return toMappingResponse(mapping, rate), nil
}

// ListMappings returns the organization's mappings ordered by entry type and
// material type, optionally filtered by entry type
func (s *EntryMappingService) ListMappings(orgID uuid.UUID, entryType *models.EntryType) ([]MappingResponse, error) {
	if entryType != nil && !entryType.IsValid() {
		return nil, apperrors.ErrInvalidEntryType
	}

	mappings, err := s.mappings.ListByOrganization(orgID, entryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	responses := make([]MappingResponse, len(mappings))
	for i, m := range mappings {
		responses[i] = *toMappingResponse(&m, &m.MaterialRate)
	}
	return responses, nil
}

// RemoveMapping deletes a single mapping
func (s *EntryMappingService) RemoveMapping(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) error {
	if !entryType.IsValid() {
		return apperrors.ErrInvalidEntryType
	}

	exists, err := s.mappings.Exists(orgID, entryType, materialRateID)
	if err != nil {
		return fmt.Errorf("failed to check mapping: %w", err)
	}
	if !exists {
		return apperrors.ErrEntryTypeMaterialNotFound
	}

	if err := s.mappings.Delete(orgID, entryType, materialRateID); err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	return nil
}

// ClearOrganization removes every bridge row for the organization. Callers
// tearing a tenant down must run this before deleting its material rates.
func (s *EntryMappingService) ClearOrganization(orgID uuid.UUID) error {
	if err := s.mappings.DeleteByOrganization(orgID); err != nil {
		return fmt.Errorf("failed to clear mappings: %w", err)
	}
	return nil
}

// IsMaterialMapped reports whether a material rate is a legal choice for the
// given entry type in the organization
func (s *EntryMappingService) IsMaterialMapped(orgID uuid.UUID, entryType models.EntryType, materialRateID uuid.UUID) (bool, error) {
	if !entryType.IsValid() {
		return false, apperrors.ErrInvalidEntryType
	}
	return s.mappings.Exists(orgID, entryType, materialRateID)
}

func toMappingResponse(m *models.EntryTypeMaterial, rate *models.MaterialRate) *MappingResponse {
	return &MappingResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		EntryType:      m.EntryType,
		MaterialRateID: m.MaterialRateID,
		MaterialType:   rate.MaterialType,
		RatePerUnit:    rate.RatePerUnit,
		UnitType:       rate.UnitType,
	}
}
