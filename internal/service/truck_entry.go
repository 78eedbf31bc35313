package service

import (
	"errors"
	"fmt"
	"time"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TruckEntryService handles business logic for the truck entry ledger. Sales
// entries must name a material that the bridge table maps to the Sales entry
// type for the organization; raw-stone entries carry no material subtype.
// The total amount is always recomputed here as units * rate per unit.
type TruckEntryService struct {
	repo      repository.TruckEntryRepositoryInterface
	rates     repository.MaterialRateRepositoryInterface
	mappings  repository.EntryTypeMaterialRepositoryInterface
	validator *validator.Validate
}

// NewTruckEntryService creates a new truck entry service
func NewTruckEntryService(
	repo repository.TruckEntryRepositoryInterface,
	rates repository.MaterialRateRepositoryInterface,
	mappings repository.EntryTypeMaterialRepositoryInterface,
	validator *validator.Validate,
) *TruckEntryService {
	return &TruckEntryService{
		repo:      repo,
		rates:     rates,
		mappings:  mappings,
		validator: validator,
	}
}

// CreateTruckEntryRequest represents the request to record a truck entry
type CreateTruckEntryRequest struct {
	OrganizationID uuid.UUID        `json:"organization_id" validate:"required"`
	UserID         uuid.UUID        `json:"user_id" validate:"required"`
	TruckNumber    string           `json:"truck_number" validate:"required,max=20"`
	TruckName      string           `json:"truck_name" validate:"max=100"`
	EntryType      models.EntryType `json:"entry_type" validate:"required"`
	MaterialType   *string          `json:"material_type,omitempty"`
	Units          decimal.Decimal  `json:"units"`
	RatePerUnit    decimal.Decimal  `json:"rate_per_unit"`
	EntryDate      time.Time        `json:"entry_date"`
	EntryTime      string           `json:"entry_time" validate:"omitempty,len=5"`
	Notes          string           `json:"notes"`
}

// TruckEntryResponse represents the response for truck entry operations
type TruckEntryResponse struct {
	ID             uuid.UUID          `json:"id"`
	OrganizationID uuid.UUID          `json:"organization_id"`
	UserID         uuid.UUID          `json:"user_id"`
	TruckNumber    string             `json:"truck_number"`
	TruckName      string             `json:"truck_name"`
	EntryType      models.EntryType   `json:"entry_type"`
	MaterialType   *string            `json:"material_type,omitempty"`
	Units          decimal.Decimal    `json:"units"`
	RatePerUnit    decimal.Decimal    `json:"rate_per_unit"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	EntryDate      string             `json:"entry_date"`
	EntryTime      string             `json:"entry_time"`
	Status         models.EntryStatus `json:"status"`
	Notes          string             `json:"notes"`
}

// TruckEntryListResponse represents a paginated list of truck entries
type TruckEntryListResponse struct {
	Entries  []TruckEntryResponse `json:"entries"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// Create records a truck entry
func (s *TruckEntryService) Create(req *CreateTruckEntryRequest) (*TruckEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EntryType.IsValid() {
		return nil, apperrors.ErrInvalidEntryType
	}
	if !req.Units.IsPositive() {
		return nil, apperrors.NewValidationError("units", "must be positive")
	}
	if req.RatePerUnit.IsNegative() {
		return nil, apperrors.ErrNegativeRate
	}

	switch req.EntryType {
	case models.EntryTypeSales:
		if req.MaterialType == nil || *req.MaterialType == "" {
			return nil, apperrors.ErrMaterialTypeRequired
		}
		rate, err := s.rates.GetByMaterialType(req.OrganizationID, *req.MaterialType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMaterialRateNotFound
			}
			return nil, fmt.Errorf("failed to get material rate: %w", err)
		}
		mapped, err := s.mappings.Exists(req.OrganizationID, models.EntryTypeSales, rate.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check material mapping: %w", err)
		}
		if !mapped {
			return nil, apperrors.ErrMaterialNotMappedForEntry
		}
	case models.EntryTypeRawStone:
		if req.MaterialType != nil && *req.MaterialType != "" {
			return nil, apperrors.ErrMaterialTypeNotAllowed
		}
	}

	entryDate := req.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	entryTime := req.EntryTime
	if entryTime == "" {
		entryTime = time.Now().Format("15:04")
	}

	entry := &models.TruckEntry{
		OrganizationID: req.OrganizationID,
		UserID:         req.UserID,
		TruckNumber:    req.TruckNumber,
		TruckName:      req.TruckName,
		EntryType:      req.EntryType,
		MaterialType:   req.MaterialType,
		Units:          req.Units,
		RatePerUnit:    req.RatePerUnit,
		TotalAmount:    req.Units.Mul(req.RatePerUnit),
		EntryDate:      entryDate,
		EntryTime:      entryTime,
		Status:         models.EntryStatusActive,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create truck entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// GetByID retrieves a truck entry by ID
func (s *TruckEntryService) GetByID(id uuid.UUID) (*TruckEntryResponse, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTruckEntryNotFound
		}
		return nil, fmt.Errorf("failed to get truck entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// GetByOrganization retrieves truck entries for an organization
func (s *TruckEntryService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*TruckEntryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get truck entries: %w", err)
	}

	responses := make([]TruckEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *s.toResponse(&entry)
	}

	return &TruckEntryListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStatus transitions a truck entry to a new status
func (s *TruckEntryService) UpdateStatus(id uuid.UUID, status models.EntryStatus) (*TruckEntryResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidEntryStatus
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTruckEntryNotFound
		}
		return nil, fmt.Errorf("failed to get truck entry: %w", err)
	}

	entry.Status = status
	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update truck entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// Delete deletes a truck entry
func (s *TruckEntryService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTruckEntryNotFound
		}
		return fmt.Errorf("failed to get truck entry: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete truck entry: %w", err)
	}
	return nil
}

// toResponse converts a truck entry model to response
func (s *TruckEntryService) toResponse(entry *models.TruckEntry) *TruckEntryResponse {
	return &TruckEntryResponse{
		ID:             entry.ID,
		OrganizationID: entry.OrganizationID,
		UserID:         entry.UserID,
		TruckNumber:    entry.TruckNumber,
		TruckName:      entry.TruckName,
		EntryType:      entry.EntryType,
		MaterialType:   entry.MaterialType,
		Units:          entry.Units,
		RatePerUnit:    entry.RatePerUnit,
		TotalAmount:    entry.TotalAmount,
		EntryDate:      entry.EntryDate.Format("2006-01-02"),
		EntryTime:      entry.EntryTime,
		Status:         entry.Status,
		Notes:          entry.Notes,
	}
}
