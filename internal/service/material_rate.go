package service

import (
	"errors"
	"fmt"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaterialRateService handles business logic for the per-organization
// material rate catalog
type MaterialRateService struct {
	repo      repository.MaterialRateRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewMaterialRateService creates a new material rate service
func NewMaterialRateService(
	repo repository.MaterialRateRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	validator *validator.Validate,
) *MaterialRateService {
	return &MaterialRateService{
		repo:      repo,
		orgs:      orgs,
		validator: validator,
	}
}

// CreateMaterialRateRequest represents the request to create a material rate
type CreateMaterialRateRequest struct {
	OrganizationID uuid.UUID       `json:"organization_id" validate:"required"`
	MaterialType   string          `json:"material_type" validate:"required,min=1,max=100"`
	RatePerUnit    decimal.Decimal `json:"rate_per_unit"`
	UnitType       string          `json:"unit_type" validate:"required,max=20"`
}

// UpdateMaterialRateRequest represents the request to update a material rate
type UpdateMaterialRateRequest struct {
	RatePerUnit decimal.Decimal `json:"rate_per_unit"`
	UnitType    string          `json:"unit_type" validate:"required,max=20"`
	IsActive    bool            `json:"is_active"`
}

// MaterialRateResponse represents the response for material rate operations
type MaterialRateResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	MaterialType   string          `json:"material_type"`
	RatePerUnit    decimal.Decimal `json:"rate_per_unit"`
	UnitType       string          `json:"unit_type"`
	IsActive       bool            `json:"is_active"`
}

// Create creates a new material rate in the organization's catalog
func (s *MaterialRateService) Create(req *CreateMaterialRateRequest) (*MaterialRateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.RatePerUnit.IsNegative() {
		return nil, apperrors.ErrNegativeRate
	}

	if _, err := s.orgs.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	existing, err := s.repo.GetByMaterialType(req.OrganizationID, req.MaterialType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing material rate: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMaterialRateExists
	}

	rate := &models.MaterialRate{
		OrganizationID: req.OrganizationID,
		MaterialType:   req.MaterialType,
		RatePerUnit:    req.RatePerUnit,
		UnitType:       req.UnitType,
		IsActive:       true,
	}
	if err := s.repo.Create(rate); err != nil {
		return nil, fmt.Errorf("failed to create material rate: %w", err)
	}

	return s.toResponse(rate), nil
}

// GetByID retrieves a material rate by ID
func (s *MaterialRateService) GetByID(id uuid.UUID) (*MaterialRateResponse, error) {
	rate, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaterialRateNotFound
		}
		return nil, fmt.Errorf("failed to get material rate: %w", err)
	}

	return s.toResponse(rate), nil
}

// GetByOrganization retrieves the organization's catalog ordered by material type
func (s *MaterialRateService) GetByOrganization(orgID uuid.UUID) ([]MaterialRateResponse, error) {
	rates, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get material rates: %w", err)
	}

	responses := make([]MaterialRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = *s.toResponse(&rate)
	}
	return responses, nil
}

// Update updates a material rate's price, unit, and active flag
func (s *MaterialRateService) Update(id uuid.UUID, req *UpdateMaterialRateRequest) (*MaterialRateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.RatePerUnit.IsNegative() {
		return nil, apperrors.ErrNegativeRate
	}

	rate, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaterialRateNotFound
		}
		return nil, fmt.Errorf("failed to get material rate: %w", err)
	}

	rate.RatePerUnit = req.RatePerUnit
	rate.UnitType = req.UnitType
	rate.IsActive = req.IsActive
	if err := s.repo.Update(rate); err != nil {
		return nil, fmt.Errorf("failed to update material rate: %w", err)
	}

	return s.toResponse(rate), nil
}

// Delete deletes a material rate. The database rejects the delete while
// bridge rows still reference it; remove the mappings first.
func (s *MaterialRateService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaterialRateNotFound
		}
		return fmt.Errorf("failed to get material rate: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete material rate: %w", err)
	}
	return nil
}

// toResponse converts a material rate model to response
func (s *MaterialRateService) toResponse(rate *models.MaterialRate) *MaterialRateResponse {
	return &MaterialRateResponse{
		ID:             rate.ID,
		OrganizationID: rate.OrganizationID,
		MaterialType:   rate.MaterialType,
		RatePerUnit:    rate.RatePerUnit,
		UnitType:       rate.UnitType,
		IsActive:       rate.IsActive,
	}
}
