package service

import (
	"errors"
	"fmt"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		users:     users,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name    string    `json:"name" validate:"required,min=1,max=100"`
	OwnerID uuid.UUID `json:"owner_id" validate:"required"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new organization owned by an existing user, then patches
// the owner's organization reference back to the new organization. The owner
// is created first without an organization, so both sides of the mutual
// reference are never required in a single insert.
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	owner, err := s.users.GetByID(req.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name:    req.Name,
		OwnerID: owner.ID,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	if err := s.users.SetOrganization(owner.ID, org.ID); err != nil {
		return nil, fmt.Errorf("failed to link owner to organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByName retrieves an organization by name
func (s *OrganizationService) GetByName(name string) (*OrganizationResponse, error) {
	org, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(page, pageSize int) (*OrganizationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	orgs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Delete deletes an organization. The database rejects the delete while
// catalog or ledger rows still reference the organization.
func (s *OrganizationService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	return nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		OwnerID:   org.OwnerID,
		CreatedAt: org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
