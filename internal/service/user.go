package service

import (
	"errors"
	"fmt"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username       string          `json:"username" validate:"required,min=3,max=100"`
	Email          string          `json:"email" validate:"omitempty,email,max=255"`
	Password       string          `json:"password" validate:"required,min=6,max=72"`
	Role           models.UserRole `json:"role" validate:"required"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID             uuid.UUID       `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      string          `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new user with a bcrypt-hashed password. OrganizationID is
// optional: owner users exist before their organization does.
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of: owner, user")
	}

	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
		IsActive:       true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByOrganization retrieves users belonging to an organization
func (s *UserService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.toResponse(&user)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// SetActive activates or deactivates a user account
func (s *UserService) SetActive(id uuid.UUID, active bool) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.IsActive = active
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
