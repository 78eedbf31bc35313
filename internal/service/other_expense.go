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

// OtherExpenseService handles business logic for miscellaneous expenses
type OtherExpenseService struct {
	repo      repository.OtherExpenseRepositoryInterface
	validator *validator.Validate
}

// NewOtherExpenseService creates a new expense service
func NewOtherExpenseService(repo repository.OtherExpenseRepositoryInterface, validator *validator.Validate) *OtherExpenseService {
	return &OtherExpenseService{
		repo:      repo,
		validator: validator,
	}
}

// CreateExpenseRequest represents the request to record an expense
type CreateExpenseRequest struct {
	OrganizationID uuid.UUID       `json:"organization_id" validate:"required"`
	UserID         uuid.UUID       `json:"user_id" validate:"required"`
	ExpensesName   string          `json:"expenses_name" validate:"required,max=100"`
	Amount         decimal.Decimal `json:"amount"`
	Others         string          `json:"others"`
	Date           time.Time       `json:"date"`
}

// ExpenseResponse represents the response for expense operations
type ExpenseResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	UserID         uuid.UUID       `json:"user_id"`
	ExpensesName   string          `json:"expenses_name"`
	Amount         decimal.Decimal `json:"amount"`
	Others         string          `json:"others"`
	Date           string          `json:"date"`
	IsActive       bool            `json:"is_active"`
}

// ExpenseListResponse represents a paginated list of expenses
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create records an expense
func (s *OtherExpenseService) Create(req *CreateExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "must be positive")
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.OtherExpense{
		OrganizationID: req.OrganizationID,
		UserID:         req.UserID,
		ExpensesName:   req.ExpensesName,
		Amount:         req.Amount,
		Others:         req.Others,
		Date:           date,
		IsActive:       true,
	}
	if err := s.repo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return s.toResponse(expense), nil
}

// GetByID retrieves an expense by ID
func (s *OtherExpenseService) GetByID(id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOtherExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return s.toResponse(expense), nil
}

// GetByOrganization retrieves expenses for an organization
func (s *OtherExpenseService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*ExpenseListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	expenses, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = *s.toResponse(&expense)
	}

	return &ExpenseListResponse{
		Expenses: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete deletes an expense record
func (s *OtherExpenseService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOtherExpenseNotFound
		}
		return fmt.Errorf("failed to get expense: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// toResponse converts an expense model to response
func (s *OtherExpenseService) toResponse(expense *models.OtherExpense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:             expense.ID,
		OrganizationID: expense.OrganizationID,
		UserID:         expense.UserID,
		ExpensesName:   expense.ExpensesName,
		Amount:         expense.Amount,
		Others:         expense.Others,
		Date:           expense.Date.Format("2006-01-02"),
		IsActive:       expense.IsActive,
	}
}
