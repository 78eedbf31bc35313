package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// IntegrityError represents a violated uniqueness or foreign-key constraint,
// such as a bridge mapping pointing at a missing or deactivated material rate
// or a delete issued out of dependency order. Fatal to the current operation.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound      = &NotFoundError{Entity: "organization"}
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrMaterialRateNotFound      = &NotFoundError{Entity: "material rate"}
	ErrEntryTypeMaterialNotFound = &NotFoundError{Entity: "entry-type material mapping"}
	ErrTruckEntryNotFound        = &NotFoundError{Entity: "truck entry"}
	ErrOtherExpenseNotFound      = &NotFoundError{Entity: "expense"}
)

// Already Exists Errors
var (
	ErrOrganizationExists      = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists              = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrMaterialRateExists      = &AlreadyExistsError{Entity: "material rate", Context: "with this material type in the organization"}
	ErrEntryTypeMaterialExists = &AlreadyExistsError{Entity: "entry-type material mapping", Context: ""}
)

// Business Logic Errors
var (
	ErrInvalidEntryType           = errors.New("invalid entry type")
	ErrInvalidEntryStatus         = errors.New("invalid entry status")
	ErrMaterialTypeRequired       = errors.New("material type is required for sales entries")
	ErrMaterialTypeNotAllowed     = errors.New("material type must be empty for raw-stone entries")
	ErrMaterialRateInactive       = &IntegrityError{Message: "material rate is deactivated"}
	ErrMaterialRateWrongOrg       = &IntegrityError{Message: "material rate belongs to a different organization"}
	ErrMaterialNotMappedForEntry  = &IntegrityError{Message: "material is not mapped to this entry type for the organization"}
	ErrNegativeRate               = errors.New("rate per unit must not be negative")
	ErrInvalidCredentials         = &AuthenticationError{Message: "invalid username or password"}
	ErrUserInactive               = &AuthenticationError{Message: "user account is deactivated"}
	ErrInvalidPaginationParams    = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsIntegrity checks if an error is an IntegrityError
func IsIntegrity(err error) bool {
	var integrityErr *IntegrityError
	return errors.As(err, &integrityErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(message string) error {
	return &IntegrityError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
