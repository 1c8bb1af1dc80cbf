package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. Entities
// owned by another coach's team surface as not found on purpose.
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

// AlreadyExistsError represents a uniqueness violation, e.g. a taken jersey number
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
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

// LimitExceededError represents a subscription-tier ceiling being reached
type LimitExceededError struct {
	Resource string
	Limit    int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s limit of %d reached for current subscription tier", e.Resource, e.Limit)
}

// Is enables errors.Is() comparison for LimitExceededError
func (e *LimitExceededError) Is(target error) bool {
	t, ok := target.(*LimitExceededError)
	if !ok {
		return false
	}
	return e.Resource == t.Resource
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
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
	ErrCoachNotFound        = &NotFoundError{Entity: "coach"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound       = &NotFoundError{Entity: "player"}
	ErrTrainingNotFound     = &NotFoundError{Entity: "training"}
	ErrAttendanceNotFound   = &NotFoundError{Entity: "attendance record"}
	ErrImportRecordNotFound = &NotFoundError{Entity: "bulk action record"}
)

// Already Exists Errors
var (
	ErrCoachExists       = &AlreadyExistsError{Entity: "coach", Context: "with this email"}
	ErrJerseyNumberTaken = &AlreadyExistsError{Entity: "jersey number", Context: "for an active player of this team"}
)

// Business Logic Errors
var (
	ErrPlayerTooYoung          = errors.New("player must be at least 5 years old")
	ErrForeignPlayerInBulk     = errors.New("one or more players do not belong to this team")
	ErrUndoWindowExpired       = errors.New("undo window has expired")
	ErrAlreadyUndone           = errors.New("bulk action has already been undone")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidDateFormat       = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTimeFormat       = errors.New("invalid time format, expected HH:MM")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidBulkAction       = errors.New("invalid bulk action")
	ErrCategoryRequired        = errors.New("category is required for assign_category action")
	ErrStatusRequired          = errors.New("status is required for update_status action")
	ErrInvalidExportFormat     = errors.New("invalid export format, expected csv or excel")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrCoachIDNotInContext = &AuthenticationError{Message: "coach id not found in context"}
)

// Configuration Errors
var (
	ErrAssistantNotConfigured = &ConfigurationError{Message: "assistant API is not configured"}
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

// IsLimitExceeded checks if an error is a LimitExceededError
func IsLimitExceeded(err error) bool {
	var limitErr *LimitExceededError
	return errors.As(err, &limitErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
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

// NewLimitExceededError creates a new LimitExceededError
func NewLimitExceededError(resource string, limit int) error {
	return &LimitExceededError{Resource: resource, Limit: limit}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
