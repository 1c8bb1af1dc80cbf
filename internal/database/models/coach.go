package models

import "time"

// AuthProvider represents how a coach account authenticates
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// Coach represents an authenticated account owning teams
type Coach struct {
	BaseModel
	Email        string           `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string           `json:"-" gorm:"size:100"` // empty for OAuth-only accounts
	FirstName    string           `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string           `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Provider     AuthProvider     `json:"provider" gorm:"type:varchar(20);not null;default:'local'"`
	Tier         SubscriptionTier `json:"tier" gorm:"type:varchar(20);not null;default:'free'"`
	LastLoginAt  *time.Time       `json:"last_login_at,omitempty"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:CoachID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Coach
func (Coach) TableName() string {
	return "coaches"
}
