package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team represents a sports team owned by a coach
type Team struct {
	BaseModel
	CoachID    uuid.UUID      `json:"coach_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string         `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Sport      string         `json:"sport" gorm:"not null;size:50" validate:"required,max=50"`
	Season     string         `json:"season" gorm:"size:20" validate:"max=20"` // e.g. "2026/2027"
	HomeColor  string         `json:"home_color" gorm:"size:20"`
	AwayColor  string         `json:"away_color" gorm:"size:20"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Coach     *Coach     `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
	Players   []Player   `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Trainings []Training `json:"trainings,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
