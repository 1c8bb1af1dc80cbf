package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Training represents a scheduled training session of a team
type Training struct {
	BaseModel
	TeamID          uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartsAt        time.Time       `json:"starts_at" gorm:"not null;index"`
	DurationMinutes int             `json:"duration_minutes" gorm:"not null;default:90" validate:"min=1,max=600"`
	Type            TrainingType    `json:"type" gorm:"type:varchar(20);not null;default:'regular'"`
	Location        string          `json:"location" gorm:"size:200" validate:"max=200"`
	FocusAreas      json.RawMessage `json:"focus_areas,omitempty" gorm:"type:jsonb"`
	PlannedPlayers  int             `json:"planned_players" gorm:"default:0"`
	Notes           string          `json:"notes" gorm:"size:1000" validate:"max=1000"`
	Status          TrainingStatus  `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	CreatedBy       uuid.UUID       `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships; attendance rows live and die with their training
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Attendances []Attendance `json:"attendances,omitempty" gorm:"foreignKey:TrainingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Training
func (Training) TableName() string {
	return "trainings"
}
