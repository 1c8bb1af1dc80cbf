package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a roster member of a team. Players are never physically
// removed: "deleting" flips the status to archived so historical attendance
// rows keep a valid reference.
type Player struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_players_team_jersey_active" validate:"required"`
	FirstName string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName  string    `json:"last_name" gorm:"not null;size:100;index" validate:"required,max=100"`
	BirthDate time.Time `json:"birth_date" gorm:"not null" validate:"required"`
	// Partial unique index excludes archived players so a freed number can be reassigned
	JerseyNumber int          `json:"jersey_number" gorm:"not null;uniqueIndex:idx_players_team_jersey_active,where:status <> 'archived'" validate:"required,min=1,max=99"`
	Position     string       `json:"position" gorm:"size:50" validate:"max=50"`
	Status       PlayerStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	// Optional contact and medical fields
	Email        string `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone,omitempty" gorm:"size:30" validate:"max=30"`
	GuardianName string `json:"guardian_name,omitempty" gorm:"size:200" validate:"max=200"`
	MedicalNote  string `json:"medical_note,omitempty" gorm:"size:500" validate:"max=500"`

	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// Set by the soft_delete bulk action in addition to archiving
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// Relationships
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Attendances []Attendance `json:"attendances,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// IsArchived reports whether the player has been soft-deleted from the roster
func (p *Player) IsArchived() bool {
	return p.Status == PlayerStatusArchived
}

// AgeAt computes the player's age in full years at the given date. A birthday
// not yet reached this year decrements the age.
func (p *Player) AgeAt(at time.Time) int {
	age := at.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(age, 0, 0)
	if anniversary.After(at) {
		age--
	}
	return age
}
