package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is the join entity between a player and a training. At most one
// row exists per (player, training) pair; the upsert in the repository is the
// only write path. A player without a row is implicitly present.
type Attendance struct {
	BaseModel
	PlayerID   uuid.UUID `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_player_training" validate:"required"`
	TrainingID uuid.UUID `json:"training_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_player_training;index" validate:"required"`

	Status        AttendanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'present'"`
	ArrivalTime   *time.Time       `json:"arrival_time,omitempty"`
	DepartureTime *time.Time       `json:"departure_time,omitempty"`
	AbsenceReason *AbsenceReason   `json:"absence_reason,omitempty" gorm:"type:varchar(20)"`
	IsJustified   bool             `json:"is_justified" gorm:"not null;default:false"`
	Justification string           `json:"justification,omitempty" gorm:"size:500"`
	Note          string           `json:"note,omitempty" gorm:"size:500"`
	CheckedInVia  CheckInMethod    `json:"checked_in_via" gorm:"type:varchar(20);not null;default:'manual'"`

	// Relationships
	Player   *Player   `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	Training *Training `json:"training,omitempty" gorm:"foreignKey:TrainingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Attendance
func (Attendance) TableName() string {
	return "attendances"
}
