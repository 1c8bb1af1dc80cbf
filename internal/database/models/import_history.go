package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ImportHistory is the append-only audit record written once per bulk action.
// The prior-state snapshot makes the 24-hour undo window actionable; apart
// from the undone_at marker the row is never mutated after creation.
type ImportHistory struct {
	BaseModel
	TeamID         uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Action         BulkAction `json:"action" gorm:"type:varchar(30);not null"`
	TotalRequested int        `json:"total_requested" gorm:"not null"`
	UpdatedCount   int        `json:"updated_count" gorm:"not null"`
	FailedCount    int        `json:"failed_count" gorm:"not null;default:0"`
	// Per-row error detail, e.g. ids that did not match
	ErrorDetail json.RawMessage `json:"error_detail,omitempty" gorm:"type:jsonb"`
	// Snapshot of each affected player's lifecycle fields before the action
	PriorState    json.RawMessage `json:"prior_state,omitempty" gorm:"type:jsonb"`
	UndoExpiresAt time.Time       `json:"undo_expires_at" gorm:"not null"`
	UndoneAt      *time.Time      `json:"undone_at,omitempty"`
	PerformedBy   uuid.UUID       `json:"performed_by" gorm:"type:uuid;not null"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ImportHistory
func (ImportHistory) TableName() string {
	return "import_history"
}

// CanUndo reports whether the bulk action can still be reverted at the given time
func (h *ImportHistory) CanUndo(at time.Time) bool {
	return h.UndoneAt == nil && at.Before(h.UndoExpiresAt)
}

// PlayerSnapshot is one entry of the PriorState payload
type PlayerSnapshot struct {
	PlayerID   uuid.UUID    `json:"player_id"`
	Status     PlayerStatus `json:"status"`
	Position   string       `json:"position"`
	ArchivedAt *time.Time   `json:"archived_at,omitempty"`
	DeletedAt  *time.Time   `json:"deleted_at,omitempty"`
}
