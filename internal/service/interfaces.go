package service

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(coachID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(coachID, teamID uuid.UUID) (*TeamResponse, error)
	List(coachID uuid.UUID, page, pageSize int) (*TeamListResponse, error)
	Update(coachID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(coachID, teamID uuid.UUID) error
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(coachID, teamID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error)
	Update(coachID, teamID, playerID uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error)
	Archive(coachID, teamID, playerID uuid.UUID) (*PlayerResponse, error)
	List(coachID, teamID uuid.UUID, includeArchived bool) (*PlayerListResponse, error)
}

// BulkServiceInterface defines the interface for bulk operations service
type BulkServiceInterface interface {
	Apply(coachID, teamID uuid.UUID, req *BulkActionRequest) (*BulkActionResponse, error)
	Undo(coachID, teamID, historyID uuid.UUID) (*BulkUndoResponse, error)
	History(coachID, teamID uuid.UUID, page, pageSize int) (*BulkHistoryResponse, error)
}

// TrainingServiceInterface defines the interface for training service
type TrainingServiceInterface interface {
	Create(coachID, teamID uuid.UUID, req *CreateTrainingRequest) (*TrainingResponse, error)
	Get(coachID, teamID, trainingID uuid.UUID) (*TrainingResponse, error)
	List(coachID, teamID uuid.UUID, req *ListTrainingsRequest) (*TrainingListResponse, error)
	UpdateStatus(coachID, teamID, trainingID uuid.UUID, req *UpdateTrainingStatusRequest) (*TrainingResponse, error)
	Delete(coachID, teamID, trainingID uuid.UUID) error
}

// AttendanceServiceInterface defines the interface for attendance service
type AttendanceServiceInterface interface {
	GetBoard(coachID, teamID, trainingID uuid.UUID) (*BoardResponse, error)
	SetStatus(coachID, teamID, trainingID, playerID uuid.UUID, req *SetStatusRequest) (*BoardRecord, error)
	BulkJustify(coachID, teamID, trainingID uuid.UUID, req *BulkJustifyRequest) (*BulkJustifyResponse, error)
	PlayerStats(coachID, teamID, playerID uuid.UUID, year int, month *time.Month) (*StatsResponse, error)
}

// ExportServiceInterface defines the interface for roster export service
type ExportServiceInterface interface {
	Roster(coachID, teamID uuid.UUID, opts ExportOptions) (*ExportResult, error)
}

// AssistantServiceInterface defines the interface for the assistant service
type AssistantServiceInterface interface {
	Chat(coachID, teamID uuid.UUID, req *ChatRequest) (*ChatResponse, error)
}
