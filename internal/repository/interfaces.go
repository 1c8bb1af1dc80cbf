package repository

import (
	"time"

	"kora-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CoachRepositoryInterface defines the persistence operations for coaches
type CoachRepositoryInterface interface {
	Create(coach *models.Coach) error
	GetByID(id uuid.UUID) (*models.Coach, error)
	GetByEmail(email string) (*models.Coach, error)
	Update(coach *models.Coach) error
}

// TeamRepositoryInterface defines the persistence operations for teams
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetForCoach(id, coachID uuid.UUID) (*models.Team, error)
	ListByCoach(coachID uuid.UUID, limit, offset int) ([]models.Team, int64, error)
	CountByCoach(coachID uuid.UUID) (int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// PlayerRepositoryInterface defines the persistence operations for players
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(teamID, playerID uuid.UUID) (*models.Player, error)
	FindByJersey(teamID uuid.UUID, number int, excludeID *uuid.UUID) (*models.Player, error)
	ListByTeam(teamID uuid.UUID, includeArchived bool) ([]models.Player, error)
	CountActive(teamID uuid.UUID) (int64, error)
	Update(player *models.Player) error
	GetOwned(teamID uuid.UUID, ids []uuid.UUID) ([]models.Player, error)
	BulkUpdate(teamID uuid.UUID, ids []uuid.UUID, updates map[string]interface{}) (int64, error)
	RestoreSnapshots(teamID uuid.UUID, snapshots []models.PlayerSnapshot) (int64, error)
}

// TrainingListFilter narrows and orders a training listing
type TrainingListFilter struct {
	When     string // "upcoming", "past" or "" for all
	Limit    int
	Offset   int
	SortKey  string
	SortDesc bool
	Now      time.Time
}

// TrainingRepositoryInterface defines the persistence operations for trainings
type TrainingRepositoryInterface interface {
	Create(training *models.Training) error
	GetByID(teamID, id uuid.UUID) (*models.Training, error)
	List(teamID uuid.UUID, filter TrainingListFilter) ([]models.Training, int64, error)
	ListBetween(teamID uuid.UUID, from, until time.Time) ([]models.Training, error)
	Update(training *models.Training) error
	Delete(teamID, id uuid.UUID) error
}

// AttendanceRepositoryInterface defines the persistence operations for attendance rows.
// Upsert is deliberately the only write path; see the Attendance model doc.
type AttendanceRepositoryInterface interface {
	Upsert(attendance *models.Attendance) error
	GetByPlayerAndTraining(playerID, trainingID uuid.UUID) (*models.Attendance, error)
	ListByTraining(trainingID uuid.UUID) ([]models.Attendance, error)
	ListForPlayerInTrainings(playerID uuid.UUID, trainingIDs []uuid.UUID) ([]models.Attendance, error)
}

// ImportHistoryRepositoryInterface defines the persistence operations for bulk-action audit records
type ImportHistoryRepositoryInterface interface {
	Create(record *models.ImportHistory) error
	GetByID(teamID, id uuid.UUID) (*models.ImportHistory, error)
	ListByTeam(teamID uuid.UUID, limit, offset int) ([]models.ImportHistory, int64, error)
	MarkUndone(id uuid.UUID, at time.Time) error
}
