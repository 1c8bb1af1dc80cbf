package repository

import (
	"kora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository handles database operations for attendance rows
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert writes an attendance row keyed on (player_id, training_id):
// update-if-exists, insert-if-absent. This is the only write path for
// attendance; concurrent writers are serialized by the unique constraint,
// last writer wins.
func (r *AttendanceRepository) Upsert(attendance *models.Attendance) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}, {Name: "training_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "arrival_time", "departure_time", "absence_reason",
			"is_justified", "justification", "note", "checked_in_via", "updated_at",
		}),
	}).Create(attendance).Error
}

// GetByPlayerAndTraining retrieves the persisted row for a pair, if any
func (r *AttendanceRepository) GetByPlayerAndTraining(playerID, trainingID uuid.UUID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.First(&attendance, "player_id = ? AND training_id = ?", playerID, trainingID).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// ListByTraining retrieves all persisted rows for a training
func (r *AttendanceRepository) ListByTraining(trainingID uuid.UUID) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := r.db.Where("training_id = ?", trainingID).Find(&attendances).Error
	return attendances, err
}

// ListForPlayerInTrainings retrieves a player's persisted rows among the given trainings
func (r *AttendanceRepository) ListForPlayerInTrainings(playerID uuid.UUID, trainingIDs []uuid.UUID) ([]models.Attendance, error) {
	if len(trainingIDs) == 0 {
		return nil, nil
	}
	var attendances []models.Attendance
	err := r.db.Where("player_id = ? AND training_id IN ?", playerID, trainingIDs).Find(&attendances).Error
	return attendances, err
}
