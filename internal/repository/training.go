package repository

import (
	"time"

	"kora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortableTrainingColumns whitelists the columns a listing may be ordered by
var sortableTrainingColumns = map[string]string{
	"starts_at":  "starts_at",
	"created_at": "created_at",
	"type":       "type",
	"location":   "location",
}

// TrainingRepository handles database operations for trainings
type TrainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// Create creates a new training
func (r *TrainingRepository) Create(training *models.Training) error {
	return r.db.Create(training).Error
}

// GetByID retrieves a training scoped to its team
func (r *TrainingRepository) GetByID(teamID, id uuid.UUID) (*models.Training, error) {
	var training models.Training
	err := r.db.First(&training, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &training, nil
}

// List retrieves a team's trainings filtered by temporal bucket with
// pagination; the total count is returned alongside the page so callers can
// compute has-more themselves.
func (r *TrainingRepository) List(teamID uuid.UUID, filter TrainingListFilter) ([]models.Training, int64, error) {
	var trainings []models.Training
	var total int64

	query := r.db.Model(&models.Training{}).Where("team_id = ?", teamID)

	// Bucket boundary is the start of "today" in server time
	startOfToday := time.Date(filter.Now.Year(), filter.Now.Month(), filter.Now.Day(), 0, 0, 0, 0, filter.Now.Location())
	switch filter.When {
	case "upcoming":
		query = query.Where("starts_at >= ?", startOfToday)
	case "past":
		query = query.Where("starts_at < ?", startOfToday)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortableTrainingColumns[filter.SortKey]
	if !ok {
		column = "starts_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	err := query.Order(column + " " + direction).
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&trainings).Error
	if err != nil {
		return nil, 0, err
	}

	return trainings, total, nil
}

// ListBetween retrieves non-cancelled trainings of a team in [from, until)
// ordered by start time
func (r *TrainingRepository) ListBetween(teamID uuid.UUID, from, until time.Time) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Where("team_id = ? AND starts_at >= ? AND starts_at < ? AND status <> ?",
		teamID, from, until, models.TrainingStatusCancelled).
		Order("starts_at ASC").
		Find(&trainings).Error
	return trainings, err
}

// Update updates a training
func (r *TrainingRepository) Update(training *models.Training) error {
	return r.db.Save(training).Error
}

// Delete removes a training and, through the FK cascade, its attendance rows
func (r *TrainingRepository) Delete(teamID, id uuid.UUID) error {
	return r.db.Delete(&models.Training{}, "id = ? AND team_id = ?", id, teamID).Error
}
