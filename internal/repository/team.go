package repository

import (
	"kora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetForCoach retrieves a team only if it is owned by the given coach.
// Foreign teams come back as gorm.ErrRecordNotFound so callers cannot
// distinguish them from absent ones.
func (r *TeamRepository) GetForCoach(id, coachID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ? AND coach_id = ?", id, coachID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByCoach retrieves all teams of a coach with pagination
func (r *TeamRepository) ListByCoach(coachID uuid.UUID, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Where("coach_id = ?", coachID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// CountByCoach returns the number of non-deleted teams owned by a coach
func (r *TeamRepository) CountByCoach(coachID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("coach_id = ?", coachID).Count(&count).Error
	return count, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete soft-deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
