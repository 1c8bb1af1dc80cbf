package repository

import (
	"kora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoachRepository handles database operations for coaches
type CoachRepository struct {
	db *gorm.DB
}

// NewCoachRepository creates a new coach repository
func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

// Create creates a new coach
func (r *CoachRepository) Create(coach *models.Coach) error {
	return r.db.Create(coach).Error
}

// GetByID retrieves a coach by ID
func (r *CoachRepository) GetByID(id uuid.UUID) (*models.Coach, error) {
	var coach models.Coach
	err := r.db.First(&coach, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// GetByEmail retrieves a coach by email
func (r *CoachRepository) GetByEmail(email string) (*models.Coach, error) {
	var coach models.Coach
	err := r.db.First(&coach, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// Update updates a coach
func (r *CoachRepository) Update(coach *models.Coach) error {
	return r.db.Save(coach).Error
}
