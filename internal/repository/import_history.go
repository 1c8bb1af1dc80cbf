package repository

import (
	"time"

	"kora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportHistoryRepository handles database operations for bulk-action audit records
type ImportHistoryRepository struct {
	db *gorm.DB
}

// NewImportHistoryRepository creates a new import history repository
func NewImportHistoryRepository(db *gorm.DB) *ImportHistoryRepository {
	return &ImportHistoryRepository{db: db}
}

// Create appends a new audit record
func (r *ImportHistoryRepository) Create(record *models.ImportHistory) error {
	return r.db.Create(record).Error
}

// GetByID retrieves an audit record scoped to its team
func (r *ImportHistoryRepository) GetByID(teamID, id uuid.UUID) (*models.ImportHistory, error) {
	var record models.ImportHistory
	err := r.db.First(&record, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByTeam retrieves a team's audit records, newest first, with pagination
func (r *ImportHistoryRepository) ListByTeam(teamID uuid.UUID, limit, offset int) ([]models.ImportHistory, int64, error) {
	var records []models.ImportHistory
	var total int64

	if err := r.db.Model(&models.ImportHistory{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// MarkUndone stamps the record as reverted; the only mutation the audit trail allows
func (r *ImportHistoryRepository) MarkUndone(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.ImportHistory{}).Where("id = ?", id).Update("undone_at", at).Error
}
