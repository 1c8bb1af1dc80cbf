package repository

import (
	"kora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player scoped to its team
func (r *PlayerRepository) GetByID(teamID, playerID uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ? AND team_id = ?", playerID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// FindByJersey retrieves the non-archived holder of a jersey number in a team,
// optionally excluding one player (the row being updated).
func (r *PlayerRepository) FindByJersey(teamID uuid.UUID, number int, excludeID *uuid.UUID) (*models.Player, error) {
	var player models.Player
	query := r.db.Where("team_id = ? AND jersey_number = ? AND status <> ?",
		teamID, number, models.PlayerStatusArchived)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ListByTeam retrieves a team's players ordered by jersey number then last
// name, the canonical roster ordering. Archived players are excluded unless
// requested.
func (r *PlayerRepository) ListByTeam(teamID uuid.UUID, includeArchived bool) ([]models.Player, error) {
	var players []models.Player
	query := r.db.Where("team_id = ?", teamID)
	if !includeArchived {
		query = query.Where("status <> ?", models.PlayerStatusArchived)
	}
	err := query.Order("jersey_number ASC, last_name ASC").Find(&players).Error
	return players, err
}

// CountActive returns the number of non-archived players in a team
func (r *PlayerRepository) CountActive(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Player{}).
		Where("team_id = ? AND status <> ?", teamID, models.PlayerStatusArchived).
		Count(&count).Error
	return count, err
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// GetOwned retrieves the subset of the given players that belong to the team
func (r *PlayerRepository) GetOwned(teamID uuid.UUID, ids []uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ? AND id IN ?", teamID, ids).Find(&players).Error
	return players, err
}

// BulkUpdate applies one set of column updates to all matching players of a
// team in a single statement and reports how many rows were touched. The
// matched count may trail len(ids) when rows changed concurrently.
func (r *PlayerRepository) BulkUpdate(teamID uuid.UUID, ids []uuid.UUID, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Player{}).
		Where("team_id = ? AND id IN ?", teamID, ids).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// RestoreSnapshots writes back the lifecycle fields captured before a bulk
// action, one player at a time, and reports how many rows were restored.
func (r *PlayerRepository) RestoreSnapshots(teamID uuid.UUID, snapshots []models.PlayerSnapshot) (int64, error) {
	var restored int64
	for _, snap := range snapshots {
		result := r.db.Model(&models.Player{}).
			Where("team_id = ? AND id = ?", teamID, snap.PlayerID).
			Updates(map[string]interface{}{
				"status":      snap.Status,
				"position":    snap.Position,
				"archived_at": snap.ArchivedAt,
				"deleted_at":  snap.DeletedAt,
			})
		if result.Error != nil {
			return restored, result.Error
		}
		restored += result.RowsAffected
	}
	return restored, nil
}
