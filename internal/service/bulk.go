package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kora-backend/internal/database/models"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// undoWindow is how long a bulk action remains revertible
const undoWindow = 24 * time.Hour

// BulkService applies one action to a set of players and maintains the
// append-only audit trail with its undo window.
type BulkService struct {
	playerRepo  repository.PlayerRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	historyRepo repository.ImportHistoryRepositoryInterface
	validator   *validator.Validate
}

// NewBulkService creates a new bulk operations service
func NewBulkService(playerRepo repository.PlayerRepositoryInterface, teamRepo repository.TeamRepositoryInterface, historyRepo repository.ImportHistoryRepositoryInterface, validator *validator.Validate) *BulkService {
	return &BulkService{
		playerRepo:  playerRepo,
		teamRepo:    teamRepo,
		historyRepo: historyRepo,
		validator:   validator,
	}
}

// BulkActionRequest represents one bulk action over a set of player ids
type BulkActionRequest struct {
	PlayerIDs []uuid.UUID       `json:"player_ids" validate:"required,min=1,dive,required"`
	Action    models.BulkAction `json:"action" validate:"required"`
	Category  string            `json:"category,omitempty" validate:"max=50"`
	Status    string            `json:"status,omitempty"`
}

// BulkActionResponse reports the outcome; updated_count may trail
// total_requested when rows changed concurrently.
type BulkActionResponse struct {
	HistoryID      uuid.UUID `json:"history_id"`
	Action         string    `json:"action"`
	TotalRequested int       `json:"total_requested"`
	UpdatedCount   int       `json:"updated_count"`
	UndoExpiresAt  time.Time `json:"undo_expires_at"`
}

// BulkUndoResponse reports how many players were restored
type BulkUndoResponse struct {
	HistoryID     uuid.UUID `json:"history_id"`
	RestoredCount int       `json:"restored_count"`
	UndoneAt      time.Time `json:"undone_at"`
}

// BulkHistoryResponse is a paginated audit listing
type BulkHistoryResponse struct {
	Records []models.ImportHistory `json:"records"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
}

// Apply validates that every id belongs to the team (failing wholesale
// otherwise), applies the action to all matching rows as one statement, and
// appends an ImportHistory record with a prior-state snapshot.
func (s *BulkService) Apply(coachID, teamID uuid.UUID, req *BulkActionRequest) (*BulkActionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	now := time.Now()
	updates, err := buildBulkUpdates(req, now)
	if err != nil {
		return nil, err
	}

	ids := dedupe(req.PlayerIDs)
	owned, err := s.playerRepo.GetOwned(team.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	if len(owned) != len(ids) {
		// No partial application across teams: a single foreign or unknown id
		// fails the whole request with zero rows touched.
		return nil, apperrors.NewValidationError("player_ids", apperrors.ErrForeignPlayerInBulk.Error())
	}

	snapshots := make([]models.PlayerSnapshot, len(owned))
	for i, p := range owned {
		snapshots[i] = models.PlayerSnapshot{
			PlayerID:   p.ID,
			Status:     p.Status,
			Position:   p.Position,
			ArchivedAt: p.ArchivedAt,
			DeletedAt:  p.DeletedAt,
		}
	}
	priorState, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot players: %w", err)
	}

	updated, err := s.playerRepo.BulkUpdate(team.ID, ids, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to apply bulk action: %w", err)
	}

	record := &models.ImportHistory{
		TeamID:         team.ID,
		Action:         req.Action,
		TotalRequested: len(ids),
		UpdatedCount:   int(updated),
		FailedCount:    len(ids) - int(updated),
		PriorState:     priorState,
		UndoExpiresAt:  now.Add(undoWindow),
		PerformedBy:    coachID,
	}
	if record.FailedCount > 0 {
		detail, _ := json.Marshal(map[string]interface{}{
			"reason": "some rows were modified concurrently and no longer matched",
		})
		record.ErrorDetail = detail
	}
	if err := s.historyRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record bulk action: %w", err)
	}

	return &BulkActionResponse{
		HistoryID:      record.ID,
		Action:         string(req.Action),
		TotalRequested: len(ids),
		UpdatedCount:   int(updated),
		UndoExpiresAt:  record.UndoExpiresAt,
	}, nil
}

// Undo restores the prior-state snapshot of a bulk action while its 24-hour
// window is open, then stamps the record as undone.
func (s *BulkService) Undo(coachID, teamID, historyID uuid.UUID) (*BulkUndoResponse, error) {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	record, err := s.historyRepo.GetByID(team.ID, historyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrImportRecordNotFound
		}
		return nil, fmt.Errorf("failed to get bulk action record: %w", err)
	}

	now := time.Now()
	if record.UndoneAt != nil {
		return nil, apperrors.NewValidationError("", apperrors.ErrAlreadyUndone.Error())
	}
	if !record.CanUndo(now) {
		return nil, apperrors.NewValidationError("", apperrors.ErrUndoWindowExpired.Error())
	}

	var snapshots []models.PlayerSnapshot
	if err := json.Unmarshal(record.PriorState, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode prior state: %w", err)
	}

	restored, err := s.playerRepo.RestoreSnapshots(team.ID, snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to restore players: %w", err)
	}

	if err := s.historyRepo.MarkUndone(record.ID, now); err != nil {
		return nil, fmt.Errorf("failed to mark bulk action undone: %w", err)
	}

	return &BulkUndoResponse{
		HistoryID:     record.ID,
		RestoredCount: int(restored),
		UndoneAt:      now,
	}, nil
}

// History lists a team's bulk-action audit records, newest first
func (s *BulkService) History(coachID, teamID uuid.UUID, page, pageSize int) (*BulkHistoryResponse, error) {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	records, total, err := s.historyRepo.ListByTeam(team.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list bulk actions: %w", err)
	}

	return &BulkHistoryResponse{Records: records, Total: total, Page: page}, nil
}

// buildBulkUpdates maps an action to the column updates it applies
func buildBulkUpdates(req *BulkActionRequest, now time.Time) (map[string]interface{}, error) {
	switch req.Action {
	case models.BulkActionArchive:
		return map[string]interface{}{
			"status":      models.PlayerStatusArchived,
			"archived_at": now,
		}, nil
	case models.BulkActionActivate:
		return map[string]interface{}{
			"status":      models.PlayerStatusActive,
			"archived_at": nil,
			"deleted_at":  nil,
		}, nil
	case models.BulkActionSoftDelete:
		// Same effect as archive plus a deletion timestamp
		return map[string]interface{}{
			"status":      models.PlayerStatusArchived,
			"archived_at": now,
			"deleted_at":  now,
		}, nil
	case models.BulkActionAssignCategory:
		if req.Category == "" {
			return nil, apperrors.NewValidationError("category", apperrors.ErrCategoryRequired.Error())
		}
		return map[string]interface{}{"position": req.Category}, nil
	case models.BulkActionUpdateStatus:
		if req.Status == "" {
			return nil, apperrors.NewValidationError("status", apperrors.ErrStatusRequired.Error())
		}
		status := models.PlayerStatus(req.Status)
		switch status {
		case models.PlayerStatusActive, models.PlayerStatusInjured, models.PlayerStatusSuspended:
			return map[string]interface{}{"status": status}, nil
		default:
			return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatus.Error())
		}
	default:
		return nil, apperrors.NewValidationError("action", apperrors.ErrInvalidBulkAction.Error())
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
