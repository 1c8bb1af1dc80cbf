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

// TrainingService handles business logic for the training registry
type TrainingService struct {
	repo      repository.TrainingRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTrainingService creates a new training service
func NewTrainingService(repo repository.TrainingRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *TrainingService {
	return &TrainingService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateTrainingRequest represents the request to create a training. The
// timestamp is composed from a calendar date and a time-of-day string.
type CreateTrainingRequest struct {
	Date            string              `json:"date" validate:"required"` // YYYY-MM-DD
	Time            string              `json:"time" validate:"required"` // HH:MM
	DurationMinutes int                 `json:"duration_minutes" validate:"omitempty,min=1,max=600"`
	Type            models.TrainingType `json:"type" validate:"omitempty,oneof=regular match_prep recovery tactical technical physical"`
	Location        string              `json:"location" validate:"max=200"`
	FocusAreas      []string            `json:"focus_areas,omitempty" validate:"dive,max=50"`
	PlannedPlayers  int                 `json:"planned_players" validate:"omitempty,min=0,max=99"`
	Notes           string              `json:"notes" validate:"max=1000"`
}

// UpdateTrainingStatusRequest changes the lifecycle state of a training
type UpdateTrainingStatusRequest struct {
	Status models.TrainingStatus `json:"status" validate:"required,oneof=scheduled cancelled completed"`
}

// ListTrainingsRequest narrows and pages a training listing
type ListTrainingsRequest struct {
	When     string `json:"when" validate:"omitempty,oneof=upcoming past"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
	SortKey  string `json:"sort_key"`
	SortDesc bool   `json:"sort_desc"`
}

// TrainingResponse represents the response for training operations
type TrainingResponse struct {
	ID              uuid.UUID             `json:"id"`
	TeamID          uuid.UUID             `json:"team_id"`
	StartsAt        time.Time             `json:"starts_at"`
	DurationMinutes int                   `json:"duration_minutes"`
	Type            models.TrainingType   `json:"type"`
	Location        string                `json:"location"`
	FocusAreas      []string              `json:"focus_areas,omitempty"`
	PlannedPlayers  int                   `json:"planned_players"`
	Notes           string                `json:"notes,omitempty"`
	Status          models.TrainingStatus `json:"status"`
	CreatedBy       uuid.UUID             `json:"created_by"`
}

// TrainingListResponse is a page of trainings with the total for has-more computation
type TrainingListResponse struct {
	Trainings []TrainingResponse `json:"trainings"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
	HasMore   bool               `json:"has_more"`
}

// Create schedules a new training; initial status is always scheduled
func (s *TrainingService) Create(coachID, teamID uuid.UUID, req *CreateTrainingRequest) (*TrainingResponse, error) {
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

	startsAt, err := composeStartsAt(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 90
	}
	trainingType := req.Type
	if trainingType == "" {
		trainingType = models.TrainingTypeRegular
	}

	var focusAreas json.RawMessage
	if len(req.FocusAreas) > 0 {
		focusAreas, err = json.Marshal(req.FocusAreas)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal focus areas: %w", err)
		}
	}

	training := &models.Training{
		TeamID:          team.ID,
		StartsAt:        startsAt,
		DurationMinutes: duration,
		Type:            trainingType,
		Location:        req.Location,
		FocusAreas:      focusAreas,
		PlannedPlayers:  req.PlannedPlayers,
		Notes:           req.Notes,
		Status:          models.TrainingStatusScheduled,
		CreatedBy:       coachID,
	}

	if err := s.repo.Create(training); err != nil {
		return nil, fmt.Errorf("failed to create training: %w", err)
	}

	return s.toResponse(training), nil
}

// Get retrieves a training owned by the coach's team
func (s *TrainingService) Get(coachID, teamID, trainingID uuid.UUID) (*TrainingResponse, error) {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	training, err := s.repo.GetByID(team.ID, trainingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to get training: %w", err)
	}

	return s.toResponse(training), nil
}

// List retrieves trainings bucketed into upcoming or past relative to the
// start of today, with pagination and a whitelisted sort.
func (s *TrainingService) List(coachID, teamID uuid.UUID, req *ListTrainingsRequest) (*TrainingListResponse, error) {
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

	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	trainings, total, err := s.repo.List(team.ID, repository.TrainingListFilter{
		When:     req.When,
		Limit:    limit,
		Offset:   offset,
		SortKey:  req.SortKey,
		SortDesc: req.SortDesc,
		Now:      time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}

	responses := make([]TrainingResponse, len(trainings))
	for i, training := range trainings {
		responses[i] = *s.toResponse(&training)
	}

	return &TrainingListResponse{
		Trainings: responses,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
		HasMore:   int64(offset+len(responses)) < total,
	}, nil
}

// UpdateStatus moves a training between scheduled, cancelled and completed
func (s *TrainingService) UpdateStatus(coachID, teamID, trainingID uuid.UUID, req *UpdateTrainingStatusRequest) (*TrainingResponse, error) {
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

	training, err := s.repo.GetByID(team.ID, trainingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to get training: %w", err)
	}

	training.Status = req.Status
	if err := s.repo.Update(training); err != nil {
		return nil, fmt.Errorf("failed to update training: %w", err)
	}

	return s.toResponse(training), nil
}

// Delete removes a training and its attendance rows
func (s *TrainingService) Delete(coachID, teamID, trainingID uuid.UUID) error {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to verify team: %w", err)
	}

	if _, err := s.repo.GetByID(team.ID, trainingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTrainingNotFound
		}
		return fmt.Errorf("failed to get training: %w", err)
	}

	if err := s.repo.Delete(team.ID, trainingID); err != nil {
		return fmt.Errorf("failed to delete training: %w", err)
	}

	return nil
}

// composeStartsAt builds the training timestamp from date and time-of-day strings
func composeStartsAt(date, timeOfDay string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", apperrors.ErrInvalidDateFormat.Error())
	}
	tod, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("time", apperrors.ErrInvalidTimeFormat.Error())
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.Local), nil
}

func (s *TrainingService) toResponse(training *models.Training) *TrainingResponse {
	var focusAreas []string
	if len(training.FocusAreas) > 0 {
		_ = json.Unmarshal(training.FocusAreas, &focusAreas)
	}
	return &TrainingResponse{
		ID:              training.ID,
		TeamID:          training.TeamID,
		StartsAt:        training.StartsAt,
		DurationMinutes: training.DurationMinutes,
		Type:            training.Type,
		Location:        training.Location,
		FocusAreas:      focusAreas,
		PlannedPlayers:  training.PlannedPlayers,
		Notes:           training.Notes,
		Status:          training.Status,
		CreatedBy:       training.CreatedBy,
	}
}
