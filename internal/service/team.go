package service

import (
	"errors"
	"fmt"

	"kora-backend/internal/database/models"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	coachRepo repository.CoachRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, coachRepo repository.CoachRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		coachRepo: coachRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Sport     string `json:"sport" validate:"required,max=50"`
	Season    string `json:"season" validate:"max=20"`
	HomeColor string `json:"home_color" validate:"max=20"`
	AwayColor string `json:"away_color" validate:"max=20"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Sport     *string `json:"sport,omitempty" validate:"omitempty,max=50"`
	Season    *string `json:"season,omitempty" validate:"omitempty,max=20"`
	HomeColor *string `json:"home_color,omitempty" validate:"omitempty,max=20"`
	AwayColor *string `json:"away_color,omitempty" validate:"omitempty,max=20"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID `json:"id"`
	CoachID   uuid.UUID `json:"coach_id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	Season    string    `json:"season"`
	HomeColor string    `json:"home_color"`
	AwayColor string    `json:"away_color"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team for the coach, enforcing the tier team ceiling
func (s *TeamService) Create(coachID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	coach, err := s.coachRepo.GetByID(coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to verify coach: %w", err)
	}

	if limit := coach.Tier.MaxTeams(); limit > 0 {
		count, err := s.repo.CountByCoach(coachID)
		if err != nil {
			return nil, fmt.Errorf("failed to count teams: %w", err)
		}
		if count >= int64(limit) {
			return nil, apperrors.NewLimitExceededError("team", limit)
		}
	}

	team := &models.Team{
		CoachID:   coachID,
		Name:      req.Name,
		Sport:     req.Sport,
		Season:    req.Season,
		HomeColor: req.HomeColor,
		AwayColor: req.AwayColor,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team owned by the coach
func (s *TeamService) GetByID(coachID, teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// List retrieves the coach's teams with pagination
func (s *TeamService) List(coachID uuid.UUID, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.ListByCoach(coachID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team)
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a team owned by the coach; only supplied fields change
func (s *TeamService) Update(coachID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.repo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Sport != nil {
		team.Sport = *req.Sport
	}
	if req.Season != nil {
		team.Season = *req.Season
	}
	if req.HomeColor != nil {
		team.HomeColor = *req.HomeColor
	}
	if req.AwayColor != nil {
		team.AwayColor = *req.AwayColor
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete soft-deletes a team owned by the coach
func (s *TeamService) Delete(coachID, teamID uuid.UUID) error {
	team, err := s.repo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(team.ID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:        team.ID,
		CoachID:   team.CoachID,
		Name:      team.Name,
		Sport:     team.Sport,
		Season:    team.Season,
		HomeColor: team.HomeColor,
		AwayColor: team.AwayColor,
		CreatedAt: team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
