package service

import (
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

// minPlayerAge is the minimum age in full years at the time of registration
const minPlayerAge = 5

// PlayerService handles business logic for the player registry
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	coachRepo repository.CoachRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, teamRepo repository.TeamRepositoryInterface, coachRepo repository.CoachRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		teamRepo:  teamRepo,
		coachRepo: coachRepo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the request to create a player
type CreatePlayerRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	BirthDate    string `json:"birth_date" validate:"required"` // YYYY-MM-DD
	JerseyNumber int    `json:"jersey_number" validate:"required,min=1,max=99"`
	Position     string `json:"position" validate:"max=50"`
	Email        string `json:"email" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone" validate:"max=30"`
	GuardianName string `json:"guardian_name" validate:"max=200"`
	MedicalNote  string `json:"medical_note" validate:"max=500"`
}

// UpdatePlayerRequest represents a partial update; validations apply only to supplied fields
type UpdatePlayerRequest struct {
	FirstName    *string              `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string              `json:"last_name,omitempty" validate:"omitempty,max=100"`
	BirthDate    *string              `json:"birth_date,omitempty"`
	JerseyNumber *int                 `json:"jersey_number,omitempty" validate:"omitempty,min=1,max=99"`
	Position     *string              `json:"position,omitempty" validate:"omitempty,max=50"`
	Status       *models.PlayerStatus `json:"status,omitempty"`
	Email        *string              `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        *string              `json:"phone,omitempty" validate:"omitempty,max=30"`
	GuardianName *string              `json:"guardian_name,omitempty" validate:"omitempty,max=200"`
	MedicalNote  *string              `json:"medical_note,omitempty" validate:"omitempty,max=500"`
}

// PlayerStats carries the attendance-derived statistic shown with a player
type PlayerStats struct {
	PresentPercentage int `json:"present_percentage"`
	Trend             int `json:"trend"`
	TrainingsCounted  int `json:"trainings_counted"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID           uuid.UUID           `json:"id"`
	TeamID       uuid.UUID           `json:"team_id"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	BirthDate    string              `json:"birth_date"`
	JerseyNumber int                 `json:"jersey_number"`
	Position     string              `json:"position"`
	Status       models.PlayerStatus `json:"status"`
	Email        string              `json:"email,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	GuardianName string              `json:"guardian_name,omitempty"`
	MedicalNote  string              `json:"medical_note,omitempty"`
	ArchivedAt   *time.Time          `json:"archived_at,omitempty"`
	Stats        PlayerStats         `json:"stats"`
}

// PlayerListResponse represents a team roster
type PlayerListResponse struct {
	Players []PlayerResponse `json:"players"`
	Total   int              `json:"total"`
}

// Create registers a new player on the team. Validation order: schema, age,
// jersey uniqueness, then tier ceiling, all before any write.
func (s *PlayerService) Create(coachID, teamID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error) {
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

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birth_date", apperrors.ErrInvalidDateFormat.Error())
	}
	if err := s.checkMinimumAge(birthDate); err != nil {
		return nil, err
	}

	if err := s.checkJerseyAvailable(team.ID, req.JerseyNumber, nil); err != nil {
		return nil, err
	}

	coach, err := s.coachRepo.GetByID(coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to load coach: %w", err)
	}
	if limit := coach.Tier.MaxPlayers(); limit > 0 {
		count, err := s.repo.CountActive(team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count players: %w", err)
		}
		if count >= int64(limit) {
			return nil, apperrors.NewLimitExceededError("player", limit)
		}
	}

	player := &models.Player{
		TeamID:       team.ID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    birthDate,
		JerseyNumber: req.JerseyNumber,
		Position:     req.Position,
		Status:       models.PlayerStatusActive,
		Email:        req.Email,
		Phone:        req.Phone,
		GuardianName: req.GuardianName,
		MedicalNote:  req.MedicalNote,
	}

	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	// A freshly created player has no attendance history; the statistic is zeroed
	return s.toResponse(player), nil
}

// Update applies a partial update; age and jersey validations run only for
// changed fields, and the uniqueness check excludes the player's own row.
func (s *PlayerService) Update(coachID, teamID, playerID uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error) {
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

	player, err := s.repo.GetByID(team.ID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player.IsArchived() {
		return nil, apperrors.ErrPlayerNotFound
	}

	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidationError("birth_date", apperrors.ErrInvalidDateFormat.Error())
		}
		if err := s.checkMinimumAge(birthDate); err != nil {
			return nil, err
		}
		player.BirthDate = birthDate
	}
	if req.JerseyNumber != nil && *req.JerseyNumber != player.JerseyNumber {
		if err := s.checkJerseyAvailable(team.ID, *req.JerseyNumber, &player.ID); err != nil {
			return nil, err
		}
		player.JerseyNumber = *req.JerseyNumber
	}
	if req.Status != nil {
		switch *req.Status {
		case models.PlayerStatusActive, models.PlayerStatusInjured, models.PlayerStatusSuspended:
			player.Status = *req.Status
		default:
			// Archival goes through Archive or the bulk path
			return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatus.Error())
		}
	}
	if req.FirstName != nil {
		player.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		player.LastName = *req.LastName
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.Email != nil {
		player.Email = *req.Email
	}
	if req.Phone != nil {
		player.Phone = *req.Phone
	}
	if req.GuardianName != nil {
		player.GuardianName = *req.GuardianName
	}
	if req.MedicalNote != nil {
		player.MedicalNote = *req.MedicalNote
	}

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.toResponse(player), nil
}

// Archive soft-deletes a player. Archiving an already-archived player is an
// idempotent no-op success. Historical attendance rows are untouched.
func (s *PlayerService) Archive(coachID, teamID, playerID uuid.UUID) (*PlayerResponse, error) {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	player, err := s.repo.GetByID(team.ID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.IsArchived() {
		return s.toResponse(player), nil
	}

	now := time.Now()
	player.Status = models.PlayerStatusArchived
	player.ArchivedAt = &now

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to archive player: %w", err)
	}

	return s.toResponse(player), nil
}

// List retrieves the roster ordered by jersey number then last name
func (s *PlayerService) List(coachID, teamID uuid.UUID, includeArchived bool) (*PlayerListResponse, error) {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	players, err := s.repo.ListByTeam(team.ID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	responses := make([]PlayerResponse, len(players))
	for i, player := range players {
		responses[i] = *s.toResponse(&player)
	}

	return &PlayerListResponse{Players: responses, Total: len(responses)}, nil
}

// checkMinimumAge rejects players younger than minPlayerAge full years; a
// birthday not yet reached this year decrements the age.
func (s *PlayerService) checkMinimumAge(birthDate time.Time) error {
	p := models.Player{BirthDate: birthDate}
	if p.AgeAt(time.Now()) < minPlayerAge {
		return apperrors.NewValidationError("birth_date", apperrors.ErrPlayerTooYoung.Error())
	}
	return nil
}

func (s *PlayerService) checkJerseyAvailable(teamID uuid.UUID, number int, excludeID *uuid.UUID) error {
	holder, err := s.repo.FindByJersey(teamID, number, excludeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check jersey number: %w", err)
	}
	if holder != nil {
		return apperrors.ErrJerseyNumberTaken
	}
	return nil
}

func (s *PlayerService) toResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:           player.ID,
		TeamID:       player.TeamID,
		FirstName:    player.FirstName,
		LastName:     player.LastName,
		BirthDate:    player.BirthDate.Format("2006-01-02"),
		JerseyNumber: player.JerseyNumber,
		Position:     player.Position,
		Status:       player.Status,
		Email:        player.Email,
		Phone:        player.Phone,
		GuardianName: player.GuardianName,
		MedicalNote:  player.MedicalNote,
		ArchivedAt:   player.ArchivedAt,
		Stats:        PlayerStats{},
	}
}
