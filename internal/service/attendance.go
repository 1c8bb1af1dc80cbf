package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"kora-backend/internal/database/models"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceService handles the attendance ledger: board synthesis, the
// upsert write path, bulk justification and aggregate statistics.
type AttendanceService struct {
	repo         repository.AttendanceRepositoryInterface
	playerRepo   repository.PlayerRepositoryInterface
	trainingRepo repository.TrainingRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	validator    *validator.Validate
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo repository.AttendanceRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, trainingRepo repository.TrainingRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *AttendanceService {
	return &AttendanceService{
		repo:         repo,
		playerRepo:   playerRepo,
		trainingRepo: trainingRepo,
		teamRepo:     teamRepo,
		validator:    validator,
	}
}

// BoardRecord is one line of the attendance board. For players without a
// persisted row the record is transient: ID is null, status is the optimistic
// PRESENT default and all optional fields are null. Only a write makes it
// durable.
type BoardRecord struct {
	ID            *uuid.UUID              `json:"id"`
	PlayerID      uuid.UUID               `json:"player_id"`
	FirstName     string                  `json:"first_name"`
	LastName      string                  `json:"last_name"`
	JerseyNumber  int                     `json:"jersey_number"`
	Status        models.AttendanceStatus `json:"status"`
	ArrivalTime   *time.Time              `json:"arrival_time"`
	DepartureTime *time.Time              `json:"departure_time"`
	AbsenceReason *models.AbsenceReason   `json:"absence_reason"`
	IsJustified   bool                    `json:"is_justified"`
	Justification string                  `json:"justification,omitempty"`
	Note          string                  `json:"note,omitempty"`
	CheckedInVia  models.CheckInMethod    `json:"checked_in_via"`
}

// BoardResponse pairs every roster player with an attendance state
type BoardResponse struct {
	TrainingID uuid.UUID     `json:"training_id"`
	StartsAt   time.Time     `json:"starts_at"`
	Records    []BoardRecord `json:"records"`
}

// SetStatusRequest is the single write path for attendance. Omitted
// timestamps clear the stored ones; is_justified defaults to false when
// omitted; checked_in_via keeps its prior value on update and defaults to
// manual on create.
type SetStatusRequest struct {
	Status        models.AttendanceStatus `json:"status" validate:"required,oneof=present absent late injured early_departure"`
	ArrivalTime   *time.Time              `json:"arrival_time,omitempty"`
	DepartureTime *time.Time              `json:"departure_time,omitempty"`
	AbsenceReason *models.AbsenceReason   `json:"absence_reason,omitempty" validate:"omitempty,oneof=illness study family injury vacation disciplinary other"`
	IsJustified   *bool                   `json:"is_justified,omitempty"`
	Justification string                  `json:"justification,omitempty" validate:"max=500"`
	Note          string                  `json:"note,omitempty" validate:"max=500"`
	CheckedInVia  *models.CheckInMethod   `json:"checked_in_via,omitempty" validate:"omitempty,oneof=manual qr self"`
}

// BulkJustifyRequest applies one reason/text pair across a set of players.
// With apply_to_future the justification is re-derived for every subsequent
// training up to the expected return date.
type BulkJustifyRequest struct {
	PlayerIDs      []uuid.UUID          `json:"player_ids" validate:"required,min=1,dive,required"`
	Reason         models.AbsenceReason `json:"reason" validate:"required,oneof=illness study family injury vacation disciplinary other"`
	Justification  string               `json:"justification" validate:"max=500"`
	ApplyToFuture  bool                 `json:"apply_to_future"`
	ExpectedReturn string               `json:"expected_return,omitempty"` // YYYY-MM-DD, required with apply_to_future
}

// BulkJustifyResponse reports how many rows were written across trainings
type BulkJustifyResponse struct {
	TrainingsAffected int `json:"trainings_affected"`
	RecordsWritten    int `json:"records_written"`
}

// StatsResponse carries the aggregate attendance statistics for a player
type StatsResponse struct {
	PlayerID          uuid.UUID `json:"player_id"`
	PresentPercentage int       `json:"present_percentage"`
	Trend             int       `json:"trend"`
	PeriodStart       time.Time `json:"period_start"`
	PeriodEnd         time.Time `json:"period_end"`
	TrainingsCounted  int       `json:"trainings_counted"`
}

// GetBoard loads the full non-archived roster ordered by jersey number then
// last name, left-joined with persisted attendance rows. The read path never
// persists the synthesized defaults.
func (s *AttendanceService) GetBoard(coachID, teamID, trainingID uuid.UUID) (*BoardResponse, error) {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	training, err := s.trainingRepo.GetByID(team.ID, trainingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to get training: %w", err)
	}

	roster, err := s.playerRepo.ListByTeam(team.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	persisted, err := s.repo.ListByTraining(training.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	byPlayer := make(map[uuid.UUID]*models.Attendance, len(persisted))
	for i := range persisted {
		byPlayer[persisted[i].PlayerID] = &persisted[i]
	}

	records := make([]BoardRecord, len(roster))
	for i, player := range roster {
		if row, ok := byPlayer[player.ID]; ok {
			id := row.ID
			records[i] = BoardRecord{
				ID:            &id,
				PlayerID:      player.ID,
				FirstName:     player.FirstName,
				LastName:      player.LastName,
				JerseyNumber:  player.JerseyNumber,
				Status:        row.Status,
				ArrivalTime:   row.ArrivalTime,
				DepartureTime: row.DepartureTime,
				AbsenceReason: row.AbsenceReason,
				IsJustified:   row.IsJustified,
				Justification: row.Justification,
				Note:          row.Note,
				CheckedInVia:  row.CheckedInVia,
			}
			continue
		}
		records[i] = BoardRecord{
			ID:           nil,
			PlayerID:     player.ID,
			FirstName:    player.FirstName,
			LastName:     player.LastName,
			JerseyNumber: player.JerseyNumber,
			Status:       models.AttendancePresent,
			CheckedInVia: models.CheckInManual,
		}
	}

	return &BoardResponse{
		TrainingID: training.ID,
		StartsAt:   training.StartsAt,
		Records:    records,
	}, nil
}

// SetStatus upserts the attendance row for a (player, training) pair after
// verifying both belong to the team. There is deliberately no separate
// create endpoint.
func (s *AttendanceService) SetStatus(coachID, teamID, trainingID, playerID uuid.UUID, req *SetStatusRequest) (*BoardRecord, error) {
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

	training, err := s.trainingRepo.GetByID(team.ID, trainingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to get training: %w", err)
	}

	player, err := s.playerRepo.GetByID(team.ID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	attendance := &models.Attendance{
		PlayerID:      player.ID,
		TrainingID:    training.ID,
		Status:        req.Status,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		AbsenceReason: req.AbsenceReason,
		Justification: req.Justification,
		Note:          req.Note,
		CheckedInVia:  models.CheckInManual,
	}
	if req.IsJustified != nil {
		attendance.IsJustified = *req.IsJustified
	}
	if req.CheckedInVia != nil {
		attendance.CheckedInVia = *req.CheckedInVia
	} else {
		// Keep the prior check-in method on update
		existing, err := s.repo.GetByPlayerAndTraining(player.ID, training.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load attendance: %w", err)
		}
		if existing != nil {
			attendance.CheckedInVia = existing.CheckedInVia
		}
	}

	if err := s.repo.Upsert(attendance); err != nil {
		return nil, fmt.Errorf("failed to write attendance: %w", err)
	}

	// Re-read so the caller sees the persisted state, id included
	row, err := s.repo.GetByPlayerAndTraining(player.ID, training.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload attendance: %w", err)
	}

	id := row.ID
	return &BoardRecord{
		ID:            &id,
		PlayerID:      player.ID,
		FirstName:     player.FirstName,
		LastName:      player.LastName,
		JerseyNumber:  player.JerseyNumber,
		Status:        row.Status,
		ArrivalTime:   row.ArrivalTime,
		DepartureTime: row.DepartureTime,
		AbsenceReason: row.AbsenceReason,
		IsJustified:   row.IsJustified,
		Justification: row.Justification,
		Note:          row.Note,
		CheckedInVia:  row.CheckedInVia,
	}, nil
}

// BulkJustify marks a set of players absent-with-justification for a
// training and, when requested, for every later training up to the expected
// return date. Each future training gets its own upsert at write time; no
// range record is stored.
func (s *AttendanceService) BulkJustify(coachID, teamID, trainingID uuid.UUID, req *BulkJustifyRequest) (*BulkJustifyResponse, error) {
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

	training, err := s.trainingRepo.GetByID(team.ID, trainingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to get training: %w", err)
	}

	players, err := s.playerRepo.GetOwned(team.ID, req.PlayerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	if len(players) != len(dedupe(req.PlayerIDs)) {
		return nil, apperrors.NewValidationError("player_ids", apperrors.ErrForeignPlayerInBulk.Error())
	}

	trainings := []models.Training{*training}
	if req.ApplyToFuture {
		if req.ExpectedReturn == "" {
			return nil, apperrors.NewValidationError("expected_return", "expected_return is required with apply_to_future")
		}
		returnDate, err := time.ParseInLocation("2006-01-02", req.ExpectedReturn, time.Local)
		if err != nil {
			return nil, apperrors.NewValidationError("expected_return", apperrors.ErrInvalidDateFormat.Error())
		}
		// Trainings strictly after this one, up to and including the return date
		until := returnDate.AddDate(0, 0, 1)
		future, err := s.trainingRepo.ListBetween(team.ID, training.StartsAt.Add(time.Second), until)
		if err != nil {
			return nil, fmt.Errorf("failed to load future trainings: %w", err)
		}
		trainings = append(trainings, future...)
	}

	reason := req.Reason
	written := 0
	for _, t := range trainings {
		for _, player := range players {
			attendance := &models.Attendance{
				PlayerID:      player.ID,
				TrainingID:    t.ID,
				Status:        models.AttendanceAbsent,
				AbsenceReason: &reason,
				IsJustified:   true,
				Justification: req.Justification,
				CheckedInVia:  models.CheckInManual,
			}
			if err := s.repo.Upsert(attendance); err != nil {
				return nil, fmt.Errorf("failed to write justification: %w", err)
			}
			written++
		}
	}

	return &BulkJustifyResponse{
		TrainingsAffected: len(trainings),
		RecordsWritten:    written,
	}, nil
}

// PlayerStats computes the present percentage and trend for a player.
// Percentage is round(100 × (present+late)/total) over the period, where
// players without a persisted row count as present, matching the board's
// optimistic default. Trend is the current period minus the immediately
// preceding period of the same length: calendar month bounds when a month is
// given, calendar year bounds otherwise.
func (s *AttendanceService) PlayerStats(coachID, teamID, playerID uuid.UUID, year int, month *time.Month) (*StatsResponse, error) {
	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	player, err := s.playerRepo.GetByID(team.ID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var currentStart, currentEnd, previousStart time.Time
	if month != nil {
		currentStart = time.Date(year, *month, 1, 0, 0, 0, 0, time.Local)
		currentEnd = currentStart.AddDate(0, 1, 0)
		previousStart = currentStart.AddDate(0, -1, 0)
	} else {
		currentStart = time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		currentEnd = currentStart.AddDate(1, 0, 0)
		previousStart = currentStart.AddDate(-1, 0, 0)
	}

	current, counted, err := s.presentPercentage(team.ID, player.ID, currentStart, currentEnd)
	if err != nil {
		return nil, err
	}
	previous, _, err := s.presentPercentage(team.ID, player.ID, previousStart, currentStart)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		PlayerID:          player.ID,
		PresentPercentage: current,
		Trend:             current - previous,
		PeriodStart:       currentStart,
		PeriodEnd:         currentEnd,
		TrainingsCounted:  counted,
	}, nil
}

func (s *AttendanceService) presentPercentage(teamID, playerID uuid.UUID, from, until time.Time) (int, int, error) {
	trainings, err := s.trainingRepo.ListBetween(teamID, from, until)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load trainings: %w", err)
	}
	if len(trainings) == 0 {
		return 0, 0, nil
	}

	ids := make([]uuid.UUID, len(trainings))
	for i, t := range trainings {
		ids[i] = t.ID
	}
	rows, err := s.repo.ListForPlayerInTrainings(playerID, ids)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load attendance: %w", err)
	}

	present := len(trainings) - len(rows) // implicit default rows
	for _, row := range rows {
		if row.Status == models.AttendancePresent || row.Status == models.AttendanceLate {
			present++
		}
	}

	pct := int(math.Round(100 * float64(present) / float64(len(trainings))))
	return pct, len(trainings), nil
}
