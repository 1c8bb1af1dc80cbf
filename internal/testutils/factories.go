package testutils

import (
	"time"

	"kora-backend/internal/database/models"

	"github.com/google/uuid"
)

// CoachFactory provides methods to create test Coach data
type CoachFactory struct{}

// NewCoachFactory creates a new CoachFactory
func NewCoachFactory() *CoachFactory {
	return &CoachFactory{}
}

// Create creates a test Coach with default values
func (f *CoachFactory) Create() *models.Coach {
	id := uuid.New()
	return &models.Coach{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email per instance so suites can create several coaches
		Email:     "coach-" + id.String()[:8] + "@test.local",
		FirstName: "Test",
		LastName:  "Coach",
		Provider:  models.ProviderLocal,
		Tier:      models.TierFree,
	}
}

// WithTier sets a custom subscription tier for the coach
func (f *CoachFactory) WithTier(tier models.SubscriptionTier) *models.Coach {
	coach := f.Create()
	coach.Tier = tier
	return coach
}

// WithEmail sets a custom email for the coach
func (f *CoachFactory) WithEmail(email string) *models.Coach {
	coach := f.Create()
	coach.Email = email
	return coach
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CoachID: uuid.New(),
		Name:    "Test Team",
		Sport:   "soccer",
		Season:  "2026/2027",
	}
}

// WithCoach sets the owning coach ID for the team
func (f *TeamFactory) WithCoach(coachID uuid.UUID) *models.Team {
	team := f.Create()
	team.CoachID = coachID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:       uuid.New(),
		FirstName:    "Test",
		LastName:     "Player",
		BirthDate:    time.Date(2012, 5, 14, 0, 0, 0, 0, time.UTC),
		JerseyNumber: 9,
		Position:     "forward",
		Status:       models.PlayerStatusActive,
	}
}

// WithTeam sets the team ID for the player
func (f *PlayerFactory) WithTeam(teamID uuid.UUID) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	return player
}

// WithJersey sets the jersey number for the player
func (f *PlayerFactory) WithJersey(number int) *models.Player {
	player := f.Create()
	player.JerseyNumber = number
	return player
}

// Archived creates a player already removed from the active roster
func (f *PlayerFactory) Archived() *models.Player {
	player := f.Create()
	now := time.Now()
	player.Status = models.PlayerStatusArchived
	player.ArchivedAt = &now
	return player
}

// TrainingFactory provides methods to create test Training data
type TrainingFactory struct{}

// NewTrainingFactory creates a new TrainingFactory
func NewTrainingFactory() *TrainingFactory {
	return &TrainingFactory{}
}

// Create creates a test Training with default values
func (f *TrainingFactory) Create() *models.Training {
	return &models.Training{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:          uuid.New(),
		StartsAt:        time.Now().Add(24 * time.Hour).Truncate(time.Minute),
		DurationMinutes: 90,
		Type:            models.TrainingTypeRegular,
		Location:        "Test Field",
		Status:          models.TrainingStatusScheduled,
		CreatedBy:       uuid.New(),
	}
}

// WithTeam sets the team ID for the training
func (f *TrainingFactory) WithTeam(teamID uuid.UUID) *models.Training {
	training := f.Create()
	training.TeamID = teamID
	return training
}

// WithStartsAt sets the start time for the training
func (f *TrainingFactory) WithStartsAt(at time.Time) *models.Training {
	training := f.Create()
	training.StartsAt = at
	return training
}

// AttendanceFactory provides methods to create test Attendance data
type AttendanceFactory struct{}

// NewAttendanceFactory creates a new AttendanceFactory
func NewAttendanceFactory() *AttendanceFactory {
	return &AttendanceFactory{}
}

// Create creates a test Attendance row with default values
func (f *AttendanceFactory) Create() *models.Attendance {
	return &models.Attendance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PlayerID:     uuid.New(),
		TrainingID:   uuid.New(),
		Status:       models.AttendancePresent,
		CheckedInVia: models.CheckInManual,
	}
}

// For pins the attendance row to a player and training pair
func (f *AttendanceFactory) For(playerID, trainingID uuid.UUID) *models.Attendance {
	attendance := f.Create()
	attendance.PlayerID = playerID
	attendance.TrainingID = trainingID
	return attendance
}

// Absent creates a justified absence row
func (f *AttendanceFactory) Absent(playerID, trainingID uuid.UUID, reason models.AbsenceReason) *models.Attendance {
	attendance := f.For(playerID, trainingID)
	attendance.Status = models.AttendanceAbsent
	attendance.AbsenceReason = &reason
	attendance.IsJustified = true
	return attendance
}

// ImportHistoryFactory provides methods to create test bulk-action audit records
type ImportHistoryFactory struct{}

// NewImportHistoryFactory creates a new ImportHistoryFactory
func NewImportHistoryFactory() *ImportHistoryFactory {
	return &ImportHistoryFactory{}
}

// Create creates a test ImportHistory with an open undo window
func (f *ImportHistoryFactory) Create() *models.ImportHistory {
	return &models.ImportHistory{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:         uuid.New(),
		Action:         models.BulkActionArchive,
		TotalRequested: 1,
		UpdatedCount:   1,
		UndoExpiresAt:  time.Now().Add(24 * time.Hour),
		PerformedBy:    uuid.New(),
	}
}

// WithTeam sets the team ID for the history record
func (f *ImportHistoryFactory) WithTeam(teamID uuid.UUID) *models.ImportHistory {
	record := f.Create()
	record.TeamID = teamID
	return record
}

// Expired creates a history record whose undo window has already closed
func (f *ImportHistoryFactory) Expired() *models.ImportHistory {
	record := f.Create()
	record.UndoExpiresAt = time.Now().Add(-time.Hour)
	return record
}

// FactorySet provides access to all factories
type FactorySet struct {
	Coach         *CoachFactory
	Team          *TeamFactory
	Player        *PlayerFactory
	Training      *TrainingFactory
	Attendance    *AttendanceFactory
	ImportHistory *ImportHistoryFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Coach:         NewCoachFactory(),
		Team:          NewTeamFactory(),
		Player:        NewPlayerFactory(),
		Training:      NewTrainingFactory(),
		Attendance:    NewAttendanceFactory(),
		ImportHistory: NewImportHistoryFactory(),
	}
}

// CreateTeamWithRoster builds a coach, their team and n active players with
// distinct jersey numbers. Nothing is persisted; callers insert what they need.
func (fs *FactorySet) CreateTeamWithRoster(n int) (*models.Coach, *models.Team, []*models.Player) {
	coach := fs.Coach.Create()
	team := fs.Team.WithCoach(coach.ID)

	players := make([]*models.Player, 0, n)
	for i := 0; i < n; i++ {
		player := fs.Player.WithTeam(team.ID)
		player.JerseyNumber = i + 1
		players = append(players, player)
	}
	return coach, team, players
}
