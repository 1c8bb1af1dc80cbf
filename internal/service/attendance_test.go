package service_test

import (
	"testing"
	"time"

	"kora-backend/internal/database/models"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/mocks"
	"kora-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AttendanceServiceTestSuite defines the test suite for AttendanceService
type AttendanceServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAttendanceRepo *mocks.MockAttendanceRepositoryInterface
	mockPlayerRepo     *mocks.MockPlayerRepositoryInterface
	mockTrainingRepo   *mocks.MockTrainingRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	attendanceService  *service.AttendanceService

	coachID  uuid.UUID
	team     *models.Team
	training *models.Training
}

// SetupTest sets up the test suite
func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAttendanceRepo = mocks.NewMockAttendanceRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockTrainingRepo = mocks.NewMockTrainingRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.attendanceService = service.NewAttendanceService(
		suite.mockAttendanceRepo,
		suite.mockPlayerRepo,
		suite.mockTrainingRepo,
		suite.mockTeamRepo,
		validator.New(),
	)

	suite.coachID = uuid.New()
	suite.team = &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CoachID:   suite.coachID,
	}
	suite.training = &models.Training{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.team.ID,
		StartsAt:  time.Date(2026, 9, 3, 17, 30, 0, 0, time.Local),
		Status:    models.TrainingStatusScheduled,
	}
}

// TearDownTest cleans up after each test
func (suite *AttendanceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AttendanceServiceTestSuite) expectTeamLookup() {
	suite.mockTeamRepo.EXPECT().
		GetForCoach(suite.team.ID, suite.coachID).
		Return(suite.team, nil).
		Times(1)
}

func (suite *AttendanceServiceTestSuite) expectTrainingLookup() {
	suite.mockTrainingRepo.EXPECT().
		GetByID(suite.team.ID, suite.training.ID).
		Return(suite.training, nil).
		Times(1)
}

func (suite *AttendanceServiceTestSuite) rosterPlayer(jersey int, last string) models.Player {
	return models.Player{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		TeamID:       suite.team.ID,
		FirstName:    "Test",
		LastName:     last,
		JerseyNumber: jersey,
		Status:       models.PlayerStatusActive,
	}
}

// TestGetBoard tests the GetBoard method
func (suite *AttendanceServiceTestSuite) TestGetBoard() {
	suite.T().Run("Synthesizes Defaults For Players Without Rows", func(t *testing.T) {
		marked := suite.rosterPlayer(1, "Peretz")
		unmarked := suite.rosterPlayer(7, "Ben-David")
		reason := models.AbsenceIllness
		persisted := models.Attendance{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			PlayerID:      marked.ID,
			TrainingID:    suite.training.ID,
			Status:        models.AttendanceAbsent,
			AbsenceReason: &reason,
			IsJustified:   true,
			CheckedInVia:  models.CheckInQR,
		}

		suite.expectTeamLookup()
		suite.expectTrainingLookup()
		suite.mockPlayerRepo.EXPECT().
			ListByTeam(suite.team.ID, false).
			Return([]models.Player{marked, unmarked}, nil).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			ListByTraining(suite.training.ID).
			Return([]models.Attendance{persisted}, nil).
			Times(1)

		board, err := suite.attendanceService.GetBoard(suite.coachID, suite.team.ID, suite.training.ID)

		assert.NoError(t, err)
		assert.Equal(t, suite.training.ID, board.TrainingID)
		assert.Len(t, board.Records, 2)

		assert.NotNil(t, board.Records[0].ID)
		assert.Equal(t, models.AttendanceAbsent, board.Records[0].Status)
		assert.True(t, board.Records[0].IsJustified)
		assert.Equal(t, models.CheckInQR, board.Records[0].CheckedInVia)

		assert.Nil(t, board.Records[1].ID)
		assert.Equal(t, models.AttendancePresent, board.Records[1].Status)
		assert.Equal(t, models.CheckInManual, board.Records[1].CheckedInVia)
		assert.Nil(t, board.Records[1].AbsenceReason)
		assert.False(t, board.Records[1].IsJustified)
	})

	suite.T().Run("Training Not Found", func(t *testing.T) {
		suite.expectTeamLookup()
		suite.mockTrainingRepo.EXPECT().
			GetByID(suite.team.ID, suite.training.ID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		board, err := suite.attendanceService.GetBoard(suite.coachID, suite.team.ID, suite.training.ID)

		assert.Nil(t, board)
		assert.ErrorIs(t, err, apperrors.ErrTrainingNotFound)
	})
}

// TestSetStatus tests the SetStatus method
func (suite *AttendanceServiceTestSuite) TestSetStatus() {
	player := suite.rosterPlayer(9, "Mizrahi")

	expectEntityLookups := func(p models.Player) {
		suite.expectTeamLookup()
		suite.expectTrainingLookup()
		suite.mockPlayerRepo.EXPECT().
			GetByID(suite.team.ID, p.ID).
			Return(&p, nil).
			Times(1)
	}

	suite.T().Run("Create Defaults To Manual Check-In", func(t *testing.T) {
		expectEntityLookups(player)
		suite.mockAttendanceRepo.EXPECT().
			GetByPlayerAndTraining(player.ID, suite.training.ID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(a *models.Attendance) error {
				assert.Equal(t, models.AttendanceLate, a.Status)
				assert.Equal(t, models.CheckInManual, a.CheckedInVia)
				return nil
			}).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			GetByPlayerAndTraining(player.ID, suite.training.ID).
			Return(&models.Attendance{
				BaseModel:    models.BaseModel{ID: uuid.New()},
				PlayerID:     player.ID,
				TrainingID:   suite.training.ID,
				Status:       models.AttendanceLate,
				CheckedInVia: models.CheckInManual,
			}, nil).
			Times(1)

		record, err := suite.attendanceService.SetStatus(suite.coachID, suite.team.ID, suite.training.ID, player.ID, &service.SetStatusRequest{
			Status: models.AttendanceLate,
		})

		assert.NoError(t, err)
		assert.NotNil(t, record.ID)
		assert.Equal(t, models.AttendanceLate, record.Status)
	})

	suite.T().Run("Update Keeps Prior Check-In Method", func(t *testing.T) {
		existing := &models.Attendance{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			PlayerID:     player.ID,
			TrainingID:   suite.training.ID,
			Status:       models.AttendancePresent,
			CheckedInVia: models.CheckInSelf,
		}

		expectEntityLookups(player)
		suite.mockAttendanceRepo.EXPECT().
			GetByPlayerAndTraining(player.ID, suite.training.ID).
			Return(existing, nil).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(a *models.Attendance) error {
				assert.Equal(t, models.CheckInSelf, a.CheckedInVia)
				return nil
			}).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			GetByPlayerAndTraining(player.ID, suite.training.ID).
			Return(&models.Attendance{
				BaseModel:    existing.BaseModel,
				PlayerID:     player.ID,
				TrainingID:   suite.training.ID,
				Status:       models.AttendanceEarlyDeparture,
				CheckedInVia: models.CheckInSelf,
			}, nil).
			Times(1)

		record, err := suite.attendanceService.SetStatus(suite.coachID, suite.team.ID, suite.training.ID, player.ID, &service.SetStatusRequest{
			Status: models.AttendanceEarlyDeparture,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CheckInSelf, record.CheckedInVia)
	})

	suite.T().Run("Explicit Check-In Method Skips The Prior Lookup", func(t *testing.T) {
		via := models.CheckInQR

		expectEntityLookups(player)
		suite.mockAttendanceRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(a *models.Attendance) error {
				assert.Equal(t, models.CheckInQR, a.CheckedInVia)
				return nil
			}).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			GetByPlayerAndTraining(player.ID, suite.training.ID).
			Return(&models.Attendance{
				BaseModel:    models.BaseModel{ID: uuid.New()},
				PlayerID:     player.ID,
				TrainingID:   suite.training.ID,
				Status:       models.AttendancePresent,
				CheckedInVia: models.CheckInQR,
			}, nil).
			Times(1)

		record, err := suite.attendanceService.SetStatus(suite.coachID, suite.team.ID, suite.training.ID, player.ID, &service.SetStatusRequest{
			Status:       models.AttendancePresent,
			CheckedInVia: &via,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CheckInQR, record.CheckedInVia)
	})

	suite.T().Run("Unknown Status Rejected", func(t *testing.T) {
		record, err := suite.attendanceService.SetStatus(suite.coachID, suite.team.ID, suite.training.ID, player.ID, &service.SetStatusRequest{
			Status: models.AttendanceStatus("vanished"),
		})

		assert.Nil(t, record)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Player Not On Team", func(t *testing.T) {
		suite.expectTeamLookup()
		suite.expectTrainingLookup()
		suite.mockPlayerRepo.EXPECT().
			GetByID(suite.team.ID, player.ID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		record, err := suite.attendanceService.SetStatus(suite.coachID, suite.team.ID, suite.training.ID, player.ID, &service.SetStatusRequest{
			Status: models.AttendancePresent,
		})

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrPlayerNotFound)
	})
}

// TestBulkJustify tests the BulkJustify method
func (suite *AttendanceServiceTestSuite) TestBulkJustify() {
	suite.T().Run("Single Training", func(t *testing.T) {
		players := []models.Player{suite.rosterPlayer(1, "Peretz"), suite.rosterPlayer(2, "Katz")}
		ids := []uuid.UUID{players[0].ID, players[1].ID}

		suite.expectTeamLookup()
		suite.expectTrainingLookup()
		suite.mockPlayerRepo.EXPECT().
			GetOwned(suite.team.ID, ids).
			Return(players, nil).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(a *models.Attendance) error {
				assert.Equal(t, models.AttendanceAbsent, a.Status)
				assert.True(t, a.IsJustified)
				assert.Equal(t, models.AbsenceStudy, *a.AbsenceReason)
				return nil
			}).
			Times(2)

		response, err := suite.attendanceService.BulkJustify(suite.coachID, suite.team.ID, suite.training.ID, &service.BulkJustifyRequest{
			PlayerIDs:     ids,
			Reason:        models.AbsenceStudy,
			Justification: "exam week",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.TrainingsAffected)
		assert.Equal(t, 2, response.RecordsWritten)
	})

	suite.T().Run("Apply To Future Propagates Until Return Date", func(t *testing.T) {
		player := suite.rosterPlayer(5, "Levi")
		future := []models.Training{
			{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID},
			{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID},
		}

		suite.expectTeamLookup()
		suite.expectTrainingLookup()
		suite.mockPlayerRepo.EXPECT().
			GetOwned(suite.team.ID, []uuid.UUID{player.ID}).
			Return([]models.Player{player}, nil).
			Times(1)
		suite.mockTrainingRepo.EXPECT().
			ListBetween(suite.team.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, from, until time.Time) ([]models.Training, error) {
				assert.True(t, from.After(suite.training.StartsAt))
				assert.Equal(t, time.Date(2026, 9, 11, 0, 0, 0, 0, time.Local), until)
				return future, nil
			}).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			Upsert(gomock.Any()).
			Return(nil).
			Times(3)

		response, err := suite.attendanceService.BulkJustify(suite.coachID, suite.team.ID, suite.training.ID, &service.BulkJustifyRequest{
			PlayerIDs:      []uuid.UUID{player.ID},
			Reason:         models.AbsenceInjury,
			ApplyToFuture:  true,
			ExpectedReturn: "2026-09-10",
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, response.TrainingsAffected)
		assert.Equal(t, 3, response.RecordsWritten)
	})

	suite.T().Run("Apply To Future Requires Return Date", func(t *testing.T) {
		player := suite.rosterPlayer(5, "Levi")

		suite.expectTeamLookup()
		suite.expectTrainingLookup()
		suite.mockPlayerRepo.EXPECT().
			GetOwned(suite.team.ID, []uuid.UUID{player.ID}).
			Return([]models.Player{player}, nil).
			Times(1)

		response, err := suite.attendanceService.BulkJustify(suite.coachID, suite.team.ID, suite.training.ID, &service.BulkJustifyRequest{
			PlayerIDs:     []uuid.UUID{player.ID},
			Reason:        models.AbsenceFamily,
			ApplyToFuture: true,
		})

		assert.Nil(t, response)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "expected_return")
	})

	suite.T().Run("Foreign Player Fails Wholesale", func(t *testing.T) {
		foreign := uuid.New()

		suite.expectTeamLookup()
		suite.expectTrainingLookup()
		suite.mockPlayerRepo.EXPECT().
			GetOwned(suite.team.ID, []uuid.UUID{foreign}).
			Return([]models.Player{}, nil).
			Times(1)

		response, err := suite.attendanceService.BulkJustify(suite.coachID, suite.team.ID, suite.training.ID, &service.BulkJustifyRequest{
			PlayerIDs: []uuid.UUID{foreign},
			Reason:    models.AbsenceOther,
		})

		assert.Nil(t, response)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Unknown Reason Rejected", func(t *testing.T) {
		response, err := suite.attendanceService.BulkJustify(suite.coachID, suite.team.ID, suite.training.ID, &service.BulkJustifyRequest{
			PlayerIDs: []uuid.UUID{uuid.New()},
			Reason:    models.AbsenceReason("busy"),
		})

		assert.Nil(t, response)
		assert.True(t, apperrors.IsValidation(err))
	})
}

// TestPlayerStats tests the PlayerStats method
func (suite *AttendanceServiceTestSuite) TestPlayerStats() {
	player := suite.rosterPlayer(9, "Mizrahi")

	trainings := func(n int) []models.Training {
		out := make([]models.Training, n)
		for i := range out {
			out[i] = models.Training{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID}
		}
		return out
	}

	expectPlayerLookup := func() {
		suite.expectTeamLookup()
		suite.mockPlayerRepo.EXPECT().
			GetByID(suite.team.ID, player.ID).
			Return(&player, nil).
			Times(1)
	}

	suite.T().Run("Missing Rows Count As Present", func(t *testing.T) {
		month := time.June
		current := trainings(4)
		// One absence recorded, one late, two with no row at all: 3 of 4 present
		rows := []models.Attendance{
			{PlayerID: player.ID, TrainingID: current[0].ID, Status: models.AttendanceAbsent},
			{PlayerID: player.ID, TrainingID: current[1].ID, Status: models.AttendanceLate},
		}

		expectPlayerLookup()
		suite.mockTrainingRepo.EXPECT().
			ListBetween(suite.team.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local), time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)).
			Return(current, nil).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			ListForPlayerInTrainings(player.ID, gomock.Any()).
			Return(rows, nil).
			Times(1)
		suite.mockTrainingRepo.EXPECT().
			ListBetween(suite.team.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local), time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)).
			Return(trainings(2), nil).
			Times(1)
		suite.mockAttendanceRepo.EXPECT().
			ListForPlayerInTrainings(player.ID, gomock.Any()).
			Return(nil, nil).
			Times(1)

		stats, err := suite.attendanceService.PlayerStats(suite.coachID, suite.team.ID, player.ID, 2026, &month)

		assert.NoError(t, err)
		assert.Equal(t, 75, stats.PresentPercentage)
		assert.Equal(t, 4, stats.TrainingsCounted)
		// Previous month was a clean 100, so the trend is negative
		assert.Equal(t, -25, stats.Trend)
	})

	suite.T().Run("No Trainings Yields Zero", func(t *testing.T) {
		expectPlayerLookup()
		suite.mockTrainingRepo.EXPECT().
			ListBetween(suite.team.ID, gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(2)

		stats, err := suite.attendanceService.PlayerStats(suite.coachID, suite.team.ID, player.ID, 2026, nil)

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.PresentPercentage)
		assert.Equal(t, 0, stats.TrainingsCounted)
		assert.Equal(t, 0, stats.Trend)
	})

	suite.T().Run("Year Bounds Used Without Month", func(t *testing.T) {
		expectPlayerLookup()
		suite.mockTrainingRepo.EXPECT().
			ListBetween(suite.team.ID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)).
			Return(nil, nil).
			Times(1)
		suite.mockTrainingRepo.EXPECT().
			ListBetween(suite.team.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)).
			Return(nil, nil).
			Times(1)

		stats, err := suite.attendanceService.PlayerStats(suite.coachID, suite.team.ID, player.ID, 2025, nil)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), stats.PeriodStart)
	})
}

// TestAttendanceServiceTestSuite runs the test suite
func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
