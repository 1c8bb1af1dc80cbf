//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"kora-backend/internal/database/models"
	"kora-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TrainingRepositoryTestSuite tests the TrainingRepository
type TrainingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TrainingRepository
	teamRepo      *TeamRepository
	coachRepo     *CoachRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TrainingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTrainingRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.coachRepo = NewCoachRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TrainingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrainingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TrainingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeam persists a coach and their team
func (suite *TrainingRepositoryTestSuite) createTeam() *models.Team {
	coach := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(coach)
	suite.NoError(err)

	team := suite.factories.Team.WithCoach(coach.ID)
	err = suite.teamRepo.Create(team)
	suite.NoError(err)
	return team
}

// TestCreate tests creating a new training
func (suite *TrainingRepositoryTestSuite) TestCreate() {
	team := suite.createTeam()

	training := suite.factories.Training.WithTeam(team.ID)
	err := suite.repo.Create(training)

	suite.NoError(err)
	suite.NotZero(training.CreatedAt)
}

// TestGetByID tests team-scoped retrieval
func (suite *TrainingRepositoryTestSuite) TestGetByID() {
	team := suite.createTeam()
	training := suite.factories.Training.WithTeam(team.ID)
	err := suite.repo.Create(training)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(team.ID, training.ID)
	suite.NoError(err)
	suite.Equal(training.ID, retrieved.ID)

	otherTeam := suite.createTeam()
	_, err = suite.repo.GetByID(otherTeam.ID, training.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestListBuckets tests the upcoming and past temporal buckets
func (suite *TrainingRepositoryTestSuite) TestListBuckets() {
	team := suite.createTeam()
	now := time.Now()

	past := suite.factories.Training.WithTeam(team.ID)
	past.StartsAt = now.AddDate(0, 0, -7)
	err := suite.repo.Create(past)
	suite.NoError(err)

	// Earlier today still counts as upcoming
	today := suite.factories.Training.WithTeam(team.ID)
	today.StartsAt = time.Date(now.Year(), now.Month(), now.Day(), 0, 30, 0, 0, now.Location())
	err = suite.repo.Create(today)
	suite.NoError(err)

	future := suite.factories.Training.WithTeam(team.ID)
	future.StartsAt = now.AddDate(0, 0, 7)
	err = suite.repo.Create(future)
	suite.NoError(err)

	upcoming, total, err := suite.repo.List(team.ID, TrainingListFilter{
		When: "upcoming", Limit: 10, Offset: 0, Now: now,
	})
	suite.NoError(err)
	suite.Len(upcoming, 2)
	suite.Equal(int64(2), total)

	pastList, total, err := suite.repo.List(team.ID, TrainingListFilter{
		When: "past", Limit: 10, Offset: 0, Now: now,
	})
	suite.NoError(err)
	suite.Len(pastList, 1)
	suite.Equal(int64(1), total)
	suite.Equal(past.ID, pastList[0].ID)

	all, total, err := suite.repo.List(team.ID, TrainingListFilter{
		Limit: 10, Offset: 0, Now: now,
	})
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal(int64(3), total)
}

// TestListSortAndPagination tests ordering and paging of the listing
func (suite *TrainingRepositoryTestSuite) TestListSortAndPagination() {
	team := suite.createTeam()
	now := time.Now()

	for i := 1; i <= 3; i++ {
		training := suite.factories.Training.WithTeam(team.ID)
		training.StartsAt = now.AddDate(0, 0, i)
		err := suite.repo.Create(training)
		suite.NoError(err)
	}

	// Descending by start time
	trainings, total, err := suite.repo.List(team.ID, TrainingListFilter{
		Limit: 10, Offset: 0, SortKey: "starts_at", SortDesc: true, Now: now,
	})
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(trainings, 3)
	suite.True(trainings[0].StartsAt.After(trainings[1].StartsAt))
	suite.True(trainings[1].StartsAt.After(trainings[2].StartsAt))

	// An unknown sort key falls back to starts_at instead of erroring
	trainings, _, err = suite.repo.List(team.ID, TrainingListFilter{
		Limit: 10, Offset: 0, SortKey: "jersey_number", Now: now,
	})
	suite.NoError(err)
	suite.Len(trainings, 3)

	// Second page
	trainings, total, err = suite.repo.List(team.ID, TrainingListFilter{
		Limit: 2, Offset: 2, Now: now,
	})
	suite.NoError(err)
	suite.Len(trainings, 1)
	suite.Equal(int64(3), total)
}

// TestListBetween tests the half-open window used by absence propagation
func (suite *TrainingRepositoryTestSuite) TestListBetween() {
	team := suite.createTeam()
	base := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)

	inside := suite.factories.Training.WithTeam(team.ID)
	inside.StartsAt = base.AddDate(0, 0, 2)
	err := suite.repo.Create(inside)
	suite.NoError(err)

	cancelled := suite.factories.Training.WithTeam(team.ID)
	cancelled.StartsAt = base.AddDate(0, 0, 3)
	cancelled.Status = models.TrainingStatusCancelled
	err = suite.repo.Create(cancelled)
	suite.NoError(err)

	// Exactly at the upper bound, excluded by the half-open interval
	boundary := suite.factories.Training.WithTeam(team.ID)
	boundary.StartsAt = base.AddDate(0, 0, 7)
	err = suite.repo.Create(boundary)
	suite.NoError(err)

	trainings, err := suite.repo.ListBetween(team.ID, base, base.AddDate(0, 0, 7))

	suite.NoError(err)
	suite.Len(trainings, 1)
	suite.Equal(inside.ID, trainings[0].ID)
}

// TestUpdate tests updating a training
func (suite *TrainingRepositoryTestSuite) TestUpdate() {
	team := suite.createTeam()
	training := suite.factories.Training.WithTeam(team.ID)
	err := suite.repo.Create(training)
	suite.NoError(err)

	training.Status = models.TrainingStatusCancelled
	err = suite.repo.Update(training)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(team.ID, training.ID)
	suite.NoError(err)
	suite.Equal(models.TrainingStatusCancelled, updated.Status)
}

// TestDelete tests removing a training together with its attendance rows
func (suite *TrainingRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()
	training := suite.factories.Training.WithTeam(team.ID)
	err := suite.repo.Create(training)
	suite.NoError(err)

	playerRepo := NewPlayerRepository(suite.baseTestSuite.DB)
	player := suite.factories.Player.WithTeam(team.ID)
	err = playerRepo.Create(player)
	suite.NoError(err)

	attendanceRepo := NewAttendanceRepository(suite.baseTestSuite.DB)
	row := suite.factories.Attendance.For(player.ID, training.ID)
	err = attendanceRepo.Upsert(row)
	suite.NoError(err)

	err = suite.repo.Delete(team.ID, training.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID, training.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)

	rows, err := attendanceRepo.ListByTraining(training.ID)
	suite.NoError(err)
	suite.Empty(rows)
}

// Run the test suite
func TestTrainingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TrainingRepositoryTestSuite))
}
