//go:build integration
// +build integration

package repository

import (
	"testing"

	"kora-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	coachRepo     *CoachRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.coachRepo = NewCoachRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	coach := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(coach)
	suite.NoError(err)

	team := suite.factories.Team.WithCoach(coach.ID)

	err = suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestGetForCoach tests owner-scoped retrieval
func (suite *TeamRepositoryTestSuite) TestGetForCoach() {
	coach := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(coach)
	suite.NoError(err)

	team := suite.factories.Team.WithCoach(coach.ID)
	err = suite.repo.Create(team)
	suite.NoError(err)

	retrieved, err := suite.repo.GetForCoach(team.ID, coach.ID)

	suite.NoError(err)
	suite.Equal(team.ID, retrieved.ID)
	suite.Equal(team.Name, retrieved.Name)
}

// TestGetForCoachForeignTeam tests that another coach's team reads as missing
func (suite *TeamRepositoryTestSuite) TestGetForCoachForeignTeam() {
	owner := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(owner)
	suite.NoError(err)

	other := suite.factories.Coach.Create()
	err = suite.coachRepo.Create(other)
	suite.NoError(err)

	team := suite.factories.Team.WithCoach(owner.ID)
	err = suite.repo.Create(team)
	suite.NoError(err)

	retrieved, err := suite.repo.GetForCoach(team.ID, other.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestListByCoach tests listing teams with pagination
func (suite *TeamRepositoryTestSuite) TestListByCoach() {
	coach := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(coach)
	suite.NoError(err)

	for i := 0; i < 3; i++ {
		team := suite.factories.Team.WithCoach(coach.ID)
		err := suite.repo.Create(team)
		suite.NoError(err)
	}

	// Another coach's team must not leak into the listing
	other := suite.factories.Coach.Create()
	err = suite.coachRepo.Create(other)
	suite.NoError(err)
	foreign := suite.factories.Team.WithCoach(other.ID)
	err = suite.repo.Create(foreign)
	suite.NoError(err)

	teams, total, err := suite.repo.ListByCoach(coach.ID, 10, 0)

	suite.NoError(err)
	suite.Len(teams, 3)
	suite.Equal(int64(3), total)
	for _, team := range teams {
		suite.Equal(coach.ID, team.CoachID)
	}

	// Second page
	teams, total, err = suite.repo.ListByCoach(coach.ID, 2, 2)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(int64(3), total)
}

// TestCountByCoach tests the team count used for the tier ceiling
func (suite *TeamRepositoryTestSuite) TestCountByCoach() {
	coach := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(coach)
	suite.NoError(err)

	count, err := suite.repo.CountByCoach(coach.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	team := suite.factories.Team.WithCoach(coach.ID)
	err = suite.repo.Create(team)
	suite.NoError(err)

	count, err = suite.repo.CountByCoach(coach.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpdate tests updating a team
func (suite *TeamRepositoryTestSuite) TestUpdate() {
	coach := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(coach)
	suite.NoError(err)

	team := suite.factories.Team.WithCoach(coach.ID)
	err = suite.repo.Create(team)
	suite.NoError(err)

	team.Name = "Renamed Team"
	team.Season = "2027/2028"
	err = suite.repo.Update(team)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("Renamed Team", updated.Name)
	suite.Equal("2027/2028", updated.Season)
}

// TestDelete tests that deleted teams stop being retrievable
func (suite *TeamRepositoryTestSuite) TestDelete() {
	coach := suite.factories.Coach.Create()
	err := suite.coachRepo.Create(coach)
	suite.NoError(err)

	team := suite.factories.Team.WithCoach(coach.ID)
	err = suite.repo.Create(team)
	suite.NoError(err)

	err = suite.repo.Delete(team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// Soft delete also removes the team from the coach's count
	count, err := suite.repo.CountByCoach(coach.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
