package handlers_test

import (
	"net/http"
	"testing"

	"kora-backend/internal/api/handlers"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/mocks"
	"kora-backend/internal/service"
	"kora-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	coachID     uuid.UUID
}

// SetupTest sets up each test
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.coachID = uuid.New()
	suite.httpSuite.WithCoach(suite.coachID)

	suite.httpSuite.Router.GET("/teams", suite.handler.ListTeams)
	suite.httpSuite.Router.POST("/teams", suite.handler.CreateTeam)
	suite.httpSuite.Router.GET("/teams/:teamId", suite.handler.GetTeam)
	suite.httpSuite.Router.PUT("/teams/:teamId", suite.handler.UpdateTeam)
	suite.httpSuite.Router.DELETE("/teams/:teamId", suite.handler.DeleteTeam)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		req := service.CreateTeamRequest{Name: "Tigers U12", Sport: "soccer"}
		expected := &service.TeamResponse{ID: uuid.New(), CoachID: suite.coachID, Name: "Tigers U12", Sport: "soccer"}

		suite.mockService.EXPECT().
			Create(suite.coachID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/teams", req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expected.ID, response.ID)
		assert.Equal(t, "Tigers U12", response.Name)
	})

	suite.T().Run("Invalid JSON Body", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/teams", "not-a-team")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Team Limit Reached", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(suite.coachID, gomock.Any()).
			Return(nil, apperrors.NewLimitExceededError("team", 2)).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/teams", service.CreateTeamRequest{Name: "Third", Sport: "soccer"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "team limit of 2 reached")
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TeamResponse{ID: teamID, CoachID: suite.coachID, Name: "Sharks U16"}

		suite.mockService.EXPECT().
			GetByID(suite.coachID, teamID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Sharks U16", response.Name)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(suite.coachID, teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid teamId")
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Success With Default Pagination", func(t *testing.T) {
		expected := &service.TeamListResponse{
			Teams:    []service.TeamResponse{{ID: uuid.New(), Name: "Tigers U12"}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			List(suite.coachID, 1, 20).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(1), response.Total)
		assert.Len(t, response.Teams, 1)
	})

	suite.T().Run("Custom Pagination Params", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(suite.coachID, 3, 5).
			Return(&service.TeamListResponse{Page: 3, PageSize: 5}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams?page=3&page_size=5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Garbage Pagination Falls Back To Defaults", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(suite.coachID, 1, 20).
			Return(&service.TeamListResponse{Page: 1, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams?page=abc&page_size=-1", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		name := "Renamed"
		expected := &service.TeamResponse{ID: teamID, Name: "Renamed"}

		suite.mockService.EXPECT().
			Update(suite.coachID, teamID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/teams/"+teamID.String(), service.UpdateTeamRequest{Name: &name})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Renamed", response.Name)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		name := "Renamed"

		suite.mockService.EXPECT().
			Update(suite.coachID, teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/teams/"+teamID.String(), service.UpdateTeamRequest{Name: &name})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(suite.coachID, teamID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.Bytes())
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(suite.coachID, teamID).
			Return(apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/teams/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
