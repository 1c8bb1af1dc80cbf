package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"kora-backend/internal/api/handlers"
	"kora-backend/internal/database/models"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/mocks"
	"kora-backend/internal/service"
	"kora-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockPlayerService     *mocks.MockPlayerServiceInterface
	mockAttendanceService *mocks.MockAttendanceServiceInterface
	handler               *handlers.PlayerHandler
	httpSuite             *testutils.HTTPTestSuite
	coachID               uuid.UUID
	teamID                uuid.UUID
}

// SetupTest sets up each test
func (suite *PlayerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlayerService = mocks.NewMockPlayerServiceInterface(suite.ctrl)
	suite.mockAttendanceService = mocks.NewMockAttendanceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPlayerHandler(suite.mockPlayerService, suite.mockAttendanceService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.coachID = uuid.New()
	suite.teamID = uuid.New()
	suite.httpSuite.WithCoach(suite.coachID)

	suite.registerRoutes(suite.httpSuite)
}

func (suite *PlayerHandlerTestSuite) registerRoutes(hs *testutils.HTTPTestSuite) {
	hs.Router.GET("/teams/:teamId/players", suite.handler.ListPlayers)
	hs.Router.POST("/teams/:teamId/players", suite.handler.CreatePlayer)
	hs.Router.PUT("/teams/:teamId/players/:playerId", suite.handler.UpdatePlayer)
	hs.Router.DELETE("/teams/:teamId/players/:playerId", suite.handler.ArchivePlayer)
	hs.Router.GET("/teams/:teamId/players/:playerId/stats", suite.handler.GetPlayerStats)
}

// TearDownTest cleans up after each test
func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerHandlerTestSuite) playersPath() string {
	return "/teams/" + suite.teamID.String() + "/players"
}

// TestCreatePlayer tests the CreatePlayer handler
func (suite *PlayerHandlerTestSuite) TestCreatePlayer() {
	suite.T().Run("Success", func(t *testing.T) {
		req := service.CreatePlayerRequest{
			FirstName:    "Noam",
			LastName:     "Ben-David",
			BirthDate:    "2014-03-12",
			JerseyNumber: 7,
		}
		expected := &service.PlayerResponse{
			ID:           uuid.New(),
			TeamID:       suite.teamID,
			FirstName:    "Noam",
			JerseyNumber: 7,
			Status:       models.PlayerStatusActive,
		}

		suite.mockPlayerService.EXPECT().
			Create(suite.coachID, suite.teamID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.playersPath(), req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 7, response.JerseyNumber)
	})

	suite.T().Run("Jersey Conflict Is A 400", func(t *testing.T) {
		suite.mockPlayerService.EXPECT().
			Create(suite.coachID, suite.teamID, gomock.Any()).
			Return(nil, apperrors.ErrJerseyNumberTaken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.playersPath(), service.CreatePlayerRequest{
			FirstName: "Noam", LastName: "Ben-David", BirthDate: "2014-03-12", JerseyNumber: 7,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "jersey number already exists")
	})

	suite.T().Run("Roster Limit Is A 400", func(t *testing.T) {
		suite.mockPlayerService.EXPECT().
			Create(suite.coachID, suite.teamID, gomock.Any()).
			Return(nil, apperrors.NewLimitExceededError("player", 20)).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.playersPath(), service.CreatePlayerRequest{
			FirstName: "Noam", LastName: "Ben-David", BirthDate: "2014-03-12", JerseyNumber: 7,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "player limit of 20 reached")
	})

	suite.T().Run("Missing Auth Context Is A 401", func(t *testing.T) {
		bare := testutils.SetupHTTPTest()
		suite.registerRoutes(bare)

		recorder := bare.MakeRequest(http.MethodPost, suite.playersPath(), service.CreatePlayerRequest{
			FirstName: "Noam", LastName: "Ben-David", BirthDate: "2014-03-12", JerseyNumber: 7,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "coach id not found")
	})
}

// TestUpdatePlayer tests the UpdatePlayer handler
func (suite *PlayerHandlerTestSuite) TestUpdatePlayer() {
	playerID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		position := "winger"
		expected := &service.PlayerResponse{ID: playerID, Position: "winger"}

		suite.mockPlayerService.EXPECT().
			Update(suite.coachID, suite.teamID, playerID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.playersPath()+"/"+playerID.String(), service.UpdatePlayerRequest{Position: &position})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "winger", response.Position)
	})

	suite.T().Run("Player Not Found", func(t *testing.T) {
		name := "New"

		suite.mockPlayerService.EXPECT().
			Update(suite.coachID, suite.teamID, playerID, gomock.Any()).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.playersPath()+"/"+playerID.String(), service.UpdatePlayerRequest{FirstName: &name})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "player not found")
	})

	suite.T().Run("Invalid Player UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.playersPath()+"/nope", service.UpdatePlayerRequest{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid playerId")
	})
}

// TestArchivePlayer tests the ArchivePlayer handler
func (suite *PlayerHandlerTestSuite) TestArchivePlayer() {
	playerID := uuid.New()

	suite.T().Run("Success Returns The Archived Player", func(t *testing.T) {
		archivedAt := time.Now()
		expected := &service.PlayerResponse{
			ID:         playerID,
			Status:     models.PlayerStatusArchived,
			ArchivedAt: &archivedAt,
		}

		suite.mockPlayerService.EXPECT().
			Archive(suite.coachID, suite.teamID, playerID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.playersPath()+"/"+playerID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.PlayerStatusArchived, response.Status)
		assert.NotNil(t, response.ArchivedAt)
	})

	suite.T().Run("Player Not Found", func(t *testing.T) {
		suite.mockPlayerService.EXPECT().
			Archive(suite.coachID, suite.teamID, playerID).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.playersPath()+"/"+playerID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "player not found")
	})
}

// TestListPlayers tests the ListPlayers handler
func (suite *PlayerHandlerTestSuite) TestListPlayers() {
	suite.T().Run("Active Only By Default", func(t *testing.T) {
		expected := &service.PlayerListResponse{
			Players: []service.PlayerResponse{{ID: uuid.New(), JerseyNumber: 1}},
			Total:   1,
		}

		suite.mockPlayerService.EXPECT().
			List(suite.coachID, suite.teamID, false).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.playersPath(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.PlayerListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 1, response.Total)
	})

	suite.T().Run("Include Archived Flag", func(t *testing.T) {
		suite.mockPlayerService.EXPECT().
			List(suite.coachID, suite.teamID, true).
			Return(&service.PlayerListResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.playersPath()+"?include_archived=true", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestGetPlayerStats tests the GetPlayerStats handler
func (suite *PlayerHandlerTestSuite) TestGetPlayerStats() {
	playerID := uuid.New()
	statsPath := func() string {
		return suite.playersPath() + "/" + playerID.String() + "/stats"
	}

	suite.T().Run("Month Period", func(t *testing.T) {
		expected := &service.StatsResponse{
			PlayerID:          playerID,
			PresentPercentage: 75,
			Trend:             -25,
			TrainingsCounted:  4,
		}

		suite.mockAttendanceService.EXPECT().
			PlayerStats(suite.coachID, suite.teamID, playerID, 2026, gomock.Any()).
			DoAndReturn(func(_, _, _ uuid.UUID, _ int, month *time.Month) (*service.StatsResponse, error) {
				assert.NotNil(t, month)
				assert.Equal(t, time.June, *month)
				return expected, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, statsPath()+"?year=2026&month=6", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.StatsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 75, response.PresentPercentage)
		assert.Equal(t, -25, response.Trend)
	})

	suite.T().Run("Year Defaults To Current Without Month", func(t *testing.T) {
		suite.mockAttendanceService.EXPECT().
			PlayerStats(suite.coachID, suite.teamID, playerID, time.Now().Year(), gomock.Nil()).
			Return(&service.StatsResponse{PlayerID: playerID}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, statsPath(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid Month", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, statsPath()+"?month=13", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid month")
	})

	suite.T().Run("Invalid Year", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, statsPath()+"?year=99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid year")
	})
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
