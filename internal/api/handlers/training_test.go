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

// TrainingHandlerTestSuite defines the test suite for TrainingHandler
type TrainingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTrainingServiceInterface
	handler     *handlers.TrainingHandler
	httpSuite   *testutils.HTTPTestSuite
	coachID     uuid.UUID
	teamID      uuid.UUID
}

// SetupTest sets up each test
func (suite *TrainingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTrainingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTrainingHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.coachID = uuid.New()
	suite.teamID = uuid.New()
	suite.httpSuite.WithCoach(suite.coachID)

	suite.httpSuite.Router.GET("/teams/:teamId/trainings", suite.handler.ListTrainings)
	suite.httpSuite.Router.POST("/teams/:teamId/trainings", suite.handler.CreateTraining)
	suite.httpSuite.Router.GET("/teams/:teamId/trainings/:trainingId", suite.handler.GetTraining)
	suite.httpSuite.Router.PATCH("/teams/:teamId/trainings/:trainingId/status", suite.handler.UpdateTrainingStatus)
	suite.httpSuite.Router.DELETE("/teams/:teamId/trainings/:trainingId", suite.handler.DeleteTraining)
}

// TearDownTest cleans up after each test
func (suite *TrainingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TrainingHandlerTestSuite) trainingsPath() string {
	return "/teams/" + suite.teamID.String() + "/trainings"
}

// TestCreateTraining tests the CreateTraining handler
func (suite *TrainingHandlerTestSuite) TestCreateTraining() {
	suite.T().Run("Success", func(t *testing.T) {
		req := service.CreateTrainingRequest{
			Date:     "2026-09-03",
			Time:     "17:30",
			Location: "North Field",
		}
		expected := &service.TrainingResponse{
			ID:              uuid.New(),
			TeamID:          suite.teamID,
			StartsAt:        time.Date(2026, 9, 3, 17, 30, 0, 0, time.Local),
			DurationMinutes: 90,
			Type:            models.TrainingTypeRegular,
			Status:          models.TrainingStatusScheduled,
		}

		suite.mockService.EXPECT().
			Create(suite.coachID, suite.teamID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.trainingsPath(), req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.TrainingResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.TrainingStatusScheduled, response.Status)
		assert.Equal(t, 90, response.DurationMinutes)
	})

	suite.T().Run("Invalid Date Is A 400", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(suite.coachID, suite.teamID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("date", apperrors.ErrInvalidDateFormat.Error())).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.trainingsPath(), service.CreateTrainingRequest{
			Date: "bad", Time: "17:30",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid date format")
	})
}

// TestGetTraining tests the GetTraining handler
func (suite *TrainingHandlerTestSuite) TestGetTraining() {
	trainingID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TrainingResponse{ID: trainingID, TeamID: suite.teamID}

		suite.mockService.EXPECT().
			Get(suite.coachID, suite.teamID, trainingID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.trainingsPath()+"/"+trainingID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TrainingResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, trainingID, response.ID)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Get(suite.coachID, suite.teamID, trainingID).
			Return(nil, apperrors.ErrTrainingNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.trainingsPath()+"/"+trainingID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "training not found")
	})
}

// TestListTrainings tests the ListTrainings handler
func (suite *TrainingHandlerTestSuite) TestListTrainings() {
	suite.T().Run("Passes Query Params Through", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(suite.coachID, suite.teamID, gomock.Any()).
			DoAndReturn(func(_, _ uuid.UUID, req *service.ListTrainingsRequest) (*service.TrainingListResponse, error) {
				assert.Equal(t, "upcoming", req.When)
				assert.Equal(t, 10, req.Limit)
				assert.Equal(t, 20, req.Offset)
				assert.Equal(t, "starts_at", req.SortKey)
				assert.True(t, req.SortDesc)
				return &service.TrainingListResponse{Limit: 10, Offset: 20}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.trainingsPath()+"?when=upcoming&limit=10&offset=20&sort=starts_at&order=desc", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Defaults", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(suite.coachID, suite.teamID, gomock.Any()).
			DoAndReturn(func(_, _ uuid.UUID, req *service.ListTrainingsRequest) (*service.TrainingListResponse, error) {
				assert.Equal(t, "", req.When)
				assert.Equal(t, 20, req.Limit)
				assert.False(t, req.SortDesc)
				return &service.TrainingListResponse{}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.trainingsPath(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestUpdateTrainingStatus tests the UpdateTrainingStatus handler
func (suite *TrainingHandlerTestSuite) TestUpdateTrainingStatus() {
	trainingID := uuid.New()
	statusPath := func() string {
		return suite.trainingsPath() + "/" + trainingID.String() + "/status"
	}

	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TrainingResponse{ID: trainingID, Status: models.TrainingStatusCancelled}

		suite.mockService.EXPECT().
			UpdateStatus(suite.coachID, suite.teamID, trainingID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, statusPath(), service.UpdateTrainingStatusRequest{
			Status: models.TrainingStatusCancelled,
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TrainingResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.TrainingStatusCancelled, response.Status)
	})

	suite.T().Run("Unknown Status Is A 400", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateStatus(suite.coachID, suite.teamID, trainingID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatus.Error())).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, statusPath(), service.UpdateTrainingStatusRequest{
			Status: models.TrainingStatus("postponed"),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid status")
	})
}

// TestDeleteTraining tests the DeleteTraining handler
func (suite *TrainingHandlerTestSuite) TestDeleteTraining() {
	trainingID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(suite.coachID, suite.teamID, trainingID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.trainingsPath()+"/"+trainingID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(suite.coachID, suite.teamID, trainingID).
			Return(apperrors.ErrTrainingNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.trainingsPath()+"/"+trainingID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "training not found")
	})
}

// TestTrainingHandlerTestSuite runs the test suite
func TestTrainingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrainingHandlerTestSuite))
}
