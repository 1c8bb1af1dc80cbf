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
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AttendanceHandlerTestSuite defines the test suite for AttendanceHandler
type AttendanceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAttendanceServiceInterface
	handler     *handlers.AttendanceHandler
	httpSuite   *testutils.HTTPTestSuite
	coachID     uuid.UUID
	teamID      uuid.UUID
	trainingID  uuid.UUID
}

// SetupTest sets up each test
func (suite *AttendanceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAttendanceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAttendanceHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.coachID = uuid.New()
	suite.teamID = uuid.New()
	suite.trainingID = uuid.New()
	suite.httpSuite.WithCoach(suite.coachID)

	suite.httpSuite.Router.GET("/teams/:teamId/trainings/:trainingId/attendance", suite.handler.GetBoard)
	suite.httpSuite.Router.PUT("/teams/:teamId/trainings/:trainingId/attendance/:playerId", suite.handler.SetStatus)
	suite.httpSuite.Router.POST("/teams/:teamId/trainings/:trainingId/attendance/justify", suite.handler.BulkJustify)
}

// TearDownTest cleans up after each test
func (suite *AttendanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AttendanceHandlerTestSuite) attendancePath() string {
	return "/teams/" + suite.teamID.String() + "/trainings/" + suite.trainingID.String() + "/attendance"
}

// TestGetBoard tests the GetBoard handler
func (suite *AttendanceHandlerTestSuite) TestGetBoard() {
	suite.T().Run("Synthesized Records Serialize With Null Id", func(t *testing.T) {
		recordID := uuid.New()
		expected := &service.BoardResponse{
			TrainingID: suite.trainingID,
			StartsAt:   time.Date(2026, 9, 3, 17, 30, 0, 0, time.UTC),
			Records: []service.BoardRecord{
				{
					ID:           &recordID,
					PlayerID:     uuid.New(),
					JerseyNumber: 1,
					Status:       models.AttendanceAbsent,
					IsJustified:  true,
					CheckedInVia: models.CheckInManual,
				},
				{
					ID:           nil,
					PlayerID:     uuid.New(),
					JerseyNumber: 7,
					Status:       models.AttendancePresent,
					CheckedInVia: models.CheckInManual,
				},
			},
		}

		suite.mockService.EXPECT().
			GetBoard(suite.coachID, suite.teamID, suite.trainingID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.attendancePath(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var raw map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &raw)
		records, ok := raw["records"].([]interface{})
		require.True(t, ok)
		require.Len(t, records, 2)

		first := records[0].(map[string]interface{})
		assert.Equal(t, recordID.String(), first["id"])

		second := records[1].(map[string]interface{})
		assert.Nil(t, second["id"])
		assert.Equal(t, "present", second["status"])
	})

	suite.T().Run("Training Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetBoard(suite.coachID, suite.teamID, suite.trainingID).
			Return(nil, apperrors.ErrTrainingNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.attendancePath(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "training not found")
	})
}

// TestSetStatus tests the SetStatus handler
func (suite *AttendanceHandlerTestSuite) TestSetStatus() {
	playerID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		recordID := uuid.New()
		expected := &service.BoardRecord{
			ID:           &recordID,
			PlayerID:     playerID,
			Status:       models.AttendanceLate,
			CheckedInVia: models.CheckInManual,
		}

		suite.mockService.EXPECT().
			SetStatus(suite.coachID, suite.teamID, suite.trainingID, playerID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.attendancePath()+"/"+playerID.String(), service.SetStatusRequest{
			Status: models.AttendanceLate,
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.BoardRecord
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.AttendanceLate, response.Status)
		assert.NotNil(t, response.ID)
	})

	suite.T().Run("Player Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetStatus(suite.coachID, suite.teamID, suite.trainingID, playerID, gomock.Any()).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.attendancePath()+"/"+playerID.String(), service.SetStatusRequest{
			Status: models.AttendanceAbsent,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "player not found")
	})

	suite.T().Run("Invalid Player UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.attendancePath()+"/nope", service.SetStatusRequest{
			Status: models.AttendancePresent,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid playerId")
	})
}

// TestBulkJustify tests the BulkJustify handler
func (suite *AttendanceHandlerTestSuite) TestBulkJustify() {
	suite.T().Run("Success", func(t *testing.T) {
		req := service.BulkJustifyRequest{
			PlayerIDs:      []uuid.UUID{uuid.New(), uuid.New()},
			Reason:         models.AbsenceIllness,
			Justification:  "flu going around",
			ApplyToFuture:  true,
			ExpectedReturn: "2026-09-10",
		}
		expected := &service.BulkJustifyResponse{TrainingsAffected: 3, RecordsWritten: 6}

		suite.mockService.EXPECT().
			BulkJustify(suite.coachID, suite.teamID, suite.trainingID, gomock.Any()).
			DoAndReturn(func(_, _, _ uuid.UUID, got *service.BulkJustifyRequest) (*service.BulkJustifyResponse, error) {
				assert.Equal(t, models.AbsenceIllness, got.Reason)
				assert.True(t, got.ApplyToFuture)
				assert.Equal(t, "2026-09-10", got.ExpectedReturn)
				return expected, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.attendancePath()+"/justify", req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.BulkJustifyResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 3, response.TrainingsAffected)
		assert.Equal(t, 6, response.RecordsWritten)
	})

	suite.T().Run("Missing Return Date Is A 400", func(t *testing.T) {
		suite.mockService.EXPECT().
			BulkJustify(suite.coachID, suite.teamID, suite.trainingID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("expected_return", "expected_return is required with apply_to_future")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.attendancePath()+"/justify", service.BulkJustifyRequest{
			PlayerIDs:     []uuid.UUID{uuid.New()},
			Reason:        models.AbsenceFamily,
			ApplyToFuture: true,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "expected_return")
	})
}

// TestAttendanceHandlerTestSuite runs the test suite
func TestAttendanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}
