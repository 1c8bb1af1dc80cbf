package handlers

import (
	"net/http"
	"strconv"

	"kora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainingHandler handles HTTP requests for training operations
type TrainingHandler struct {
	trainingService service.TrainingServiceInterface
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(trainingService service.TrainingServiceInterface) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
	}
}

// CreateTraining handles POST /teams/:teamId/trainings
// @Summary Schedule a training
// @Description Create a training from a calendar date and a time of day
// @Tags trainings
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param training body service.CreateTrainingRequest true "Training data"
// @Success 201 {object} service.TrainingResponse "Successfully created training"
// @Failure 400 {object} map[string]interface{} "Invalid request body, date or time"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings [post]
func (h *TrainingHandler) CreateTraining(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	training, err := h.trainingService.Create(coachID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, training)
}

// GetTraining handles GET /teams/:teamId/trainings/:trainingId
// @Summary Get a training
// @Description Get one training by its UUID
// @Tags trainings
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param trainingId path string true "Training ID (UUID)"
// @Success 200 {object} service.TrainingResponse "Successfully retrieved training"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Team or training not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings/{trainingId} [get]
func (h *TrainingHandler) GetTraining(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	trainingID, ok := parseUUIDParam(c, "trainingId")
	if !ok {
		return
	}

	training, err := h.trainingService.Get(coachID, teamID, trainingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, training)
}

// ListTrainings handles GET /teams/:teamId/trainings
// @Summary List trainings
// @Description Trainings bucketed into upcoming or past relative to the start of today
// @Tags trainings
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param when query string false "Bucket: upcoming or past; omit for all"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Param sort query string false "Sort key: starts_at, created_at, type or location"
// @Param order query string false "Sort order: asc or desc"
// @Success 200 {object} service.TrainingListResponse "Page of trainings"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings [get]
func (h *TrainingHandler) ListTrainings(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	req := &service.ListTrainingsRequest{
		When:     c.Query("when"),
		Limit:    limit,
		Offset:   offset,
		SortKey:  c.Query("sort"),
		SortDesc: c.DefaultQuery("order", "asc") == "desc",
	}

	trainings, err := h.trainingService.List(coachID, teamID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainings)
}

// UpdateTrainingStatus handles PATCH /teams/:teamId/trainings/:trainingId/status
// @Summary Update training status
// @Description Move a training between scheduled, cancelled and completed
// @Tags trainings
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param trainingId path string true "Training ID (UUID)"
// @Param request body service.UpdateTrainingStatusRequest true "New status"
// @Success 200 {object} service.TrainingResponse "Successfully updated training"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Team or training not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings/{trainingId}/status [patch]
func (h *TrainingHandler) UpdateTrainingStatus(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	trainingID, ok := parseUUIDParam(c, "trainingId")
	if !ok {
		return
	}

	var req service.UpdateTrainingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	training, err := h.trainingService.UpdateStatus(coachID, teamID, trainingID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, training)
}

// DeleteTraining handles DELETE /teams/:teamId/trainings/:trainingId
// @Summary Delete a training
// @Description Remove a training and its attendance records
// @Tags trainings
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param trainingId path string true "Training ID (UUID)"
// @Success 204 {string} string "Training deleted"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Team or training not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings/{trainingId} [delete]
func (h *TrainingHandler) DeleteTraining(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	trainingID, ok := parseUUIDParam(c, "trainingId")
	if !ok {
		return
	}

	if err := h.trainingService.Delete(coachID, teamID, trainingID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
