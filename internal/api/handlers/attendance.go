package handlers

import (
	"net/http"

	"kora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles HTTP requests for the attendance ledger
type AttendanceHandler struct {
	attendanceService service.AttendanceServiceInterface
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService service.AttendanceServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// GetBoard handles GET /teams/:teamId/trainings/:trainingId/attendance
// @Summary Get the attendance board
// @Description Full roster for a training; players without a stored record appear as present with a null id
// @Tags attendance
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param trainingId path string true "Training ID (UUID)"
// @Success 200 {object} service.BoardResponse "Attendance board"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Team or training not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings/{trainingId}/attendance [get]
func (h *AttendanceHandler) GetBoard(c *gin.Context) {
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

	board, err := h.attendanceService.GetBoard(coachID, teamID, trainingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// SetStatus handles PUT /teams/:teamId/trainings/:trainingId/attendance/:playerId
// @Summary Set a player's attendance
// @Description Upsert the attendance record for one player and training; the last write wins
// @Tags attendance
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param trainingId path string true "Training ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param request body service.SetStatusRequest true "Attendance state"
// @Success 200 {object} service.BoardRecord "Persisted record"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Team, training or player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings/{trainingId}/attendance/{playerId} [put]
func (h *AttendanceHandler) SetStatus(c *gin.Context) {
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
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}

	var req service.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.attendanceService.SetStatus(coachID, teamID, trainingID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// BulkJustify handles POST /teams/:teamId/trainings/:trainingId/attendance/justify
// @Summary Justify absences in bulk
// @Description Mark a set of players absent with one shared justification, optionally across future trainings
// @Tags attendance
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param trainingId path string true "Training ID (UUID)"
// @Param request body service.BulkJustifyRequest true "Players and justification"
// @Success 200 {object} service.BulkJustifyResponse "Records written"
// @Failure 400 {object} map[string]interface{} "Validation failure or foreign player id"
// @Failure 404 {object} map[string]interface{} "Team or training not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/trainings/{trainingId}/attendance/justify [post]
func (h *AttendanceHandler) BulkJustify(c *gin.Context) {
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

	var req service.BulkJustifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.attendanceService.BulkJustify(coachID, teamID, trainingID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
