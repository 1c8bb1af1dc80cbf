package handlers

import (
	"net/http"
	"strconv"

	"kora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BulkHandler handles HTTP requests for bulk roster operations
type BulkHandler struct {
	bulkService service.BulkServiceInterface
}

// NewBulkHandler creates a new bulk operations handler
func NewBulkHandler(bulkService service.BulkServiceInterface) *BulkHandler {
	return &BulkHandler{
		bulkService: bulkService,
	}
}

// ApplyBulkAction handles POST /teams/:teamId/players/bulk
// @Summary Apply a bulk action to players
// @Description Apply one action to a set of players; any foreign player id fails the whole request
// @Tags bulk
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.BulkActionRequest true "Action and player ids"
// @Success 200 {object} service.BulkActionResponse "Action applied"
// @Failure 400 {object} map[string]interface{} "Validation failure or foreign player id"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players/bulk [post]
func (h *BulkHandler) ApplyBulkAction(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.bulkService.Apply(coachID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UndoBulkAction handles POST /teams/:teamId/players/bulk/:historyId/undo
// @Summary Undo a bulk action
// @Description Restore the prior-state snapshot while the 24-hour undo window is open
// @Tags bulk
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param historyId path string true "Bulk action record ID (UUID)"
// @Success 200 {object} service.BulkUndoResponse "Action undone"
// @Failure 400 {object} map[string]interface{} "Window expired or already undone"
// @Failure 404 {object} map[string]interface{} "Team or record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players/bulk/{historyId}/undo [post]
func (h *BulkHandler) UndoBulkAction(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	historyID, ok := parseUUIDParam(c, "historyId")
	if !ok {
		return
	}

	result, err := h.bulkService.Undo(coachID, teamID, historyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBulkHistory handles GET /teams/:teamId/players/bulk/history
// @Summary List bulk action history
// @Description Paginated audit trail of bulk actions, newest first
// @Tags bulk
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BulkHistoryResponse "History page"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players/bulk/history [get]
func (h *BulkHandler) GetBulkHistory(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	history, err := h.bulkService.History(coachID, teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
