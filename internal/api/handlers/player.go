package handlers

import (
	"net/http"
	"strconv"
	"time"

	"kora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for roster operations
type PlayerHandler struct {
	playerService     service.PlayerServiceInterface
	attendanceService service.AttendanceServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface, attendanceService service.AttendanceServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService:     playerService,
		attendanceService: attendanceService,
	}
}

// CreatePlayer handles POST /teams/:teamId/players
// @Summary Add a player to the roster
// @Description Create a player with age, jersey uniqueness and tier ceiling checks
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} map[string]interface{} "Validation failure, jersey conflict or roster limit reached"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Create(coachID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer handles PUT /teams/:teamId/players/:playerId
// @Summary Update a player
// @Description Update a roster player; only supplied fields are validated and changed
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param player body service.UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 400 {object} map[string]interface{} "Validation failure or jersey conflict"
// @Failure 404 {object} map[string]interface{} "Team or player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players/{playerId} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Update(coachID, teamID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// ArchivePlayer handles DELETE /teams/:teamId/players/:playerId
// @Summary Archive a player
// @Description Soft-delete a player from the roster; attendance history is kept. Idempotent.
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerResponse "Player archived"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Team or player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players/{playerId} [delete]
func (h *PlayerHandler) ArchivePlayer(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}

	player, err := h.playerService.Archive(coachID, teamID, playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// ListPlayers handles GET /teams/:teamId/players
// @Summary List the roster
// @Description Get the team roster ordered by jersey number then last name
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param include_archived query bool false "Include archived players" default(false)
// @Success 200 {object} service.PlayerListResponse "Successfully retrieved roster"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	includeArchived := c.DefaultQuery("include_archived", "false") == "true"

	players, err := h.playerService.List(coachID, teamID, includeArchived)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPlayerStats handles GET /teams/:teamId/players/:playerId/stats
// @Summary Player attendance statistics
// @Description Present percentage and trend for a player over a month or a year
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12; omit for a whole-year period"
// @Success 200 {object} service.StatsResponse "Statistics"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Team or player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/players/{playerId}/stats [get]
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}

	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 || parsed > 2100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	var month *time.Month
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		m := time.Month(parsed)
		month = &m
	}

	stats, err := h.attendanceService.PlayerStats(coachID, teamID, playerID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
