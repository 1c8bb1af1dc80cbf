package handlers

import (
	"net/http"

	"kora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles HTTP requests for the coach assistant
type AssistantHandler struct {
	assistantService service.AssistantServiceInterface
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService service.AssistantServiceInterface) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// Chat handles POST /teams/:teamId/assistant/chat
// @Summary Ask the assistant
// @Description Ask a question about the team; provider failures return a canned apology, never an error
// @Tags assistant
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.ChatRequest true "Question and optional conversation context"
// @Success 200 {object} service.ChatResponse "Assistant reply"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.assistantService.Chat(coachID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
