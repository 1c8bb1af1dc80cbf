package handlers

import (
	"net/http"

	"kora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles HTTP requests for roster exports
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportRoster handles GET /teams/:teamId/export
// @Summary Export the roster
// @Description Download the team roster as CSV or an Excel workbook; contact and medical columns are opt-in
// @Tags export
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param teamId path string true "Team ID (UUID)"
// @Param format query string false "csv or excel" default(csv)
// @Param include_archived query bool false "Include archived players" default(false)
// @Param include_contacts query bool false "Include contact columns" default(false)
// @Param include_medical query bool false "Include the medical note column" default(false)
// @Success 200 {string} string "File download"
// @Failure 400 {object} map[string]interface{} "Unknown format"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/export [get]
func (h *ExportHandler) ExportRoster(c *gin.Context) {
	coachID, ok := requireCoachID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	format := service.ExportFormatCSV
	switch c.DefaultQuery("format", "csv") {
	case "csv":
	case "excel", "xlsx":
		format = service.ExportFormatXLSX
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or excel"})
		return
	}

	result, err := h.exportService.Roster(coachID, teamID, service.ExportOptions{
		Format:          format,
		IncludeArchived: c.DefaultQuery("include_archived", "false") == "true",
		IncludeContacts: c.DefaultQuery("include_contacts", "false") == "true",
		IncludeMedical:  c.DefaultQuery("include_medical", "false") == "true",
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
