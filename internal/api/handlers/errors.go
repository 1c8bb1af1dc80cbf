package handlers

import (
	"net/http"

	"kora-backend/internal/auth"
	apperrors "kora-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP statuses. Conflicts and limit
// violations are client errors and come back as 400.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err), apperrors.IsLimitExceeded(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// requireCoachID pulls the authenticated coach id from the request context.
// Returns false after writing a 401 when the middleware did not run.
func requireCoachID(c *gin.Context) (uuid.UUID, bool) {
	coachID, ok := auth.GetCoachID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrCoachIDNotInContext.Error()})
		return uuid.Nil, false
	}
	return coachID, true
}

// parseUUIDParam parses a path parameter as a UUID, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
