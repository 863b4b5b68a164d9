package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/client-service-manager/internal/records"
)

// mutationOK writes the success envelope shared by every mutating
// route. Creates include the generated row id so the caller can fetch
// the new record.
func mutationOK(c *gin.Context, message, rowID string) {
	body := gin.H{"success": true, "message": message}
	if rowID != "" {
		body["row_id"] = rowID
	}
	c.JSON(http.StatusOK, body)
}

// mutationFail writes the failure envelope
func mutationFail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// mutationError maps a repository error onto the failure envelope:
// a missing record is the caller's problem, anything else is the
// store's and only a generic message leaves the boundary.
func mutationError(c *gin.Context, log zerolog.Logger, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, records.ErrNotFound) {
		mutationFail(c, http.StatusNotFound, notFoundMsg)
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Store operation failed")
	mutationFail(c, http.StatusInternalServerError, failMsg)
}

// detailError maps a repository error for read-only detail routes
func detailError(c *gin.Context, log zerolog.Logger, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, records.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Store operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
}
