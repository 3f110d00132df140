// Package api exposes the HTTP surface of the workforce service. One
// handler per area, a shared auth middleware, and a single error mapping
// from the workflow taxonomy onto status codes.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/service/attendance"
	"github.com/logiteam/logiteam-api/internal/service/identity"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

const actorKey = "actor"

// actorFrom returns the authenticated actor placed by the auth middleware.
func actorFrom(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

// respondError maps workflow errors onto HTTP status codes. Every error is
// surfaced to the caller; nothing is swallowed.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "fields": ve.Fields})
	case errs.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errs.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, identity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, attendance.ErrAlreadyCheckedIn), errors.Is(err, attendance.ErrNotCheckedIn):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errs.IsStore(err):
		log.Error().Err(err).Msg("Store failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
