package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/service/teams"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// TeamsService interface for team and profile management.
type TeamsService interface {
	CreateTeam(ctx context.Context, actor models.Actor, name string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, actor models.Actor, id uuid.UUID, in teams.ProfileUpdates) (*models.Profile, error)
}

// TeamsHandler handles team and profile directory endpoints.
type TeamsHandler struct {
	teams TeamsService
	log   *logger.Logger
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(teams TeamsService, log *logger.Logger) *TeamsHandler {
	return &TeamsHandler{teams: teams, log: log}
}

type createTeamBody struct {
	Name string `json:"name"`
}

// CreateTeam creates a team. Admin only.
// POST /api/v1/teams.
func (h *TeamsHandler) CreateTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var body createTeamBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	team, err := h.teams.CreateTeam(c.Request.Context(), actor, body.Name)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams returns all teams ordered by name.
// GET /api/v1/teams.
func (h *TeamsHandler) ListTeams(c *gin.Context) {
	list, err := h.teams.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": list})
}

// ListProfiles returns the employee directory with teams attached.
// GET /api/v1/profiles.
func (h *TeamsHandler) ListProfiles(c *gin.Context) {
	list, err := h.teams.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": list})
}

// UpdateProfile updates a profile. Self or admin.
// PATCH /api/v1/profiles/:id.
func (h *TeamsHandler) UpdateProfile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in teams.ProfileUpdates
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.teams.UpdateProfile(c.Request.Context(), actor, id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
