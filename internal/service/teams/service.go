// Package teams implements team and profile directory management.
package teams

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/repository"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// TeamRepository interface for team operations.
type TeamRepository interface {
	Create(team *models.Team) error
	List() ([]models.Team, error)
}

// ProfileRepository interface for profile operations.
type ProfileRepository interface {
	GetByID(id uuid.UUID) (*models.Profile, error)
	List() ([]models.Profile, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*models.Profile, error)
}

// Service handles team and profile management.
type Service struct {
	teams    TeamRepository
	profiles ProfileRepository
	log      *logger.Logger
}

// NewService creates a new teams service with concrete repository types.
func NewService(teams *repository.TeamRepository, profiles *repository.ProfileRepository, log *logger.Logger) *Service {
	return &Service{teams: teams, profiles: profiles, log: log}
}

// NewServiceWithInterfaces creates a new teams service with interface
// dependencies (useful for testing).
func NewServiceWithInterfaces(teams TeamRepository, profiles ProfileRepository, log *logger.Logger) *Service {
	return &Service{teams: teams, profiles: profiles, log: log}
}

// CreateTeam creates a team with a unique non-empty name. Admin only.
func (s *Service) CreateTeam(ctx context.Context, actor models.Actor, name string) (*models.Team, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValidation("name")
	}

	team := &models.Team{Name: name}
	if err := s.teams.Create(team); err != nil {
		return nil, err
	}

	s.log.Info().Str("team", name).Msg("Team created")
	return team, nil
}

// ListTeams returns all teams ordered by name.
func (s *Service) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.teams.List()
}

// ListProfiles returns the employee directory with teams attached.
func (s *Service) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.List()
}

// ProfileUpdates carries the updatable profile fields. Role and team
// assignment are honored only for admin actors.
type ProfileUpdates struct {
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	AvatarURL *string    `json:"avatar_url"`
	Role      *string    `json:"role"`
	TeamID    *uuid.UUID `json:"team_id"`
}

// UpdateProfile applies updates to a profile. An actor may update their own
// profile; admins may update anyone and additionally change role and team.
func (s *Service) UpdateProfile(ctx context.Context, actor models.Actor, id uuid.UUID, in ProfileUpdates) (*models.Profile, error) {
	if actor.ID != id && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	updates := make(map[string]interface{})
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.AvatarURL != nil {
		updates["avatar_url"] = *in.AvatarURL
	}
	if actor.IsAdmin() {
		if in.Role != nil {
			switch *in.Role {
			case models.RoleEmployee, models.RoleManager, models.RoleAdmin:
				updates["role"] = *in.Role
			default:
				return nil, errs.NewValidation("role")
			}
		}
		if in.TeamID != nil {
			updates["team_id"] = *in.TeamID
		}
	} else if in.Role != nil || in.TeamID != nil {
		return nil, errs.ErrForbidden
	}

	if len(updates) == 0 {
		return s.profiles.GetByID(id)
	}

	profile, err := s.profiles.Update(id, updates)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("profile", id.String()).Msg("Profile updated")
	return profile, nil
}
