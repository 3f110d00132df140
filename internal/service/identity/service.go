// Package identity implements the identity provider: account registration,
// login, and actor resolution from bearer tokens.
package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/logiteam/logiteam-api/internal/config"
	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/repository"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// ErrInvalidCredentials is returned on a failed login. The message does not
// distinguish unknown email from wrong password.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// ProfileRepository interface for profile operations.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByEmail(email string) (*models.Profile, error)
	GetByID(id uuid.UUID) (*models.Profile, error)
}

// Service issues and validates tokens and resolves actors.
type Service struct {
	profiles ProfileRepository
	cfg      *config.AuthConfig
	log      *logger.Logger
}

// NewService creates a new identity service with concrete repository types.
func NewService(profiles *repository.ProfileRepository, cfg *config.AuthConfig, log *logger.Logger) *Service {
	return &Service{profiles: profiles, cfg: cfg, log: log}
}

// NewServiceWithInterfaces creates a new identity service with interface
// dependencies (useful for testing).
func NewServiceWithInterfaces(profiles ProfileRepository, cfg *config.AuthConfig, log *logger.Logger) *Service {
	return &Service{profiles: profiles, cfg: cfg, log: log}
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Register creates a new employee profile with a hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Profile, error) {
	var missing []string
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if len(in.Password) < 8 {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidation(missing...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &models.Profile{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         models.RoleEmployee,
	}
	if err := s.profiles.Create(profile); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", profile.Email).Msg("Registered profile")
	return profile, nil
}

// Login verifies credentials and returns a signed bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.Profile, error) {
	profile, err := s.profiles.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errs.IsNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   profile.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.TokenTTL) * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, profile, nil
}

// ActorFromToken parses a bearer token and resolves the actor's role from
// the profile record. A subject without a profile is still a valid actor
// with the default employee role.
func (s *Service) ActorFromToken(ctx context.Context, tokenString string) (models.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.Actor{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Actor{}, fmt.Errorf("invalid token claims")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Actor{}, fmt.Errorf("invalid token subject: %w", err)
	}

	profile, err := s.profiles.GetByID(subject)
	if err != nil {
		if errs.IsNotFound(err) {
			return models.Actor{ID: subject, Role: models.RoleEmployee}, nil
		}
		return models.Actor{}, err
	}

	role := profile.Role
	if role == "" {
		role = models.RoleEmployee
	}
	return models.Actor{ID: profile.ID, Role: role}, nil
}
