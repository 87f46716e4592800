package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/ports"
	"github.com/ims-platform/inventory-system/internal/core/token"
	"github.com/ims-platform/inventory-system/internal/pkg/password"
)

// AuthService implements credential verification and token issuance.
type AuthService struct {
	repo  ports.UserRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, log: log}
}

// Login verifies email+password and issues a bearer token. Unknown email,
// inactive account, and wrong password all collapse into
// domain.ErrInvalidCredentials so responses cannot be used to enumerate
// accounts; the real reason goes to the internal log only.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("login rejected: unknown or inactive account")
			return "", nil, domain.ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("credential lookup failed")
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !password.Verify(user.PasswordHash, pass) {
		s.log.Debug().Str("email", email).Msg("login rejected: password mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(user)
	if err != nil {
		s.log.Error().Err(err).Msg("token issuance failed")
		return "", nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", user.RoleName).Msg("login succeeded")
	return tkn, user, nil
}

// VerifyToken decodes a bearer token and re-fetches the subject's profile.
// The round-trip means a deactivated account fails here even while its
// token is still unexpired.
func (s *AuthService) VerifyToken(ctx context.Context, raw string) (*token.Claims, *domain.User, error) {
	claims, err := s.codec.Decode(raw)
	if err != nil {
		return nil, nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidToken
		}
		return nil, nil, fmt.Errorf("verify token: %w", err)
	}

	return claims, user, nil
}

// Profile returns the ACTIVE profile for the given user id.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

// ListUsers returns all identities, newest first, including inactive ones.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
