package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelhub/reelhub-api/internal/core/domain"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// AuthService implements registration and credential verification against the
// user repository. It never issues tokens itself; the session service does.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, log: log}
}

// Register hashes the password and persists a new user. Duplicate emails are
// caught by the repository's unique index, not by a pre-check read, so the
// existence check and the insert are one atomic unit at the storage layer.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Authorize runs the credential check: presence, lookup, hash comparison.
// Expected rejections come back as an AuthResult failure reason; the error
// return only reports infrastructure faults.
func (s *AuthService) Authorize(ctx context.Context, email, password string) (ports.AuthResult, error) {
	if email == "" || password == "" {
		return ports.AuthResult{Failure: ports.FailureMissingCredentials}, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return ports.AuthResult{Failure: ports.FailureNoSuchUser}, nil
		}
		return ports.AuthResult{}, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return ports.AuthResult{Failure: ports.FailureInvalidPassword}, nil
	}

	return ports.AuthResult{Identity: &domain.Identity{ID: user.ID, Email: user.Email}}, nil
}
