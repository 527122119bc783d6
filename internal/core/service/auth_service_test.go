package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/reelhub/reelhub-api/internal/core/domain"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// stubUserRepo enforces email uniqueness the way the Mongo index does.
type stubUserRepo struct {
	users map[string]*domain.User
	next  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.next++
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.next)
	created.UpdatedAt = time.Now().UTC()
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), "alice@example.com", "Secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "" || user.PasswordHash == "Secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "bob@example.com", "pass01"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "other1"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(repo.users))
	}
}

func TestAuthService_Authorize_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	created, err := svc.Register(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Authorize(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Authorize returned error: %v", err)
	}
	if !result.OK() {
		t.Fatalf("expected success, got failure %q", result.Failure)
	}
	if result.Identity.ID != created.ID || result.Identity.Email != "carol@example.com" {
		t.Fatalf("unexpected identity: %+v", result.Identity)
	}
}

func TestAuthService_Authorize_Failures(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
		want     ports.FailureReason
	}{
		{"missing email", "", "goodpass", ports.FailureMissingCredentials},
		{"missing password", "dave@example.com", "", ports.FailureMissingCredentials},
		{"unknown user", "ghost@example.com", "goodpass", ports.FailureNoSuchUser},
		{"wrong password", "dave@example.com", "badpass", ports.FailureInvalidPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Authorize(context.Background(), tc.email, tc.password)
			if err != nil {
				t.Fatalf("Authorize returned error: %v", err)
			}
			if result.OK() {
				t.Fatalf("expected failure, got identity %+v", result.Identity)
			}
			if result.Failure != tc.want {
				t.Fatalf("expected reason %q, got %q", tc.want, result.Failure)
			}
		})
	}
}
