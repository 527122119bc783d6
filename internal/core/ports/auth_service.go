package ports

import (
	"context"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

// FailureReason classifies an expected authentication failure. Reasons are
// distinguishable internally (logs, metrics) but every reason renders as the
// same generic message to the client to avoid account enumeration.
type FailureReason string

const (
	FailureMissingCredentials FailureReason = "missing_credentials"
	FailureNoSuchUser         FailureReason = "no_such_user"
	FailureInvalidPassword    FailureReason = "invalid_password"
)

// AuthResult is the outcome of a credential check: either Identity is set, or
// Failure names why the credentials were rejected. Expected failures are
// ordinary values, not errors; the error return of Authorize is reserved for
// infrastructure faults (storage unavailable, etc.).
type AuthResult struct {
	Identity *domain.Identity
	Failure  FailureReason
}

// OK reports whether the credential check succeeded.
func (r AuthResult) OK() bool { return r.Identity != nil }

// AuthService validates credentials and registers new accounts.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authorize(ctx context.Context, email, password string) (AuthResult, error)
}
