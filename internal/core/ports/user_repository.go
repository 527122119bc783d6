package ports

import (
	"context"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must rely on the storage-level unique index on email to reject
// duplicates, so two concurrent registrations cannot both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
