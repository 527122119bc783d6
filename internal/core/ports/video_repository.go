package ports

import (
	"context"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

// VideoRepository defines persistence operations for video metadata.
type VideoRepository interface {
	Create(ctx context.Context, v *domain.Video) (*domain.Video, error)
	// ListNewestFirst returns all videos ordered by created_at descending.
	// An empty collection yields an empty slice, not an error.
	ListNewestFirst(ctx context.Context) ([]*domain.Video, error)
}
