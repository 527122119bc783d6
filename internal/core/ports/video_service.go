package ports

import (
	"context"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

// CreateVideoInput carries the fields a client may supply when registering an
// uploaded file. Optional fields keep pointer types so the service can tell
// "omitted" apart from a zero value when applying defaults.
type CreateVideoInput struct {
	Title        string
	Description  string
	FileURL      string
	ThumbnailURL string
	Controls     *bool
	Quality      *int
}

// VideoService defines use-case operations for video metadata.
type VideoService interface {
	CreateVideo(ctx context.Context, input CreateVideoInput) (*domain.Video, error)
	ListVideos(ctx context.Context) ([]*domain.Video, error)
}
