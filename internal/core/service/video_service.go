package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelhub/reelhub-api/internal/core/domain"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// FeedCache abstracts the read-through cache for the public video feed (Redis).
// Cache failures are never fatal: the service falls back to the repository.
type FeedCache interface {
	Get(ctx context.Context) ([]*domain.Video, bool, error)
	Set(ctx context.Context, videos []*domain.Video) error
	Invalidate(ctx context.Context) error
}

type videoService struct {
	repo  ports.VideoRepository
	cache FeedCache
	log   zerolog.Logger
}

// NewVideoService returns a VideoService implementation. cache may be nil,
// in which case every list hits the repository.
func NewVideoService(repo ports.VideoRepository, cache FeedCache, log zerolog.Logger) ports.VideoService {
	return &videoService{repo: repo, cache: cache, log: log}
}

// CreateVideo persists a new metadata record, filling in the display defaults
// the client omitted: controls on, 1080x1920, full quality.
func (s *videoService) CreateVideo(ctx context.Context, input ports.CreateVideoInput) (*domain.Video, error) {
	controls := true
	if input.Controls != nil {
		controls = *input.Controls
	}
	quality := domain.TransformationMaxQuality
	if input.Quality != nil {
		quality = *input.Quality
	}

	now := time.Now().UTC()
	video := &domain.Video{
		Title:        input.Title,
		Description:  input.Description,
		FileURL:      input.FileURL,
		ThumbnailURL: input.ThumbnailURL,
		Controls:     controls,
		Transformation: domain.Transformation{
			Width:   domain.TransformationWidth,
			Height:  domain.TransformationHeight,
			Quality: quality,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, video)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create video")
		return nil, fmt.Errorf("create video: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("feed cache invalidation failed")
		}
	}

	s.log.Info().Str("video_id", created.ID).Str("title", created.Title).Msg("video created")
	return created, nil
}

// ListVideos returns every video, newest first, serving from the feed cache
// when fresh. An empty store yields an empty slice.
func (s *videoService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	if s.cache != nil {
		videos, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("feed cache read failed, falling back to store")
		} else if hit {
			return videos, nil
		}
	}

	videos, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, videos); err != nil {
			s.log.Warn().Err(err).Msg("feed cache write failed")
		}
	}
	return videos, nil
}
