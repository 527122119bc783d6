package handler

import (
	"time"

	"github.com/reelhub/reelhub-api/internal/core/domain"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// --- Request types ---

type transformationRequest struct {
	Quality *int `json:"quality" validate:"omitempty,min=1,max=100"`
}

type createVideoRequest struct {
	Title          string                 `json:"title"         validate:"required"`
	Description    string                 `json:"description"`
	FileURL        string                 `json:"file_url"      validate:"required,url"`
	ThumbnailURL   string                 `json:"thumbnail_url" validate:"omitempty,url"`
	Controls       *bool                  `json:"controls"`
	Transformation *transformationRequest `json:"transformation"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type transformationResponse struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Quality int `json:"quality"`
}

type videoResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description,omitempty"`
	FileURL        string                 `json:"file_url"`
	ThumbnailURL   string                 `json:"thumbnail_url,omitempty"`
	Controls       bool                   `json:"controls"`
	Transformation transformationResponse `json:"transformation"`
	CreatedAt      time.Time              `json:"created_at"`
}

// --- Request → Service input ---

func toCreateVideoInput(req createVideoRequest) ports.CreateVideoInput {
	input := ports.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		FileURL:      req.FileURL,
		ThumbnailURL: req.ThumbnailURL,
		Controls:     req.Controls,
	}
	if req.Transformation != nil {
		input.Quality = req.Transformation.Quality
	}
	return input
}

// --- Domain → HTTP response ---

func toVideoResponse(v *domain.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		FileURL:      v.FileURL,
		ThumbnailURL: v.ThumbnailURL,
		Controls:     v.Controls,
		Transformation: transformationResponse{
			Width:   v.Transformation.Width,
			Height:  v.Transformation.Height,
			Quality: v.Transformation.Quality,
		},
		CreatedAt: v.CreatedAt.UTC(),
	}
}

func toVideoListResponse(videos []*domain.Video) []videoResponse {
	out := make([]videoResponse, len(videos))
	for i, v := range videos {
		out[i] = toVideoResponse(v)
	}
	return out
}
