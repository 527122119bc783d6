package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/reelhub-api/internal/api/metrics"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// VideoHandler handles HTTP requests for video metadata.
type VideoHandler struct {
	service ports.VideoService
}

func NewVideoHandler(service ports.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// List handles GET /api/videos.
//
// @Summary      List all videos, newest first
// @Tags         videos
// @Produce      json
// @Success      200  {array}   videoResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/videos [get]
func (h *VideoHandler) List(c echo.Context) error {
	videos, err := h.service.ListVideos(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch videos"})
	}
	return c.JSON(http.StatusOK, toVideoListResponse(videos))
}

// Create handles POST /api/videos. The access gate guarantees a valid session
// before this runs.
//
// @Summary      Store metadata for an uploaded video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVideoRequest  true  "Video metadata"
// @Success      201   {object}  videoResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/videos [post]
func (h *VideoHandler) Create(c echo.Context) error {
	var req createVideoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	video, err := h.service.CreateVideo(c.Request().Context(), toCreateVideoInput(req))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create video"})
	}

	metrics.VideosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toVideoResponse(video))
}
