package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/reelhub-api/internal/api/metrics"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// UploadHandler issues the short-lived tickets a client needs before
// uploading a file directly to the media provider.
type UploadHandler struct {
	service   ports.UploadService
	provider  string
	publicKey string
}

func NewUploadHandler(service ports.UploadService, provider, publicKey string) *UploadHandler {
	return &UploadHandler{service: service, provider: provider, publicKey: publicKey}
}

type uploadAuthResponse struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature,omitempty"`
	UploadURL string `json:"upload_url,omitempty"`
	PublicKey string `json:"public_key,omitempty"`
}

// Auth handles GET /api/upload/auth.
//
// @Summary      Authorize a direct-to-provider upload
// @Tags         upload
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  uploadAuthResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/upload/auth [get]
func (h *UploadHandler) Auth(c echo.Context) error {
	ticket, err := h.service.IssueTicket(c.Request().Context())
	if err != nil {
		// UpstreamError mapping happens in the central error handler.
		return err
	}

	metrics.UploadTicketsTotal.WithLabelValues(h.provider).Inc()
	return c.JSON(http.StatusOK, uploadAuthResponse{
		Token:     ticket.Token,
		Expire:    ticket.Expire,
		Signature: ticket.Signature,
		UploadURL: ticket.UploadURL,
		PublicKey: h.publicKey,
	})
}
