package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the public navigation endpoints. The real UI is a
// separate frontend; these exist so browser redirects land somewhere useful.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c echo.Context) error {
	return c.HTML(http.StatusOK, "<!doctype html><title>reelhub</title><h1>reelhub</h1>")
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.HTML(http.StatusOK, "<!doctype html><title>login</title><h1>Sign in</h1>")
}

func (h *PageHandler) Register(c echo.Context) error {
	return c.HTML(http.StatusOK, "<!doctype html><title>register</title><h1>Create account</h1>")
}
