package reporting

import (
	"github.com/labstack/echo/v4"

	"github.com/drgsuite/drgsuite/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/analytics", h.Summary)
}

func (h *Handler) Summary(c echo.Context) error {
	summary, err := h.svc.Summarize(c.Request().Context())
	if err != nil {
		return respond.Bad(c, "Failed to retrieve analytics data.")
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	return respond.OK(c, summary)
}
