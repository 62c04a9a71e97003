package audit

import (
	"github.com/labstack/echo/v4"

	"github.com/drgsuite/drgsuite/pkg/respond"
)

type Handler struct {
	trail *Trail
}

func NewHandler(trail *Trail) *Handler {
	return &Handler{trail: trail}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/audit-logs", h.ListEntries)
}

func (h *Handler) ListEntries(c echo.Context) error {
	p := respond.ListParamsFrom(c, 10)
	page, err := h.trail.List(c.Request().Context(), p.Cursor, p.Limit)
	if err != nil {
		return respond.Bad(c, "invalid cursor")
	}
	return respond.OK(c, page)
}
