package billing

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
	api.GET("/claims", h.ListClaims)
	api.GET("/claims/:id", h.GetClaim)
	api.GET("/payments", h.ListPayments)
	api.POST("/reconcile-batch", h.ReconcileBatch)
}

func (h *Handler) ListClaims(c echo.Context) error {
	p := respond.ListParamsFrom(c, 10)
	page, err := h.svc.ListClaims(c.Request().Context(), p.Cursor, p.Limit, c.QueryParam("status"))
	if err != nil {
		return respond.Bad(c, "invalid cursor")
	}
	return respond.OK(c, page)
}

func (h *Handler) GetClaim(c echo.Context) error {
	claim, err := h.svc.GetClaim(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.NotFound(c, "claim not found")
	}
	return respond.OK(c, claim)
}

func (h *Handler) ListPayments(c echo.Context) error {
	p := respond.ListParamsFrom(c, 10)
	page, err := h.svc.ListPayments(c.Request().Context(), p.Cursor, p.Limit)
	if err != nil {
		return respond.Bad(c, "invalid cursor")
	}
	return respond.OK(c, page)
}

func (h *Handler) ReconcileBatch(c echo.Context) error {
	result, err := h.svc.ReconcileBatch(c.Request().Context())
	if err != nil {
		return respond.Internal(c, "batch reconciliation failed")
	}
	return respond.OK(c, result)
}
