package identity

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
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:id", h.GetPatient)
	api.GET("/encounters", h.ListEncounters)
	api.GET("/encounters/:id", h.GetEncounter)
}

func (h *Handler) ListPatients(c echo.Context) error {
	p := respond.ListParamsFrom(c, 10)
	page, err := h.svc.ListPatients(c.Request().Context(), p.Cursor, p.Limit)
	if err != nil {
		return respond.Bad(c, "invalid cursor")
	}
	return respond.OK(c, page)
}

func (h *Handler) GetPatient(c echo.Context) error {
	patient, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.NotFound(c, "patient not found")
	}
	return respond.OK(c, patient)
}

func (h *Handler) ListEncounters(c echo.Context) error {
	p := respond.ListParamsFrom(c, 10)
	page, err := h.svc.ListEncounters(c.Request().Context(), p.Cursor, p.Limit)
	if err != nil {
		return respond.Bad(c, "invalid cursor")
	}
	return respond.OK(c, page)
}

func (h *Handler) GetEncounter(c echo.Context) error {
	enc, err := h.svc.GetEncounter(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.NotFound(c, "encounter not found")
	}
	return respond.OK(c, enc)
}
