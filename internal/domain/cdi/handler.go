package cdi

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/drgsuite/drgsuite/internal/platform/store"
	"github.com/drgsuite/drgsuite/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/nudges", h.ListNudges)
	api.POST("/nudges/:id/apply", h.ApplyNudge)
	api.POST("/cdi/analyze", h.AnalyzeDraft)
}

func (h *Handler) ListNudges(c echo.Context) error {
	p := respond.ListParamsFrom(c, 10)
	page, err := h.svc.List(c.Request().Context(), p.Cursor, p.Limit)
	if err != nil {
		return respond.Bad(c, "invalid cursor")
	}
	return respond.OK(c, page)
}

func (h *Handler) ApplyNudge(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.svc.Apply(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respond.NotFound(c, "nudge not found")
		}
		return respond.Internal(c, "failed to apply nudge")
	}
	return respond.OK(c, map[string]string{"id": id, "status": StatusResolved})
}

type analyzeRequest struct {
	EncounterID  string `json:"encounter_id"`
	ClinicalNote string `json:"clinical_note"`
}

func (h *Handler) AnalyzeDraft(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return respond.Bad(c, "invalid request body")
	}
	if strings.TrimSpace(req.ClinicalNote) == "" {
		return respond.Bad(c, "clinical_note is required")
	}
	return respond.OK(c, h.svc.AnalyzeDraft(c.Request().Context(), req.ClinicalNote))
}
