package coding

import (
	"errors"

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
	api.GET("/coding-jobs", h.ListJobs)
	api.GET("/coding-jobs/:id", h.GetJob)
	api.POST("/ingest-note", h.IngestNote)
	api.POST("/coding-jobs/:id/accept", h.AcceptJob)
}

type ingestRequest struct {
	ClinicalNote    string `json:"clinical_note"`
	RealNLP         bool   `json:"real_nlp"`
	VisitComplexity string `json:"visit_complexity"`
}

func (h *Handler) IngestNote(c echo.Context) error {
	var req ingestRequest
	if err := c.Bind(&req); err != nil {
		// An unparseable body is treated like a missing note so the
		// failure still lands in the audit trail.
		req = ingestRequest{}
	}
	if req.VisitComplexity == "" {
		req.VisitComplexity = "standard"
	}

	job, err := h.svc.IngestNote(c.Request().Context(), req.ClinicalNote, Options{
		UseExternalNLP:  req.RealNLP,
		VisitComplexity: req.VisitComplexity,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidNote) {
			return respond.Bad(c, ErrInvalidNote.Error())
		}
		return respond.Internal(c, ErrIngestFailed.Error())
	}
	return respond.OK(c, job)
}

func (h *Handler) ListJobs(c echo.Context) error {
	p := respond.ListParamsFrom(c, 5)
	page, err := h.svc.ListJobs(c.Request().Context(), p.Cursor, p.Limit)
	if err != nil {
		return respond.Bad(c, "invalid cursor")
	}
	return respond.OK(c, page)
}

func (h *Handler) GetJob(c echo.Context) error {
	job, err := h.svc.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.NotFound(c, "coding job not found")
	}
	return respond.OK(c, job)
}

func (h *Handler) AcceptJob(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.svc.Accept(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respond.NotFound(c, "coding job not found")
		}
		return respond.Internal(c, "failed to accept coding job")
	}
	return respond.OK(c, map[string]string{"id": id, "status": "accepted"})
}
