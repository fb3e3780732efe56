package summary

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/pkg/envelope"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/summaries", h.List)
	api.GET("/summaries/:id", h.Get)
	api.POST("/summaries", h.Create)
	api.PUT("/summaries/:id", h.Update)
	api.DELETE("/summaries/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	var patientID *int64
	if raw := c.QueryParam("patientId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return envelope.Fail(c, http.StatusBadRequest, "Invalid patient ID")
		}
		patientID = &id
	}

	summaries, err := h.svc.List(c.Request().Context(), patientID)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to fetch summaries")
	}
	if summaries == nil {
		summaries = []*Summary{}
	}
	return envelope.OK(c, summaries)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid summary ID")
	}

	s, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to fetch summary")
	}
	if s == nil {
		return envelope.Fail(c, http.StatusNotFound, "Summary not found")
	}
	return envelope.OK(c, s)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if issues := in.Validate(); len(issues) > 0 {
		return envelope.Invalid(c, issues)
	}

	s, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to create summary")
	}
	return envelope.Created(c, s)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid summary ID")
	}

	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if issues := in.Validate(); len(issues) > 0 {
		return envelope.Invalid(c, issues)
	}

	s, err := h.svc.Update(c.Request().Context(), id, &in)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to update summary")
	}
	if s == nil {
		return envelope.Fail(c, http.StatusNotFound, "Summary not found")
	}
	return envelope.OK(c, s)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid summary ID")
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to delete summary")
	}
	if !deleted {
		return envelope.Fail(c, http.StatusNotFound, "Summary not found")
	}
	return envelope.Message(c, "Summary deleted successfully")
}
