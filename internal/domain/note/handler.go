package note

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
	api.GET("/notes", h.List)
	api.GET("/notes/:id", h.Get)
	api.POST("/notes", h.Create)
	api.PUT("/notes/:id", h.Update)
	api.DELETE("/notes/:id", h.Delete)
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

	notes, err := h.svc.List(c.Request().Context(), patientID)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to fetch notes")
	}
	if notes == nil {
		notes = []*Note{}
	}
	return envelope.OK(c, notes)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid note ID")
	}

	n, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to fetch note")
	}
	if n == nil {
		return envelope.Fail(c, http.StatusNotFound, "Note not found")
	}
	return envelope.OK(c, n)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if issues := in.Validate(); len(issues) > 0 {
		return envelope.Invalid(c, issues)
	}

	n, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to create note")
	}
	return envelope.Created(c, n)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid note ID")
	}

	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if issues := in.Validate(); len(issues) > 0 {
		return envelope.Invalid(c, issues)
	}

	n, err := h.svc.Update(c.Request().Context(), id, &in)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to update note")
	}
	if n == nil {
		return envelope.Fail(c, http.StatusNotFound, "Note not found")
	}
	return envelope.OK(c, n)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid note ID")
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to delete note")
	}
	if !deleted {
		return envelope.Fail(c, http.StatusNotFound, "Note not found")
	}
	return envelope.Message(c, "Note deleted successfully")
}
