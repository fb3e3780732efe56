package patient

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
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
	api.POST("/patients", h.Create)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	patients, err := h.svc.List(c.Request().Context())
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to fetch patients")
	}
	if patients == nil {
		patients = []*Patient{}
	}
	return envelope.OK(c, patients)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid patient ID")
	}

	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to fetch patient")
	}
	if p == nil {
		return envelope.Fail(c, http.StatusNotFound, "Patient not found")
	}
	return envelope.OK(c, p)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if issues := in.Validate(); len(issues) > 0 {
		return envelope.Invalid(c, issues)
	}

	p, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to create patient")
	}
	return envelope.Created(c, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid patient ID")
	}

	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if issues := in.Validate(); len(issues) > 0 {
		return envelope.Invalid(c, issues)
	}

	p, err := h.svc.Update(c.Request().Context(), id, &in)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to update patient")
	}
	if p == nil {
		return envelope.Fail(c, http.StatusNotFound, "Patient not found")
	}
	return envelope.OK(c, p)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, "Invalid patient ID")
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return envelope.Fail(c, http.StatusInternalServerError, "Failed to delete patient")
	}
	if !deleted {
		return envelope.Fail(c, http.StatusNotFound, "Patient not found")
	}
	return envelope.Message(c, "Patient deleted successfully")
}
