package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// InstructorHandler serves the public instructor directory.
type InstructorHandler struct {
	catalog ports.CatalogService
}

func NewInstructorHandler(catalog ports.CatalogService) *InstructorHandler {
	return &InstructorHandler{catalog: catalog}
}

// List handles GET /instructors.
//
// @Summary      List instructors
// @Tags         instructors
// @Produce      json
// @Success      200  {array}  domain.Instructor
// @Router       /instructors [get]
func (h *InstructorHandler) List(c echo.Context) error {
	instructors, err := h.catalog.ListInstructors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, instructors)
}

// Get handles GET /instructors/:id.
//
// @Summary      Get an instructor profile
// @Tags         instructors
// @Produce      json
// @Param        id  path      string  true  "Instructor id"
// @Success      200  {object}  domain.Instructor
// @Failure      404  {object}  errorResponse
// @Router       /instructors/{id} [get]
func (h *InstructorHandler) Get(c echo.Context) error {
	instructor, err := h.catalog.GetInstructor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, instructor)
}
