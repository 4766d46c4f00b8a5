package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/api/metrics"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// AdmissionHandler handles enrollment records.
type AdmissionHandler struct {
	admissions ports.AdmissionService
}

func NewAdmissionHandler(admissions ports.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{admissions: admissions}
}

type createAdmissionRequest struct {
	Email          string  `json:"email"           validate:"required,email"`
	InstrumentID   string  `json:"instrument_id"   validate:"required"`
	InstrumentName string  `json:"instrument_name" validate:"required"`
	InstructorName string  `json:"instructor_name"`
	Price          float64 `json:"price"           validate:"required,gt=0"`
}

// List handles GET /admission?email=E. A missing email yields an
// empty array rather than an error.
//
// @Summary      List admissions for a student
// @Tags         admission
// @Produce      json
// @Param        email  query    string  false  "Student email"
// @Success      200    {array}  domain.Admission
// @Router       /admission [get]
func (h *AdmissionHandler) List(c echo.Context) error {
	admissions, err := h.admissions.ListByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admissions)
}

// Create handles POST /admission.
//
// @Summary      Create an admission record
// @Tags         admission
// @Accept       json
// @Produce      json
// @Param        body  body      createAdmissionRequest  true  "Enrollment details"
// @Success      201   {object}  domain.Admission
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admission [post]
func (h *AdmissionHandler) Create(c echo.Context) error {
	var req createAdmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.admissions.Create(c.Request().Context(), ports.CreateAdmissionInput{
		Email:          req.Email,
		InstrumentID:   req.InstrumentID,
		InstrumentName: req.InstrumentName,
		InstructorName: req.InstructorName,
		Price:          req.Price,
	})
	if err != nil {
		return err
	}

	metrics.AdmissionsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// Delete handles DELETE /admission/:id.
//
// @Summary      Delete an admission record
// @Tags         admission
// @Produce      json
// @Param        id  path  string  true  "Admission id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admission/{id} [delete]
func (h *AdmissionHandler) Delete(c echo.Context) error {
	if err := h.admissions.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "admission deleted"})
}
