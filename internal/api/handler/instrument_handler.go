package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// InstrumentHandler handles the instrument catalog.
type InstrumentHandler struct {
	catalog ports.CatalogService
}

func NewInstrumentHandler(catalog ports.CatalogService) *InstrumentHandler {
	return &InstrumentHandler{catalog: catalog}
}

type createInstrumentRequest struct {
	Name           string  `json:"name"            validate:"required"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructor_name" validate:"required"`
	Price          float64 `json:"price"           validate:"required,gt=0"`
	AvailableSeats int     `json:"available_seats" validate:"required,gt=0"`
}

type reviewInstrumentRequest struct {
	Status   string `json:"status"   validate:"required,oneof=pending approved denied"`
	Feedback string `json:"feedback"`
}

type statusInstrumentRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved denied"`
}

// List handles GET /instruments.
//
// @Summary      List catalog entries
// @Tags         instruments
// @Produce      json
// @Success      200  {array}  domain.Instrument
// @Router       /instruments [get]
func (h *InstrumentHandler) List(c echo.Context) error {
	instruments, err := h.catalog.ListInstruments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, instruments)
}

// Create handles POST /instruments (instructor only). The submitting
// instructor's email is taken from the verified token, never from the
// body.
//
// @Summary      Submit a new catalog entry
// @Tags         instruments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInstrumentRequest  true  "Instrument details"
// @Success      201   {object}  domain.Instrument
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /instruments [post]
func (h *InstrumentHandler) Create(c echo.Context) error {
	claims, err := Identity(c)
	if err != nil {
		return err
	}

	var req createInstrumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.catalog.CreateInstrument(c.Request().Context(), ports.CreateInstrumentInput{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: claims.Email,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Review handles PUT /instruments/:id (admin only): status + feedback,
// upserting when the review fields are absent.
//
// @Summary      Review a catalog entry
// @Tags         instruments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Instrument id"
// @Param        body  body      reviewInstrumentRequest  true  "Verdict and feedback"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /instruments/{id} [put]
func (h *InstrumentHandler) Review(c echo.Context) error {
	var req reviewInstrumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.catalog.ReviewInstrument(c.Request().Context(), c.Param("id"), req.Status, req.Feedback); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "instrument reviewed"})
}

// SetStatus handles PATCH /instruments/:id (admin only): status only.
//
// @Summary      Update a catalog entry's status
// @Tags         instruments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Instrument id"
// @Param        body  body      statusInstrumentRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /instruments/{id} [patch]
func (h *InstrumentHandler) SetStatus(c echo.Context) error {
	var req statusInstrumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.catalog.SetInstrumentStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "status updated"})
}
