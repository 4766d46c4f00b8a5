package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/api/metrics"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/service"
)

// PaymentHandler creates payment intents through the external provider.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createPaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentIntentRequest  true  "Price in whole currency units"
// @Success      200   {object}  createPaymentIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	secret, err := h.payments.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payment amount")
		}
		metrics.PaymentIntentsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, createPaymentIntentResponse{ClientSecret: secret})
}
