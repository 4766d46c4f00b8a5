package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/api/metrics"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// TokenHandler issues bearer tokens.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt.
//
// The endpoint signs a token for whatever identity the caller claims;
// there is no prior credential check. The rate limiter in front of
// this route is the only guard.
//
// @Summary      Issue a bearer token for a claimed identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Claimed identity"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
