package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// UserHandler handles registration, user administration and the
// self-check endpoints.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	PhotoURL string `json:"photo_url"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type checkAdminResponse struct {
	Admin bool `json:"admin"`
}

type checkInstructorResponse struct {
	Instructor bool `json:"instructor"`
}

// Register handles POST /users, idempotent self-registration.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User profile"
// @Success      200   {object}  messageResponse  "user already existed"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.PhotoURL)
	if err != nil {
		return err
	}
	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, messageResponse{Message: "user exists..."})
	}

	return c.JSON(http.StatusCreated, result.User)
}

// List handles GET /users (admin only).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole handles PATCH /users/:id (admin only).
//
// @Summary      Assign a role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.users.UpdateRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role updated"})
}

// CheckAdmin handles GET /users/checkAdmin/:email.
//
// A caller may only ask about their own identity: when the token email
// does not match the requested one the handler returns the false body
// immediately, without touching the store.
//
// @Summary      Check whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email to check (must match token identity)"
// @Success      200    {object}  checkAdminResponse
// @Failure      401    {object}  errorResponse
// @Router       /users/checkAdmin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	claims, err := Identity(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if claims.Email != email {
		return c.JSON(http.StatusOK, checkAdminResponse{Admin: false})
	}

	role, err := h.users.ResolveRole(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkAdminResponse{Admin: role == domain.RoleAdmin})
}

// CheckInstructor handles GET /users/checkInstructor/:email. Same
// identity-match rule as CheckAdmin.
//
// @Summary      Check whether the caller is an instructor
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email to check (must match token identity)"
// @Success      200    {object}  checkInstructorResponse
// @Failure      401    {object}  errorResponse
// @Router       /users/checkInstructor/{email} [get]
func (h *UserHandler) CheckInstructor(c echo.Context) error {
	claims, err := Identity(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if claims.Email != email {
		return c.JSON(http.StatusOK, checkInstructorResponse{Instructor: false})
	}

	role, err := h.users.ResolveRole(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkInstructorResponse{Instructor: role == domain.RoleInstructor})
}
