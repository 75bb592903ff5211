package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leaflink/storefront/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the authenticated caller's own profile.
//
// @Summary      Get own profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// GetProfileByID returns any user's profile by id.
//
// @Summary      Get profile by id
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /user/profile/{id} [get]
func (h *UserHandler) GetProfileByID(c echo.Context) error {
	profile, err := h.userService.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ListProfiles returns every account. Admin only.
//
// @Summary      List all profiles
// @Tags         user
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /user/all [get]
func (h *UserHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.userService.ListProfiles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// UpdateProfile applies a partial update to the caller's own profile. A
// password change is re-hashed by the service.
//
// @Summary      Update own profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Router       /user/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return h.applyProfileUpdate(c, user.ID)
}

// UpdateProfileByID applies a partial update to the identified profile.
//
// @Summary      Update profile by id
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  errorResponse
// @Router       /user/profile/{id} [put]
func (h *UserHandler) UpdateProfileByID(c echo.Context) error {
	return h.applyProfileUpdate(c, c.Param("id"))
}

func (h *UserHandler) applyProfileUpdate(c echo.Context, id string) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Request().Context(), id, ports.ProfileUpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateRole swaps a user's role. Admin only; the role value must belong to
// the closed role set.
//
// @Summary      Update a user's role
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /user/role/{id} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an account. Admin only.
//
// @Summary      Delete a user
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/profile/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
