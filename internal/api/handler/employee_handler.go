package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leaflink/storefront/internal/core/ports"
)

// EmployeeHandler serves the manager console's staff records. Every route is
// gated to admin or manager at the router.
type EmployeeHandler struct {
	employeeService ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	e, err := h.employeeService.Create(c.Request().Context(), ports.EmployeeInput{
		Name:       req.Name,
		Mobile:     req.Mobile,
		EmployeeID: req.EmployeeID,
		Salary:     req.Salary,
		Title:      req.Title,
		Email:      req.Email,
		Birthday:   req.Birthday,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Employee
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	e, err := h.employeeService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  errorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	e, err := h.employeeService.Update(c.Request().Context(), c.Param("id"), ports.EmployeeInput{
		Name:       req.Name,
		Mobile:     req.Mobile,
		EmployeeID: req.EmployeeID,
		Salary:     req.Salary,
		Title:      req.Title,
		Email:      req.Email,
		Birthday:   req.Birthday,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employeeService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
