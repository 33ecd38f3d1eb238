package employee

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmployeeHandler exposes employee admin operations over HTTP.
type EmployeeHandler struct {
	service *EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List returns the employees table.
func (h *EmployeeHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List())
}

// Submit handles the employee form, updating when an edit is in progress.
func (h *EmployeeHandler) Submit(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.Submit(req); err != nil {
		switch {
		case errors.Is(err, ErrUnknownAccount):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Employee saved"})
}

// Edit loads an employee into the edit form.
func (h *EmployeeHandler) Edit(c echo.Context) error {
	emp, err := h.service.BeginEdit(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Employee not found"})
	}
	return c.JSON(http.StatusOK, emp)
}

// CancelEdit clears the edit form.
func (h *EmployeeHandler) CancelEdit(c echo.Context) error {
	h.service.CancelEdit()
	return c.JSON(http.StatusOK, map[string]string{"message": "Edit cancelled"})
}

// Delete removes an employee.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Employee not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Employee deleted"})
}
